package implementation

import (
	"context"
	"errors"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/mapper"
	"learning-buddy-be/internal/model"
	"learning-buddy-be/internal/repository/contract"
	"learning-buddy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StudentProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewStudentProgressRepository(db *gorm.DB) contract.StudentProgressRepository {
	return &StudentProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *StudentProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudentProgress, error) {
	var models []*model.StudentProgress
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StudentProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudentProgress, error) {
	var m model.StudentProgress
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// Save inserts when Id is zero, otherwise overwrites the row.
func (r *StudentProgressRepositoryImpl) Save(ctx context.Context, progress *entity.StudentProgress) error {
	m := r.mapper.ToModel(progress)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudentProgressRepositoryImpl) ReplaceAll(ctx context.Context, progress []*entity.StudentProgress) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.StudentProgress{}); err != nil {
		return err
	}
	if len(progress) == 0 {
		return nil
	}
	models := make([]*model.StudentProgress, len(progress))
	for i, p := range progress {
		models[i] = r.mapper.ToModel(p)
		models[i].Id = 0
	}
	return db.CreateInBatches(&models, 500).Error
}

type ProgressActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressActivityRepository(db *gorm.DB) contract.ProgressActivityRepository {
	return &ProgressActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressActivityRepositoryImpl) Create(ctx context.Context, activity *entity.ProgressActivity) error {
	return r.db.WithContext(ctx).Create(r.mapper.ActivityToModel(activity)).Error
}

func (r *ProgressActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressActivity, error) {
	var models []*model.ProgressActivity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ActivitiesToEntities(models), nil
}
