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

type LearnerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearnerMapper
}

func NewLearnerRepository(db *gorm.DB) contract.LearnerRepository {
	return &LearnerRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearnerMapper(),
	}
}

func (r *LearnerRepositoryImpl) Create(ctx context.Context, learner *entity.Learner) error {
	m := r.mapper.ToModel(learner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*learner = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearnerRepositoryImpl) Update(ctx context.Context, learner *entity.Learner) error {
	m := r.mapper.ToModel(learner)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*learner = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearnerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Learner, error) {
	var m model.Learner
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LearnerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Learner{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
