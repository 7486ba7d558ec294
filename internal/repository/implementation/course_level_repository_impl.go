package implementation

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/mapper"
	"learning-buddy-be/internal/model"
	"learning-buddy-be/internal/repository/contract"
	"learning-buddy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CourseLevelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCourseLevelRepository(db *gorm.DB) contract.CourseLevelRepository {
	return &CourseLevelRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CourseLevelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseLevel, error) {
	var models []*model.CourseLevel
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CourseLevelsToEntities(models), nil
}

func (r *CourseLevelRepositoryImpl) ReplaceAll(ctx context.Context, levels []*entity.CourseLevel) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.CourseLevel{}); err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}
	models := make([]*model.CourseLevel, len(levels))
	for i, l := range levels {
		models[i] = r.mapper.CourseLevelToModel(l)
	}
	return db.Create(&models).Error
}
