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

type LearningPathRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewLearningPathRepository(db *gorm.DB) contract.LearningPathRepository {
	return &LearningPathRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *LearningPathRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningPath, error) {
	var models []*model.LearningPath
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("learning_path_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.LearningPathsToEntities(models), nil
}

func (r *LearningPathRepositoryImpl) ReplaceAll(ctx context.Context, lps []*entity.LearningPath) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.LearningPath{}); err != nil {
		return err
	}
	if len(lps) == 0 {
		return nil
	}
	models := make([]*model.LearningPath, len(lps))
	for i, lp := range lps {
		models[i] = r.mapper.LearningPathToModel(lp)
	}
	return db.Create(&models).Error
}
