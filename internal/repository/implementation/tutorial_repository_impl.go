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

type TutorialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewTutorialRepository(db *gorm.DB) contract.TutorialRepository {
	return &TutorialRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *TutorialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tutorial, error) {
	var models []*model.Tutorial
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("tutorial_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TutorialsToEntities(models), nil
}

func (r *TutorialRepositoryImpl) ReplaceAll(ctx context.Context, tutorials []*entity.Tutorial) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.Tutorial{}); err != nil {
		return err
	}
	if len(tutorials) == 0 {
		return nil
	}
	models := make([]*model.Tutorial, len(tutorials))
	for i, t := range tutorials {
		models[i] = r.mapper.TutorialToModel(t)
	}
	return db.CreateInBatches(&models, 500).Error
}
