package implementation

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/mapper"
	"learning-buddy-be/internal/model"
	"learning-buddy-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SkillKeywordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewSkillKeywordRepository(db *gorm.DB) contract.SkillKeywordRepository {
	return &SkillKeywordRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *SkillKeywordRepositoryImpl) FindAll(ctx context.Context) ([]*entity.SkillKeyword, error) {
	var models []*model.SkillKeyword
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SkillKeywordsToEntities(models), nil
}

func (r *SkillKeywordRepositoryImpl) ReplaceAll(ctx context.Context, keywords []*entity.SkillKeyword) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.SkillKeyword{}); err != nil {
		return err
	}
	if len(keywords) == 0 {
		return nil
	}
	models := make([]*model.SkillKeyword, len(keywords))
	for i, k := range keywords {
		models[i] = r.mapper.SkillKeywordToModel(k)
	}
	return db.Create(&models).Error
}
