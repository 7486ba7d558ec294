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

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) FindInterestQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.InterestQuestion, error) {
	var models []*model.InterestQuestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InterestsToEntities(models), nil
}

func (r *QuestionRepositoryImpl) FindTechQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.TechQuestion, error) {
	var models []*model.TechQuestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TechsToEntities(models), nil
}

func (r *QuestionRepositoryImpl) ReplaceInterestQuestions(ctx context.Context, questions []*entity.InterestQuestion) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.InterestQuestion{}); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}
	models := make([]*model.InterestQuestion, len(questions))
	for i, q := range questions {
		models[i] = r.mapper.InterestToModel(q)
		models[i].Id = 0
	}
	return db.Create(&models).Error
}

func (r *QuestionRepositoryImpl) ReplaceTechQuestions(ctx context.Context, questions []*entity.TechQuestion) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.TechQuestion{}); err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}
	models := make([]*model.TechQuestion, len(questions))
	for i, q := range questions {
		models[i] = r.mapper.TechToModel(q)
		models[i].Id = 0
	}
	return db.Create(&models).Error
}
