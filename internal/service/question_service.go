package service

import (
	"context"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
)

type IQuestionService interface {
	GetInterestQuestions(ctx context.Context) ([]dto.InterestQuestionResponse, error)
	GetTechQuestions(ctx context.Context, query *dto.TechQuestionQuery) ([]dto.TechQuestionResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{uowFactory: uowFactory}
}

func (s *questionService) GetInterestQuestions(ctx context.Context) ([]dto.InterestQuestionResponse, error) {
	questions, err := s.uowFactory.NewUnitOfWork(ctx).QuestionRepository().FindInterestQuestions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.InterestQuestionResponse, 0, len(questions))
	for _, q := range questions {
		res = append(res, dto.InterestQuestionResponse{
			Id:           q.Id,
			QuestionDesc: q.QuestionDesc,
			OptionText:   q.OptionText,
			Category:     q.Category,
		})
	}
	return res, nil
}

func (s *questionService) GetTechQuestions(ctx context.Context, query *dto.TechQuestionQuery) ([]dto.TechQuestionResponse, error) {
	var specs []specification.Specification
	if query.Category != "" {
		specs = append(specs, specification.ByTechCategory{Category: query.Category})
	}
	if query.Difficulty != "" {
		specs = append(specs, specification.ByDifficulty{Difficulty: query.Difficulty})
	}

	questions, err := s.uowFactory.NewUnitOfWork(ctx).QuestionRepository().FindTechQuestions(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TechQuestionResponse, 0, len(questions))
	for _, q := range questions {
		res = append(res, dto.TechQuestionResponse{
			Id:            q.Id,
			TechCategory:  q.TechCategory,
			Difficulty:    q.Difficulty,
			QuestionDesc:  q.QuestionDesc,
			Option1:       q.Option1,
			Option2:       q.Option2,
			Option3:       q.Option3,
			Option4:       q.Option4,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return res, nil
}
