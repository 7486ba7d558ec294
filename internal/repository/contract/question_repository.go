package contract

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
)

type QuestionRepository interface {
	FindInterestQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.InterestQuestion, error)
	FindTechQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.TechQuestion, error)
	ReplaceInterestQuestions(ctx context.Context, questions []*entity.InterestQuestion) error
	ReplaceTechQuestions(ctx context.Context, questions []*entity.TechQuestion) error
}
