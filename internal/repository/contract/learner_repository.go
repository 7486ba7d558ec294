package contract

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
)

type LearnerRepository interface {
	Create(ctx context.Context, learner *entity.Learner) error
	Update(ctx context.Context, learner *entity.Learner) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Learner, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
