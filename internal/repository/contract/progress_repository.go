package contract

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
)

type StudentProgressRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudentProgress, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudentProgress, error)
	Save(ctx context.Context, progress *entity.StudentProgress) error
	ReplaceAll(ctx context.Context, progress []*entity.StudentProgress) error
}

type ProgressActivityRepository interface {
	Create(ctx context.Context, activity *entity.ProgressActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressActivity, error)
}
