package contract

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
)

type CourseRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)
	ReplaceAll(ctx context.Context, courses []*entity.Course) error
}

type LearningPathRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningPath, error)
	ReplaceAll(ctx context.Context, lps []*entity.LearningPath) error
}

type TutorialRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tutorial, error)
	ReplaceAll(ctx context.Context, tutorials []*entity.Tutorial) error
}

type CourseLevelRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CourseLevel, error)
	ReplaceAll(ctx context.Context, levels []*entity.CourseLevel) error
}

type SkillKeywordRepository interface {
	// FindAll returns keywords in load order.
	FindAll(ctx context.Context) ([]*entity.SkillKeyword, error)
	ReplaceAll(ctx context.Context, keywords []*entity.SkillKeyword) error
}
