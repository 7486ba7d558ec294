package recommender

import (
	"context"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
)

// StoreCatalog reads the catalog straight from the database on every call.
type StoreCatalog struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStoreCatalog(uowFactory unitofwork.RepositoryFactory) *StoreCatalog {
	return &StoreCatalog{uowFactory: uowFactory}
}

func (s *StoreCatalog) Courses(ctx context.Context) ([]*entity.Course, error) {
	return s.uowFactory.NewUnitOfWork(ctx).CourseRepository().FindAll(ctx)
}

func (s *StoreCatalog) CoursesInLearningPaths(ctx context.Context, learningPathIDs []int) ([]*entity.Course, error) {
	return s.uowFactory.NewUnitOfWork(ctx).CourseRepository().FindAll(ctx,
		specification.ByLearningPathIDs{LearningPathIDs: learningPathIDs},
	)
}

func (s *StoreCatalog) LearningPaths(ctx context.Context, learningPathIDs []int) ([]*entity.LearningPath, error) {
	return s.uowFactory.NewUnitOfWork(ctx).LearningPathRepository().FindAll(ctx,
		specification.ByLearningPathIDs{LearningPathIDs: learningPathIDs},
	)
}

func (s *StoreCatalog) SkillKeywords(ctx context.Context) ([]*entity.SkillKeyword, error) {
	return s.uowFactory.NewUnitOfWork(ctx).SkillKeywordRepository().FindAll(ctx)
}
