package unitofwork

import (
	"context"

	"learning-buddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LearnerRepository() contract.LearnerRepository
	CourseRepository() contract.CourseRepository
	LearningPathRepository() contract.LearningPathRepository
	TutorialRepository() contract.TutorialRepository
	CourseLevelRepository() contract.CourseLevelRepository
	SkillKeywordRepository() contract.SkillKeywordRepository
	StudentProgressRepository() contract.StudentProgressRepository
	ProgressActivityRepository() contract.ProgressActivityRepository
	QuestionRepository() contract.QuestionRepository
}
