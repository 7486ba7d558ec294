package unitofwork

import (
	"context"
	"fmt"

	"learning-buddy-be/internal/repository/contract"
	"learning-buddy-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) LearnerRepository() contract.LearnerRepository {
	return implementation.NewLearnerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CourseRepository() contract.CourseRepository {
	return implementation.NewCourseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LearningPathRepository() contract.LearningPathRepository {
	return implementation.NewLearningPathRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TutorialRepository() contract.TutorialRepository {
	return implementation.NewTutorialRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CourseLevelRepository() contract.CourseLevelRepository {
	return implementation.NewCourseLevelRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SkillKeywordRepository() contract.SkillKeywordRepository {
	return implementation.NewSkillKeywordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudentProgressRepository() contract.StudentProgressRepository {
	return implementation.NewStudentProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProgressActivityRepository() contract.ProgressActivityRepository {
	return implementation.NewProgressActivityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuestionRepository() contract.QuestionRepository {
	return implementation.NewQuestionRepository(u.getDB())
}
