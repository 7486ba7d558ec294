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

type CourseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCourseRepository(db *gorm.DB) contract.CourseRepository {
	return &CourseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

// FindAll returns courses in catalog order (course_id ascending).
func (r *CourseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	var models []*model.Course
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("course_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CoursesToEntities(models), nil
}

func (r *CourseRepositoryImpl) ReplaceAll(ctx context.Context, courses []*entity.Course) error {
	db := r.db.WithContext(ctx)
	if err := deleteAll(db, &model.Course{}); err != nil {
		return err
	}
	if len(courses) == 0 {
		return nil
	}
	models := make([]*model.Course, len(courses))
	for i, c := range courses {
		models[i] = r.mapper.CourseToModel(c)
	}
	return db.Create(&models).Error
}
