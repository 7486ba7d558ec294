package specification

import "gorm.io/gorm"

type ByCourseName struct {
	CourseName string
}

func (s ByCourseName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_name = ?", s.CourseName)
}
