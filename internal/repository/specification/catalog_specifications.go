package specification

import "gorm.io/gorm"

type ByLearningPathID struct {
	LearningPathID int
}

func (s ByLearningPathID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("learning_path_id = ?", s.LearningPathID)
}

// ByLearningPathIDs matches nothing for an empty list.
type ByLearningPathIDs struct {
	LearningPathIDs []int
}

func (s ByLearningPathIDs) Apply(db *gorm.DB) *gorm.DB {
	if len(s.LearningPathIDs) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where("learning_path_id IN ?", s.LearningPathIDs)
}

type ByCourseID struct {
	CourseID int
}

func (s ByCourseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("course_id = ?", s.CourseID)
}

type ByTechCategory struct {
	Category string
}

func (s ByTechCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tech_category = ?", s.Category)
}

type ByDifficulty struct {
	Difficulty string
}

func (s ByDifficulty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("difficulty = ?", s.Difficulty)
}
