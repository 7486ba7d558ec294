package model

type LearningPath struct {
	LearningPathId   int    `gorm:"primaryKey;autoIncrement:false"`
	LearningPathName string `gorm:"type:varchar(255);not null"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

type Course struct {
	CourseId       int    `gorm:"primaryKey;autoIncrement:false"`
	LearningPathId int    `gorm:"index"`
	CourseName     string `gorm:"type:varchar(255);not null"`
	CourseLevelStr string `gorm:"type:varchar(50)"`
	HoursToStudy   float64
}

func (Course) TableName() string {
	return "courses"
}

type Tutorial struct {
	TutorialId    int    `gorm:"primaryKey;autoIncrement:false"`
	CourseId      int    `gorm:"index"`
	TutorialTitle string `gorm:"type:text"`
}

func (Tutorial) TableName() string {
	return "tutorials"
}

type CourseLevel struct {
	Id          int    `gorm:"primaryKey;autoIncrement:false"`
	CourseLevel string `gorm:"type:varchar(50);not null"`
}

func (CourseLevel) TableName() string {
	return "course_levels"
}

type SkillKeyword struct {
	Seq     uint   `gorm:"primaryKey"`
	Id      string `gorm:"column:keyword_id;type:varchar(64);uniqueIndex"`
	Keyword string `gorm:"type:varchar(255);not null"`
}

func (SkillKeyword) TableName() string {
	return "skill_keywords"
}
