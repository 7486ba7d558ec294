// FILE: internal/entity/catalog_entity.go
package entity

// Course levels in ascending difficulty.
const (
	CourseLevelDasar       = "Dasar"
	CourseLevelPemula      = "Pemula"
	CourseLevelMenengah    = "Menengah"
	CourseLevelMahir       = "Mahir"
	CourseLevelProfesional = "Profesional"
)

type LearningPath struct {
	LearningPathId   int
	LearningPathName string
}

type Course struct {
	CourseId       int
	LearningPathId int
	CourseName     string
	CourseLevelStr string
	HoursToStudy   float64
}

type Tutorial struct {
	TutorialId    int
	CourseId      int
	TutorialTitle string
}

type CourseLevel struct {
	Id          int
	CourseLevel string
}

// SkillKeyword is a lowercase probe matched against course names.
type SkillKeyword struct {
	Id      string
	Keyword string
}
