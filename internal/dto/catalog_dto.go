package dto

const (
	CatalogSourceRemote   = "remote"
	CatalogSourceDatabase = "database"
)

type LearningPathResponse struct {
	LearningPathId   int    `json:"learning_path_id"`
	LearningPathName string `json:"learning_path_name"`
}

type CourseResponse struct {
	CourseId       int     `json:"course_id"`
	LearningPathId int     `json:"learning_path_id"`
	CourseName     string  `json:"course_name"`
	CourseLevelStr string  `json:"course_level_str"`
	HoursToStudy   float64 `json:"hours_to_study"`
}

type TutorialResponse struct {
	TutorialId    int    `json:"tutorial_id"`
	CourseId      int    `json:"course_id"`
	TutorialTitle string `json:"tutorial_title"`
}

type CourseLevelResponse struct {
	Id          int    `json:"id"`
	CourseLevel string `json:"course_level"`
}

// CatalogResult records which backend answered.
type CatalogResult[T any] struct {
	Items  []T
	Source string
}

type CourseQuery struct {
	LearningPathId string `query:"lp_id"`
}

type TutorialQuery struct {
	CourseId string `query:"course_id"`
}
