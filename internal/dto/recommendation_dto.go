package dto

type RecommendedCourse struct {
	CourseId       int     `json:"course_id"`
	CourseName     string  `json:"course_name"`
	LearningPathId int     `json:"learning_path_id"`
	Level          string  `json:"level"`
	Hours          float64 `json:"hours"`
	Score          int     `json:"score"`
	Reason         string  `json:"reason"`
}

type RecommendedLearningPath struct {
	LearningPathId   int    `json:"learning_path_id"`
	LearningPathName string `json:"learning_path_name"`
}

type SkillAnalysis struct {
	CompletedSkills []string `json:"completed_skills"`
	WeakAreas       []string `json:"weak_areas"`
}

type RecommendationResponse struct {
	RecommendedCourses       []RecommendedCourse       `json:"recommended_courses"`
	RecommendedLearningPaths []RecommendedLearningPath `json:"recommended_learning_paths"`
	SkillAnalysis            SkillAnalysis             `json:"skill_analysis"`
}

type OnboardingCourse struct {
	CourseId       int     `json:"course_id"`
	CourseName     string  `json:"course_name"`
	LearningPathId int     `json:"learning_path_id"`
	Level          string  `json:"level"`
	Hours          float64 `json:"hours"`
}

// OnboardingRequest carries the onboarding answers. TechAnswers is accepted
// but does not influence the result yet.
type OnboardingRequest struct {
	InterestAnswers []string      `json:"interest_answers"`
	TechAnswers     []interface{} `json:"tech_answers"`
}

type OnboardingResponse struct {
	PrimaryInterest          string             `json:"primary_interest"`
	RecommendedLearningPaths []int              `json:"recommended_learning_paths"`
	RecommendedCourses       []OnboardingCourse `json:"recommended_courses"`
	OnboardingComplete       bool               `json:"onboarding_complete"`
}

type RecommendationQuery struct {
	UserId string `query:"user_id"`
	Email  string `query:"email"`
}

type KeywordReloadResponse struct {
	Keywords int `json:"keywords"`
}
