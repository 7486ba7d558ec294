package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProgressQuery struct {
	UserId string `query:"user_id"`
	Email  string `query:"email"`
}

type ProgressResponse struct {
	Name               string    `json:"name,omitempty"`
	Email              string    `json:"email"`
	CourseName         string    `json:"course_name"`
	ActiveTutorials    int       `json:"active_tutorials"`
	CompletedTutorials int       `json:"completed_tutorials"`
	IsGraduated        int       `json:"is_graduated"`
	ExamScore          *float64  `json:"exam_score"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProgressUserInfo struct {
	UserId              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
}

type LearnerProgressResponse struct {
	User     *ProgressUserInfo  `json:"user"`
	Progress []ProgressResponse `json:"progress"`
}

type ProgressStatsResponse struct {
	TotalCourses       int     `json:"total_courses"`
	CompletedCourses   int     `json:"completed_courses"`
	InProgressCourses  int     `json:"in_progress_courses"`
	TotalTutorials     int     `json:"total_tutorials"`
	CompletedTutorials int     `json:"completed_tutorials"`
	CompletionRate     float64 `json:"completion_rate"`
}

// UpdateProgressRequest upserts by (email, course_name); only non-nil fields
// overwrite the stored record.
type UpdateProgressRequest struct {
	Email              string   `json:"email" validate:"required"`
	CourseName         string   `json:"course_name" validate:"required"`
	CompletedTutorials *int     `json:"completed_tutorials"`
	ActiveTutorials    *int     `json:"active_tutorials"`
	IsGraduated        *int     `json:"is_graduated"`
	ExamScore          *float64 `json:"exam_score"`
}

// ActivityQuery pages the activity log. Limit defaults to
// DefaultActivityLimit and is capped at MaxActivityLimit.
type ActivityQuery struct {
	Email  string `query:"email"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

type ProgressActivityResponse struct {
	Id                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	CourseName         string    `json:"course_name"`
	ActiveTutorials    *int      `json:"active_tutorials"`
	CompletedTutorials *int      `json:"completed_tutorials"`
	IsGraduated        *int      `json:"is_graduated"`
	ExamScore          *float64  `json:"exam_score"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// ProgressUpdatedMessage travels on the in-process bus after every upsert. The
// tutorial and score fields carry only what the request changed.
type ProgressUpdatedMessage struct {
	Email              string    `json:"email"`
	CourseName         string    `json:"course_name"`
	ActiveTutorials    *int      `json:"active_tutorials,omitempty"`
	CompletedTutorials *int      `json:"completed_tutorials,omitempty"`
	IsGraduated        *int      `json:"is_graduated,omitempty"`
	ExamScore          *float64  `json:"exam_score,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
