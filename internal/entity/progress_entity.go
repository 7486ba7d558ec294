// FILE: internal/entity/progress_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentProgress is one learner's standing in one course.
type StudentProgress struct {
	Id                 uint
	Name               string
	Email              string
	CourseName         string
	ActiveTutorials    int
	CompletedTutorials int
	IsGraduated        int
	ExamScore          *float64
	UpdatedAt          time.Time
}

// IsGraduatedRecord reports is_graduated == 1.
func (p *StudentProgress) IsGraduatedRecord() bool {
	return p.IsGraduated == 1
}

// CompletionRate is completed/max(active,1).
func (p *StudentProgress) CompletionRate() float64 {
	active := p.ActiveTutorials
	if active < 1 {
		active = 1
	}
	return float64(p.CompletedTutorials) / float64(active)
}

type ProgressActivity struct {
	Id                 uuid.UUID
	Email              string
	CourseName         string
	ActiveTutorials    *int
	CompletedTutorials *int
	IsGraduated        *int
	ExamScore          *float64
	OccurredAt         time.Time
}
