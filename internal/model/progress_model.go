package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentProgress struct {
	Id                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"type:varchar(255)"`
	Email              string `gorm:"type:varchar(255);not null;index:idx_progress_email_course"`
	CourseName         string `gorm:"type:varchar(255);not null;index:idx_progress_email_course"`
	ActiveTutorials    int    `gorm:"default:0"`
	CompletedTutorials int    `gorm:"default:0"`
	IsGraduated        int    `gorm:"default:0"`
	ExamScore          *float64
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

type ProgressActivity struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);not null;index"`
	CourseName         string    `gorm:"type:varchar(255);not null"`
	ActiveTutorials    *int
	CompletedTutorials *int
	IsGraduated        *int
	ExamScore          *float64
	OccurredAt         time.Time `gorm:"not null;index"`
}

func (ProgressActivity) TableName() string {
	return "progress_activities"
}
