package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Learner struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        *string        `gorm:"type:varchar(255)"`
	OnboardingCompleted bool           `gorm:"default:false"`
	Preferences         datatypes.JSON
	SkillAssessment     datatypes.JSON
	CurrentLearningPath *int
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Learner) TableName() string {
	return "users"
}
