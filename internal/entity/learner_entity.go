// FILE: internal/entity/learner_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Learner is an end user of the platform, identified by email.
type Learner struct {
	Id                  uuid.UUID
	Name                string
	Email               string
	PasswordHash        *string
	OnboardingCompleted bool
	Preferences         map[string]interface{}
	SkillAssessment     map[string]interface{}
	CurrentLearningPath *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
