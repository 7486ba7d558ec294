package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id                  uuid.UUID              `json:"id"`
	Name                string                 `json:"name"`
	Email               string                 `json:"email"`
	OnboardingCompleted bool                   `json:"onboarding_completed"`
	Preferences         map[string]interface{} `json:"preferences"`
	SkillAssessment     map[string]interface{} `json:"skill_assessment"`
	CurrentLearningPath *int                   `json:"current_learning_path"`
	CreatedAt           time.Time              `json:"created_at"`
}

type CreateUserRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Email       string                 `json:"email" validate:"required"`
	Preferences map[string]interface{} `json:"preferences"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	OnboardingCompleted *bool                   `json:"onboarding_completed"`
	Preferences         *map[string]interface{} `json:"preferences"`
	SkillAssessment     *map[string]interface{} `json:"skill_assessment"`
	CurrentLearningPath *int                    `json:"current_learning_path"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.OnboardingCompleted == nil &&
		r.Preferences == nil &&
		r.SkillAssessment == nil &&
		r.CurrentLearningPath == nil
}
