package mapper

import (
	"encoding/json"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/model"

	"gorm.io/datatypes"
)

type LearnerMapper struct{}

func NewLearnerMapper() *LearnerMapper {
	return &LearnerMapper{}
}

func (m *LearnerMapper) ToEntity(l *model.Learner) *entity.Learner {
	if l == nil {
		return nil
	}
	return &entity.Learner{
		Id:                  l.Id,
		Name:                l.Name,
		Email:               l.Email,
		PasswordHash:        l.PasswordHash,
		OnboardingCompleted: l.OnboardingCompleted,
		Preferences:         decodeJSONObject(l.Preferences),
		SkillAssessment:     decodeJSONObject(l.SkillAssessment),
		CurrentLearningPath: l.CurrentLearningPath,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func (m *LearnerMapper) ToModel(l *entity.Learner) *model.Learner {
	if l == nil {
		return nil
	}
	return &model.Learner{
		Id:                  l.Id,
		Name:                l.Name,
		Email:               l.Email,
		PasswordHash:        l.PasswordHash,
		OnboardingCompleted: l.OnboardingCompleted,
		Preferences:         encodeJSONObject(l.Preferences),
		SkillAssessment:     encodeJSONObject(l.SkillAssessment),
		CurrentLearningPath: l.CurrentLearningPath,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

func (m *LearnerMapper) ToEntities(learners []*model.Learner) []*entity.Learner {
	entities := make([]*entity.Learner, len(learners))
	for i, l := range learners {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

// Both columns hold JSON objects; anything else decodes to an empty map.
func decodeJSONObject(raw datatypes.JSON) map[string]interface{} {
	out := make(map[string]interface{})
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return make(map[string]interface{})
	}
	return out
}

func encodeJSONObject(v map[string]interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("{}")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}
