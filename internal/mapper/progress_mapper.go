package mapper

import (
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ToEntity(p *model.StudentProgress) *entity.StudentProgress {
	if p == nil {
		return nil
	}
	return &entity.StudentProgress{
		Id:                 p.Id,
		Name:               p.Name,
		Email:              p.Email,
		CourseName:         p.CourseName,
		ActiveTutorials:    p.ActiveTutorials,
		CompletedTutorials: p.CompletedTutorials,
		IsGraduated:        p.IsGraduated,
		ExamScore:          p.ExamScore,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *ProgressMapper) ToModel(p *entity.StudentProgress) *model.StudentProgress {
	if p == nil {
		return nil
	}
	return &model.StudentProgress{
		Id:                 p.Id,
		Name:               p.Name,
		Email:              p.Email,
		CourseName:         p.CourseName,
		ActiveTutorials:    p.ActiveTutorials,
		CompletedTutorials: p.CompletedTutorials,
		IsGraduated:        p.IsGraduated,
		ExamScore:          p.ExamScore,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m *ProgressMapper) ToEntities(ps []*model.StudentProgress) []*entity.StudentProgress {
	entities := make([]*entity.StudentProgress, len(ps))
	for i, p := range ps {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProgressMapper) ActivityToModel(a *entity.ProgressActivity) *model.ProgressActivity {
	if a == nil {
		return nil
	}
	return &model.ProgressActivity{
		Id:                 a.Id,
		Email:              a.Email,
		CourseName:         a.CourseName,
		ActiveTutorials:    a.ActiveTutorials,
		CompletedTutorials: a.CompletedTutorials,
		IsGraduated:        a.IsGraduated,
		ExamScore:          a.ExamScore,
		OccurredAt:         a.OccurredAt,
	}
}

func (m *ProgressMapper) ActivitiesToEntities(as []*model.ProgressActivity) []*entity.ProgressActivity {
	entities := make([]*entity.ProgressActivity, len(as))
	for i, a := range as {
		entities[i] = &entity.ProgressActivity{
			Id:                 a.Id,
			Email:              a.Email,
			CourseName:         a.CourseName,
			ActiveTutorials:    a.ActiveTutorials,
			CompletedTutorials: a.CompletedTutorials,
			IsGraduated:        a.IsGraduated,
			ExamScore:          a.ExamScore,
			OccurredAt:         a.OccurredAt,
		}
	}
	return entities
}
