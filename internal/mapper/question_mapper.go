package mapper

import (
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) InterestToModel(q *entity.InterestQuestion) *model.InterestQuestion {
	if q == nil {
		return nil
	}
	return &model.InterestQuestion{
		Id:           q.Id,
		QuestionDesc: q.QuestionDesc,
		OptionText:   q.OptionText,
		Category:     q.Category,
	}
}

func (m *QuestionMapper) InterestsToEntities(qs []*model.InterestQuestion) []*entity.InterestQuestion {
	entities := make([]*entity.InterestQuestion, len(qs))
	for i, q := range qs {
		entities[i] = &entity.InterestQuestion{
			Id:           q.Id,
			QuestionDesc: q.QuestionDesc,
			OptionText:   q.OptionText,
			Category:     q.Category,
		}
	}
	return entities
}

func (m *QuestionMapper) TechToModel(q *entity.TechQuestion) *model.TechQuestion {
	if q == nil {
		return nil
	}
	return &model.TechQuestion{
		Id:            q.Id,
		TechCategory:  q.TechCategory,
		Difficulty:    q.Difficulty,
		QuestionDesc:  q.QuestionDesc,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
		CorrectAnswer: q.CorrectAnswer,
	}
}

func (m *QuestionMapper) TechsToEntities(qs []*model.TechQuestion) []*entity.TechQuestion {
	entities := make([]*entity.TechQuestion, len(qs))
	for i, q := range qs {
		entities[i] = &entity.TechQuestion{
			Id:            q.Id,
			TechCategory:  q.TechCategory,
			Difficulty:    q.Difficulty,
			QuestionDesc:  q.QuestionDesc,
			Option1:       q.Option1,
			Option2:       q.Option2,
			Option3:       q.Option3,
			Option4:       q.Option4,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return entities
}
