package mapper

import (
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CourseToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}
	return &entity.Course{
		CourseId:       c.CourseId,
		LearningPathId: c.LearningPathId,
		CourseName:     c.CourseName,
		CourseLevelStr: c.CourseLevelStr,
		HoursToStudy:   c.HoursToStudy,
	}
}

func (m *CatalogMapper) CourseToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}
	return &model.Course{
		CourseId:       c.CourseId,
		LearningPathId: c.LearningPathId,
		CourseName:     c.CourseName,
		CourseLevelStr: c.CourseLevelStr,
		HoursToStudy:   c.HoursToStudy,
	}
}

func (m *CatalogMapper) CoursesToEntities(courses []*model.Course) []*entity.Course {
	entities := make([]*entity.Course, len(courses))
	for i, c := range courses {
		entities[i] = m.CourseToEntity(c)
	}
	return entities
}

func (m *CatalogMapper) LearningPathToEntity(lp *model.LearningPath) *entity.LearningPath {
	if lp == nil {
		return nil
	}
	return &entity.LearningPath{
		LearningPathId:   lp.LearningPathId,
		LearningPathName: lp.LearningPathName,
	}
}

func (m *CatalogMapper) LearningPathToModel(lp *entity.LearningPath) *model.LearningPath {
	if lp == nil {
		return nil
	}
	return &model.LearningPath{
		LearningPathId:   lp.LearningPathId,
		LearningPathName: lp.LearningPathName,
	}
}

func (m *CatalogMapper) LearningPathsToEntities(lps []*model.LearningPath) []*entity.LearningPath {
	entities := make([]*entity.LearningPath, len(lps))
	for i, lp := range lps {
		entities[i] = m.LearningPathToEntity(lp)
	}
	return entities
}

func (m *CatalogMapper) TutorialToEntity(t *model.Tutorial) *entity.Tutorial {
	if t == nil {
		return nil
	}
	return &entity.Tutorial{
		TutorialId:    t.TutorialId,
		CourseId:      t.CourseId,
		TutorialTitle: t.TutorialTitle,
	}
}

func (m *CatalogMapper) TutorialToModel(t *entity.Tutorial) *model.Tutorial {
	if t == nil {
		return nil
	}
	return &model.Tutorial{
		TutorialId:    t.TutorialId,
		CourseId:      t.CourseId,
		TutorialTitle: t.TutorialTitle,
	}
}

func (m *CatalogMapper) TutorialsToEntities(ts []*model.Tutorial) []*entity.Tutorial {
	entities := make([]*entity.Tutorial, len(ts))
	for i, t := range ts {
		entities[i] = m.TutorialToEntity(t)
	}
	return entities
}

func (m *CatalogMapper) CourseLevelToEntity(l *model.CourseLevel) *entity.CourseLevel {
	if l == nil {
		return nil
	}
	return &entity.CourseLevel{Id: l.Id, CourseLevel: l.CourseLevel}
}

func (m *CatalogMapper) CourseLevelToModel(l *entity.CourseLevel) *model.CourseLevel {
	if l == nil {
		return nil
	}
	return &model.CourseLevel{Id: l.Id, CourseLevel: l.CourseLevel}
}

func (m *CatalogMapper) CourseLevelsToEntities(ls []*model.CourseLevel) []*entity.CourseLevel {
	entities := make([]*entity.CourseLevel, len(ls))
	for i, l := range ls {
		entities[i] = m.CourseLevelToEntity(l)
	}
	return entities
}

func (m *CatalogMapper) SkillKeywordToModel(k *entity.SkillKeyword) *model.SkillKeyword {
	if k == nil {
		return nil
	}
	return &model.SkillKeyword{Id: k.Id, Keyword: k.Keyword}
}

func (m *CatalogMapper) SkillKeywordsToEntities(ks []*model.SkillKeyword) []*entity.SkillKeyword {
	entities := make([]*entity.SkillKeyword, len(ks))
	for i, k := range ks {
		entities[i] = &entity.SkillKeyword{Id: k.Id, Keyword: k.Keyword}
	}
	return entities
}
