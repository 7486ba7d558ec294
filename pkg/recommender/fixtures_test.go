package recommender

import (
	"context"

	"learning-buddy-be/internal/entity"
)

type fakeCatalog struct {
	courses  []*entity.Course
	paths    []*entity.LearningPath
	keywords []*entity.SkillKeyword

	coursesErr  error
	keywordsErr error
	pathCalls   [][]int
}

func (f *fakeCatalog) Courses(ctx context.Context) ([]*entity.Course, error) {
	if f.coursesErr != nil {
		return nil, f.coursesErr
	}
	return f.courses, nil
}

func (f *fakeCatalog) CoursesInLearningPaths(ctx context.Context, ids []int) ([]*entity.Course, error) {
	if f.coursesErr != nil {
		return nil, f.coursesErr
	}
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*entity.Course
	for _, c := range f.courses {
		if want[c.LearningPathId] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalog) LearningPaths(ctx context.Context, ids []int) ([]*entity.LearningPath, error) {
	f.pathCalls = append(f.pathCalls, ids)
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*entity.LearningPath
	for _, lp := range f.paths {
		if want[lp.LearningPathId] {
			out = append(out, lp)
		}
	}
	return out, nil
}

func (f *fakeCatalog) SkillKeywords(ctx context.Context) ([]*entity.SkillKeyword, error) {
	if f.keywordsErr != nil {
		return nil, f.keywordsErr
	}
	return f.keywords, nil
}

func keywords(words ...string) []*entity.SkillKeyword {
	out := make([]*entity.SkillKeyword, len(words))
	for i, w := range words {
		out[i] = &entity.SkillKeyword{Id: string(rune('a' + i)), Keyword: w}
	}
	return out
}

func indexOf(words ...string) *KeywordIndex {
	return NewKeywordIndex(keywords(words...))
}

func graduated(course string) *entity.StudentProgress {
	return &entity.StudentProgress{Email: "learner@example.com", CourseName: course, IsGraduated: 1, ActiveTutorials: 10, CompletedTutorials: 10}
}

func stalled(course string, completed, active int) *entity.StudentProgress {
	return &entity.StudentProgress{Email: "learner@example.com", CourseName: course, IsGraduated: 0, ActiveTutorials: active, CompletedTutorials: completed}
}

func mapping(pairs ...interface{}) *SkillMapping {
	m := NewSkillMapping()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Add(pairs[i].(string), pairs[i+1].(int))
	}
	return m
}
