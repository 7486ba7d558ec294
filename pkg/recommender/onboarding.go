package recommender

import (
	"context"
	"fmt"
	"sort"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
)

const (
	DefaultPrimaryInterest = "Web Development"
	maxOnboardingCourses   = 6
	defaultLevelRank       = 3
)

var (
	interestLearningPaths = map[string][]int{
		"Mobile Development":      {2, 12, 10}, // Android, Multi-Platform, iOS
		"Artificial Intelligence": {1, 8, 11},  // AI Engineer, Gen AI, MLOps
		"Cloud Computing":         {6, 9},      // DevOps, Google Cloud
		"Web Development":         {3, 4, 7, 13},
	}
	// Front-End Web
	fallbackLearningPaths = []int{7}

	levelRank = map[string]int{
		entity.CourseLevelDasar:       1,
		entity.CourseLevelPemula:      2,
		entity.CourseLevelMenengah:    3,
		entity.CourseLevelMahir:       4,
		entity.CourseLevelProfesional: 5,
	}
)

// PrimaryInterest is the most frequent answer; ties go to the answer seen first.
func PrimaryInterest(answers []string) string {
	if len(answers) == 0 {
		return DefaultPrimaryInterest
	}
	counts := make(map[string]int, len(answers))
	best, bestCount := "", 0
	for _, a := range answers {
		counts[a]++
	}
	for _, a := range answers {
		if counts[a] > bestCount {
			best, bestCount = a, counts[a]
		}
	}
	return best
}

// LearningPathsForInterest returns a copy of the static interest table entry.
func LearningPathsForInterest(interest string) []int {
	ids, ok := interestLearningPaths[interest]
	if !ok {
		ids = fallbackLearningPaths
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// LevelRank orders course levels; unknown levels rank as Menengah.
func LevelRank(level string) int {
	if r, ok := levelRank[level]; ok {
		return r
	}
	return defaultLevelRank
}

// GetOnboardingRecommendations maps the primary interest to fixed learning
// paths and returns their easiest courses. techAnswers is accepted for the
// onboarding contract and is not scored.
func (e *Engine) GetOnboardingRecommendations(ctx context.Context, interestAnswers []string, techAnswers []interface{}) (*dto.OnboardingResponse, error) {
	primary := PrimaryInterest(interestAnswers)
	lpIDs := LearningPathsForInterest(primary)

	courses, err := e.catalog.CoursesInLearningPaths(ctx, lpIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch onboarding courses: %w", err)
	}

	sorted := make([]*entity.Course, 0, len(courses))
	for _, c := range courses {
		if c != nil {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return LevelRank(sorted[i].CourseLevelStr) < LevelRank(sorted[j].CourseLevelStr)
	})
	if len(sorted) > maxOnboardingCourses {
		sorted = sorted[:maxOnboardingCourses]
	}

	res := &dto.OnboardingResponse{
		PrimaryInterest:          primary,
		RecommendedLearningPaths: lpIDs,
		RecommendedCourses:       make([]dto.OnboardingCourse, 0, len(sorted)),
		OnboardingComplete:       true,
	}
	for _, c := range sorted {
		res.RecommendedCourses = append(res.RecommendedCourses, dto.OnboardingCourse{
			CourseId:       c.CourseId,
			CourseName:     c.CourseName,
			LearningPathId: c.LearningPathId,
			Level:          c.CourseLevelStr,
			Hours:          c.HoursToStudy,
		})
	}
	return res, nil
}
