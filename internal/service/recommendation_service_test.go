package service

import (
	"context"
	"net/http"
	"testing"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/pkg/recommender"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, f unitofwork.RepositoryFactory) *recommender.Engine {
	t.Helper()
	engine, err := recommender.NewEngine(context.Background(), recommender.NewStoreCatalog(f), logger.NewNopLogger())
	require.NoError(t, err)
	return engine
}

func TestRecommendationService_ColdStartLearner(t *testing.T) {
	f := newTestFactory(t)
	seedCatalog(t, f)
	learner := seedLearner(t, f, "New", "new@x.io", nil)
	svc := NewRecommendationService(f, newEngine(t, f))

	res, err := svc.GetRecommendations(context.Background(), &dto.RecommendationQuery{UserId: learner.Id.String()})
	require.NoError(t, err)

	// Only Dasar and Pemula courses earn the cold start bonus.
	ids := make([]int, 0, len(res.RecommendedCourses))
	for _, c := range res.RecommendedCourses {
		assert.Equal(t, 15, c.Score)
		ids = append(ids, c.CourseId)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
	assert.Empty(t, res.SkillAnalysis.CompletedSkills)
	assert.Len(t, res.RecommendedLearningPaths, 3)
}

func TestRecommendationService_UsesProgressAndPreferences(t *testing.T) {
	f := newTestFactory(t)
	seedCatalog(t, f)
	seedLearner(t, f, "Pro", "pro@x.io", map[string]interface{}{"preferred_learning_path_id": float64(3)})
	seedProgress(t, f,
		&entity.StudentProgress{Email: "pro@x.io", CourseName: "Belajar Dasar Python", ActiveTutorials: 0, CompletedTutorials: 10, IsGraduated: 1},
		&entity.StudentProgress{Email: "pro@x.io", CourseName: "Intro JavaScript", ActiveTutorials: 10, CompletedTutorials: 1},
	)
	svc := NewRecommendationService(f, newEngine(t, f))

	res, err := svc.GetRecommendations(context.Background(), &dto.RecommendationQuery{Email: "pro@x.io"})
	require.NoError(t, err)

	require.NotEmpty(t, res.RecommendedCourses)
	top := res.RecommendedCourses[0]
	// javascript weak once (10) plus preferred path (10)
	assert.Equal(t, 3, top.CourseId)
	assert.Equal(t, 20, top.Score)
	assert.Equal(t, "Mengatasi kelemahan di bidang javascript", top.Reason)

	assert.Equal(t, []string{"python"}, res.SkillAnalysis.CompletedSkills)
	assert.Equal(t, []string{"javascript"}, res.SkillAnalysis.WeakAreas)
}

func TestRecommendationService_Errors(t *testing.T) {
	f := newTestFactory(t)
	svc := NewRecommendationService(f, newEngine(t, f))
	ctx := context.Background()

	_, err := svc.GetRecommendations(ctx, &dto.RecommendationQuery{})
	assertAppError(t, err, http.StatusBadRequest, "user_id or email required")

	_, err = svc.GetRecommendations(ctx, &dto.RecommendationQuery{UserId: uuid.NewString()})
	assertAppError(t, err, http.StatusNotFound, "User not found")

	_, err = svc.GetRecommendations(ctx, &dto.RecommendationQuery{UserId: "nope"})
	assertAppError(t, err, http.StatusBadRequest, "Invalid user id")
}

func TestRecommendationService_Onboarding(t *testing.T) {
	f := newTestFactory(t)
	seedCatalog(t, f)
	svc := NewRecommendationService(f, newEngine(t, f))

	res, err := svc.GetOnboardingRecommendations(context.Background(), &dto.OnboardingRequest{
		InterestAnswers: []string{"Artificial Intelligence", "Web Development", "Artificial Intelligence"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Artificial Intelligence", res.PrimaryInterest)
	assert.Equal(t, []int{1, 8, 11}, res.RecommendedLearningPaths)
	require.Len(t, res.RecommendedCourses, 2)
	assert.Equal(t, 1, res.RecommendedCourses[0].CourseId, "easiest level first")
	assert.True(t, res.OnboardingComplete)
}

func TestRecommendationService_ReloadKeywords(t *testing.T) {
	f := newTestFactory(t)
	svc := NewRecommendationService(f, newEngine(t, f))
	ctx := context.Background()

	res, err := svc.ReloadKeywords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Keywords)

	seedCatalog(t, f)
	res, err = svc.ReloadKeywords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Keywords)
}
