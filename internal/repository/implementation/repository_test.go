package implementation

import (
	"context"
	"testing"
	"time"

	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnerRepository_CreateFindUpdate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewLearnerRepository(db)
	ctx := context.Background()

	learner := &entity.Learner{
		Id:          uuid.New(),
		Name:        "Sari",
		Email:       "sari@example.com",
		Preferences: map[string]interface{}{"interest": "Web"},
	}
	require.NoError(t, repo.Create(ctx, learner))

	found, err := repo.FindOne(ctx, specification.ByEmail{Email: "sari@example.com"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, learner.Id, found.Id)
	assert.Equal(t, "Web", found.Preferences["interest"])
	assert.Empty(t, found.SkillAssessment)

	lp := 3
	found.CurrentLearningPath = &lp
	found.OnboardingCompleted = true
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindOne(ctx, specification.ByID{ID: learner.Id})
	require.NoError(t, err)
	require.NotNil(t, again.CurrentLearningPath)
	assert.Equal(t, 3, *again.CurrentLearningPath)
	assert.True(t, again.OnboardingCompleted)

	count, err := repo.Count(ctx, specification.ByEmail{Email: "sari@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	missing, err := repo.FindOne(ctx, specification.ByEmail{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStudentProgressRepository_SaveUpsertsById(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewStudentProgressRepository(db)
	ctx := context.Background()

	record := &entity.StudentProgress{Email: "a@x.io", CourseName: "Belajar Dasar AI", ActiveTutorials: 5}
	require.NoError(t, repo.Save(ctx, record))
	require.NotZero(t, record.Id)

	record.CompletedTutorials = 4
	require.NoError(t, repo.Save(ctx, record))

	all, err := repo.FindAll(ctx, specification.ByEmail{Email: "a@x.io"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 4, all[0].CompletedTutorials)

	one, err := repo.FindOne(ctx,
		specification.ByEmail{Email: "a@x.io"},
		specification.ByCourseName{CourseName: "Belajar Dasar AI"},
	)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, record.Id, one.Id)

	none, err := repo.FindOne(ctx,
		specification.ByEmail{Email: "a@x.io"},
		specification.ByCourseName{CourseName: "Other"},
	)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStudentProgressRepository_ReplaceAll(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewStudentProgressRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.StudentProgress{Email: "old@x.io", CourseName: "Old"}))
	require.NoError(t, repo.ReplaceAll(ctx, []*entity.StudentProgress{
		{Id: 99, Email: "b@x.io", CourseName: "C1"},
		{Id: 99, Email: "b@x.io", CourseName: "C2"},
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "C1", all[0].CourseName)
	assert.Equal(t, "C2", all[1].CourseName)
}

func TestProgressActivityRepository_NewestFirst(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewProgressActivityRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, course := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.ProgressActivity{
			Id:         uuid.New(),
			Email:      "a@x.io",
			CourseName: course,
			OccurredAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.ProgressActivity{
		Id: uuid.New(), Email: "other@x.io", CourseName: "x", OccurredAt: base,
	}))

	got, err := repo.FindAll(ctx,
		specification.ByEmail{Email: "a@x.io"},
		specification.OrderBy{Field: "occurred_at", Desc: true},
	)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].CourseName)
	assert.Equal(t, "first", got[2].CourseName)

	page, err := repo.FindAll(ctx,
		specification.ByEmail{Email: "a@x.io"},
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: 1, Offset: 1},
	)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].CourseName)
}

func TestCourseRepository_Filters(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.Course{
		{CourseId: 3, LearningPathId: 1, CourseName: "C3"},
		{CourseId: 1, LearningPathId: 2, CourseName: "C1"},
		{CourseId: 2, LearningPathId: 1, CourseName: "C2"},
	}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].CourseId, all[1].CourseId, all[2].CourseId})

	lp1, err := repo.FindAll(ctx, specification.ByLearningPathID{LearningPathID: 1})
	require.NoError(t, err)
	assert.Len(t, lp1, 2)

	none, err := repo.FindAll(ctx, specification.ByLearningPathIDs{})
	require.NoError(t, err)
	assert.Empty(t, none)

	some, err := repo.FindAll(ctx, specification.ByLearningPathIDs{LearningPathIDs: []int{2}})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "C1", some[0].CourseName)
}

func TestSkillKeywordRepository_KeepsLoadOrder(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSkillKeywordRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.SkillKeyword{
		{Id: "z", Keyword: "python"},
		{Id: "a", Keyword: "flutter"},
		{Id: "m", Keyword: "ai"},
	}))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "python", got[0].Keyword)
	assert.Equal(t, "flutter", got[1].Keyword)
	assert.Equal(t, "ai", got[2].Keyword)
}

func TestQuestionRepository_TechFilters(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTechQuestions(ctx, []*entity.TechQuestion{
		{TechCategory: "Web", Difficulty: "Dasar", QuestionDesc: "q1"},
		{TechCategory: "Web", Difficulty: "Mahir", QuestionDesc: "q2"},
		{TechCategory: "AI", Difficulty: "Dasar", QuestionDesc: "q3"},
	}))

	web, err := repo.FindTechQuestions(ctx, specification.ByTechCategory{Category: "Web"})
	require.NoError(t, err)
	assert.Len(t, web, 2)

	webBasic, err := repo.FindTechQuestions(ctx,
		specification.ByTechCategory{Category: "Web"},
		specification.ByDifficulty{Difficulty: "Dasar"},
	)
	require.NoError(t, err)
	require.Len(t, webBasic, 1)
	assert.Equal(t, "q1", webBasic[0].QuestionDesc)
}
