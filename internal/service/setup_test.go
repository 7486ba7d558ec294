package service

import (
	"context"
	"sync"
	"testing"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/internal/testutil"
	"learning-buddy-be/pkg/events"

	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(testutil.NewSQLiteDB(t))
}

type recordingPublisherService struct {
	mu       sync.Mutex
	messages []*dto.ProgressUpdatedMessage
	err      error
}

func (p *recordingPublisherService) PublishProgressUpdated(ctx context.Context, msg *dto.ProgressUpdatedMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

type recordingEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingEventPublisher) Publish(ctx context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

func seedLearner(t *testing.T, f unitofwork.RepositoryFactory, name, email string, prefs map[string]interface{}) *entity.Learner {
	t.Helper()
	ctx := context.Background()
	learner := newLearner(name, email, prefs)
	require.NoError(t, f.NewUnitOfWork(ctx).LearnerRepository().Create(ctx, learner))
	return learner
}

func seedProgress(t *testing.T, f unitofwork.RepositoryFactory, rows ...*entity.StudentProgress) {
	t.Helper()
	ctx := context.Background()
	repo := f.NewUnitOfWork(ctx).StudentProgressRepository()
	for _, r := range rows {
		require.NoError(t, repo.Save(ctx, r))
	}
}

func seedCatalog(t *testing.T, f unitofwork.RepositoryFactory) {
	t.Helper()
	ctx := context.Background()
	uow := f.NewUnitOfWork(ctx)
	require.NoError(t, uow.LearningPathRepository().ReplaceAll(ctx, []*entity.LearningPath{
		{LearningPathId: 1, LearningPathName: "AI Engineer"},
		{LearningPathId: 3, LearningPathName: "Back-End Developer"},
		{LearningPathId: 7, LearningPathName: "Front-End Web Developer"},
	}))
	require.NoError(t, uow.CourseRepository().ReplaceAll(ctx, []*entity.Course{
		{CourseId: 1, LearningPathId: 1, CourseName: "Belajar Dasar Python", CourseLevelStr: entity.CourseLevelDasar, HoursToStudy: 20},
		{CourseId: 2, LearningPathId: 1, CourseName: "Machine Learning dengan Python", CourseLevelStr: entity.CourseLevelMahir, HoursToStudy: 60},
		{CourseId: 3, LearningPathId: 3, CourseName: "Belajar Back-End JavaScript", CourseLevelStr: entity.CourseLevelPemula, HoursToStudy: 45},
		{CourseId: 4, LearningPathId: 7, CourseName: "Belajar Dasar Pemrograman Web", CourseLevelStr: entity.CourseLevelDasar, HoursToStudy: 46},
	}))
	require.NoError(t, uow.TutorialRepository().ReplaceAll(ctx, []*entity.Tutorial{
		{TutorialId: 10, CourseId: 1, TutorialTitle: "Pengenalan Python"},
		{TutorialId: 11, CourseId: 1, TutorialTitle: "Tipe Data"},
		{TutorialId: 20, CourseId: 2, TutorialTitle: "Regresi"},
	}))
	require.NoError(t, uow.CourseLevelRepository().ReplaceAll(ctx, []*entity.CourseLevel{
		{Id: 1, CourseLevel: entity.CourseLevelDasar},
		{Id: 2, CourseLevel: entity.CourseLevelPemula},
	}))
	require.NoError(t, uow.SkillKeywordRepository().ReplaceAll(ctx, []*entity.SkillKeyword{
		{Id: "1", Keyword: "python"},
		{Id: "2", Keyword: "javascript"},
		{Id: "3", Keyword: "web"},
	}))
}

func intPtr(v int) *int { return &v }
