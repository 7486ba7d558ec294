package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_UpdateUpsertsAndPublishes(t *testing.T) {
	f := newTestFactory(t)
	pub := &recordingPublisherService{}
	svc := NewProgressService(f, pub, logger.NewNopLogger())
	ctx := context.Background()

	first, err := svc.UpdateProgress(ctx, &dto.UpdateProgressRequest{
		Email:           "a@x.io",
		CourseName:      "Belajar Dasar Python",
		ActiveTutorials: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, first.ActiveTutorials)
	assert.Equal(t, 0, first.CompletedTutorials)

	second, err := svc.UpdateProgress(ctx, &dto.UpdateProgressRequest{
		Email:              "a@x.io",
		CourseName:         "Belajar Dasar Python",
		CompletedTutorials: intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, second.ActiveTutorials, "fields not in the request are kept")
	assert.Equal(t, 7, second.CompletedTutorials)

	rows, err := f.NewUnitOfWork(ctx).StudentProgressRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.Len(t, pub.messages, 2)
	assert.Nil(t, pub.messages[1].ActiveTutorials)
	require.NotNil(t, pub.messages[1].CompletedTutorials)
	assert.Equal(t, 7, *pub.messages[1].CompletedTutorials)
}

func TestProgressService_PublishFailureDoesNotFailUpdate(t *testing.T) {
	pub := &recordingPublisherService{err: errors.New("bus closed")}
	svc := NewProgressService(newTestFactory(t), pub, logger.NewNopLogger())

	_, err := svc.UpdateProgress(context.Background(), &dto.UpdateProgressRequest{
		Email: "a@x.io", CourseName: "C", IsGraduated: intPtr(1),
	})
	assert.NoError(t, err)
}

func TestProgressService_GetProgress(t *testing.T) {
	f := newTestFactory(t)
	learner := seedLearner(t, f, "Eka", "eka@x.io", nil)
	seedProgress(t, f,
		&entity.StudentProgress{Email: "eka@x.io", CourseName: "C1", ActiveTutorials: 2},
		&entity.StudentProgress{Email: "eka@x.io", CourseName: "C2", IsGraduated: 1},
		&entity.StudentProgress{Email: "other@x.io", CourseName: "C3"},
	)
	svc := NewProgressService(f, &recordingPublisherService{}, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.GetProgress(ctx, &dto.ProgressQuery{})
	assertAppError(t, err, http.StatusBadRequest, "user_id or email required")

	byId, err := svc.GetProgress(ctx, &dto.ProgressQuery{UserId: learner.Id.String()})
	require.NoError(t, err)
	require.NotNil(t, byId.User)
	assert.Equal(t, "Eka", byId.User.Name)
	assert.Len(t, byId.Progress, 2)

	byEmail, err := svc.GetProgress(ctx, &dto.ProgressQuery{Email: "other@x.io"})
	require.NoError(t, err)
	assert.Nil(t, byEmail.User, "progress without a learner row still resolves")
	assert.Len(t, byEmail.Progress, 1)

	unknown, err := svc.GetProgress(ctx, &dto.ProgressQuery{UserId: uuid.NewString()})
	require.NoError(t, err)
	assert.Nil(t, unknown.User)
	assert.Empty(t, unknown.Progress)
}

func TestProgressService_GetStats(t *testing.T) {
	f := newTestFactory(t)
	seedProgress(t, f,
		&entity.StudentProgress{Email: "s@x.io", CourseName: "C1", ActiveTutorials: 2, CompletedTutorials: 8, IsGraduated: 1},
		&entity.StudentProgress{Email: "s@x.io", CourseName: "C2", ActiveTutorials: 5, CompletedTutorials: 1},
		&entity.StudentProgress{Email: "s@x.io", CourseName: "C3", ActiveTutorials: 4},
	)
	svc := NewProgressService(f, &recordingPublisherService{}, logger.NewNopLogger())
	ctx := context.Background()

	stats, err := svc.GetStats(ctx, "s@x.io")
	require.NoError(t, err)
	assert.Equal(t, dto.ProgressStatsResponse{
		TotalCourses:       3,
		CompletedCourses:   1,
		InProgressCourses:  2,
		TotalTutorials:     20,
		CompletedTutorials: 9,
		CompletionRate:     33.33,
	}, *stats)

	empty, err := svc.GetStats(ctx, "nobody@x.io")
	require.NoError(t, err)
	assert.Equal(t, dto.ProgressStatsResponse{}, *empty)

	_, err = svc.GetStats(ctx, "")
	assertAppError(t, err, http.StatusBadRequest, "email required")
}

func TestProgressService_GetActivityPaged(t *testing.T) {
	f := newTestFactory(t)
	svc := NewProgressService(f, &recordingPublisherService{}, logger.NewNopLogger())
	ctx := context.Background()

	repo := f.NewUnitOfWork(ctx).ProgressActivityRepository()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.ProgressActivity{
			Id:         uuid.New(),
			Email:      "a@x.io",
			CourseName: fmt.Sprintf("C%d", i),
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := svc.GetActivity(ctx, &dto.ActivityQuery{Email: "a@x.io"})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	page, err := svc.GetActivity(ctx, &dto.ActivityQuery{Email: "a@x.io", Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "C3", page[0].CourseName)
	assert.Equal(t, "C2", page[1].CourseName)

	_, err = svc.GetActivity(ctx, &dto.ActivityQuery{})
	assertAppError(t, err, http.StatusBadRequest, "email required")

	_, err = svc.GetActivity(ctx, &dto.ActivityQuery{Email: "a@x.io", Limit: -1})
	assertAppError(t, err, http.StatusBadRequest, "limit and offset must not be negative")
}
