package service

import (
	"context"
	"net/http"
	"testing"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) IUserService {
	t.Helper()
	return NewUserService(newTestFactory(t), NewEventService(nil, logger.NewNopLogger()))
}

func TestUserService_CreateAndGet(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Name:        "Citra",
		Email:       "citra@example.com",
		Preferences: map[string]interface{}{"preferred_learning_path_id": float64(3)},
	})
	require.NoError(t, err)

	byId, err := svc.GetById(ctx, created.Id.String())
	require.NoError(t, err)
	assert.Equal(t, "Citra", byId.Name)
	assert.Equal(t, float64(3), byId.Preferences["preferred_learning_path_id"])

	byEmail, err := svc.GetByEmail(ctx, "citra@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.Id, byEmail.Id)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Name: "Other", Email: "citra@example.com"})
	assertAppError(t, err, http.StatusBadRequest, "User with this email already exists")
}

func TestUserService_GetErrors(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.GetById(ctx, "not-a-uuid")
	assertAppError(t, err, http.StatusBadRequest, "Invalid user id")

	_, err = svc.GetById(ctx, uuid.NewString())
	assertAppError(t, err, http.StatusNotFound, "User not found")

	_, err = svc.GetByEmail(ctx, "ghost@example.com")
	assertAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserService_UpdateIsPartial(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Name:        "Dewi",
		Email:       "dewi@example.com",
		Preferences: map[string]interface{}{"interest": "AI"},
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(ctx, created.Id.String(), &dto.UpdateUserRequest{
		OnboardingCompleted: &done,
		CurrentLearningPath: intPtr(1),
	})
	require.NoError(t, err)
	assert.True(t, updated.OnboardingCompleted)
	require.NotNil(t, updated.CurrentLearningPath)
	assert.Equal(t, 1, *updated.CurrentLearningPath)
	assert.Equal(t, "AI", updated.Preferences["interest"], "untouched fields keep their value")

	reloaded, err := svc.GetById(ctx, created.Id.String())
	require.NoError(t, err)
	assert.True(t, reloaded.OnboardingCompleted)
	assert.Equal(t, "Dewi", reloaded.Name)
}

func TestUserService_UpdateErrors(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{Name: "E", Email: "e@example.com"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.Id.String(), &dto.UpdateUserRequest{})
	assertAppError(t, err, http.StatusBadRequest, "No fields to update")

	done := true
	_, err = svc.Update(ctx, uuid.NewString(), &dto.UpdateUserRequest{OnboardingCompleted: &done})
	assertAppError(t, err, http.StatusNotFound, "User not found")

	_, err = svc.Update(ctx, "bad", &dto.UpdateUserRequest{OnboardingCompleted: &done})
	assertAppError(t, err, http.StatusBadRequest, "Invalid user id")
}
