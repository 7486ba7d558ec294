package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (IAuthService, *recordingEventPublisher) {
	t.Helper()
	pub := &recordingEventPublisher{}
	svc := NewAuthService(newTestFactory(t), NewEventService(pub, logger.NewNopLogger()), testSecret, time.Hour)
	return svc, pub
}

func assertAppError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	appErr, ok := serverutils.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, pub := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.False(t, user.OnboardingCompleted)
	assert.NotNil(t, user.Preferences)
	assert.Equal(t, []string{events.TypeUserRegistered}, pub.types())

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, user.Id.String(), res.User.Id)

	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.Id.String(), claims["user_id"])
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "B", Email: "dup@example.com", Password: "secret2"})
	assertAppError(t, err, http.StatusBadRequest, "Email sudah terdaftar")
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "correct"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "missing@example.com", Password: "x"})
	assertAppError(t, err, http.StatusNotFound, "Email tidak ditemukan")

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assertAppError(t, err, http.StatusBadRequest, "Password salah")
}

func TestAuthService_PasswordlessLearnerCannotLogin(t *testing.T) {
	f := newTestFactory(t)
	seedLearner(t, f, "NoPass", "nopass@example.com", nil)
	svc := NewAuthService(f, NewEventService(nil, logger.NewNopLogger()), testSecret, time.Hour)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nopass@example.com", Password: "anything"})
	assertAppError(t, err, http.StatusBadRequest, "Password salah")
}
