package service

import (
	"context"
	"time"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	eventService IEventService
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventService IEventService, jwtSecret string, tokenTTL time.Duration) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		eventService: eventService,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.LearnerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewBadRequest("Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	learner := newLearner(req.Name, req.Email, req.Preferences)
	learner.PasswordHash = &hashStr

	if err := uow.LearnerRepository().Create(ctx, learner); err != nil {
		return nil, err
	}

	s.eventService.PublishUserRegistered(ctx, learner, "register")

	return toUserResponse(learner), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	learner, err := uow.LearnerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, serverutils.NewNotFound("Email tidak ditemukan")
	}

	// Learners created through /users have no password and can never log in
	if learner.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*learner.PasswordHash), []byte(req.Password)) != nil {
		return nil, serverutils.NewBadRequest("Password salah")
	}

	token, err := serverutils.GenerateToken(s.jwtSecret, learner.Id.String(), s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.AuthUserInfo{
			Id:    learner.Id.String(),
			Name:  learner.Name,
			Email: learner.Email,
		},
	}, nil
}

func newLearner(name, email string, preferences map[string]interface{}) *entity.Learner {
	if preferences == nil {
		preferences = map[string]interface{}{}
	}
	now := time.Now()
	return &entity.Learner{
		Id:                  uuid.New(),
		Name:                name,
		Email:               email,
		OnboardingCompleted: false,
		Preferences:         preferences,
		SkillAssessment:     map[string]interface{}{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
