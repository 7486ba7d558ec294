package service

import (
	"context"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetById(ctx context.Context, id string) (*dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory   unitofwork.RepositoryFactory
	eventService IEventService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, eventService IEventService) IUserService {
	return &userService{
		uowFactory:   uowFactory,
		eventService: eventService,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.LearnerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewBadRequest("User with this email already exists")
	}

	learner := newLearner(req.Name, req.Email, req.Preferences)
	if err := uow.LearnerRepository().Create(ctx, learner); err != nil {
		return nil, err
	}

	s.eventService.PublishUserRegistered(ctx, learner, "users")

	return toUserResponse(learner), nil
}

func (s *userService) GetById(ctx context.Context, id string) (*dto.UserResponse, error) {
	learnerId, err := parseUserId(id)
	if err != nil {
		return nil, err
	}

	learner, err := s.uowFactory.NewUnitOfWork(ctx).LearnerRepository().FindOne(ctx, specification.ByID{ID: learnerId})
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, serverutils.NewNotFound("User not found")
	}
	return toUserResponse(learner), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	learner, err := s.uowFactory.NewUnitOfWork(ctx).LearnerRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, serverutils.NewNotFound("User not found")
	}
	return toUserResponse(learner), nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	learnerId, err := parseUserId(id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, serverutils.NewBadRequest("No fields to update")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	learner, err := uow.LearnerRepository().FindOne(ctx, specification.ByID{ID: learnerId})
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, serverutils.NewNotFound("User not found")
	}

	if req.OnboardingCompleted != nil {
		learner.OnboardingCompleted = *req.OnboardingCompleted
	}
	if req.Preferences != nil {
		learner.Preferences = *req.Preferences
	}
	if req.SkillAssessment != nil {
		learner.SkillAssessment = *req.SkillAssessment
	}
	if req.CurrentLearningPath != nil {
		learner.CurrentLearningPath = req.CurrentLearningPath
	}

	if err := uow.LearnerRepository().Update(ctx, learner); err != nil {
		return nil, err
	}
	return toUserResponse(learner), nil
}

func parseUserId(id string) (uuid.UUID, error) {
	learnerId, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, serverutils.NewBadRequest("Invalid user id")
	}
	return learnerId, nil
}

// findLearner resolves a learner by user_id when given, otherwise by email.
func findLearner(ctx context.Context, uow unitofwork.UnitOfWork, userId, email string) (*entity.Learner, error) {
	if userId != "" {
		learnerId, err := parseUserId(userId)
		if err != nil {
			return nil, err
		}
		return uow.LearnerRepository().FindOne(ctx, specification.ByID{ID: learnerId})
	}
	return uow.LearnerRepository().FindOne(ctx, specification.ByEmail{Email: email})
}

func toUserResponse(l *entity.Learner) *dto.UserResponse {
	return &dto.UserResponse{
		Id:                  l.Id,
		Name:                l.Name,
		Email:               l.Email,
		OnboardingCompleted: l.OnboardingCompleted,
		Preferences:         l.Preferences,
		SkillAssessment:     l.SkillAssessment,
		CurrentLearningPath: l.CurrentLearningPath,
		CreatedAt:           l.CreatedAt,
	}
}
