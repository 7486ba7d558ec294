package service

import (
	"context"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/pkg/recommender"
)

type IRecommendationService interface {
	GetRecommendations(ctx context.Context, query *dto.RecommendationQuery) (*dto.RecommendationResponse, error)
	GetOnboardingRecommendations(ctx context.Context, req *dto.OnboardingRequest) (*dto.OnboardingResponse, error)
	ReloadKeywords(ctx context.Context) (*dto.KeywordReloadResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *recommender.Engine
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, engine *recommender.Engine) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, query *dto.RecommendationQuery) (*dto.RecommendationResponse, error) {
	if query.UserId == "" && query.Email == "" {
		return nil, serverutils.NewBadRequest("user_id or email required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	learner, err := findLearner(ctx, uow, query.UserId, query.Email)
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, serverutils.NewNotFound("User not found")
	}

	progress, err := uow.StudentProgressRepository().FindAll(ctx, specification.ByEmail{Email: learner.Email})
	if err != nil {
		return nil, err
	}

	return s.engine.GetRecommendations(ctx, learner.Email, progress, recommender.ParsePreferences(learner.Preferences))
}

func (s *recommendationService) GetOnboardingRecommendations(ctx context.Context, req *dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	return s.engine.GetOnboardingRecommendations(ctx, req.InterestAnswers, req.TechAnswers)
}

func (s *recommendationService) ReloadKeywords(ctx context.Context) (*dto.KeywordReloadResponse, error) {
	n, err := s.engine.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.KeywordReloadResponse{Keywords: n}, nil
}
