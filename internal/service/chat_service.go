package service

import (
	"context"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/repository/specification"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/pkg/chat"
	"learning-buddy-be/pkg/recommender"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *recommender.Engine
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, engine *recommender.Engine) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	intent := chat.AnalyzeIntent(req.Message)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	learner, err := uow.LearnerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if learner == nil {
		return &dto.ChatResponse{Response: chat.OnboardingRequiredReply, Type: chat.TypeError}, nil
	}

	progress, err := uow.StudentProgressRepository().FindAll(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	var text string
	switch intent {
	case chat.IntentProgress:
		text = chat.RenderProgress(computeStats(progress))
	case chat.IntentSkill:
		text = chat.RenderSkills(s.engine.ExtractCompletedSkills(progress), s.engine.IdentifyWeakSkills(progress))
	default:
		recs, err := s.engine.GetRecommendations(ctx, learner.Email, progress, recommender.ParsePreferences(learner.Preferences))
		if err != nil {
			return nil, err
		}
		text = chat.RenderRecommendation(recs.RecommendedCourses)
	}

	return &dto.ChatResponse{Response: text, Type: string(intent)}, nil
}
