package service

import (
	"context"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/pkg/events"
)

// IEventService publishes domain events off the process. Publishing is best
// effort: failures are logged and never reach the caller.
type IEventService interface {
	PublishUserRegistered(ctx context.Context, learner *entity.Learner, source string)
	ForwardProgressUpdated(ctx context.Context, msg *dto.ProgressUpdatedMessage)
}

type eventService struct {
	publisher events.Publisher
	logger    logger.ILogger
}

// NewEventService accepts a nil publisher; every call is then a no-op.
func NewEventService(publisher events.Publisher, logger logger.ILogger) IEventService {
	return &eventService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *eventService) PublishUserRegistered(ctx context.Context, learner *entity.Learner, source string) {
	s.publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"user_id": learner.Id,
		"email":   learner.Email,
		"name":    learner.Name,
		"source":  source,
	}))
}

func (s *eventService) ForwardProgressUpdated(ctx context.Context, msg *dto.ProgressUpdatedMessage) {
	s.publish(ctx, events.New(events.TypeProgressUpdated, map[string]interface{}{
		"email":               msg.Email,
		"course_name":         msg.CourseName,
		"active_tutorials":    msg.ActiveTutorials,
		"completed_tutorials": msg.CompletedTutorials,
		"is_graduated":        msg.IsGraduated,
		"exam_score":          msg.ExamScore,
		"occurred_at":         msg.OccurredAt,
	}))
}

func (s *eventService) publish(ctx context.Context, evt events.BaseEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("EVENTS", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
