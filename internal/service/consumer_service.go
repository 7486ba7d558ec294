package service

import (
	"context"
	"encoding/json"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/internal/entity"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	eventService IEventService
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventService IEventService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		uowFactory:   uowFactory,
		eventService: eventService,
		logger:       logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProgressUpdatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("PROGRESS_CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	activity := &entity.ProgressActivity{
		Id:                 uuid.New(),
		Email:              payload.Email,
		CourseName:         payload.CourseName,
		ActiveTutorials:    payload.ActiveTutorials,
		CompletedTutorials: payload.CompletedTutorials,
		IsGraduated:        payload.IsGraduated,
		ExamScore:          payload.ExamScore,
		OccurredAt:         payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProgressActivityRepository().Create(ctx, activity); err != nil {
		cs.logger.Error("PROGRESS_CONSUMER", "Failed to record progress activity", map[string]interface{}{
			"email":       payload.Email,
			"course_name": payload.CourseName,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.eventService.ForwardProgressUpdated(ctx, &payload)

	cs.logger.Debug("PROGRESS_CONSUMER", "Progress activity recorded", map[string]interface{}{
		"activity_id": activity.Id,
		"email":       payload.Email,
	})
	msg.Ack()
}
