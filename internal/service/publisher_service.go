package service

import (
	"context"
	"encoding/json"

	"learning-buddy-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishProgressUpdated(ctx context.Context, msg *dto.ProgressUpdatedMessage) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) PublishProgressUpdated(ctx context.Context, msg *dto.ProgressUpdatedMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	m := message.NewMessage(watermill.NewUUID(), payload)
	m.SetContext(ctx)
	return p.publisher.Publish(p.topicName, m)
}
