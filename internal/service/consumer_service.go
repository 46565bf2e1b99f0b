package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nec-chat-be/internal/dto"
	"nec-chat-be/internal/entity"
	"nec-chat-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains auth events from the in-process bus into the
// system_logs table so login and logout activity survives restarts.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.AuthEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal auth event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details := string(msg.Payload)
	entry := &entity.SystemLog{
		Id:        uuid.New(),
		Event:     payload.Event,
		Details:   &details,
		CreatedAt: time.Now(),
	}
	if payload.UserId != uuid.Nil {
		userId := payload.UserId
		entry.UserId = &userId
	}
	if payload.Username != "" {
		username := payload.Username
		entry.Username = &username
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to record auth event %s: %v", payload.Event, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
