package service

import (
	"context"
	"encoding/json"

	"learnz-tutor-be/internal/dto"
	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/pkg/logger"
	"learnz-tutor-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns published tutor-turn events into usage-log rows.
// It runs off the request path, so a failure here never affects a reply.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
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
	var payload dto.PublishTutorTurnMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.log.Error("usage-consumer", "Failed to unmarshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	usageLog := entity.UsageLog{
		Id:              uuid.New(),
		Scope:           payload.Scope,
		UserId:          payload.UserId,
		ClassroomItemId: payload.ClassroomItemId,
		QuizGenerated:   payload.QuizGenerated,
		AudioGenerated:  payload.AudioGenerated,
		ReplyChars:      payload.ReplyChars,
	}
	if err := uow.UsageLogRepository().Create(ctx, &usageLog); err != nil {
		cs.log.Error("usage-consumer", "Failed to persist usage log", map[string]interface{}{
			"error": err.Error(),
			"scope": payload.Scope,
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
