package service

import (
	"context"
	"encoding/json"

	"academy-chatbot-be/internal/dto"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/pkg/mailer"
	"academy-chatbot-be/pkg/events"
	"academy-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService drains the internal lead topic: every captured lead is
// emailed to the staff inbox and forwarded to NATS for external consumers.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	emailService  mailer.IEmailService
	natsPublisher *nats.Publisher
	staffEmail    string
	logger        logger.ILogger
}

// NewNotifierService wires the consumer. natsPublisher may be nil when the
// bus is unreachable; email delivery still works without it.
func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	natsPublisher *nats.Publisher,
	staffEmail string,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:        pubSub,
		topicName:     topicName,
		emailService:  emailService,
		natsPublisher: natsPublisher,
		staffEmail:    staffEmail,
		logger:        log,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ns *notifierService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.LeadCapturedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ns.logger.Error("NotifierService", "Failed to unmarshal lead message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever otherwise
		return
	}

	ns.logger.Info("NotifierService", "Processing lead notification", map[string]interface{}{
		"lead_id": payload.LeadId,
	})

	if err := ns.emailService.SendLeadNotification(
		ns.staffEmail, payload.FullName, payload.Phone, payload.Email, payload.Message,
	); err != nil {
		ns.logger.Error("NotifierService", "Failed to send lead email", map[string]interface{}{
			"lead_id": payload.LeadId, "error": err.Error(),
		})
		msg.Nack()
		return
	}

	if ns.natsPublisher != nil {
		event := events.NewLeadCapturedEvent(
			payload.LeadId, payload.FullName, payload.Phone,
			payload.Email, payload.Message, payload.Source,
		)
		if err := ns.natsPublisher.Publish(ctx, event); err != nil {
			// External forwarding is best effort, the email already went out.
			ns.logger.Warn("NotifierService", "Failed to forward lead to NATS", map[string]interface{}{
				"lead_id": payload.LeadId, "error": err.Error(),
			})
		}
	}

	msg.Ack()
}
