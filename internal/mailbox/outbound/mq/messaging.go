package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishMessageSent(ctx context.Context, msg usecase.MessageSentEvent) error {
	ctx, span := m.ins.Tracer("mailbox.outbound.mq").Start(ctx, "PublishMessageSent")
	defer span.End()

	body, err := json.Marshal(event.MessageSentMessage{
		MessageID:    msg.MessageID,
		SenderID:     msg.SenderID,
		SenderName:   msg.SenderName,
		Subject:      msg.Subject,
		RecipientIDs: msg.RecipientIDs,
		SentAt:       msg.SentAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, event.MessageSentDestination, &messaging.Message{
		ID:      strconv.FormatInt(msg.MessageID, 10),
		Body:    body,
		Headers: map[string]string{messaging.HeaderCorrelationID: instrument.GetCorrelationID(ctx)},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
