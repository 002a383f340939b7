package inbound

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/notification/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/shared/event"
	"go.opentelemetry.io/otel/trace"
)

type MQHandler struct {
	uc   ucConsumer
	uuid uid.StringID
	ins  instrument.Instrumentation
}

// begin restores the producer's correlation id (or mints one) and opens a span.
func (h *MQHandler) begin(ctx context.Context, msg *messaging.Message, name string) (context.Context, trace.Span) {
	cID := msg.Header(messaging.HeaderCorrelationID)
	if cID == "" {
		cID = h.uuid.Generate()
	}
	ctx = instrument.SetCorrelationID(ctx, cID)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, name)
	slog.InfoContext(ctx, "consume: "+name, "topic", msg.Topic, "attempt", msg.Attempt)
	return ctx, span
}

// decode reports false for payloads that can never succeed; those are acked
// and dropped instead of being redelivered.
func decode[T any](ctx context.Context, msg *messaging.Message) (T, bool) {
	var v T
	if err := json.Unmarshal(msg.Body, &v); err != nil {
		slog.ErrorContext(ctx, "dropping undecodable message", "topic", msg.Topic, "msg_body", string(msg.Body), "error", err)
		return v, false
	}
	return v, true
}

func (h *MQHandler) UserActivationNotification(ctx context.Context, msg *messaging.Message) error {
	ctx, span := h.begin(ctx, msg, "UserActivationNotification")
	defer span.End()

	payload, ok := decode[event.UserActivationMessage](ctx, msg)
	if !ok {
		return nil
	}

	err := h.uc.ConsumeUserActivation(ctx, usecase.ConsumeUserActivationInput{
		UserID:   payload.UserID,
		Email:    payload.Email,
		FullName: payload.FullName,
		Token:    payload.ChallengeToken,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to consume user activation", "user_id", payload.UserID, "error", err)
	}
	return err
}

func (h *MQHandler) MessageSentNotification(ctx context.Context, msg *messaging.Message) error {
	ctx, span := h.begin(ctx, msg, "MessageSentNotification")
	defer span.End()

	payload, ok := decode[event.MessageSentMessage](ctx, msg)
	if !ok {
		return nil
	}

	err := h.uc.ConsumeMessageSent(ctx, usecase.ConsumeMessageSentInput{
		MessageID:    payload.MessageID,
		SenderID:     payload.SenderID,
		SenderName:   payload.SenderName,
		Subject:      payload.Subject,
		RecipientIDs: payload.RecipientIDs,
		SentAt:       time.Unix(payload.SentAt, 0).UTC(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to consume message sent", "message_id", payload.MessageID, "error", err)
	}
	return err
}
