package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
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

func (m *Messaging) PublishUserActivation(ctx context.Context, msg usecase.UserActivationEvent) (err error) {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishUserActivation")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(event.UserActivationMessage{
		UserID:         msg.UserID,
		Email:          msg.Email,
		FullName:       msg.FullName,
		ChallengeToken: msg.ChallengeToken,
	})
	if err != nil {
		return err
	}

	return m.client.Publish(ctx, event.UserActivationDestination, &messaging.Message{
		ID:      strconv.FormatInt(msg.UserID, 10),
		Body:    body,
		Headers: map[string]string{messaging.HeaderCorrelationID: instrument.GetCorrelationID(ctx)},
	})
}
