package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goroutine"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.notification.consumer_names")

	consumers := []struct {
		name    string
		topic   string
		handler messaging.Handler
	}{
		{name: event.UserActivationConsumerNotification, topic: event.UserActivationDestination, handler: mqHandler.UserActivationNotification},
		{name: event.MessageSentConsumerNotification, topic: event.MessageSentDestination, handler: mqHandler.MessageSentNotification},
	}

	for _, consumer := range consumers {
		if !slices.Contains(enabled, consumer.name) {
			continue
		}
		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
			return messenger.Subscribe(pCtx,
				consumer.topic,
				consumer.handler,
				messaging.WithConsumer(consumer.name),
				messaging.WithWorkers(10),
				messaging.WithMaxInFlight(10),
			)
		})
	}
}
