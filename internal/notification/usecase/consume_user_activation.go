package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/mail"
	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

type ConsumeUserActivationInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	FullName string `validate:"required"`
	Token    string `validate:"required"`
}

// ConsumeUserActivation emails the activation link. Delivery is recorded in a
// delivery log; a failed send is marked for retry instead of failing the message.
func (s *Usecase) ConsumeUserActivation(ctx context.Context, in ConsumeUserActivationInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserActivation")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["full_name"] = in.FullName
	data["activation_url"] = s.cfg.GetString("app.web") + "/activate?token=" + url.QueryEscape(in.Token)
	data["expires_in_hours"] = s.cfg.GetInt("modules.identity.activation_ttl_hours")

	body, err := s.renderTemplate(entity.TriggerKeyUserActivation, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render email body", "user_id", in.UserID, "error", err)
		return nil
	}

	n := entity.CreateNotification{
		ID:         s.uid.Generate(),
		UserID:     in.UserID,
		TriggerKey: entity.TriggerKeyUserActivation,
		Data:       valueobject.JSONMap{"email": in.Email, "full_name": in.FullName},
		Metadata:   valueobject.JSONMap{},
		CreatedAt:  s.clock.Now(),
	}
	dl := entity.CreateDeliveryLog{
		ID:             s.uid.Generate(),
		NotificationID: n.ID,
		Channel:        entity.ChannelEmail,
		Status:         entity.DeliveryStatusQueued,
	}

	if err := s.repoDB.CreateNotificationWithDeliveryLog(ctx, n, dl); err != nil {
		slog.ErrorContext(ctx, "failed to repo create email notification+log", "user_id", in.UserID, "error", err)
		return err
	}

	mailErr := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "Activate your " + s.cfg.GetString("app.name") + " account",
		HTMLBody: body,
	})
	if mailErr == nil {
		if err := s.repoDB.UpdateDeliveryLogStatus(ctx, entity.UpdateDeliveryLog{
			ID:               dl.ID,
			Status:           entity.DeliveryStatusSent,
			ProviderResponse: valueobject.JSONMap{},
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo update delivery log status sent", "log_id", dl.ID, "error", err)
		}
		return nil
	}

	slog.ErrorContext(ctx, "failed to send activation email", "log_id", dl.ID, "user_id", in.UserID, "error", mailErr)

	nextRetry := s.clock.Now().Add(s.cfg.GetMinute("modules.notification.email_retry_after_minutes"))
	if err := s.repoDB.UpdateDeliveryLogStatus(ctx, entity.UpdateDeliveryLog{
		ID:               dl.ID,
		Status:           entity.DeliveryStatusFailed,
		ProviderResponse: valueobject.JSONMap{"error": mailErr.Error()},
		NextRetryAt:      &nextRetry,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update delivery log status failed", "log_id", dl.ID, "error", err)
	}

	return nil
}
