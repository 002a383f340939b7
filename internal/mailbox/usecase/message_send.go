package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type RecipientInput struct {
	ID   int64  `validate:"required,gt=0"`
	Type string `validate:"required,oneof=user group"`
}

type SendMessageInput struct {
	Subject        string           `validate:"required,max=255"`
	Body           string           `validate:"max=100000"`
	Recipients     []RecipientInput `validate:"required,min=1,max=500,dive"`
	IdempotencyKey string           `validate:"omitempty,max=128,token"` // optional, from Idempotency-Key header
}

type SendMessageOutput struct {
	Message entity.Message
}

// outgoing is a message about to leave the composer: everything the delivery
// pipeline needs, independent of whether it came from a draft.
type outgoing struct {
	id      int64
	subject string
	body    string
	refs    []entity.RecipientRef
	token   string
}

// SendMessage resolves the recipients, emails each of them and only then
// persists the message. Any failed email aborts the send with nothing stored.
func (s *Usecase) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	ctx, span := s.startSpan(ctx, "SendMessage")
	defer span.End()

	in.Subject = strings.TrimSpace(in.Subject)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	sender, err := s.activeSender(ctx, clm.UserID)
	if err != nil {
		return nil, err
	}

	out := outgoing{
		id:      s.uid.Generate(),
		subject: in.Subject,
		body:    in.Body,
		refs:    toRecipientRefs(in.Recipients),
		token:   in.IdempotencyKey,
	}
	if out.token == "" {
		out.token = fmt.Sprint(out.id)
	} else {
		prev, err := s.claimSendKey(ctx, sender.ID, &out)
		if err != nil {
			return nil, err
		}
		if prev != nil {
			slog.InfoContext(ctx, "send already committed for idempotency key", "message_id", prev.ID, "sender_id", sender.ID)
			return &SendMessageOutput{Message: *prev}, nil
		}
	}

	recipientIDs, err := s.deliver(ctx, sender, out)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	msg := entity.Message{
		ID:         out.id,
		Subject:    out.subject,
		Body:       out.body,
		SenderID:   sender.ID,
		SenderName: sender.FullName,
		IsDraft:    false,
		SentAt:     &now,
		CreatedAt:  now,
		UpdatedAt:  now,
		Recipients: userLinks(recipientIDs),
	}

	if err := s.persist(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if err := uow.CreateMessage(ctx, msg); err != nil {
			return err
		}
		return uow.ReplaceRecipients(ctx, msg.ID, msg.Recipients)
	}); err != nil {
		// A concurrent retry with the same key may have committed the reserved id first.
		if in.IdempotencyKey != "" {
			if prev, lookupErr := s.sentBy(ctx, sender.ID, msg.ID); lookupErr == nil && prev != nil {
				return &SendMessageOutput{Message: *prev}, nil
			}
		}
		slog.ErrorContext(ctx, "failed to repo persist sent message", "message_id", msg.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.afterSent(ctx, sender, msg, recipientIDs)

	return &SendMessageOutput{Message: msg}, nil
}

// claimSendKey binds the caller's Idempotency-Key to out.id, or moves out.id to
// the id an earlier attempt reserved. It returns the stored message when that
// attempt already committed.
func (s *Usecase) claimSendKey(ctx context.Context, senderID int64, out *outgoing) (*entity.Message, error) {
	id, err := s.repoCache.ReserveMessageID(ctx, fmt.Sprintf("%d:%s", senderID, out.token), out.id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reserve message id", "sender_id", senderID, "error", err)
		return nil, goerror.NewServer(err)
	}
	out.id = id

	return s.sentBy(ctx, senderID, id)
}

// sentBy returns message id when senderID already sent it, or nil when no
// such row is stored yet.
func (s *Usecase) sentBy(ctx context.Context, senderID, id int64) (*entity.Message, error) {
	msg, err := s.repoDB.GetMessageByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get message", "message_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	if msg.IsDraft || msg.SenderID != senderID {
		slog.WarnContext(ctx, "reserved message id belongs to another message", "message_id", id, "sender_id", senderID)
		return nil, goerror.NewBusiness("idempotency key already used", goerror.CodeConflict)
	}

	return msg, nil
}

// activeSender loads the caller from the directory and rejects unknown or
// inactive accounts.
func (s *Usecase) activeSender(ctx context.Context, userID int64) (*entity.User, error) {
	sender, err := s.repoDB.GetUserByID(ctx, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "sender account not found", "user_id", userID)
		return nil, goerror.NewBusiness("sender account not found", goerror.CodeForbidden)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sender", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !sender.IsActive {
		slog.WarnContext(ctx, "sender account is not active", "user_id", userID)
		return nil, goerror.NewBusiness("sender account is not active", goerror.CodeForbidden)
	}

	return sender, nil
}

// deliver resolves the refs and emails every recipient in resolution order,
// stopping at the first failure. It returns the resolved user ids.
func (s *Usecase) deliver(ctx context.Context, sender *entity.User, out outgoing) ([]int64, error) {
	recipientIDs, err := s.resolver.Resolve(ctx, out.refs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve recipients", "message_id", out.id, "error", err)
		return nil, goerror.NewServer(err)
	}

	if len(recipientIDs) == 0 {
		slog.WarnContext(ctx, "message resolved to no recipients", "message_id", out.id)
		return recipientIDs, nil
	}

	users, err := s.repoDB.GetUsersByIDs(ctx, recipientIDs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get recipients", "message_id", out.id, "error", err)
		return nil, goerror.NewServer(err)
	}
	byID := lo.KeyBy(users, func(u entity.User) int64 { return u.ID })

	for _, id := range recipientIDs {
		user, ok := byID[id]
		if !ok || strings.TrimSpace(user.Email) == "" {
			slog.InfoContext(ctx, "skip notifying recipient without email", "message_id", out.id, "recipient_id", id)
			continue
		}

		err := s.notifier.SendEmail(ctx, Notification{
			Key:         fmt.Sprintf("mailbox:notify:%d:%s:%d", sender.ID, out.token, id),
			FromName:    sender.FullName,
			FromAddress: sender.Email,
			ToAddress:   user.Email,
			Subject:     out.subject,
			HTMLBody:    out.body,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to notify recipient", "message_id", out.id, "recipient_id", id, "error", err)
			return nil, goerror.NewServer(err)
		}

		if s.notifiedCounter != nil {
			s.notifiedCounter.Add(ctx, 1)
		}
	}

	return recipientIDs, nil
}

// persist runs fn inside a unit of work and commits it.
func (s *Usecase) persist(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error {
	uow, err := s.repoDB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rErr := uow.Rollback(ctx); rErr != nil {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if err := fn(ctx, uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (s *Usecase) afterSent(ctx context.Context, sender *entity.User, msg entity.Message, recipientIDs []int64) {
	if s.sentCounter != nil {
		s.sentCounter.Add(ctx, 1, metric.WithAttributes(attribute.Bool("has_recipients", len(recipientIDs) > 0)))
	}

	if err := s.repoMessaging.PublishMessageSent(ctx, MessageSentEvent{
		MessageID:    msg.ID,
		SenderID:     sender.ID,
		SenderName:   sender.FullName,
		Subject:      msg.Subject,
		RecipientIDs: recipientIDs,
		SentAt:       *msg.SentAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish message sent", "message_id", msg.ID, "error", err)
	}
}

func toRecipientRefs(in []RecipientInput) []entity.RecipientRef {
	refs := make([]entity.RecipientRef, 0, len(in))
	for _, r := range in {
		refs = append(refs, entity.RecipientRef{Kind: entity.RecipientKindFromString(r.Type), ID: r.ID})
	}
	return entity.UniqueRefs(refs)
}

func userLinks(ids []int64) []entity.RecipientLink {
	links := make([]entity.RecipientLink, 0, len(ids))
	for _, id := range ids {
		links = append(links, entity.RecipientLink{RecipientID: id, RecipientKind: entity.RecipientKindUser})
	}
	return links
}
