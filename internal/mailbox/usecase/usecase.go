package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/clock"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// MessageSentEvent is published after a sent message is committed.
type MessageSentEvent struct {
	MessageID    int64
	SenderID     int64
	SenderName   string
	Subject      string
	RecipientIDs []int64
	SentAt       time.Time
}

// Notification is one outgoing email to a single recipient.
type Notification struct {
	// Key deduplicates repeated deliveries of the same (message, recipient) pair.
	Key         string
	FromName    string
	FromAddress string
	ToAddress   string
	Subject     string
	HTMLBody    string
}

// UnitOfWork groups message writes into one atomic change. Nothing is durable
// until Commit; Rollback after Commit is a no-op.
type UnitOfWork interface {
	CreateMessage(ctx context.Context, msg entity.Message) error
	UpdateMessage(ctx context.Context, msg entity.Message) error
	ReplaceRecipients(ctx context.Context, messageID int64, links []entity.RecipientLink) error
	DeleteMessage(ctx context.Context, id int64) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type repoDB interface {
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) ([]entity.User, error)
	GetGroupsByIDs(ctx context.Context, ids []int64) ([]entity.Group, error)
	GetGroupByID(ctx context.Context, id int64) (*entity.Group, error)
	GetGroupMembers(ctx context.Context, groupID int64) ([]entity.GroupMember, error)
	SearchUsers(ctx context.Context, term string, roles []string, limit int32) ([]entity.User, error)
	SearchGroups(ctx context.Context, term string, limit int32) ([]entity.GroupSummary, error)

	GetMessageByID(ctx context.Context, id int64) (*entity.Message, error)
	GetInbox(ctx context.Context, filter entity.MessageListFilter) ([]entity.MessageSummary, error)
	GetSent(ctx context.Context, filter entity.MessageListFilter) ([]entity.MessageSummary, error)
	GetDrafts(ctx context.Context, filter entity.MessageListFilter) ([]entity.MessageSummary, error)
	GetAllMessages(ctx context.Context, filter entity.MessageListFilter) ([]entity.MessageSummary, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)

	SetRecipientRead(ctx context.Context, messageID, userID int64, readAt *time.Time) error

	CreateGroup(ctx context.Context, group entity.Group) error
	ReplaceGroupMembers(ctx context.Context, groupID int64, memberIDs []int64) error
	DeleteGroup(ctx context.Context, id int64) error

	Begin(ctx context.Context) (UnitOfWork, error)
}

type repoMessaging interface {
	PublishMessageSent(ctx context.Context, msg MessageSentEvent) error
}

type repoCache interface {
	ReserveMessageID(ctx context.Context, key string, candidate int64) (int64, error)
}

type notifier interface {
	SendEmail(ctx context.Context, n Notification) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoCache     repoCache
	notifier      notifier
	resolver      *Resolver
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer

	sentCounter     metric.Int64Counter
	notifiedCounter metric.Int64Counter
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoCache     repoCache
	Notifier      notifier
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	meter := dep.Instrument.Meter("mailbox.usecase")

	sentCounter, err := meter.Int64Counter("mailbox.messages.sent", metric.WithDescription("Number of messages sent"))
	if err != nil {
		slog.Warn("failed to create sent counter", "error", err)
	}
	notifiedCounter, err := meter.Int64Counter("mailbox.notifications.sent", metric.WithDescription("Number of recipient emails sent"))
	if err != nil {
		slog.Warn("failed to create notification counter", "error", err)
	}

	return &Usecase{
		repoDB:          dep.RepoDB,
		repoMessaging:   dep.RepoMessaging,
		repoCache:       dep.RepoCache,
		notifier:        dep.Notifier,
		resolver:        NewResolver(dep.RepoDB),
		validator:       dep.Validator,
		cfg:             dep.Config,
		uid:             dep.UID,
		clock:           dep.Clock,
		ins:             dep.Instrument,
		enforcer:        dep.Enforcer,
		sentCounter:     sentCounter,
		notifiedCounter: notifiedCounter,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("mailbox.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}

// authenticatedAndAuthorized allows the call when any role carried by the
// token passes the casbin policy for obj/act.
func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	for _, role := range clm.Roles {
		ok, err := s.enforcer.Enforce(role, obj, act)
		if err != nil {
			slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.UserID, "role", role, "error", err)
			return nil, goerror.NewServer(err)
		}
		if ok {
			return clm, nil
		}
	}

	return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
}

func errMessageNotFound() error {
	return goerror.NewBusiness("message not found", goerror.CodeNotFound)
}

func pageOffset(page, size int32) int32 {
	return (max(page, 1) - 1) * size
}

func normalizeSize(size int32) int32 {
	if size <= 0 || size > 100 {
		return 20
	}
	return size
}
