package mailbox

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/inbound"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/outbound/cache"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/outbound/db"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/outbound/email"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/outbound/mq"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/clock"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/idempotency"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/mail"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Enforcer    *casbin.Enforcer           `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	notifier := email.New(dep.Mail, dep.Idempotency, dep.Instrument, email.Config{
		MaxRetries: dep.Config.GetUint64("modules.mailbox.notify.max_retries"),
		RetryBase:  dep.Config.GetMillisecond("modules.mailbox.notify.retry_base_ms"),
		StateTTL:   dep.Config.GetHour("modules.mailbox.notify.state_ttl_hours"),
	})

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		RepoCache:     cache.NewCache(dep.CacheConn, dep.Instrument, dep.Config.GetHour("modules.mailbox.send_key_ttl_hours")),
		Notifier:      notifier,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Enforcer:      dep.Enforcer,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
