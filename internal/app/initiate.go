package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/nsqio/go-nsq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/shandysiswandi/gomailbox/internal/pkg/clock"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goroutine"
	"github.com/shandysiswandi/gomailbox/internal/pkg/hash"
	"github.com/shandysiswandi/gomailbox/internal/pkg/idempotency"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/mail"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/pkg/pgxcasbin"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
	"github.com/shandysiswandi/gomailbox/internal/pkg/storage"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const (
	pingTimeout            = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// initConfig reads CONFIG_PATH, falling back to ./config/config.yaml when
// LOCAL=true (after loading an optional .env) and /config/config.yaml otherwise.
func (a *App) initConfig() error {
	local := os.Getenv("LOCAL") == "true"
	if local {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	path := os.Getenv("CONFIG_PATH")
	switch {
	case path != "":
	case local:
		path = "./config/config.yaml"
	default:
		path = "/config/config.yaml"
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		return err
	}
	if tz := cfg.GetString("app.tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("app.tz: %w", err)
		}
		time.Local = loc
	}

	a.config = cfg
	a.onStop("config", func(context.Context) error { return cfg.Close() })
	return nil
}

func (a *App) initInstrument() error {
	ins, err := instrument.New(a.ctx, instrument.Config{
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		OTelEnabled:      a.config.GetBool("instrument.otel_enabled"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
	})
	if err != nil {
		return err
	}

	a.ins = ins
	a.onStop("instrument", ins.Shutdown)
	return nil
}

func (a *App) initLibraries() error {
	v, err := validator.NewV10Validator()
	if err != nil {
		return fmt.Errorf("validator: %w", err)
	}
	snow, err := uid.NewSnowflake()
	if err != nil {
		return fmt.Errorf("snowflake: %w", err)
	}

	a.validator = v
	a.uid = snow
	a.uuid = uid.NewUUID()
	a.oid = uid.NewToken(32)
	a.clock = clock.New()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))
	a.hmac = hash.NewHMACSHA256(a.config.GetString("hash.hmac.secret"))
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))
	return nil
}

func (a *App) initJWT() error {
	j, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte(a.config.GetString("jwt.secret")),
		Issuer:     a.config.GetString("jwt.issuer"),
		Audiences:  a.config.GetArray("jwt.audiences"),
		TTL:        a.config.GetMinute("jwt.ttl_minutes"),
		Leeway:     a.config.GetSecond("jwt.leeway_seconds"),
		Clock:      a.clock,
		UUID:       a.uuid,
	})
	if err != nil {
		return err
	}

	a.jwt = j
	return nil
}

func (a *App) initDatabase() error {
	pc, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	pc.MaxConns = a.config.GetInt32("database.pool.max_conns")
	pc.MinConns = a.config.GetInt32("database.pool.min_conns")
	pc.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	pc.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	pc.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, pc)
	if err != nil {
		return err
	}
	a.onStop("database", func(context.Context) error {
		pool.Close()
		return nil
	})

	ctx, cancel := context.WithTimeout(a.ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	a.dbConn = pool
	return nil
}

func (a *App) initCache() error {
	opt, err := redis.ParseURL(a.config.GetString("redis.url"))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	a.onStop("redis", func(context.Context) error { return rdb.Close() })

	ctx, cancel := context.WithTimeout(a.ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	a.cacheConn = rdb
	a.idemp = idempotency.New(rdb)
	return nil
}

func (a *App) initMail() error {
	from := a.config.GetString("mail.from")
	client, err := mail.NewFromDriver(a.ctx, a.config.GetString("mail.driver"), mail.FactoryOptions{
		SMTP: mail.SMTPConfig{
			Host:     a.config.GetString("mail.smtp.host"),
			Port:     a.config.GetInt("mail.smtp.port"),
			Username: a.config.GetString("mail.smtp.username"),
			Password: a.config.GetString("mail.smtp.password"),
			From:     from,
		},
		SES: mail.SESConfig{
			Region:           a.trimmed("mail.ses.region"),
			Endpoint:         a.trimmed("mail.ses.endpoint"),
			AccessKey:        a.trimmed("mail.ses.access_key"),
			SecretKey:        a.trimmed("mail.ses.secret_key"),
			SessionToken:     a.trimmed("mail.ses.session_token"),
			ConfigurationSet: a.trimmed("mail.ses.configuration_set"),
			From:             from,
		},
	})
	if err != nil {
		return err
	}

	a.mail = client
	a.onStop("mail", func(context.Context) error { return client.Close() })
	return nil
}

func (a *App) initStorage() error {
	driver := a.trimmed("storage.driver")

	var gcsClient *gcs.Client
	if driver == storage.DriverGCS {
		opts, err := a.googleOptions("storage.gcs", gcs.ScopeFullControl)
		if err != nil {
			return err
		}
		if a.config.GetBool("storage.gcs.without_auth") {
			opts = append(opts, option.WithoutAuthentication())
		}
		if v := a.trimmed("storage.gcs.user_agent"); v != "" {
			opts = append(opts, option.WithUserAgent(v))
		}
		if gcsClient, err = gcs.NewClient(a.ctx, opts...); err != nil {
			return fmt.Errorf("gcs client: %w", err)
		}
	}

	stg, err := storage.NewFromDriver(a.ctx, driver, storage.FactoryOptions{
		S3: storage.S3Options{
			Region:       a.trimmed("storage.s3.region"),
			Endpoint:     a.trimmed("storage.s3.endpoint"),
			AccessKey:    a.trimmed("storage.s3.access_key"),
			SecretKey:    a.trimmed("storage.s3.secret_key"),
			SessionToken: a.trimmed("storage.s3.session_token"),
			UsePathStyle: a.config.GetBool("storage.s3.use_path_style"),
		},
		GCS: storage.GCSOptions{Client: gcsClient},
		MinIO: storage.MinIOOptions{
			Region:       a.trimmed("storage.minio.region"),
			Endpoint:     a.trimmed("storage.minio.endpoint"),
			AccessKey:    a.trimmed("storage.minio.access_key"),
			SecretKey:    a.trimmed("storage.minio.secret_key"),
			SessionToken: a.trimmed("storage.minio.session_token"),
			UseSSL:       a.config.GetBool("storage.minio.use_ssl"),
		},
	})
	if err != nil {
		if gcsClient != nil {
			_ = gcsClient.Close()
		}
		return err
	}

	a.storage = stg
	a.onStop("storage", func(context.Context) error { return stg.Close() })
	return nil
}

// googleOptions builds client options shared by the Google SDKs from
// <prefix>.endpoint, <prefix>.credentials_file and <prefix>.credentials_json.
func (a *App) googleOptions(prefix string, scope string) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if v := a.trimmed(prefix + ".endpoint"); v != "" {
		opts = append(opts, option.WithEndpoint(v))
	}

	credsJSON := a.config.GetBinary(prefix + ".credentials_json")
	if path := a.trimmed(prefix + ".credentials_file"); path != "" && len(credsJSON) == 0 {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the config file
		if err != nil {
			return nil, fmt.Errorf("%s credentials: %w", prefix, err)
		}
		credsJSON = data
	}
	if len(credsJSON) > 0 {
		creds, err := google.CredentialsFromJSON(a.ctx, credsJSON, scope)
		if err != nil {
			return nil, fmt.Errorf("%s credentials: %w", prefix, err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}
	return opts, nil
}

func (a *App) initMessaging() error {
	nsqProducer := nsq.NewConfig()
	nsqProducer.DialTimeout = a.config.GetSecond("messaging.nsq.producer_config.dial_timeout_seconds")
	nsqProducer.ReadTimeout = a.config.GetSecond("messaging.nsq.producer_config.read_timeout_seconds")
	nsqProducer.WriteTimeout = a.config.GetSecond("messaging.nsq.producer_config.write_timeout_seconds")

	nsqConsumer := nsq.NewConfig()
	nsqConsumer.MaxAttempts = a.config.GetUint16("messaging.nsq.consumer_config.max_attempts")
	nsqConsumer.LookupdPollInterval = a.config.GetSecond("messaging.nsq.consumer_config.lookupd_poll_interval_seconds")
	nsqConsumer.DialTimeout = a.config.GetSecond("messaging.nsq.consumer_config.dial_timeout_seconds")
	nsqConsumer.ReadTimeout = a.config.GetSecond("messaging.nsq.consumer_config.read_timeout_seconds")
	nsqConsumer.WriteTimeout = a.config.GetSecond("messaging.nsq.consumer_config.write_timeout_seconds")
	nsqConsumer.MaxRequeueDelay = a.config.GetSecond("messaging.nsq.consumer_config.max_requeue_delay_seconds")

	driver := a.trimmed("messaging.driver")
	var pubsubOpts []option.ClientOption
	if driver == messaging.DriverPubSub {
		opts, err := a.googleOptions("messaging.pubsub", "https://www.googleapis.com/auth/pubsub")
		if err != nil {
			return err
		}
		if a.trimmed("messaging.pubsub.endpoint") != "" {
			// Emulator.
			opts = append(opts, option.WithoutAuthentication())
		}
		pubsubOpts = opts
	}

	client, err := messaging.NewFromDriver(a.ctx, driver, messaging.FactoryOptions{
		NSQ: messaging.NSQConfig{
			ProducerAddr:   a.config.GetString("messaging.nsq.producer_addr"),
			NSQDAddrs:      a.config.GetArray("messaging.nsq.consumer_nsqd_addrs"),
			LookupdAddrs:   a.config.GetArray("messaging.nsq.consumer_lookupd_addrs"),
			RequeueDelay:   a.config.GetSecond("messaging.nsq.requeue_delay_seconds"),
			ProducerConfig: nsqProducer,
			ConsumerConfig: nsqConsumer,
		},
		NATS: messaging.NATSConfig{
			URL: a.config.GetString("messaging.nats.url"),
			Options: []nats.Option{
				nats.Name(a.config.GetString("messaging.nats.name")),
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.ReconnectWait(a.config.GetSecond("messaging.nats.reconnect_wait_seconds")),
				nats.PingInterval(a.config.GetSecond("messaging.nats.ping_interval_seconds")),
				nats.MaxPingsOutstanding(a.config.GetInt("messaging.nats.max_pings_outstanding")),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		Kafka: messaging.KafkaConfig{
			Brokers:     a.config.GetArray("messaging.kafka.brokers"),
			MaxAttempts: a.config.GetInt("messaging.kafka.max_attempts"),
		},
		PubSub: messaging.PubSubConfig{
			ProjectID:     a.config.GetString("messaging.pubsub.project_id"),
			ClientOptions: pubsubOpts,
		},
	})
	if err != nil {
		return err
	}

	a.messaging = client
	a.onStop("messaging", func(context.Context) error { return client.Close() })
	return nil
}

func (a *App) initCasbin() error {
	m, err := model.NewModelFromString(constant.RBACModel)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	adapter, err := pgxcasbin.NewAdapter(a.ctx, a.dbConn, pgxcasbin.WithTableName("identity_casbin_rules"))
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	e, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return err
	}

	watcher, err := pgxcasbin.NewWatcher(a.ctx, a.dbConn, pgxcasbin.WatcherOptions{
		Channel: "identity_casbin_watcher",
		LocalID: a.uuid.Generate(),
	})
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	a.onStop("casbin watcher", func(context.Context) error {
		watcher.Close()
		return nil
	})

	if err := e.SetWatcher(watcher); err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	// SetWatcher installs a bare reload callback; replace it with one that logs.
	if err := watcher.SetUpdateCallback(pgxcasbin.ReloadCallback(e)); err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	e.EnableAutoSave(true)
	e.EnableAutoNotifyWatcher(true)

	a.casbin = e
	return nil
}

func (a *App) initHTTPServer() error {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{router.HeaderCorrelationID},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           handler,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
	// Streams stay open, so the SSE server has no read or write deadline.
	a.sseServer = &http.Server{
		Addr:              a.config.GetString("app.server.sse.address"),
		Handler:           handler,
		ReadHeaderTimeout: a.config.GetSecond("app.server.sse.read_header_timeout_seconds"),
	}
	return nil
}

func (a *App) trimmed(key string) string {
	return strings.TrimSpace(a.config.GetString(key))
}
