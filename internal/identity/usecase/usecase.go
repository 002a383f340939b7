package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/clock"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/hash"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/storage"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserActivationEvent struct {
	UserID         int64
	Email          string
	FullName       string
	ChallengeToken string
}

type repoStorage interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

type repoMessaging interface {
	PublishUserActivation(ctx context.Context, msg UserActivationEvent) error
}

type repoDB interface {
	GetUserLoginInfo(ctx context.Context, email string) (*entity.UserLoginInfo, error)
	GetUserCredentialInfo(ctx context.Context, id int64) (*entity.UserCredentialInfo, error)
	GetChallengeUserByTokenPurpose(ctx context.Context, token string, p entity.ChallengePurpose) (*entity.ChallengeUser, error)
	GetUserRefreshToken(ctx context.Context, token string) (*entity.UserRefreshToken, error)
	GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error)
	GetUserList(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error)

	CreateRefreshToken(ctx context.Context, in entity.RefreshToken) error
	CreateChallenge(ctx context.Context, in entity.Challenge) error
	NewUser(ctx context.Context, user entity.NewUser, hash string) error

	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeAllRefreshToken(ctx context.Context, userID int64) error
	RotateRefreshToken(ctx context.Context, ro entity.RotateRefreshToken) error
	UpdateUserProfile(ctx context.Context, id int64, fullName string) error
	UpdateUserAvatar(ctx context.Context, id int64, avatarURL string) error
	UpdateUserStatus(ctx context.Context, id int64, oldStatus, newStatus entity.UserStatus, byID int64) error
	UpdateUserCredential(ctx context.Context, userID int64, hash string) error
	PatchUser(ctx context.Context, user entity.PatchUser, hash string) error
	ActivateUser(ctx context.Context, in entity.ActivateUser) error
	MarkUserDeleted(ctx context.Context, id, byID int64) error

	DeleteChallenge(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	storage       repoStorage
	hmac          hash.Hash
	bcrypt        hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	oid           uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	decoyHash     func() string
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Storage       repoStorage
	HMAC          hash.Hash
	Bcrypt        hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OID           uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		bcrypt:        dep.Bcrypt,
		hmac:          dep.HMAC,
		cfg:           dep.Config,
		storage:       dep.Storage,
		uid:           dep.UID,
		uuid:          dep.UUID,
		oid:           dep.OID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		decoyHash: sync.OnceValue(func() string {
			h, _ := dep.Bcrypt.Hash("decoy-password")
			return string(h)
		}),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) ensureUserStatusAllowed(ctx context.Context, userID int64, status entity.UserStatus) error {
	switch status.Ensure() {
	case entity.UserStatusUnknown:
		slog.WarnContext(ctx, "user account status is unrecognized", "user_id", userID)
		return goerror.NewBusiness("account status is unrecognized", goerror.CodeForbidden)

	case entity.UserStatusUnverified:
		slog.WarnContext(ctx, "user account is not activated", "user_id", userID)
		return goerror.NewBusiness("account is not activated", goerror.CodeForbidden)

	case entity.UserStatusInactive:
		slog.WarnContext(ctx, "user account is deactivated", "user_id", userID)
		return goerror.NewBusiness("account is deactivated", goerror.CodeForbidden)

	default:
		return nil
	}
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// authenticatedAndAuthorized allows the call when any of the caller's roles is
// granted act on obj.
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

	slog.WarnContext(ctx, "account not allowed", "user_id", clm.UserID, "obj", obj, "act", act)
	return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
}

// issueTokens creates an access token and a fresh refresh token for the user.
func (s *Usecase) issueTokens(ctx context.Context, userID int64, email string, roles []string) (string, string, error) {
	acToken, err := s.jwt.Generate(userID, email, roles)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", userID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	refToken := s.oid.Generate()
	refTokenHash, err := s.hmac.Hash(refToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token", "user_id", userID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	if err := s.repoDB.CreateRefreshToken(ctx, entity.RefreshToken{
		ID:        s.uid.Generate(),
		UserID:    userID,
		Token:     string(refTokenHash),
		ExpiresAt: s.clock.Now().Add(s.cfg.GetDay("modules.identity.refresh_token_ttl_days")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create refresh token user", "user_id", userID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	return acToken, refToken, nil
}
