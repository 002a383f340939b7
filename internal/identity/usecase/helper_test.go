package usecase

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/hash"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/storage"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfig = `
modules:
  identity:
    refresh_token_ttl_days: 7
    activation_ttl_hours: 24
    avatar_bucket: avatars
    avatar_base_url: https://cdn.campus.test/avatars
    avatar_max_size_bytes: 16
`

type storedObject struct {
	bucket, key, contentType string
	body                     []byte
}

// memStorage keeps uploads in memory and records deletions.
type memStorage struct {
	puts    []storedObject
	deleted []string
	putErr  error
}

func (m *memStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	if m.putErr != nil {
		return storage.ObjectInfo{}, m.putErr
	}
	m.puts = append(m.puts, storedObject{bucket: bucket, key: key, contentType: opts.ContentType, body: body})
	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: int64(len(body))}, nil
}

func (m *memStorage) DeleteObject(_ context.Context, bucket, key string) error {
	m.deleted = append(m.deleted, bucket+"/"+key)
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqID struct{ next int64 }

func (g *seqID) Generate() int64 {
	g.next++
	return g.next
}

type seqToken struct {
	prefix string
	next   int
}

func (g *seqToken) Generate() string {
	g.next++
	return g.prefix + strconv.Itoa(g.next)
}

// fakeJWT signs nothing; the token only encodes who it was issued for.
type fakeJWT struct{ err error }

func (j fakeJWT) Generate(uid int64, _ string, roles []string) (string, error) {
	if j.err != nil {
		return "", j.err
	}
	return "access-" + strconv.FormatInt(uid, 10) + "-" + strconv.Itoa(len(roles)), nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, jwt.ErrInvalidToken }

type fixture struct {
	db     *MockrepoDB
	mq     *MockrepoMessaging
	hmac   *hash.HMACSHA256
	bcrypt *hash.Bcrypt
	uc     *Usecase
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	require.NoError(t, err)

	m, err := model.NewModelFromString(constant.RBACModel)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = enforcer.AddPolicies([][]string{
		{constant.RoleAdmin, "*", "*"},
		{constant.RoleLecturer, constant.PermMailboxMessages, constant.PermActRead},
		{constant.RoleLecturer, constant.PermMailboxGroups, constant.PermActRead},
		{constant.RoleStudent, constant.PermMailboxMessages, constant.PermActRead},
		{constant.RoleStudent, constant.PermMailboxMessages, constant.PermActCreate},
	})
	require.NoError(t, err)

	f := &fixture{
		db:     NewMockrepoDB(ctrl),
		mq:     NewMockrepoMessaging(ctrl),
		hmac:   hash.NewHMACSHA256("test-secret"),
		bcrypt: hash.NewBcrypt(4, ""),
		now:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		Validator:     v,
		Config:        cfg,
		HMAC:          f.hmac,
		Bcrypt:        f.bcrypt,
		UID:           &seqID{next: 500},
		UUID:          &seqToken{prefix: "uuid-"},
		OID:           &seqToken{prefix: "tok-"},
		Clock:         fixedClock{t: f.now},
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
		Enforcer:      enforcer,
	})

	return f
}

func (f *fixture) hmacOf(t *testing.T, s string) string {
	t.Helper()

	b, err := f.hmac.Hash(s)
	require.NoError(t, err)
	return string(b)
}

func (f *fixture) bcryptOf(t *testing.T, s string) string {
	t.Helper()

	b, err := f.bcrypt.Hash(s)
	require.NoError(t, err)
	return string(b)
}

func authCtx(userID int64, roles ...string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, UserEmail: "user@campus.test", Roles: roles})
}

func requireCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.True(t, errors.As(err, &gerr), "expected *goerror.Error, got %v", err)
	require.Equal(t, code, gerr.Code())
}
