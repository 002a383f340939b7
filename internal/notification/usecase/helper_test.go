package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfig = `
app:
  name: Campus Mail
  web: https://mail.campus.test
modules:
  identity:
    activation_ttl_hours: 24
  notification:
    support_email: help@campus.test
    email_retry_after_minutes: 5
`

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqID struct{ next int64 }

func (g *seqID) Generate() int64 {
	g.next++
	return g.next
}

type fixture struct {
	db   *MockrepoDB
	mail *MockrepoMail
	uc   *Usecase
	now  time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	require.NoError(t, err)

	f := &fixture{
		db:   NewMockrepoDB(ctrl),
		mail: NewMockrepoMail(ctrl),
		now:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	f.uc = New(Dependency{
		RepoDB:     f.db,
		RepoMail:   f.mail,
		Config:     cfg,
		UID:        &seqID{next: 900},
		Clock:      fixedClock{t: f.now},
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})

	return f
}

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, UserEmail: "user@campus.test", Roles: []string{"STUDENT"}})
}

func requireCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.True(t, errors.As(err, &gerr), "expected *goerror.Error, got %v", err)
	require.Equal(t, code, gerr.Code())
}
