package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqID struct{ next int64 }

func (g *seqID) Generate() int64 {
	g.next++
	return g.next
}

type fixture struct {
	db       *MockrepoDB
	uow      *MockUnitOfWork
	mq       *MockrepoMessaging
	cache    *MockrepoCache
	notifier *Mocknotifier
	uc       *Usecase
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	m, err := model.NewModelFromString(constant.RBACModel)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = enforcer.AddPolicies([][]string{
		{constant.RoleAdmin, "*", "*"},
		{constant.RoleLecturer, constant.PermMailboxGroups, constant.PermActRead},
	})
	require.NoError(t, err)

	f := &fixture{
		db:       NewMockrepoDB(ctrl),
		uow:      NewMockUnitOfWork(ctrl),
		mq:       NewMockrepoMessaging(ctrl),
		cache:    NewMockrepoCache(ctrl),
		notifier: NewMocknotifier(ctrl),
		now:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		RepoCache:     f.cache,
		Notifier:      f.notifier,
		Validator:     v,
		UID:           &seqID{next: 1000},
		Clock:         fixedClock{t: f.now},
		Instrument:    instrument.NewNoop(),
		Enforcer:      enforcer,
	})

	return f
}

// expectCommit expects one unit of work that is committed and then released.
func (f *fixture) expectCommit() {
	f.db.EXPECT().Begin(gomock.Any()).Return(f.uow, nil)
	f.uow.EXPECT().Commit(gomock.Any()).Return(nil)
	f.uow.EXPECT().Rollback(gomock.Any()).Return(nil)
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
