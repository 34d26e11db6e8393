package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetdesk/internal/common"
	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/events"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/activitylogs"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/metadata"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/users"
	"github.com/dmitrijs2005/fleetdesk/internal/store"
)

type fixture struct {
	manager *Manager
	users   users.Repository
	logs    activitylogs.Repository
}

func setup(t *testing.T, ttl time.Duration) *fixture {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	bus := events.NewBus()
	ds := datasource.New(st.DB())
	ur := users.NewRepository(ds, bus)
	lr := activitylogs.NewRepository(ds, bus)
	cr := credentials.NewSQLiteRepository(st.DB())
	mr := metadata.NewSQLiteRepository(st.DB())

	m := NewManager(cr, ur, mr, lr, []byte("test-secret"), ttl)
	return &fixture{manager: m, users: ur, logs: lr}
}

func (f *fixture) addOperator(t *testing.T, ctx context.Context) *models.User {
	t.Helper()
	u := &models.User{Name: "Dan Operator", Email: "dan@site.test", Role: "operator"}
	require.NoError(t, f.users.Add(ctx, u))
	require.NoError(t, f.manager.SetCredential(ctx, u.Email, "hunter2"))
	return u
}

func TestSignIn_Success(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	actor, err := f.manager.SignIn(ctx, u.Email, "hunter2")
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Equal(t, u.UID, actor.UID)
	assert.Equal(t, "Dan Operator", actor.Name)
	assert.Equal(t, "operator", actor.Role)
}

func TestSignIn_WrongPassword(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	actor, err := f.manager.SignIn(ctx, u.Email, "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, actor)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()

	actor, err := f.manager.SignIn(ctx, "nobody@site.test", "hunter2")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, actor)
}

func TestSignIn_CredentialWithoutProfile(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, f.manager.SetCredential(ctx, "ghost@site.test", "pw"))

	actor, err := f.manager.SignIn(ctx, "ghost@site.test", "pw")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, actor)
}

func TestCurrentActor_NoSession(t *testing.T) {
	f := setup(t, time.Hour)

	actor, err := f.manager.CurrentActor(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actor)
}

func TestCurrentActor_AfterSignIn(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	_, err := f.manager.SignIn(ctx, u.Email, "hunter2")
	require.NoError(t, err)

	actor, err := f.manager.CurrentActor(ctx)
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Equal(t, u.UID, actor.UID)
	assert.Equal(t, u.Email, actor.Email)
	assert.Equal(t, u.Role, actor.Role)
}

func TestCurrentActor_ExpiredTokenCountsAsSignedOut(t *testing.T) {
	f := setup(t, -time.Minute)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	_, err := f.manager.SignIn(ctx, u.Email, "hunter2")
	require.NoError(t, err)

	actor, err := f.manager.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Nil(t, actor)

	// stale token was cleared, second read takes the fast path
	actor, err = f.manager.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Nil(t, actor)
}

func TestSignOut_ClearsSession(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	_, err := f.manager.SignIn(ctx, u.Email, "hunter2")
	require.NoError(t, err)

	require.NoError(t, f.manager.SignOut(ctx))

	actor, err := f.manager.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Nil(t, actor)

	// signing out twice is a no-op
	require.NoError(t, f.manager.SignOut(ctx))
}

func TestSignIn_WritesActivityLog(t *testing.T) {
	f := setup(t, time.Hour)
	ctx := context.Background()
	u := f.addOperator(t, ctx)

	_, err := f.manager.SignIn(ctx, u.Email, "hunter2")
	require.NoError(t, err)

	entries, err := f.logs.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dan Operator", entries[0].User)
	assert.Equal(t, "sign in", entries[0].Activity)
}
