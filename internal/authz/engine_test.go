package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/events"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/roles"
	"github.com/dmitrijs2005/fleetdesk/internal/session"
	"github.com/dmitrijs2005/fleetdesk/internal/store"
)

func setup(t *testing.T) (*Engine, roles.Repository) {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	rr := roles.NewRepository(datasource.New(st.DB()), events.NewBus())
	return NewEngine(rr), rr
}

func addRole(t *testing.T, rr roles.Repository, name string, perms ...models.Permission) {
	t.Helper()
	require.NoError(t, rr.Add(context.Background(), &models.Role{
		Name:        name,
		Permissions: models.PermissionSet(perms),
	}))
}

func TestAuthorize_NilActorIsUnauthenticated(t *testing.T) {
	e, _ := setup(t)

	d, err := e.Authorize(context.Background(), nil, models.PermUsersRead)
	require.NoError(t, err)
	assert.Equal(t, DecisionUnauthenticated, d)
}

func TestAuthorize_NoRequirementsMeansSignedInSuffices(t *testing.T) {
	e, _ := setup(t)
	actor := &session.Actor{Name: "Dana", Role: "operator"}

	d, err := e.Authorize(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, DecisionAuthorized, d)
}

func TestAuthorize_AnyOneOfRequiredSuffices(t *testing.T) {
	e, rr := setup(t)
	ctx := context.Background()
	addRole(t, rr, "operator", models.PermMyProfileRead, models.PermMyProfileWrite)
	actor := &session.Actor{Name: "Dana", Role: "operator"}

	// holds none of the required tags
	d, err := e.Authorize(ctx, actor,
		models.PermUsersRead, models.PermEquipmentsRead)
	require.NoError(t, err)
	assert.Equal(t, DecisionUnauthorized, d)

	// holds exactly one of the required tags
	d, err = e.Authorize(ctx, actor,
		models.PermUsersRead, models.PermMyProfileRead)
	require.NoError(t, err)
	assert.Equal(t, DecisionAuthorized, d)
}

func TestAuthorize_UnknownRoleFailsClosed(t *testing.T) {
	e, _ := setup(t)
	actor := &session.Actor{Name: "Ghost", Role: "never-seeded"}

	d, err := e.Authorize(context.Background(), actor, models.PermMyProfileRead)
	require.NoError(t, err)
	assert.Equal(t, DecisionUnauthorized, d)
}

func TestHasPermission_ExactTagOnly(t *testing.T) {
	e, rr := setup(t)
	ctx := context.Background()
	addRole(t, rr, "operator", models.PermMyProfileRead)
	actor := &session.Actor{Name: "Dana", Role: "operator"}

	ok, err := e.HasPermission(ctx, actor, models.PermMyProfileRead)
	require.NoError(t, err)
	assert.True(t, ok)

	// read does not imply write
	ok, err = e.HasPermission(ctx, actor, models.PermMyProfileWrite)
	require.NoError(t, err)
	assert.False(t, ok)

	// a group-scoped tag does not imply the global one
	ok, err = e.HasPermission(ctx, actor, models.PermUsersRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAny_EmptyListIsFalse(t *testing.T) {
	e, rr := setup(t)
	addRole(t, rr, "admin", models.AllPermissions()...)
	actor := &session.Actor{Name: "Root", Role: "admin"}

	ok, err := e.HasAny(context.Background(), actor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPermission_NilActorDenied(t *testing.T) {
	e, _ := setup(t)

	ok, err := e.HasPermission(context.Background(), nil, models.PermMyProfileRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "unknown", DecisionUnknown.String())
	assert.Equal(t, "unauthenticated", DecisionUnauthenticated.String())
	assert.Equal(t, "unauthorized", DecisionUnauthorized.String())
	assert.Equal(t, "authorized", DecisionAuthorized.String())
}
