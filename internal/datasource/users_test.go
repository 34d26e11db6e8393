package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

func seedUsers(t *testing.T, ds *DataSource) {
	t.Helper()
	ctx := context.Background()
	for _, u := range []models.User{
		{Name: "Alice Smith", Email: "alice@site.test", Role: "admin"},
		{Name: "alan turing", Email: "alan@site.test", Role: "operator"},
		{Name: "Bob Jones", Email: "al-bob@site.test", Role: "operator"},
		{Name: "Carol King", Email: "carol@site.test", Role: "manager"},
	} {
		u := u
		require.NoError(t, ds.AddUser(ctx, &u))
	}
}

func names(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func TestSearchUsers_EmptyTermAllFilterReturnsEverything(t *testing.T) {
	ds := setupDS(t)
	seedUsers(t, ds)

	got, err := ds.SearchUsers(context.Background(), "", models.FilterAll)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	// the empty filter behaves like "all"
	got, err = ds.SearchUsers(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestSearchUsers_FilterOnlyIsEqualityMatch(t *testing.T) {
	ds := setupDS(t)
	seedUsers(t, ds)

	got, err := ds.SearchUsers(context.Background(), "", "operator")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alan turing", "Bob Jones"}, names(got))
}

func TestSearchUsers_TermOnlyPrefixMatchesNameOrEmail(t *testing.T) {
	ds := setupDS(t)
	seedUsers(t, ds)

	// "al" prefixes the names Alice/alan and the email al-bob@...;
	// matching is case-insensitive and a record appears once even when
	// both fields match
	got, err := ds.SearchUsers(context.Background(), "al", models.FilterAll)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alice Smith", "alan turing", "Bob Jones"}, names(got))

	// substring in the middle does not match
	got, err = ds.SearchUsers(context.Background(), "smith", models.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchUsers_TermAndFilterCombine(t *testing.T) {
	ds := setupDS(t)
	seedUsers(t, ds)

	got, err := ds.SearchUsers(context.Background(), "al", "operator")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alan turing", "Bob Jones"}, names(got))

	got, err = ds.SearchUsers(context.Background(), "al", "admin")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alice Smith"}, names(got))
}

func TestAddUser_AssignsIdentifiers(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	u := models.User{Name: "Dana", Email: "dana@site.test", Role: "operator"}
	require.NoError(t, ds.AddUser(ctx, &u))

	assert.NotEmpty(t, u.UID)
	assert.NotZero(t, u.ID)

	// a caller-provided UID is kept
	v := models.User{UID: "fixed-uid", Name: "Eve"}
	require.NoError(t, ds.AddUser(ctx, &v))
	assert.Equal(t, "fixed-uid", v.UID)
}

func TestUserByUID_AbsentReturnsNilNil(t *testing.T) {
	ds := setupDS(t)

	got, err := ds.UserByUID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRoundTrip(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	u := models.User{Name: "Dana", Email: "dana@site.test", Role: "operator", Picture: "p.png"}
	require.NoError(t, ds.AddUser(ctx, &u))

	got, err := ds.UserByUID(ctx, u.UID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)
}

func TestUpdateUser_AbsentIsNoOp(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	err := ds.UpdateUser(ctx, &models.User{UID: "missing", Name: "Nobody"})
	require.NoError(t, err)

	all, err := ds.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateUser_IsIdempotent(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()

	u := models.User{Name: "Dana", Role: "operator"}
	require.NoError(t, ds.AddUser(ctx, &u))

	u.Role = "manager"
	require.NoError(t, ds.UpdateUser(ctx, &u))
	require.NoError(t, ds.UpdateUser(ctx, &u))

	got, err := ds.UserByUID(ctx, u.UID)
	require.NoError(t, err)
	assert.Equal(t, "manager", got.Role)
}

func TestDeleteUser_AbsentIsNoOp(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()
	seedUsers(t, ds)

	require.NoError(t, ds.DeleteUser(ctx, "missing"))

	all, err := ds.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUserByEmail_FirstMatchOrNil(t *testing.T) {
	ds := setupDS(t)
	ctx := context.Background()
	seedUsers(t, ds)

	got, err := ds.UserByEmail(ctx, "carol@site.test")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Carol King", got.Name)

	got, err = ds.UserByEmail(ctx, "missing@site.test")
	require.NoError(t, err)
	assert.Nil(t, got)
}
