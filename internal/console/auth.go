package console

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fleetdesk/internal/authz"
	"github.com/dmitrijs2005/fleetdesk/internal/common"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
)

// Login prompts for an email and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	actor, err := a.session.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password")
			return nil
		}
		a.log.Error(ctx, "sign in failed", "err", err)
		return err
	}

	a.actor = actor
	fmt.Printf("Signed in as %s (%s)\n", actor.Name, actor.Role)
	return nil
}

// Logout closes the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign out failed", "err", err)
		return err
	}
	a.actor = nil
	fmt.Println("Signed out")
	return nil
}

// Whoami shows the current actor and the permissions their role grants.
func (a *App) Whoami(ctx context.Context) error {
	if a.actor == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s>, role %q\n", a.actor.Name, a.actor.Email, a.actor.Role)

	perms, err := a.authz.PermissionsFor(ctx, a.actor)
	if err != nil {
		return err
	}
	if len(perms) == 0 {
		fmt.Println("No permissions granted")
		return nil
	}
	for _, p := range perms.Normalized() {
		fmt.Println("  -", p.Label())
	}
	return nil
}

// authorize runs the protected-route check for the current actor and
// prints the refusal when access is denied. It returns true only for
// an authorized actor.
func (a *App) authorize(ctx context.Context, required ...models.Permission) bool {
	decision, err := a.authz.Authorize(ctx, a.actor, required...)
	if err != nil {
		a.log.Error(ctx, "authorization check failed", "err", err)
		fmt.Println("Cannot verify access right now")
		return false
	}
	switch decision {
	case authz.DecisionAuthorized:
		return true
	case authz.DecisionUnauthenticated:
		fmt.Println("Please login first")
	default:
		fmt.Println("You do not have access to this view")
	}
	return false
}
