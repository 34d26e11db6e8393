// Package authz answers "may this actor do that" questions against the
// role catalog. Checks fail closed: a missing actor, a missing role or
// a storage error all deny access.
package authz

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/roles"
	"github.com/dmitrijs2005/fleetdesk/internal/session"
)

// Decision is the outcome of a protected-route check.
type Decision int

const (
	// DecisionUnknown is the initial state while the role lookup is
	// still pending. Callers render nothing in this state.
	DecisionUnknown Decision = iota

	// DecisionUnauthenticated means nobody is signed in; callers
	// redirect to sign-in.
	DecisionUnauthenticated

	// DecisionUnauthorized means the actor is signed in but holds none
	// of the required permissions.
	DecisionUnauthorized

	// DecisionAuthorized grants access.
	DecisionAuthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionUnauthorized:
		return "unauthorized"
	case DecisionAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Engine resolves actors to permission sets through the role catalog.
type Engine struct {
	roles roles.Repository
}

func NewEngine(roles roles.Repository) *Engine {
	return &Engine{roles: roles}
}

// PermissionsFor returns the permission set granted by the actor's
// role. An unknown role name grants nothing.
func (e *Engine) PermissionsFor(ctx context.Context, actor *session.Actor) (models.PermissionSet, error) {
	if actor == nil {
		return nil, nil
	}
	role, err := e.roles.GetByName(ctx, actor.Role)
	if err != nil {
		return nil, fmt.Errorf("role lookup failed: %w", err)
	}
	if role == nil {
		return nil, nil
	}
	return role.Permissions, nil
}

// HasPermission reports whether the actor's role grants p.
func (e *Engine) HasPermission(ctx context.Context, actor *session.Actor, p models.Permission) (bool, error) {
	set, err := e.PermissionsFor(ctx, actor)
	if err != nil {
		return false, err
	}
	return set.Contains(p), nil
}

// HasAny reports whether the actor's role grants at least one of the
// given permissions. With no permissions given it reports false.
func (e *Engine) HasAny(ctx context.Context, actor *session.Actor, perms ...models.Permission) (bool, error) {
	set, err := e.PermissionsFor(ctx, actor)
	if err != nil {
		return false, err
	}
	return set.ContainsAny(perms...), nil
}

// Authorize runs the full protected-route check. A nil actor yields
// DecisionUnauthenticated. A signed-in actor with no required
// permissions listed is authorized outright; otherwise holding any one
// of the required permissions suffices.
func (e *Engine) Authorize(ctx context.Context, actor *session.Actor, required ...models.Permission) (Decision, error) {
	if actor == nil {
		return DecisionUnauthenticated, nil
	}
	if len(required) == 0 {
		return DecisionAuthorized, nil
	}
	ok, err := e.HasAny(ctx, actor, required...)
	if err != nil {
		return DecisionUnknown, err
	}
	if !ok {
		return DecisionUnauthorized, nil
	}
	return DecisionAuthorized, nil
}
