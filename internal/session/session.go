// Package session tracks the currently signed-in actor. Sign-in
// verifies a locally stored credential (a bcrypt hash, standing in for
// real authentication like the dashboard this replaces) and
// persists a signed token in the process-wide metadata storage; the
// authorization engine asks this package who the current actor is.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetdesk/internal/common"
	"github.com/dmitrijs2005/fleetdesk/internal/models"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/activitylogs"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/metadata"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/users"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenKey = "session.token"

// Actor is the signed-in identity attempting operations.
type Actor struct {
	UID   string
	Name  string
	Email string
	Role  string
}

// Claims carries the actor identity inside the session token.
type Claims struct {
	jwt.RegisteredClaims
	Name  string
	Email string
	Role  string
}

// Manager implements the session boundary: sign-in, sign-out and the
// current-actor lookup.
type Manager struct {
	creds    credentials.Repository
	users    users.Repository
	meta     metadata.Repository
	logs     activitylogs.Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewManager wires the session storage. secret signs session tokens;
// ttl bounds how long a sign-in remains valid.
func NewManager(creds credentials.Repository, users users.Repository,
	meta metadata.Repository, logs activitylogs.Repository,
	secret []byte, ttl time.Duration) *Manager {
	return &Manager{creds: creds, users: users, meta: meta, logs: logs,
		secret: secret, tokenTTL: ttl}
}

// SignIn verifies the stored credential for email and, on success,
// persists a session token and returns the actor. Any verification
// failure (unknown email, wrong password, missing user profile)
// reports common.ErrInvalidCredentials without distinguishing the
// cause.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Actor, error) {
	hash, err := m.creds.GetHash(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}
	if hash == nil {
		return nil, common.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	user, err := m.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		// credential without a profile counts as not signed up
		return nil, common.ErrInvalidCredentials
	}

	token, err := m.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := m.meta.Set(ctx, tokenKey, []byte(token)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.logActivity(ctx, user.Name, "sign in", "signed in as "+user.Email)

	return &Actor{UID: user.UID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// CurrentActor returns the signed-in actor, or nil when nobody is
// signed in. An expired or tampered token counts as signed out: the
// stale token is cleared and (nil, nil) is returned.
func (m *Manager) CurrentActor(ctx context.Context) (*Actor, error) {
	raw, err := m.meta.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	claims, err := m.parseToken(string(raw))
	if err != nil {
		_ = m.meta.Delete(ctx, tokenKey)
		return nil, nil
	}

	return &Actor{
		UID:   claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// SignOut clears the persisted session. Signing out twice is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	actor, err := m.CurrentActor(ctx)
	if err != nil {
		return err
	}
	if err := m.meta.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if actor != nil {
		m.logActivity(ctx, actor.Name, "sign out", "signed out")
	}
	return nil
}

// SetCredential stores (or replaces) the bcrypt hash for email.
func (m *Manager) SetCredential(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return m.creds.Set(ctx, email, hash)
}

func (m *Manager) issueToken(u *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
		},
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// logActivity writes the audit entry; failures are swallowed because
// the audit trail must never block a sign-in.
func (m *Manager) logActivity(ctx context.Context, user, activity, details string) {
	_ = m.logs.Add(ctx, &models.ActivityLog{
		User:      user,
		Activity:  activity,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
