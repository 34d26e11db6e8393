// Package credentials stores the sign-in stand-in: an email keyed to a
// bcrypt password hash. This is deliberately not a hardened auth
// system; it exists so the session layer has something to verify
// against, the way the original dashboard kept a fixed credential.
package credentials

import "context"

type Repository interface {
	// GetHash returns the stored password hash for email, or nil when
	// no credential exists.
	GetHash(ctx context.Context, email string) ([]byte, error)

	// Set inserts or replaces the credential for email.
	Set(ctx context.Context, email string, hash []byte) error

	// Delete removes the credential for email. Absent is a no-op.
	Delete(ctx context.Context, email string) error
}
