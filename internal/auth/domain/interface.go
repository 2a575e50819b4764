package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_session_store.go -package=mocks github.com/kelvinmenegasse/idp-server/internal/auth/domain SessionStore

type SessionStore interface {
	Create(ctx context.Context, session *RefreshTokenSession) (*RefreshTokenSession, error)
	FindOne(ctx context.Context, filter SessionFilter) (*RefreshTokenSession, error)
	FindMany(ctx context.Context, filter SessionFilter) ([]*RefreshTokenSession, error)
	Update(ctx context.Context, id string, session *RefreshTokenSession) (*RefreshTokenSession, error)
	// SoftDelete retires an ACTIVE session. It reports ErrNoRows-style failure
	// when the session is absent or already removed, which is what makes
	// refresh rotation single-use under concurrency.
	SoftDelete(ctx context.Context, id string) (*RefreshTokenSession, error)
}
