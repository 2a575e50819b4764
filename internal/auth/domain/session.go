package domain

import "time"

// RefreshTokenSession is the server-side record backing one issued refresh
// token. The raw token is never persisted; HashedRt is an argon2id hash of it,
// and Exp/Iat/Aud mirror the signed JWT's claims so the session can be located
// without decoding the raw token first.
type RefreshTokenSession struct {
	ID             string
	AccountID      string
	HashedRt       string
	Exp            int64
	Iat            int64
	Aud            string
	IP             string
	Platform       string
	BrowserBrand   string
	UserAgent      string
	RegisterStatus string
	LastUsedAt     *time.Time
	DeletedAt      *time.Time
}

// SessionFilter narrows session lookups. Zero-valued fields are ignored.
type SessionFilter struct {
	ID             string
	AccountID      string
	Exp            int64
	Iat            int64
	Aud            string
	RegisterStatus string
}

// SessionMeta is the client fingerprint captured when a session is created.
type SessionMeta struct {
	AccountID    string
	IP           string
	Platform     string
	BrowserBrand string
	UserAgent    string
}
