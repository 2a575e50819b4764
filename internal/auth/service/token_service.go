package service

//go:generate mockgen -destination=../../mocks/mock_token_service.go -package=mocks github.com/kelvinmenegasse/idp-server/internal/auth/service TokenManager

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kelvinmenegasse/idp-server/internal/auth/domain"
	"github.com/kelvinmenegasse/idp-server/internal/auth/dto"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
	"github.com/kelvinmenegasse/idp-server/pkg/credentials"
)

// AuthClaims is the payload shared by access and refresh tokens.
type AuthClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// RefreshClaims is the verified refresh-token payload plus the raw token it
// was parsed from, which session verification needs.
type RefreshClaims struct {
	AuthClaims
	RefreshToken string
}

// TokenManager signs token pairs and drives the refresh-token session
// lifecycle.
type TokenManager interface {
	GetTokens(accountID, username string) (*dto.Tokens, error)
	VerifyAccessToken(raw string) (*AuthClaims, error)
	VerifyRefreshToken(raw string) (*RefreshClaims, error)
	CreateSession(ctx context.Context, meta domain.SessionMeta, rawRefreshToken string) (*domain.RefreshTokenSession, error)
	GetSessionsByParams(ctx context.Context, filter domain.SessionFilter) ([]*domain.RefreshTokenSession, error)
	SoftDeleteSession(ctx context.Context, id string) error
}

type TokenService struct {
	sessions domain.SessionStore
	log      *zap.Logger

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Domain             string
}

func NewTokenService(sessions domain.SessionStore, log *zap.Logger,
	accessSecret, refreshSecret string, accessMinutes, refreshMinutes int, appDomain string) *TokenService {
	return &TokenService{
		sessions:           sessions,
		log:                log,
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
		Domain:             appDomain,
	}
}

func (ts *TokenService) claims(accountID, username string, expiry time.Duration, now time.Time) AuthClaims {
	return AuthClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps tokens minted in the same second distinct.
			ID:        uuid.NewString(),
			Subject:   accountID,
			Issuer:    ts.Domain,
			Audience:  jwt.ClaimStrings{ts.Domain},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
}

// GetTokens signs the access and refresh tokens concurrently and joins.
func (ts *TokenService) GetTokens(accountID, username string) (*dto.Tokens, error) {
	now := time.Now()

	var accessToken, refreshToken string
	var g errgroup.Group

	g.Go(func() error {
		var err error
		accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256,
			ts.claims(accountID, username, ts.AccessTokenExpiry, now)).
			SignedString([]byte(ts.AccessTokenSecret))
		return err
	})
	g.Go(func() error {
		var err error
		refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256,
			ts.claims(accountID, username, ts.RefreshTokenExpiry, now)).
			SignedString([]byte(ts.RefreshTokenSecret))
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to sign token pair: %w", err)
	}

	return &dto.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (ts *TokenService) verify(raw, secret string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// VerifyAccessToken parses and validates an access token string.
func (ts *TokenService) VerifyAccessToken(raw string) (*AuthClaims, error) {
	return ts.verify(raw, ts.AccessTokenSecret)
}

// VerifyRefreshToken parses and validates a refresh token string, keeping the
// raw token alongside the claims.
func (ts *TokenService) VerifyRefreshToken(raw string) (*RefreshClaims, error) {
	claims, err := ts.verify(raw, ts.RefreshTokenSecret)
	if err != nil {
		return nil, err
	}
	return &RefreshClaims{AuthClaims: *claims, RefreshToken: raw}, nil
}

// CreateSession persists a session record for an already-signed refresh token.
// The raw token is hashed; exp/iat/aud are copied out of the token's own
// claims so later lookups can match on them without the raw value.
func (ts *TokenService) CreateSession(ctx context.Context, meta domain.SessionMeta, rawRefreshToken string) (*domain.RefreshTokenSession, error) {
	hashedRt, err := credentials.HashRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	// The token was signed by this service; only its claims are needed here.
	decoded := &AuthClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawRefreshToken, decoded); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}

	aud := ""
	if len(decoded.Audience) > 0 {
		aud = decoded.Audience[0]
	}

	now := time.Now()
	session := &domain.RefreshTokenSession{
		ID:             uuid.NewString(),
		AccountID:      meta.AccountID,
		HashedRt:       hashedRt,
		Aud:            aud,
		IP:             meta.IP,
		Platform:       meta.Platform,
		BrowserBrand:   meta.BrowserBrand,
		UserAgent:      meta.UserAgent,
		RegisterStatus: constant.RegisterStatusActive,
		LastUsedAt:     &now,
	}
	if decoded.ExpiresAt != nil {
		session.Exp = decoded.ExpiresAt.Unix()
	}
	if decoded.IssuedAt != nil {
		session.Iat = decoded.IssuedAt.Unix()
	}

	created, err := ts.sessions.Create(ctx, session)
	if err != nil {
		ts.log.Error("failed to persist refresh token session",
			zap.String("account_id", meta.AccountID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetSessionsByParams re-locates the sessions a refresh or logout request
// claims to extend, disambiguating by the JWT's own exp/iat/aud.
func (ts *TokenService) GetSessionsByParams(ctx context.Context, filter domain.SessionFilter) ([]*domain.RefreshTokenSession, error) {
	return ts.sessions.FindMany(ctx, filter)
}

// SoftDeleteSession retires a session. Required before issuing a replacement
// on rotation; there is no restore for sessions.
func (ts *TokenService) SoftDeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := ts.sessions.SoftDelete(ctx, id); err != nil {
		return err
	}
	return nil
}
