package service

//go:generate mockgen -destination=../../mocks/mock_account_manager.go -package=mocks github.com/kelvinmenegasse/idp-server/internal/auth/service AccountManager

import (
	"context"

	"go.uber.org/zap"

	accountdomain "github.com/kelvinmenegasse/idp-server/internal/account/domain"
	accountdto "github.com/kelvinmenegasse/idp-server/internal/account/dto"
	"github.com/kelvinmenegasse/idp-server/internal/auth/domain"
	"github.com/kelvinmenegasse/idp-server/internal/auth/dto"
	autherror "github.com/kelvinmenegasse/idp-server/internal/errors"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
	"github.com/kelvinmenegasse/idp-server/pkg/credentials"
)

// AccountManager is the slice of the account service the auth flows depend on.
type AccountManager interface {
	Create(ctx context.Context, input accountdto.CreateAccountInput) (*accountdomain.Account, error)
	FindByUsernameOrCpf(ctx context.Context, identifier, registerStatus string) (*accountdomain.Account, error)
	FindOne(ctx context.Context, filter accountdomain.Filter) (*accountdomain.Account, error)
}

// AuthService composes the account service and the token service into the
// signup, signin, logout and refresh flows.
type AuthService struct {
	accounts AccountManager
	tokens   TokenManager
	log      *zap.Logger
}

func NewAuthService(accounts AccountManager, tokens TokenManager, log *zap.Logger) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, log: log}
}

func (s *AuthService) issueTokens(ctx context.Context, accountID, username string, clientInfo dto.ClientInfo) (*dto.Tokens, error) {
	tokens, err := s.tokens.GetTokens(accountID, username)
	if err != nil {
		return nil, err
	}

	meta := domain.SessionMeta{
		AccountID:    accountID,
		IP:           clientInfo.IP,
		Platform:     clientInfo.Platform,
		BrowserBrand: clientInfo.BrowserBrand,
		UserAgent:    clientInfo.UserAgent,
	}
	// Signed tokens are not returned unless the session record exists.
	if _, err := s.tokens.CreateSession(ctx, meta, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return tokens, nil
}

// Signup creates the account, signs a token pair and opens its session.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput, clientInfo dto.ClientInfo) (*dto.Tokens, error) {
	account, err := s.accounts.Create(ctx, accountdto.CreateAccountInput{
		Name:     input.Name,
		Email:    input.Email,
		Cpf:      input.Cpf,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, account.ID, account.Username, clientInfo)
}

// Signin verifies credentials against an ACTIVE account and opens a new
// session. Lookup misses and password mismatches both come back as
// ErrIncorrectCredentials so responses never reveal which one happened.
func (s *AuthService) Signin(ctx context.Context, input dto.SigninInput, clientInfo dto.ClientInfo) (*dto.Tokens, error) {
	account, err := s.accounts.FindByUsernameOrCpf(ctx, input.Username, constant.RegisterStatusActive)
	if err != nil || account == nil {
		return nil, autherror.ErrIncorrectCredentials
	}

	if !credentials.ComparePassword(account.Password, input.Password) {
		return nil, autherror.ErrIncorrectCredentials
	}

	return s.issueTokens(ctx, account.ID, account.Username, clientInfo)
}

// matchSession locates the ACTIVE session the presented refresh token belongs
// to. Candidates are filtered by the JWT's own claims, then the raw token is
// verified against each candidate's hash; exp/iat disambiguate, so at most one
// should match.
func (s *AuthService) matchSession(ctx context.Context, claims *RefreshClaims) (*domain.RefreshTokenSession, error) {
	filter := domain.SessionFilter{
		AccountID:      claims.Subject,
		RegisterStatus: constant.RegisterStatusActive,
	}
	if claims.ExpiresAt != nil {
		filter.Exp = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		filter.Iat = claims.IssuedAt.Unix()
	}
	if len(claims.Audience) > 0 {
		filter.Aud = claims.Audience[0]
	}

	sessions, err := s.tokens.GetSessionsByParams(ctx, filter)
	if err != nil {
		s.log.Error("session lookup failed", zap.String("account_id", claims.Subject), zap.Error(err))
		return nil, autherror.ErrTokenNotFound
	}

	for _, session := range sessions {
		ok, err := credentials.CompareRefreshToken(session.HashedRt, claims.RefreshToken)
		if err != nil {
			continue
		}
		if ok {
			return session, nil
		}
	}
	return nil, autherror.ErrTokenNotFound
}

// Logout retires the session behind the presented refresh token.
func (s *AuthService) Logout(ctx context.Context, claims *RefreshClaims) error {
	session, err := s.matchSession(ctx, claims)
	if err != nil {
		return err
	}

	if err := s.tokens.SoftDeleteSession(ctx, session.ID); err != nil {
		return autherror.ErrTokenNotFound
	}
	return nil
}

// RefreshTokens rotates the presented refresh token: the matched session is
// retired before a new pair and session are issued, so each refresh token is
// single-use. Replaying an already-rotated token fails at the session lookup.
func (s *AuthService) RefreshTokens(ctx context.Context, claims *RefreshClaims, clientInfo dto.ClientInfo) (*dto.Tokens, error) {
	account, err := s.accounts.FindOne(ctx, accountdomain.Filter{
		ID:             claims.Subject,
		RegisterStatus: constant.RegisterStatusActive,
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	session, err := s.matchSession(ctx, claims)
	if err != nil {
		return nil, err
	}

	// The status-guarded soft delete decides the winner when two refresh
	// calls race on the same session.
	if err := s.tokens.SoftDeleteSession(ctx, session.ID); err != nil {
		return nil, autherror.ErrTokenNotFound
	}

	return s.issueTokens(ctx, claims.Subject, claims.Username, clientInfo)
}
