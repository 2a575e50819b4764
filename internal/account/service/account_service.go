package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kelvinmenegasse/idp-server/config"
	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
	"github.com/kelvinmenegasse/idp-server/internal/account/dto"
	autherror "github.com/kelvinmenegasse/idp-server/internal/errors"
	"github.com/kelvinmenegasse/idp-server/internal/mail"
	"github.com/kelvinmenegasse/idp-server/pkg/constant"
	"github.com/kelvinmenegasse/idp-server/pkg/cpf"
	"github.com/kelvinmenegasse/idp-server/pkg/credentials"
)

type AccountService struct {
	store  domain.AccountStore
	mailer mail.Mailer
	cfg    *config.Config
	log    *zap.Logger
}

func NewAccountService(store domain.AccountStore, mailer mail.Mailer, cfg *config.Config, log *zap.Logger) *AccountService {
	return &AccountService{store: store, mailer: mailer, cfg: cfg, log: log}
}

// SetupNewAccount validates and normalizes creation input and returns a fully
// populated, not-yet-persisted account. Username falls back to the normalized
// CPF when absent.
func (s *AccountService) SetupNewAccount(input dto.CreateAccountInput) (*domain.Account, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, autherror.ErrNameRequired
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, autherror.ErrPasswordRequired
	}

	username := strings.TrimSpace(input.Username)
	rawCpf := strings.TrimSpace(input.Cpf)
	if username == "" && rawCpf == "" {
		return nil, autherror.ErrUsernameRequired
	}

	var normalizedCpf *string
	if rawCpf != "" {
		normalized, err := cpf.Normalize(rawCpf)
		if err != nil {
			return nil, autherror.ErrInvalidCPF
		}
		normalizedCpf = &normalized
	}

	if username == "" {
		username = *normalizedCpf
	}

	hashed, err := credentials.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Cpf:            normalizedCpf,
		Username:       username,
		Password:       hashed,
		RegisterStatus: constant.RegisterStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		account.Email = &email
	}

	return account, nil
}

// Create persists a new account after checking username/CPF uniqueness.
func (s *AccountService) Create(ctx context.Context, input dto.CreateAccountInput) (*domain.Account, error) {
	account, err := s.SetupNewAccount(input)
	if err != nil {
		return nil, err
	}

	checkCpf := ""
	if account.Cpf != nil {
		checkCpf = *account.Cpf
	}
	existing, err := s.store.FindByUsernameOrCpf(ctx, account.Username, checkCpf, "")
	if err != nil {
		return nil, autherror.ErrGetAccount
	}
	if existing != nil {
		return nil, autherror.ErrUsernameOrCpfExists
	}

	created, err := s.store.Create(ctx, account)
	if err != nil {
		s.log.Error("failed to persist account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *AccountService) FindOne(ctx context.Context, filter domain.Filter) (*domain.Account, error) {
	account, err := s.store.FindOne(ctx, filter)
	if err != nil {
		s.log.Error("account lookup failed", zap.Error(err))
		return nil, autherror.ErrGetAccount
	}
	return account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if id == "" {
		return nil, autherror.ErrInvalidParameters
	}
	account, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.Error("account lookup failed", zap.String("id", id), zap.Error(err))
		return nil, autherror.ErrGetAccount
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) GetMany(ctx context.Context, filter domain.Filter) ([]*domain.Account, error) {
	accounts, err := s.store.GetMany(ctx, filter)
	if err != nil {
		s.log.Error("account listing failed", zap.Error(err))
		return nil, autherror.ErrGetAccount
	}
	return accounts, nil
}

// FindByUsernameOrCpf matches the identifier against both unique columns. The
// identifier is also tried as a CPF after normalization so formatted CPFs
// still hit the digits-only column.
func (s *AccountService) FindByUsernameOrCpf(ctx context.Context, identifier, registerStatus string) (*domain.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, autherror.ErrInvalidParameters
	}

	asCpf := identifier
	if normalized, err := cpf.Normalize(identifier); err == nil {
		asCpf = normalized
	}

	account, err := s.store.FindByUsernameOrCpf(ctx, identifier, asCpf, registerStatus)
	if err != nil {
		return nil, autherror.ErrGetAccount
	}
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, id string, input dto.UpdateAccountInput) (*domain.Account, error) {
	if id == "" {
		return nil, autherror.ErrInvalidParameters
	}

	account, err := s.store.FindOne(ctx, domain.Filter{ID: id})
	if err != nil {
		return nil, autherror.ErrGetAccount
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, autherror.ErrNameRequired
	}

	fields := domain.UpdateFields{Name: input.Name, Email: input.Email}

	if input.Username != nil && *input.Username != account.Username {
		existing, err := s.store.FindByUsernameOrCpf(ctx, *input.Username, "", "")
		if err != nil {
			return nil, autherror.ErrGetAccount
		}
		if existing != nil && existing.ID != account.ID {
			return nil, autherror.ErrUsernameExists
		}
		fields.Username = input.Username
	}

	if input.Cpf != nil {
		normalized, err := cpf.Normalize(*input.Cpf)
		if err != nil {
			return nil, autherror.ErrInvalidCPF
		}
		existing, err := s.store.FindByUsernameOrCpf(ctx, "", normalized, "")
		if err != nil {
			return nil, autherror.ErrGetAccount
		}
		if existing != nil && existing.ID != account.ID {
			return nil, autherror.ErrCpfExists
		}
		fields.Cpf = &normalized
	}

	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		s.log.Error("account update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *AccountService) SoftDelete(ctx context.Context, id string) (*domain.Account, error) {
	if id == "" {
		return nil, autherror.ErrInvalidParameters
	}
	return s.store.SoftDelete(ctx, id)
}

func (s *AccountService) Restore(ctx context.Context, id string) (*domain.Account, error) {
	if id == "" {
		return nil, autherror.ErrInvalidParameters
	}
	return s.store.Restore(ctx, id)
}

func (s *AccountService) HardDelete(ctx context.Context, id string) error {
	if id == "" {
		return autherror.ErrInvalidParameters
	}
	return s.store.HardDelete(ctx, id)
}

// CreateRecoveryKey generates an opaque recovery key, stores its hash and
// expiration against the account, and returns the raw key. This is the only
// time the raw key is ever exposed.
func (s *AccountService) CreateRecoveryKey(ctx context.Context, id string) (*domain.Account, string, error) {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	rawKey := uuid.NewString()
	hashedKey, err := credentials.HashRecoveryKey(rawKey)
	if err != nil {
		return nil, "", err
	}

	expiration := time.Now().Add(time.Duration(s.cfg.RecoveryKeyExpiryMin) * time.Minute)
	updated, err := s.store.Update(ctx, account.ID, domain.UpdateFields{
		RecoveryKey:           &hashedKey,
		RecoveryKeyExpiration: &expiration,
	})
	if err != nil {
		s.log.Error("failed to store recovery key", zap.String("id", id), zap.Error(err))
		return nil, "", err
	}

	return updated, rawKey, nil
}

// SendRecoveryKeyToAccount issues a recovery key and mails it. Accounts
// without an email address fail.
func (s *AccountService) SendRecoveryKeyToAccount(ctx context.Context, id string) error {
	account, rawKey, err := s.CreateRecoveryKey(ctx, id)
	if err != nil {
		return err
	}
	if account.Email == nil || *account.Email == "" {
		return autherror.ErrAccountHasNoEmail
	}

	if err := s.mailer.SendRecoveryKey(ctx, account, rawKey); err != nil {
		s.log.Error("recovery key delivery failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// SendRecoveryKeyToAccounts fans the sends out concurrently and joins. It
// fails overall only when every delivery failed; partial success reports the
// per-account outcomes.
func (s *AccountService) SendRecoveryKeyToAccounts(ctx context.Context, ids []string) ([]dto.RecoveryKeyResult, error) {
	if len(ids) == 0 {
		return nil, autherror.ErrInvalidParameters
	}

	results := make([]dto.RecoveryKeyResult, len(ids))
	g, ctx := errgroup.WithContext(ctx)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := s.SendRecoveryKeyToAccount(ctx, id); err != nil {
				results[i] = dto.RecoveryKeyResult{AccountID: id, Sent: false, Error: err.Error()}
				return nil
			}
			results[i] = dto.RecoveryKeyResult{AccountID: id, Sent: true}
			return nil
		})
	}

	// Individual failures are reported per item, never as group errors.
	_ = g.Wait()

	anySent := false
	for _, res := range results {
		if res.Sent {
			anySent = true
			break
		}
	}
	if !anySent {
		return results, autherror.ErrAllRecoveryFailed
	}
	return results, nil
}
