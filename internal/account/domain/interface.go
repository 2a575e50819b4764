package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_account_store.go -package=mocks github.com/kelvinmenegasse/idp-server/internal/account/domain AccountStore

type AccountStore interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	FindOne(ctx context.Context, filter Filter) (*Account, error)
	// FindByUsernameOrCpf returns the first account whose username or CPF
	// matches either value, or nil when none does.
	FindByUsernameOrCpf(ctx context.Context, username, cpf, registerStatus string) (*Account, error)
	Update(ctx context.Context, id string, fields UpdateFields) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetAll(ctx context.Context) ([]*Account, error)
	GetMany(ctx context.Context, filter Filter) ([]*Account, error)
	SoftDelete(ctx context.Context, id string) (*Account, error)
	Restore(ctx context.Context, id string) (*Account, error)
	HardDelete(ctx context.Context, id string) error
}
