package dto

import (
	"time"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
)

// PublicAccount is the projection returned to clients. It never carries the
// password or recovery key material.
type PublicAccount struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          *string    `json:"email,omitempty"`
	Cpf            *string    `json:"cpf,omitempty"`
	Username       string     `json:"username"`
	RegisterStatus string     `json:"register_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func ToPublicAccount(account *domain.Account) *PublicAccount {
	if account == nil {
		return nil
	}
	return &PublicAccount{
		ID:             account.ID,
		Name:           account.Name,
		Email:          account.Email,
		Cpf:            account.Cpf,
		Username:       account.Username,
		RegisterStatus: account.RegisterStatus,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
		DeletedAt:      account.DeletedAt,
	}
}

func ToPublicAccounts(accounts []*domain.Account) []*PublicAccount {
	out := make([]*PublicAccount, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, ToPublicAccount(account))
	}
	return out
}
