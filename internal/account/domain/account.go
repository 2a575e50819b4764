package domain

import "time"

// Account is a registered identity with login credentials. Password and
// recovery key are only ever stored as salted hashes.
type Account struct {
	ID                    string
	Name                  string
	Email                 *string
	Cpf                   *string
	Username              string
	Password              string
	RecoveryKey           *string
	RecoveryKeyExpiration *time.Time
	RegisterStatus        string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

// Filter narrows account lookups. Zero-valued fields are ignored.
type Filter struct {
	ID             string
	Username       string
	Cpf            string
	Email          string
	RegisterStatus string
}

// UpdateFields carries a partial update; nil fields are left untouched.
type UpdateFields struct {
	Name                  *string
	Email                 *string
	Cpf                   *string
	Username              *string
	Password              *string
	RecoveryKey           *string
	RecoveryKeyExpiration *time.Time
}
