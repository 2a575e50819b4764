package dto

type UpdateAccountInput struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Cpf      *string `json:"cpf,omitempty"`
	Username *string `json:"username,omitempty"`
}

type SendRecoveryKeysInput struct {
	IDs []string `json:"ids"`
}

// RecoveryKeyResult reports the outcome of one recovery-key delivery in a
// batch send.
type RecoveryKeyResult struct {
	AccountID string `json:"account_id"`
	Sent      bool   `json:"sent"`
	Error     string `json:"error,omitempty"`
}
