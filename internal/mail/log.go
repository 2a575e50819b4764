package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
)

// LogMailer logs recovery keys instead of delivering them. Development only.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendRecoveryKey(ctx context.Context, account *domain.Account, rawKey string) error {
	email := ""
	if account.Email != nil {
		email = *account.Email
	}
	m.log.Info("recovery key issued",
		zap.String("account_id", account.ID),
		zap.String("email", email),
		zap.String("recovery_key", rawKey),
	)
	return nil
}
