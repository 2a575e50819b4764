package mail

import (
	"context"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/kelvinmenegasse/idp-server/internal/mail Mailer

// Mailer delivers recovery keys out-of-band. Template rendering and transport
// details stay behind this interface.
type Mailer interface {
	SendRecoveryKey(ctx context.Context, account *domain.Account, rawKey string) error
}
