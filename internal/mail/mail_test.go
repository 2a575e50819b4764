package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
)

func TestLogMailerLogsTheKey(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mailer := NewLogMailer(zap.New(core))

	email := "ana@example.com"
	account := &domain.Account{ID: "acc-1", Name: "Ana", Email: &email}

	require.NoError(t, mailer.SendRecoveryKey(context.Background(), account, "raw-key"))

	entries := logs.FilterMessage("recovery key issued").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "acc-1", fields["account_id"])
	assert.Equal(t, "raw-key", fields["recovery_key"])
}

func TestSMTPMailerRequiresEmail(t *testing.T) {
	mailer := NewSMTPMailer("localhost", 2525, "", "", "noreply@example.com", "http://localhost:3000")

	err := mailer.SendRecoveryKey(context.Background(), &domain.Account{ID: "acc-1"}, "raw-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email")
}
