package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/kelvinmenegasse/idp-server/internal/account/domain"
)

// SMTPMailer sends recovery-key mail over plain SMTP.
type SMTPMailer struct {
	host           string
	port           int
	username       string
	password       string
	from           string
	frontendDomain string
}

func NewSMTPMailer(host string, port int, username, password, from, frontendDomain string) *SMTPMailer {
	return &SMTPMailer{
		host:           host,
		port:           port,
		username:       username,
		password:       password,
		from:           from,
		frontendDomain: frontendDomain,
	}
}

func (m *SMTPMailer) SendRecoveryKey(ctx context.Context, account *domain.Account, rawKey string) error {
	if account.Email == nil || *account.Email == "" {
		return fmt.Errorf("account %s has no email address", account.ID)
	}

	recoveryLink := fmt.Sprintf("%s/auth/recovery?username=%s&recoveryKey=%s",
		m.frontendDomain, account.Username, rawKey)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", *account.Email)
	b.WriteString("Subject: Password Recovery\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", account.Name)
	fmt.Fprintf(&b, "Your recovery key is: %s\r\n\r\n", rawKey)
	fmt.Fprintf(&b, "Reset your password at: %s\r\n", recoveryLink)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{*account.Email}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send recovery key mail: %w", err)
	}
	return nil
}
