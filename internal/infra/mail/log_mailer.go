// Package mail provides the account-notice mailer implementations.
package mail

import (
	"context"
	"log/slog"

	"mealbell/internal/domain/service"
)

// logMailer records notices to the log instead of sending real mail.
// Used until an SMTP relay is provisioned for the deployment.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs each notice.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// SendAccountNotice logs the notice. Never fails.
func (m *logMailer) SendAccountNotice(_ context.Context, to, subject, body string) error {
	m.logger.Info("[Mailer] Account notice",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_length", len(body)),
	)

	return nil
}
