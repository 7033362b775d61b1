package service

import (
	"context"
)

// Mailer defines the interface for account-lifecycle email notices.
// Sends are fire-and-forget; callers log failures and move on.
type Mailer interface {
	// SendAccountNotice sends a plain-text notice to the given address.
	SendAccountNotice(ctx context.Context, to, subject, body string) error
}
