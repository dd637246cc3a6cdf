package communication

import (
	"context"
	"fmt"
	"os"

	"qurocare.com/alms/core"
	"qurocare.com/alms/infrastructure/devops"
)

// NewMailer builds the configured core.Notifier implementation.
func NewMailer(ctx context.Context, cfg devops.Config) (core.Notifier, error) {
	switch cfg.Mailer {
	case "", "smtp":
		return NewSMTPMailer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			os.Getenv("ALMS_SMTP_PASSWORD"),
			cfg.SMTP.From,
		), nil
	case "ses":
		return NewSESMailer(ctx, cfg.SES.From)
	default:
		return nil, fmt.Errorf("unknown mailer %q", cfg.Mailer)
	}
}
