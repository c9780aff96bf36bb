package notifier

import "context"

// EmailSender is the capability contract for the email relay. Available
// reports whether the provider is configured; an unavailable sender is
// silently skipped by the fan-out, never treated as a failure.
type EmailSender interface {
	Available() bool
	Send(ctx context.Context, toEmail, templateID string, params map[string]string) error
}

// SMSSender is the capability contract for the SMS provider. The recipient
// must already be in full international form.
type SMSSender interface {
	Available() bool
	Send(ctx context.Context, to, body string) error
}
