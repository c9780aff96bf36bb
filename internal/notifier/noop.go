package notifier

import "context"

// NoopEmailSender stands in when the email relay is unconfigured.
type NoopEmailSender struct{}

func (NoopEmailSender) Available() bool { return false }

func (NoopEmailSender) Send(ctx context.Context, toEmail, templateID string, params map[string]string) error {
	return nil
}

// NoopSMSSender stands in when the SMS provider is unconfigured.
type NoopSMSSender struct{}

func (NoopSMSSender) Available() bool { return false }

func (NoopSMSSender) Send(ctx context.Context, to, body string) error {
	return nil
}
