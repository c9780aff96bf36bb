// Package notifier implements the best-effort, multi-channel delivery
// attempts fired on appointment creation and confirmation. Delivery is a
// non-critical side channel: every failure is logged and swallowed, nothing
// is retried, and the caller is never blocked on a result.
package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"autocare/internal/config"
	"autocare/internal/domain"
	"autocare/internal/metrics"
	"autocare/internal/pkg/phone"
)

type Event string

const (
	EventCreated   Event = "created"
	EventConfirmed Event = "confirmed"
)

type Notifier struct {
	email EmailSender
	sms   SMSSender

	emailCfg    config.EmailJSConfig
	operator    config.OperatorConfig
	countryCode string

	log zerolog.Logger
}

func New(email EmailSender, sms SMSSender, cfg *config.Config, log zerolog.Logger) *Notifier {
	return &Notifier{
		email:       email,
		sms:         sms,
		emailCfg:    cfg.EmailJS,
		operator:    cfg.Operator,
		countryCode: cfg.CountryCode,
		log:         log.With().Str("component", "notifier").Logger(),
	}
}

// AppointmentCreated runs the fan-out for a freshly persisted appointment.
func (n *Notifier) AppointmentCreated(ctx context.Context, a *domain.Appointment) {
	n.dispatch(ctx, EventCreated, a)
}

// AppointmentConfirmed runs the fan-out after an administrator confirms.
// Calling it again for an already-confirmed appointment sends again: the
// fan-out is re-entrant per call, not guarded.
func (n *Notifier) AppointmentConfirmed(ctx context.Context, a *domain.Appointment) {
	n.dispatch(ctx, EventConfirmed, a)
}

// dispatch attempts each opted-in channel in a fixed order: email to the
// operator, email to the customer, SMS to the customer, SMS to the operator.
// An unavailable provider is a silent skip; a send error is logged and the
// sequence continues.
func (n *Notifier) dispatch(ctx context.Context, event Event, a *domain.Appointment) {
	templateID := n.templateFor(event)

	if a.NotifyEmail {
		if n.email.Available() && templateID != "" {
			n.sendEmail(ctx, event, "email_operator", n.operator.Email, templateID, a)
			n.sendEmail(ctx, event, "email_customer", a.CustomerEmail, templateID, a)
		} else {
			metrics.IncNotification("email_operator", "skipped")
			metrics.IncNotification("email_customer", "skipped")
		}
	}

	if a.NotifySMS {
		if n.sms.Available() {
			n.sendSMS(ctx, event, "sms_customer", a.CustomerPhone, customerSMSBody(event, a))
			n.sendSMS(ctx, event, "sms_operator", n.operator.Phone, operatorSMSBody(event, a))
		} else {
			metrics.IncNotification("sms_customer", "skipped")
			metrics.IncNotification("sms_operator", "skipped")
		}
	}
}

func (n *Notifier) templateFor(event Event) string {
	if event == EventConfirmed {
		return n.emailCfg.ConfirmedTemplateID
	}
	return n.emailCfg.BookingTemplateID
}

func (n *Notifier) sendEmail(ctx context.Context, event Event, channel, to, templateID string, a *domain.Appointment) {
	if to == "" {
		metrics.IncNotification(channel, "skipped")
		return
	}

	if err := n.email.Send(ctx, to, templateID, templateParams(a)); err != nil {
		metrics.IncNotification(channel, "failed")
		n.log.Warn().Err(err).
			Str("event", string(event)).
			Str("channel", channel).
			Str("appointment_id", a.ID).
			Msg("email delivery failed")
		return
	}
	metrics.IncNotification(channel, "sent")
}

func (n *Notifier) sendSMS(ctx context.Context, event Event, channel, rawNumber, body string) {
	if rawNumber == "" {
		metrics.IncNotification(channel, "skipped")
		return
	}

	to, err := phone.FormatE164(rawNumber, n.countryCode)
	if err != nil {
		metrics.IncNotification(channel, "failed")
		n.log.Warn().Err(err).
			Str("event", string(event)).
			Str("channel", channel).
			Msg("sms number rejected")
		return
	}

	if err := n.sms.Send(ctx, to, body); err != nil {
		metrics.IncNotification(channel, "failed")
		n.log.Warn().Err(err).
			Str("event", string(event)).
			Str("channel", channel).
			Msg("sms delivery failed")
		return
	}
	metrics.IncNotification(channel, "sent")
}

func templateParams(a *domain.Appointment) map[string]string {
	return map[string]string{
		"customer_name":    a.CustomerName,
		"customer_email":   a.CustomerEmail,
		"customer_phone":   a.CustomerPhone,
		"service_type":     a.ServiceType,
		"vehicle_info":     a.VehicleInfo,
		"preferred_date":   a.PreferredDate,
		"preferred_time":   a.PreferredTime,
		"additional_notes": a.AdditionalNotes,
		"status":           string(a.Status),
	}
}

func customerSMSBody(event Event, a *domain.Appointment) string {
	if event == EventConfirmed {
		return fmt.Sprintf(
			"Hi %s, your %s appointment on %s at %s is confirmed. See you then! - AutoCare Mechanic",
			a.CustomerName, a.ServiceType, a.PreferredDate, a.PreferredTime,
		)
	}
	return fmt.Sprintf(
		"Hi %s, we received your %s booking for %s at %s. We'll confirm within 24 hours. - AutoCare Mechanic",
		a.CustomerName, a.ServiceType, a.PreferredDate, a.PreferredTime,
	)
}

func operatorSMSBody(event Event, a *domain.Appointment) string {
	if event == EventConfirmed {
		return fmt.Sprintf(
			"Confirmed: %s, %s, %s %s",
			a.CustomerName, a.ServiceType, a.PreferredDate, a.PreferredTime,
		)
	}
	return fmt.Sprintf(
		"New booking: %s, %s, %s %s, %s, %s",
		a.CustomerName, a.ServiceType, a.PreferredDate, a.PreferredTime, a.VehicleInfo, a.CustomerPhone,
	)
}
