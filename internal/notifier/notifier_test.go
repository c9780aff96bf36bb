package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"autocare/internal/config"
	"autocare/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		CountryCode: "+61",
		EmailJS: config.EmailJSConfig{
			ServiceID:           "service_test",
			PublicKey:           "pk_test",
			BookingTemplateID:   "tpl_booking",
			ConfirmedTemplateID: "tpl_confirmed",
		},
		Operator: config.OperatorConfig{
			Name:  "AutoCare Mechanic",
			Email: "bookings@autocare.com.au",
			Phone: "0298765432",
		},
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            "a1",
		CustomerName:  "John Smith",
		CustomerEmail: "john@example.com",
		CustomerPhone: "0412345678",
		ServiceType:   "oil-change",
		VehicleInfo:   "2019 Toyota Corolla",
		PreferredDate: "2026-03-09",
		PreferredTime: "09:30",
		NotifyEmail:   true,
		NotifySMS:     true,
		Status:        domain.AppointmentPending,
	}
}

// recordingEmail captures sends without touching the network.
type recordingEmail struct {
	available bool
	fail      bool
	sent      []string // recipient addresses in call order
	templates []string
}

func (r *recordingEmail) Available() bool { return r.available }

func (r *recordingEmail) Send(ctx context.Context, toEmail, templateID string, params map[string]string) error {
	r.sent = append(r.sent, toEmail)
	r.templates = append(r.templates, templateID)
	if r.fail {
		return assert.AnError
	}
	return nil
}

type recordingSMS struct {
	available bool
	fail      bool
	sent      []string // destination numbers in call order
	bodies    []string
}

func (r *recordingSMS) Available() bool { return r.available }

func (r *recordingSMS) Send(ctx context.Context, to, body string) error {
	r.sent = append(r.sent, to)
	r.bodies = append(r.bodies, body)
	if r.fail {
		return assert.AnError
	}
	return nil
}

func TestNotifier_CreatedFanOutOrder(t *testing.T) {
	email := &recordingEmail{available: true}
	sms := &recordingSMS{available: true}

	n := New(email, sms, testConfig(), zerolog.Nop())
	n.AppointmentCreated(context.Background(), testAppointment())

	// operator email, customer email, then customer sms, operator sms
	assert.Equal(t, []string{"bookings@autocare.com.au", "john@example.com"}, email.sent)
	assert.Equal(t, []string{"tpl_booking", "tpl_booking"}, email.templates)
	assert.Equal(t, []string{"+61412345678", "+61298765432"}, sms.sent)
	assert.Contains(t, sms.bodies[0], "John Smith")
}

func TestNotifier_ConfirmedUsesConfirmedTemplate(t *testing.T) {
	email := &recordingEmail{available: true}
	sms := &recordingSMS{available: true}

	n := New(email, sms, testConfig(), zerolog.Nop())
	n.AppointmentConfirmed(context.Background(), testAppointment())

	assert.Equal(t, []string{"tpl_confirmed", "tpl_confirmed"}, email.templates)
	assert.Contains(t, sms.bodies[0], "confirmed")
}

func TestNotifier_RespectsOptOuts(t *testing.T) {
	email := &recordingEmail{available: true}
	sms := &recordingSMS{available: true}

	n := New(email, sms, testConfig(), zerolog.Nop())

	a := testAppointment()
	a.NotifyEmail = false
	a.NotifySMS = false
	n.AppointmentCreated(context.Background(), a)

	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
}

func TestNotifier_SkipsUnavailableProviders(t *testing.T) {
	email := &recordingEmail{available: false}
	sms := &recordingSMS{available: false}

	n := New(email, sms, testConfig(), zerolog.Nop())
	n.AppointmentCreated(context.Background(), testAppointment())

	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
}

func TestNotifier_EmailFailureStillSendsSMS(t *testing.T) {
	email := &recordingEmail{available: true, fail: true}
	sms := &recordingSMS{available: true}

	n := New(email, sms, testConfig(), zerolog.Nop())
	n.AppointmentCreated(context.Background(), testAppointment())

	// both email attempts were made despite the first failing
	assert.Len(t, email.sent, 2)
	assert.Len(t, sms.sent, 2)
}

func TestNotifier_BadOperatorNumberStillSendsCustomerSMS(t *testing.T) {
	email := &recordingEmail{available: true}
	sms := &recordingSMS{available: true}

	cfg := testConfig()
	cfg.Operator.Phone = "not a number"

	n := New(email, sms, cfg, zerolog.Nop())
	n.AppointmentCreated(context.Background(), testAppointment())

	assert.Equal(t, []string{"+61412345678"}, sms.sent)
}

func TestEmailJSSender_Send(t *testing.T) {
	var captured struct {
		ServiceID      string            `json:"service_id"`
		TemplateID     string            `json:"template_id"`
		UserID         string            `json:"user_id"`
		TemplateParams map[string]string `json:"template_params"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewEmailJSSender(testConfig().EmailJS, zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "john@example.com", "tpl_booking", map[string]string{
		"customer_name": "John Smith",
	})

	assert.NoError(t, err)
	assert.Equal(t, "service_test", captured.ServiceID)
	assert.Equal(t, "tpl_booking", captured.TemplateID)
	assert.Equal(t, "pk_test", captured.UserID)
	assert.Equal(t, "john@example.com", captured.TemplateParams["to_email"])
	assert.Equal(t, "John Smith", captured.TemplateParams["customer_name"])
}

func TestEmailJSSender_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewEmailJSSender(testConfig().EmailJS, zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "john@example.com", "tpl_booking", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestTwilioSender_Send(t *testing.T) {
	var gotForm map[string]string
	var gotAuthUser string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/Accounts/AC123/Messages.json")
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		gotAuthUser = user

		assert.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"sid": "SM1", "status": "queued"})
	}))
	defer srv.Close()

	s := NewTwilioSender(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+61400000000",
	}, zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "+61412345678", "Hi John, see you Monday")

	assert.NoError(t, err)
	assert.Equal(t, "AC123", gotAuthUser)
	assert.Equal(t, "+61412345678", gotForm["To"])
	assert.Equal(t, "+61400000000", gotForm["From"])
	assert.Equal(t, "Hi John, see you Monday", gotForm["Body"])
}

func TestTwilioSender_BodyLengthCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewTwilioSender(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+61400000000",
	}, zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "+61412345678", strings.Repeat("x", 1601))
	assert.Error(t, err)

	// the cap counts characters, not bytes: 1600 two-byte runes must pass
	err = s.Send(context.Background(), "+61412345678", strings.Repeat("é", 1600))
	assert.NoError(t, err)
}
