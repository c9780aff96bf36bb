package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"autocare/internal/config"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSender delivers templated email through the EmailJS form relay.
type EmailJSSender struct {
	cfg     config.EmailJSConfig
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewEmailJSSender(cfg config.EmailJSConfig, log zerolog.Logger) *EmailJSSender {
	return &EmailJSSender{
		cfg:     cfg,
		baseURL: emailJSEndpoint,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("provider", "emailjs").Logger(),
	}
}

func (s *EmailJSSender) Available() bool {
	return s.cfg.Configured()
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSSender) Send(ctx context.Context, toEmail, templateID string, params map[string]string) error {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["to_email"] = toEmail

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         s.cfg.PublicKey,
		TemplateParams: merged,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// response body is inspected only for logging
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, string(respBody))
	}

	s.log.Debug().Str("template_id", templateID).Str("to", toEmail).Msg("email accepted")
	return nil
}
