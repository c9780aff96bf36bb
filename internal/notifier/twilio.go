package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"autocare/internal/config"
)

const (
	twilioBaseURL = "https://api.twilio.com"

	// single-message body cap imposed by the provider
	maxSMSLength = 1600
)

// TwilioSender delivers SMS through the Twilio Messages API.
type TwilioSender struct {
	cfg     config.TwilioConfig
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewTwilioSender(cfg config.TwilioConfig, log zerolog.Logger) *TwilioSender {
	return &TwilioSender{
		cfg:     cfg,
		baseURL: twilioBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("provider", "twilio").Logger(),
	}
}

func (s *TwilioSender) Available() bool {
	return s.cfg.Configured()
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if body == "" {
		return fmt.Errorf("empty message body")
	}
	if n := utf8.RuneCountInString(body); n > maxSMSLength {
		return fmt.Errorf("message too long: %d characters", n)
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		SID    string `json:"sid"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(respBody, &result)
	s.log.Debug().Str("sid", result.SID).Str("status", result.Status).Str("to", to).Msg("sms accepted")
	return nil
}
