package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type EmailJSConfig struct {
	Endpoint          string
	ServiceID         string
	OrderTemplateID   string
	ContactTemplateID string
	PublicKey         string
	PrivateKey        string
	Timeout           time.Duration
}

// EmailJSSender posts templated emails to the EmailJS REST API.
type EmailJSSender struct {
	cfg    EmailJSConfig
	client *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSSender(cfg EmailJSConfig) *EmailJSSender {
	return &EmailJSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *EmailJSSender) Send(ctx context.Context, email Email) error {
	templateID, err := s.templateID(email.Template)
	if err != nil {
		return err
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         s.cfg.PublicKey,
		AccessToken:    s.cfg.PrivateKey,
		TemplateParams: email.Params,
	})
	if err != nil {
		return fmt.Errorf("encoding emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}

// The contact form shares the order template when it has none of its own.
func (s *EmailJSSender) templateID(t Template) (string, error) {
	switch t {
	case TemplateOrder:
		return s.cfg.OrderTemplateID, nil
	case TemplateContact:
		if s.cfg.ContactTemplateID != "" {
			return s.cfg.ContactTemplateID, nil
		}
		return s.cfg.OrderTemplateID, nil
	default:
		return "", fmt.Errorf("unknown email template %q", t)
	}
}
