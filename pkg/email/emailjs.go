package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEmailJSBaseURL = "https://api.emailjs.com"

// EmailJSProvider posts to the EmailJS transactional email HTTP API.
type EmailJSProvider struct {
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	baseURL    string
	httpClient *http.Client
}

func NewEmailJSProvider(serviceID, templateID, publicKey, privateKey string, timeout time.Duration) *EmailJSProvider {
	return &EmailJSProvider{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		privateKey: privateKey,
		baseURL:    defaultEmailJSBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBaseURL overrides the API host, used for testing against a local server.
func (e *EmailJSProvider) WithBaseURL(baseURL string) *EmailJSProvider {
	e.baseURL = baseURL
	return e
}

func (e *EmailJSProvider) Configured() bool {
	return e.serviceID != "" && e.templateID != "" && e.publicKey != "" && e.privateKey != ""
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJSProvider) SendEmail(ctx context.Context, request *EmailRequest) (*EmailResponse, error) {
	payload := emailJSPayload{
		ServiceID:   e.serviceID,
		TemplateID:  e.templateID,
		UserID:      e.publicKey,
		AccessToken: e.privateKey,
		TemplateParams: map[string]string{
			"to_email":  request.ToEmail,
			"subject":   request.Subject,
			"message":   request.Message,
			"reply_to":  request.ReplyTo,
			"from_name": request.FromName,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1.0/email/send", e.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("email request returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	// A 200 is a success whether the body is plain text ("OK") or JSON.
	return &EmailResponse{
		Status: "sent",
		Body:   strings.TrimSpace(string(respBody)),
	}, nil
}
