package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ridelink/internal/config"
	"ridelink/pkg/email"
	"ridelink/pkg/sms"

	"github.com/stretchr/testify/assert"
)

type stubSMSProvider struct {
	err   error
	calls int
}

func (s *stubSMSProvider) SendSMS(ctx context.Context, request *sms.SMSRequest) (*sms.SMSResponse, error) {
	s.calls++
	if s.err != nil {
		return &sms.SMSResponse{Status: "failed", Error: s.err.Error()}, s.err
	}
	return &sms.SMSResponse{MessageID: "SM123", Status: "queued"}, nil
}

func testEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		ServiceID:  "svc",
		TemplateID: "tpl",
		PublicKey:  "pub",
		PrivateKey: "priv",
		FromName:   "RideLink",
		ReplyTo:    "support@ridelink.app",
	}
}

func TestSendSMSSuccess(t *testing.T) {
	provider := &stubSMSProvider{}
	s := NewNotificationService(provider, nil, testEmailConfig(), newTestLogger(t))

	result := s.SendSMS(context.Background(), "+14235550100", "your ride is confirmed")

	assert.True(t, result.Success)
	assert.Equal(t, "SM123", result.MessageID)
	assert.Equal(t, 1, provider.calls)
}

func TestSendSMSFailureNeverPropagates(t *testing.T) {
	provider := &stubSMSProvider{err: errors.New("twilio: 20003 authentication error")}
	s := NewNotificationService(provider, nil, testEmailConfig(), newTestLogger(t))

	result := s.SendSMS(context.Background(), "+14235550100", "your ride is confirmed")

	assert.False(t, result.Success)
	assert.True(t, result.Fallback)
	assert.Contains(t, result.Error, "20003")
}

func TestSendSMSWithoutProviderSkips(t *testing.T) {
	s := NewNotificationService(nil, nil, testEmailConfig(), newTestLogger(t))

	result := s.SendSMS(context.Background(), "+14235550100", "hi")

	assert.False(t, result.Success)
	assert.True(t, result.Skipped)
}

func TestSendEmailSkipsWhenUnconfigured(t *testing.T) {
	provider := email.NewEmailJSProvider("", "tpl", "pub", "priv", time.Second)
	s := NewNotificationService(nil, provider, testEmailConfig(), newTestLogger(t))

	result := s.SendEmail(context.Background(), "rider@example.com", "subject", "body")

	assert.True(t, result.Skipped)
	assert.False(t, result.Success)
}

func TestSendEmailRejectsBadRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call should be made for an invalid recipient")
	}))
	defer server.Close()

	provider := email.NewEmailJSProvider("svc", "tpl", "pub", "priv", time.Second).WithBaseURL(server.URL)
	s := NewNotificationService(nil, provider, testEmailConfig(), newTestLogger(t))

	result := s.SendEmail(context.Background(), "not-an-email", "subject", "body")

	assert.True(t, result.Skipped)
	assert.Contains(t, result.Error, "invalid recipient")
}

func TestSendEmailPlainTextOKIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	provider := email.NewEmailJSProvider("svc", "tpl", "pub", "priv", time.Second).WithBaseURL(server.URL)
	s := NewNotificationService(nil, provider, testEmailConfig(), newTestLogger(t))

	result := s.SendEmail(context.Background(), "rider@example.com", "subject", "body")

	assert.True(t, result.Success)
}

func TestSendEmailJSONBodyIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"sent"}`))
	}))
	defer server.Close()

	provider := email.NewEmailJSProvider("svc", "tpl", "pub", "priv", time.Second).WithBaseURL(server.URL)
	s := NewNotificationService(nil, provider, testEmailConfig(), newTestLogger(t))

	result := s.SendEmail(context.Background(), "rider@example.com", "subject", "body")

	assert.True(t, result.Success)
}

func TestSendEmailServerErrorBecomesSkippedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	provider := email.NewEmailJSProvider("svc", "tpl", "pub", "priv", time.Second).WithBaseURL(server.URL)
	s := NewNotificationService(nil, provider, testEmailConfig(), newTestLogger(t))

	result := s.SendEmail(context.Background(), "rider@example.com", "subject", "body")

	assert.False(t, result.Success)
	assert.True(t, result.Skipped)
	assert.Contains(t, result.Error, "502")
}
