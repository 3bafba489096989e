package services

import (
	"context"
	"fmt"
	"strings"

	"ridelink/internal/config"
	"ridelink/internal/models"
	"ridelink/pkg/email"
	"ridelink/pkg/logger"
	"ridelink/pkg/sms"
)

// NotificationResult is the tagged outcome of a send attempt. Senders record
// their result here instead of returning an error; the booking flow is never
// blocked by a failed notification.
type NotificationResult struct {
	Success   bool   `json:"success"`
	Skipped   bool   `json:"skipped,omitempty"`
	Fallback  bool   `json:"fallback,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NotificationService dispatches one-shot SMS and email notifications with
// log-and-continue semantics.
type NotificationService struct {
	smsProvider   sms.SMSProvider
	emailProvider email.EmailProvider
	emailConfig   *config.EmailConfig
	logger        *logger.Logger
}

func NewNotificationService(smsProvider sms.SMSProvider, emailProvider email.EmailProvider, emailConfig *config.EmailConfig, log *logger.Logger) *NotificationService {
	return &NotificationService{
		smsProvider:   smsProvider,
		emailProvider: emailProvider,
		emailConfig:   emailConfig,
		logger:        log,
	}
}

// SendSMS delivers a text message. On any transport or provider failure the
// error is swallowed, a manual follow-up warning is logged with the original
// recipient and message, and a fallback result is returned.
func (s *NotificationService) SendSMS(ctx context.Context, to, message string) NotificationResult {
	if s.smsProvider == nil {
		return NotificationResult{Skipped: true, Error: "sms provider not configured"}
	}

	resp, err := s.smsProvider.SendSMS(ctx, &sms.SMSRequest{
		To:      to,
		Message: message,
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"recipient": to,
			"message":   message,
		}).WithError(err).Warn("SMS send failed - manual follow-up needed")

		return NotificationResult{
			Success:  false,
			Fallback: true,
			Error:    err.Error(),
		}
	}

	s.logger.LogNotificationResult("sms", to, true, false, "")
	return NotificationResult{
		Success:   true,
		MessageID: resp.MessageID,
	}
}

// SendEmail delivers a transactional email. Missing provider configuration or
// an obviously invalid recipient short-circuits to a skipped result with no
// network call; any send error is converted to a skipped failure result.
func (s *NotificationService) SendEmail(ctx context.Context, to, subject, message string) NotificationResult {
	if s.emailProvider == nil || !s.emailProvider.Configured() {
		s.logger.LogNotificationResult("email", to, false, true, "email provider not configured")
		return NotificationResult{Skipped: true, Error: "email provider not configured"}
	}

	if !strings.Contains(to, "@") {
		s.logger.LogNotificationResult("email", to, false, true, "invalid recipient address")
		return NotificationResult{Skipped: true, Error: "invalid recipient address"}
	}

	_, err := s.emailProvider.SendEmail(ctx, &email.EmailRequest{
		ToEmail:  to,
		Subject:  subject,
		Message:  message,
		ReplyTo:  s.emailConfig.ReplyTo,
		FromName: s.emailConfig.FromName,
	})
	if err != nil {
		s.logger.LogNotificationResult("email", to, false, false, err.Error())
		return NotificationResult{
			Success: false,
			Skipped: true,
			Error:   err.Error(),
		}
	}

	s.logger.LogNotificationResult("email", to, true, false, "")
	return NotificationResult{Success: true}
}

// SendRideConfirmation fires both confirmation channels for a freshly booked
// ride. Either channel may fail or skip without affecting the other.
func (s *NotificationService) SendRideConfirmation(ctx context.Context, ride *models.Ride, customer *models.CustomerDetails) (smsResult, emailResult NotificationResult) {
	message := fmt.Sprintf(
		"Your RideLink ride %s is confirmed. Pickup: %s. Estimated fare: $%.2f.",
		ride.RideNumber, ride.PickupAddress.Text, ride.EstimatedPrice,
	)

	if customer != nil && customer.Phone != "" {
		smsResult = s.SendSMS(ctx, customer.Phone, message)
	} else {
		smsResult = NotificationResult{Skipped: true, Error: "no phone number on file"}
	}

	if customer != nil && customer.Email != "" {
		emailResult = s.SendEmail(ctx, customer.Email, "Your ride is confirmed", message)
	} else {
		emailResult = NotificationResult{Skipped: true, Error: "no email address on file"}
	}

	return smsResult, emailResult
}
