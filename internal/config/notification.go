package config

import "time"

type NotificationConfig struct {
	Twilio  *TwilioConfig `yaml:"twilio"`
	Email   *EmailConfig  `yaml:"email"`
	Timeout time.Duration `yaml:"timeout"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type EmailConfig struct {
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
	PrivateKey string `yaml:"private_key"`
	FromName   string `yaml:"from_name"`
	ReplyTo    string `yaml:"reply_to"`
}

func loadNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		Twilio: &TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},
		Email: &EmailConfig{
			ServiceID:  getEnv("EMAIL_SERVICE_ID", ""),
			TemplateID: getEnv("EMAIL_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAIL_PUBLIC_KEY", ""),
			PrivateKey: getEnv("EMAIL_PRIVATE_KEY", ""),
			FromName:   getEnv("EMAIL_FROM_NAME", "RideLink"),
			ReplyTo:    getEnv("EMAIL_REPLY_TO", "support@ridelink.app"),
		},
		Timeout: getEnvAsDuration("NOTIFICATION_TIMEOUT", 10*time.Second),
	}
}
