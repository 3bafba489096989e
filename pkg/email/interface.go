package email

import "context"

type EmailProvider interface {
	SendEmail(ctx context.Context, request *EmailRequest) (*EmailResponse, error)
	// Configured reports whether the provider has everything it needs to
	// attempt a send. Callers short-circuit instead of erroring when false.
	Configured() bool
}

type EmailRequest struct {
	ToEmail  string `json:"to_email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	ReplyTo  string `json:"reply_to"`
	FromName string `json:"from_name"`
}

type EmailResponse struct {
	Status string `json:"status"`
	Body   string `json:"body,omitempty"`
}
