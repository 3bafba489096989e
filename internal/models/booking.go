package models

import "time"

type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingProgressSnapshot captures in-flight booking form state so a client
// can restore it after a remount. It lives in process memory only.
type BookingProgressSnapshot struct {
	PickupAddress         string           `json:"pickup_address"`
	DestinationAddress    string           `json:"destination_address"`
	PriceEstimate         *PriceEstimate   `json:"price_estimate,omitempty"`
	CustomerDetails       *CustomerDetails `json:"customer_details,omitempty"`
	IsScheduled           bool             `json:"is_scheduled"`
	ScheduledDateTime     *time.Time       `json:"scheduled_date_time,omitempty"`
	SelectedPaymentMethod string           `json:"selected_payment_method,omitempty"`
	SavedAt               time.Time        `json:"saved_at"`
}

// HasContent reports whether the snapshot carries anything worth saving.
func (s *BookingProgressSnapshot) HasContent() bool {
	return s.PickupAddress != "" || s.DestinationAddress != "" || s.PriceEstimate != nil
}
