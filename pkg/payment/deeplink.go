package payment

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Method is the set of peer-to-peer payment apps the product can deep-link to.
type Method int

const (
	MethodUnsupported Method = iota
	MethodVenmo
	MethodCashApp
	MethodPayPal
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrInvalidAmount     = errors.New("amount must be a positive finite number")
)

func ParseMethod(id string) Method {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "venmo":
		return MethodVenmo
	case "cashapp":
		return MethodCashApp
	case "paypal":
		return MethodPayPal
	default:
		return MethodUnsupported
	}
}

func (m Method) String() string {
	switch m {
	case MethodVenmo:
		return "venmo"
	case MethodCashApp:
		return "cashapp"
	case MethodPayPal:
		return "paypal"
	default:
		return "unsupported"
	}
}

// LinkGenerator builds payment deep links against a single configured set of
// recipient handles.
type LinkGenerator struct {
	VenmoHandle  string
	CashTag      string
	PayPalHandle string
}

const paymentNotePhrase = "thanks for riding with RideLink!"

// Generate maps a payment method, amount and ride id to a deep-link URL.
// Amounts that are not positive finite numbers are rejected up front rather
// than silently embedded into the URL.
func (g *LinkGenerator) Generate(method Method, amount float64, rideID string) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", ErrInvalidAmount
	}

	amountStr := strconv.FormatFloat(amount, 'f', -1, 64)
	note := url.QueryEscape(fmt.Sprintf("Ride %s - %s", rideID, paymentNotePhrase))

	switch method {
	case MethodVenmo:
		return fmt.Sprintf("venmo://paycharge?txn=pay&recipients=%s&amount=%s&note=%s",
			url.QueryEscape(g.VenmoHandle), amountStr, note), nil
	case MethodCashApp:
		return fmt.Sprintf("https://cash.app/$%s/%s?note=%s", g.CashTag, amountStr, note), nil
	case MethodPayPal:
		// PayPal.me has no note support; the amount rides in the path.
		return fmt.Sprintf("https://paypal.me/%s/%s", g.PayPalHandle, amountStr), nil
	default:
		return "", ErrUnsupportedMethod
	}
}
