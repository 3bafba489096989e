package config

type PaymentConfig struct {
	VenmoHandle  string `yaml:"venmo_handle"`
	CashTag      string `yaml:"cash_tag"`
	PayPalHandle string `yaml:"paypal_handle"`
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		VenmoHandle:  getEnv("PAYMENT_VENMO_HANDLE", ""),
		CashTag:      getEnv("PAYMENT_CASH_TAG", ""),
		PayPalHandle: getEnv("PAYMENT_PAYPAL_HANDLE", ""),
	}
}
