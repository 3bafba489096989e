package config

type PricingConfig struct {
	BaseFare        float64 `yaml:"base_fare"`
	PerMile         float64 `yaml:"per_mile"`
	PerMinute       float64 `yaml:"per_minute"`
	DiscountPercent float64 `yaml:"discount_percent"`
	SurgeMultiplier float64 `yaml:"surge_multiplier"`
}

func loadPricingConfig() *PricingConfig {
	return &PricingConfig{
		BaseFare:        getEnvAsFloat64("PRICING_BASE_FARE", 2.50),
		PerMile:         getEnvAsFloat64("PRICING_PER_MILE", 1.75),
		PerMinute:       getEnvAsFloat64("PRICING_PER_MINUTE", 0.35),
		DiscountPercent: getEnvAsFloat64("PRICING_DISCOUNT_PERCENT", 20),
		SurgeMultiplier: getEnvAsFloat64("PRICING_SURGE_MULTIPLIER", 1.0),
	}
}
