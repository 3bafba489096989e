package models

import "encoding/json"

// RouteEstimate is produced fresh per pricing request and never cached.
// Geometry carries the raw route path from the routing provider for display;
// it is nil when the estimate came from the straight-line fallback.
type RouteEstimate struct {
	DistanceMiles   float64         `json:"distance_miles"`
	DurationMinutes float64         `json:"duration_minutes"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
}

type PriceEstimate struct {
	DistanceMiles    float64 `json:"distance_miles" bson:"distance_miles"`
	EstimatedMinutes float64 `json:"estimated_minutes" bson:"estimated_minutes"`
	BasePrice        float64 `json:"base_price" bson:"base_price"`
	FinalPrice       float64 `json:"final_price" bson:"final_price"`
	Savings          float64 `json:"savings" bson:"savings"`
}
