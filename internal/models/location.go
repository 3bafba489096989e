package models

// Coordinate is an immutable latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"required"`
}

// Address pairs a display address with its resolved coordinate.
type Address struct {
	Text       string     `json:"text" bson:"text"`
	Coordinate Coordinate `json:"coordinate" bson:"coordinate"`
}
