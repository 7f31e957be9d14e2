package models

// EnrichedTrip is a Trip decorated with the joined route, city, area and bus
// attributes. Derived on every query, never persisted. Fields whose foreign
// key does not resolve stay zero-valued; enrichment is best-effort per field.
type EnrichedTrip struct {
	Trip

	OriginName      string `json:"origin_name,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`

	OriginStation      string   `json:"origin_station,omitempty"`
	OriginStreet       string   `json:"origin_street,omitempty"`
	OriginLat          *float64 `json:"origin_lat,omitempty"`
	OriginLng          *float64 `json:"origin_lng,omitempty"`
	DestinationStation string   `json:"destination_station,omitempty"`
	DestinationStreet  string   `json:"destination_street,omitempty"`
	DestinationLat     *float64 `json:"destination_lat,omitempty"`
	DestinationLng     *float64 `json:"destination_lng,omitempty"`

	DistanceKM    float64 `json:"distance_km,omitempty"`
	DurationHours float64 `json:"duration_hours,omitempty"`

	Rating     float64  `json:"rating"`
	Features   []string `json:"features"`
	DriverName string   `json:"driver_name"`
}

// Sort orders accepted by the query engine.
const (
	SortDeparture = "departure"
	SortPrice     = "price"
	SortRating    = "rating"
	SortAvailable = "available"
)

// Criteria holds the optional filters and ordering for a trip query. Zero
// values are no-ops; From/To are hard preconditions for matching.
type Criteria struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Date     string   `json:"date"`
	SortBy   string   `json:"sortBy"`
	Features []string `json:"filters"`
}
