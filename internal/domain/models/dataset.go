package models

// City is a serviced location. Loaded once, immutable.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name_en"`
}

// Area is a boarding/alighting point inside a city. Coordinates are optional;
// the map simply skips markers without them.
type Area struct {
	ID          string   `json:"id"`
	CityID      string   `json:"city_id"`
	Name        string   `json:"name_en"`
	StationName string   `json:"station_name"`
	Street      string   `json:"street_en"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Route connects exactly two cities, directional.
type Route struct {
	RouteID       string  `json:"route_id"`
	OriginID      string  `json:"origin_id"`
	DestinationID string  `json:"destination_id"`
	DistanceKM    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
}

// Bus carries the vehicle attributes joined onto trips. Features is an
// unordered set of capability tags ("A/C", "WiFi", ...).
type Bus struct {
	BusID      string   `json:"bus_id"`
	Rating     float64  `json:"rating"`
	Features   []string `json:"features"`
	DriverName string   `json:"driver_name"`
}

// Trip is a scheduled departure on one route, operated by one bus.
type Trip struct {
	TripID         string  `json:"trip_id"`
	RouteID        string  `json:"route_id"`
	BusID          string  `json:"bus_id"`
	DepartureDate  string  `json:"departure_date"`
	DepartureTime  string  `json:"departure_time"`
	AvailableSeats int     `json:"available_seats"`
	Price          float64 `json:"price_JOD"`
}

// User is a dataset account. Demo datasets ship plaintext passwords; the
// session service also accepts bcrypt hashes in the password field.
type User struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	Balance  float64 `json:"balance"`
}

// Dataset is the raw shape of the bus data document.
type Dataset struct {
	Cities []City  `json:"cities"`
	Areas  []Area  `json:"areas"`
	Routes []Route `json:"routes"`
	Buses  []Bus   `json:"buses"`
	Trips  []Trip  `json:"trips"`
	Users  []User  `json:"users"`
}
