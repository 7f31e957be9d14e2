package services

import (
	"encoding/json"
	"testing"

	"busjo/internal/dataset"
	"busjo/internal/domain/models"
)

func ptr(v float64) *float64 { return &v }

func testData() *dataset.Store {
	return dataset.NewStore(dataset.New(models.Dataset{
		Cities: []models.City{
			{ID: "C1", Name: "Amman"},
			{ID: "C2", Name: "Irbid"},
			{ID: "C3", Name: "Aqaba"},
		},
		Areas: []models.Area{
			{ID: "A1", CityID: "C1", StationName: "Abdali Terminal", Street: "King Hussein St", Lat: ptr(31.96), Lng: ptr(35.91)},
			{ID: "A2", CityID: "C1", StationName: "South Bus Station", Street: "Ali Bin Abi Taleb St", Lat: ptr(31.93), Lng: ptr(35.93)},
			{ID: "A3", CityID: "C2", StationName: "Irbid New Terminal", Street: "Palestine St"},
		},
		Routes: []models.Route{
			{RouteID: "R1", OriginID: "C1", DestinationID: "C2", DistanceKM: 85, DurationHours: 1.5},
			{RouteID: "R2", OriginID: "C2", DestinationID: "C1", DistanceKM: 85, DurationHours: 1.5},
		},
		Buses: []models.Bus{
			{BusID: "B1", Rating: 4.5, Features: []string{"A/C", "WiFi"}, DriverName: "Mahmoud"},
			{BusID: "B2", Rating: 3.9, Features: []string{"A/C"}, DriverName: "Omar"},
		},
		Trips: []models.Trip{
			{TripID: "T1", RouteID: "R1", BusID: "B1", DepartureDate: "2025-11-20", DepartureTime: "08:00", AvailableSeats: 30, Price: 3.5},
			{TripID: "T2", RouteID: "R1", BusID: "B2", DepartureDate: "2025-11-21", DepartureTime: "10:30", AvailableSeats: 12, Price: 2.75},
			{TripID: "T3", RouteID: "R2", BusID: "B1", DepartureDate: "2025-11-20", DepartureTime: "16:00", AvailableSeats: 25, Price: 3.5},
			{TripID: "T4", RouteID: "R1", BusID: "missing-bus", DepartureDate: "2025-11-20", DepartureTime: "12:00", AvailableSeats: 8, Price: 2.75},
		},
	}))
}

func TestMatchNoConnectingRoute(t *testing.T) {
	svc := TripService{Data: testData()}

	if got := svc.Match("C1", "C3"); len(got) != 0 {
		t.Fatalf("expected no trips for unconnected pair, got %d", len(got))
	}
	if got := svc.Match("", "C2"); got != nil {
		t.Fatalf("expected nil for missing origin, got %v", got)
	}
	if got := svc.Match("C1", ""); got != nil {
		t.Fatalf("expected nil for missing destination, got %v", got)
	}
}

func TestMatchKeepsDatasetOrder(t *testing.T) {
	svc := TripService{Data: testData()}

	got := svc.Match("C1", "C2")
	want := []string{"T1", "T2", "T4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d trips, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].TripID != id {
			t.Fatalf("trip %d: expected %s, got %s", i, id, got[i].TripID)
		}
	}
}

func TestEnrichIsAdditive(t *testing.T) {
	svc := TripService{Data: testData()}

	trip := models.Trip{TripID: "T1", RouteID: "R1", BusID: "B1", DepartureDate: "2025-11-20", DepartureTime: "08:00", AvailableSeats: 30, Price: 3.5}
	got := svc.Enrich(trip)

	if got.Trip != trip {
		t.Fatalf("enrichment changed original trip fields: %+v", got.Trip)
	}
	if got.OriginName != "Amman" || got.DestinationName != "Irbid" {
		t.Fatalf("wrong city names: %q -> %q", got.OriginName, got.DestinationName)
	}
	if got.OriginStation != "Abdali Terminal" {
		t.Fatalf("expected default (first) origin area, got %q", got.OriginStation)
	}
	if got.DistanceKM != 85 || got.DurationHours != 1.5 {
		t.Fatalf("route attributes not joined: %v %v", got.DistanceKM, got.DurationHours)
	}
	if got.Rating != 4.5 || got.DriverName != "Mahmoud" || len(got.Features) != 2 {
		t.Fatalf("bus attributes not joined: %+v", got)
	}
}

func TestEnrichBoardingOverrideWins(t *testing.T) {
	svc := TripService{
		Data:              testData(),
		BoardingOverrides: map[string]string{"R1": "A2"},
	}

	got := svc.Enrich(models.Trip{TripID: "T1", RouteID: "R1", BusID: "B1"})
	if got.OriginStation != "South Bus Station" {
		t.Fatalf("override ignored, got %q", got.OriginStation)
	}

	// Unknown override area falls back to the default city area.
	svc.BoardingOverrides = map[string]string{"R1": "missing"}
	got = svc.Enrich(models.Trip{TripID: "T1", RouteID: "R1", BusID: "B1"})
	if got.OriginStation != "Abdali Terminal" {
		t.Fatalf("expected fallback to default area, got %q", got.OriginStation)
	}
}

func TestEnrichUnresolvedForeignKeys(t *testing.T) {
	svc := TripService{Data: testData()}

	got := svc.Enrich(models.Trip{TripID: "TX", RouteID: "missing-route", BusID: "missing-bus", Price: 9})
	if got.OriginName != "" || got.DestinationName != "" || got.OriginStation != "" {
		t.Fatalf("unresolved route should leave fields empty: %+v", got)
	}
	if got.Rating != 0 || got.DriverName != "" {
		t.Fatalf("unresolved bus should default rating/driver: %+v", got)
	}
	if got.Features == nil || len(got.Features) != 0 {
		t.Fatalf("unresolved bus should default features to empty set: %v", got.Features)
	}
	if got.Price != 9 {
		t.Fatalf("trip fields must survive failed joins: %v", got.Price)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	svc := TripService{Data: testData()}
	trip := models.Trip{TripID: "T1", RouteID: "R1", BusID: "B1", Price: 3.5}

	first, err := json.Marshal(svc.Enrich(trip))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(svc.Enrich(trip))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("enrichment not deterministic:\n%s\n%s", first, second)
	}
}

func TestQueryEmptyFeatureSetIsIdentity(t *testing.T) {
	svc := TripService{Data: testData()}

	plain := svc.Query(models.Criteria{From: "C1", To: "C2"})
	withEmpty := svc.Query(models.Criteria{From: "C1", To: "C2", Features: []string{}})
	if len(plain.Trips) != len(withEmpty.Trips) {
		t.Fatalf("empty feature filter changed result: %d vs %d", len(plain.Trips), len(withEmpty.Trips))
	}
	for i := range plain.Trips {
		if plain.Trips[i].TripID != withEmpty.Trips[i].TripID {
			t.Fatalf("trip %d differs: %s vs %s", i, plain.Trips[i].TripID, withEmpty.Trips[i].TripID)
		}
	}
}

func TestQueryFeatureSuperset(t *testing.T) {
	svc := TripService{Data: testData()}

	result := svc.Query(models.Criteria{From: "C1", To: "C2", Features: []string{"A/C", "WiFi"}})
	if len(result.Trips) != 1 || result.Trips[0].TripID != "T1" {
		t.Fatalf("expected only T1 to carry A/C+WiFi, got %+v", result.Trips)
	}
}

func TestQueryDateExactMatch(t *testing.T) {
	svc := TripService{Data: testData()}

	result := svc.Query(models.Criteria{From: "C1", To: "C2", Date: "2025-11-21"})
	if len(result.Trips) != 1 || result.Trips[0].TripID != "T2" {
		t.Fatalf("expected only T2 on 2025-11-21, got %+v", result.Trips)
	}
}

func TestQueryPriceSortNonDecreasing(t *testing.T) {
	svc := TripService{Data: testData()}

	result := svc.Query(models.Criteria{From: "C1", To: "C2", SortBy: models.SortPrice})
	for i := 1; i < len(result.Trips); i++ {
		if result.Trips[i-1].Price > result.Trips[i].Price {
			t.Fatalf("price order violated at %d: %v > %v", i, result.Trips[i-1].Price, result.Trips[i].Price)
		}
	}
	// Equal prices keep input order: T2 before T4.
	if result.Trips[0].TripID != "T2" || result.Trips[1].TripID != "T4" {
		t.Fatalf("stable tie-break violated: %s, %s", result.Trips[0].TripID, result.Trips[1].TripID)
	}
}

func TestQueryRatingSortMissingTreatedAsZero(t *testing.T) {
	svc := TripService{Data: testData()}

	result := svc.Query(models.Criteria{From: "C1", To: "C2", SortBy: models.SortRating})
	if result.Trips[0].TripID != "T1" {
		t.Fatalf("expected highest rated first, got %s", result.Trips[0].TripID)
	}
	last := result.Trips[len(result.Trips)-1]
	if last.TripID != "T4" || last.Rating != 0 {
		t.Fatalf("expected unresolved bus (rating 0) last, got %+v", last)
	}
}

func TestQueryAvailableSortDescending(t *testing.T) {
	svc := TripService{Data: testData()}

	result := svc.Query(models.Criteria{From: "C1", To: "C2", SortBy: models.SortAvailable})
	for i := 1; i < len(result.Trips); i++ {
		if result.Trips[i-1].AvailableSeats < result.Trips[i].AvailableSeats {
			t.Fatalf("seat order violated at %d", i)
		}
	}
}

func TestQuerySignalsNoMatchDistinctFromNeverSearched(t *testing.T) {
	svc := TripService{Data: testData()}

	never := svc.Query(models.Criteria{From: "", To: "C2"})
	if never.Searched || never.NoMatch {
		t.Fatalf("missing city must mean not searched: %+v", never)
	}

	empty := svc.Query(models.Criteria{From: "C1", To: "C3"})
	if !empty.Searched || !empty.NoMatch {
		t.Fatalf("zero matches must set both flags: %+v", empty)
	}
	if empty.Trips == nil {
		t.Fatalf("trips must be an empty slice, not nil")
	}
}
