package services

import (
	"sort"

	"busjo/internal/dataset"
	"busjo/internal/domain/models"
)

// TripService runs the query pipeline: match routes by city pair, enrich the
// trips on them, then filter and sort. It never mutates the dataset.
type TripService struct {
	Data *dataset.Store

	// BoardingOverrides maps route id -> area id for origin cities with more
	// than one station. Overrides beat the default city area.
	BoardingOverrides map[string]string
}

// QueryResult distinguishes "searched, zero matches" from "never searched":
// Searched is true whenever both cities were given, even if Trips is empty.
type QueryResult struct {
	Trips    []models.EnrichedTrip `json:"trips"`
	Searched bool                  `json:"searched"`
	NoMatch  bool                  `json:"no_results"`
}

// Match selects trips on routes connecting exactly the given city pair, in
// dataset order. Both ids are required; no multi-hop routing.
func (s TripService) Match(originCityID, destCityID string) []models.Trip {
	if originCityID == "" || destCityID == "" {
		return nil
	}
	col := s.Data.Current()

	matched := map[string]bool{}
	for _, r := range col.Routes {
		if r.OriginID == originCityID && r.DestinationID == destCityID {
			matched[r.RouteID] = true
		}
	}
	if len(matched) == 0 {
		return nil
	}

	var trips []models.Trip
	for _, t := range col.Trips {
		if matched[t.RouteID] {
			trips = append(trips, t)
		}
	}
	return trips
}

// Enrich joins a trip with its route, city names, boarding/alighting areas
// and bus record. Every join is best-effort: an unresolved foreign key leaves
// the affected fields zero-valued, it never fails the trip. Deterministic for
// unchanged reference collections.
func (s TripService) Enrich(trip models.Trip) models.EnrichedTrip {
	col := s.Data.Current()
	out := models.EnrichedTrip{Trip: trip, Features: []string{}}

	if route, ok := col.RouteByID(trip.RouteID); ok {
		out.DistanceKM = route.DistanceKM
		out.DurationHours = route.DurationHours
		if city, ok := col.CityByID(route.OriginID); ok {
			out.OriginName = city.Name
		}
		if city, ok := col.CityByID(route.DestinationID); ok {
			out.DestinationName = city.Name
		}
		if area, ok := s.boardingArea(col, trip.RouteID, route.OriginID); ok {
			out.OriginStation = area.StationName
			out.OriginStreet = area.Street
			out.OriginLat = area.Lat
			out.OriginLng = area.Lng
		}
		if area, ok := firstArea(col, route.DestinationID); ok {
			out.DestinationStation = area.StationName
			out.DestinationStreet = area.Street
			out.DestinationLat = area.Lat
			out.DestinationLng = area.Lng
		}
	}

	if bus, ok := col.BusByID(trip.BusID); ok {
		out.Rating = bus.Rating
		if bus.Features != nil {
			out.Features = bus.Features
		}
		out.DriverName = bus.DriverName
	}
	return out
}

// boardingArea picks the origin-side area: a per-route override wins, then
// the first area listed for the city.
func (s TripService) boardingArea(col *dataset.Collection, routeID, cityID string) (models.Area, bool) {
	if areaID, ok := s.BoardingOverrides[routeID]; ok {
		if area, found := col.AreaByID(areaID); found {
			return area, true
		}
	}
	return firstArea(col, cityID)
}

func firstArea(col *dataset.Collection, cityID string) (models.Area, bool) {
	areas := col.AreasByCity(cityID)
	if len(areas) == 0 {
		return models.Area{}, false
	}
	return areas[0], true
}

// Query runs the full pipeline for the given criteria. With From or To
// missing the result is "never searched"; otherwise Searched is true and
// NoMatch flags an empty outcome.
func (s TripService) Query(criteria models.Criteria) QueryResult {
	if criteria.From == "" || criteria.To == "" {
		return QueryResult{Trips: []models.EnrichedTrip{}}
	}

	matched := s.Match(criteria.From, criteria.To)
	enriched := make([]models.EnrichedTrip, 0, len(matched))
	for _, t := range matched {
		enriched = append(enriched, s.Enrich(t))
	}

	filtered := Filter(enriched, criteria)
	Sort(filtered, criteria.SortBy)

	return QueryResult{
		Trips:    filtered,
		Searched: true,
		NoMatch:  len(filtered) == 0,
	}
}

// Filter applies the optional date and required-feature predicates. An empty
// feature set matches everything.
func Filter(trips []models.EnrichedTrip, criteria models.Criteria) []models.EnrichedTrip {
	out := make([]models.EnrichedTrip, 0, len(trips))
	for _, t := range trips {
		if criteria.Date != "" && t.DepartureDate != criteria.Date {
			continue
		}
		if !hasAllFeatures(t.Features, criteria.Features) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasAllFeatures(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sort orders trips in place. Departure keeps input order; ties always retain
// relative input order (stable sort).
func Sort(trips []models.EnrichedTrip, sortBy string) {
	switch sortBy {
	case models.SortPrice:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Price < trips[j].Price
		})
	case models.SortRating:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Rating > trips[j].Rating
		})
	case models.SortAvailable:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].AvailableSeats > trips[j].AvailableSeats
		})
	}
}
