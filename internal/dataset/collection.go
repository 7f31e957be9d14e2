package dataset

import (
	"sync/atomic"

	"busjo/internal/domain/models"
)

// Collection is the loaded dataset plus lookup indexes. Immutable after Load;
// queries join by map lookup instead of scanning slices.
type Collection struct {
	Cities []models.City
	Areas  []models.Area
	Routes []models.Route
	Buses  []models.Bus
	Trips  []models.Trip
	Users  []models.User

	// Dropped counts how many records failed validation during load.
	Dropped int

	cityByID    map[string]models.City
	areaByID    map[string]models.Area
	areasByCity map[string][]models.Area
	routeByID   map[string]models.Route
	busByID     map[string]models.Bus
	userByID    map[string]models.User
}

func newCollection(ds models.Dataset, dropped int) *Collection {
	c := &Collection{
		Cities:  ds.Cities,
		Areas:   ds.Areas,
		Routes:  ds.Routes,
		Buses:   ds.Buses,
		Trips:   ds.Trips,
		Users:   ds.Users,
		Dropped: dropped,

		cityByID:    make(map[string]models.City, len(ds.Cities)),
		areaByID:    make(map[string]models.Area, len(ds.Areas)),
		areasByCity: make(map[string][]models.Area),
		routeByID:   make(map[string]models.Route, len(ds.Routes)),
		busByID:     make(map[string]models.Bus, len(ds.Buses)),
		userByID:    make(map[string]models.User, len(ds.Users)),
	}
	for _, city := range ds.Cities {
		c.cityByID[city.ID] = city
	}
	for _, area := range ds.Areas {
		c.areaByID[area.ID] = area
		c.areasByCity[area.CityID] = append(c.areasByCity[area.CityID], area)
	}
	for _, route := range ds.Routes {
		c.routeByID[route.RouteID] = route
	}
	for _, bus := range ds.Buses {
		c.busByID[bus.BusID] = bus
	}
	for _, user := range ds.Users {
		c.userByID[user.UserID] = user
	}
	return c
}

// New builds an indexed collection from an already validated dataset.
func New(ds models.Dataset) *Collection {
	return newCollection(ds, 0)
}

// Empty returns a collection with no records, the degraded state after a
// failed load.
func Empty() *Collection {
	return newCollection(models.Dataset{}, 0)
}

func (c *Collection) CityByID(id string) (models.City, bool) {
	city, ok := c.cityByID[id]
	return city, ok
}

func (c *Collection) AreaByID(id string) (models.Area, bool) {
	area, ok := c.areaByID[id]
	return area, ok
}

// AreasByCity returns the city's areas in dataset order. The first one is the
// default boarding point when no route override applies.
func (c *Collection) AreasByCity(cityID string) []models.Area {
	return c.areasByCity[cityID]
}

func (c *Collection) RouteByID(id string) (models.Route, bool) {
	route, ok := c.routeByID[id]
	return route, ok
}

func (c *Collection) BusByID(id string) (models.Bus, bool) {
	bus, ok := c.busByID[id]
	return bus, ok
}

func (c *Collection) UserByID(id string) (models.User, bool) {
	user, ok := c.userByID[id]
	return user, ok
}

func (c *Collection) TripByID(id string) (models.Trip, bool) {
	for _, t := range c.Trips {
		if t.TripID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}

// Store holds the active collection and allows an atomic swap on reload.
type Store struct {
	current atomic.Pointer[Collection]
}

func NewStore(c *Collection) *Store {
	s := &Store{}
	if c == nil {
		c = Empty()
	}
	s.current.Store(c)
	return s
}

func (s *Store) Current() *Collection { return s.current.Load() }

func (s *Store) Swap(c *Collection) {
	if c == nil {
		c = Empty()
	}
	s.current.Store(c)
}
