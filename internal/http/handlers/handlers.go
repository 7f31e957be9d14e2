package handlers

import (
	"github.com/rs/zerolog"

	"busjo/internal/dataset"
	"busjo/internal/geometry"
	"busjo/internal/services"
)

// Handler bundles the services behind the API. Everything is injected; no
// package-level state.
type Handler struct {
	Data     *dataset.Store
	Loader   dataset.Loader
	Trips    services.TripService
	Bookings services.BookingService
	Session  services.SessionService
	Docs     services.DocsService

	Geo        geometry.Client
	GeoTracker *geometry.Tracker

	FeatureTags []string
	Log         zerolog.Logger
}
