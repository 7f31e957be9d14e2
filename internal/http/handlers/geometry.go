package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busjo/internal/geometry"
)

// GET /api/trips/:id/geometry
//
// Returns the driving line between the trip's boarding and alighting areas
// for map rendering. A generation token guards against out-of-order
// completions: when a newer search started while this fetch was running, the
// stale result is dropped instead of applied.
func (h *Handler) TripGeometry(c *gin.Context) {
	col := h.Data.Current()
	trip, ok := col.TripByID(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "trip not found", nil)
		return
	}

	enriched := h.Trips.Enrich(trip)
	if enriched.OriginLat == nil || enriched.OriginLng == nil ||
		enriched.DestinationLat == nil || enriched.DestinationLng == nil {
		RespondError(c, http.StatusUnprocessableEntity, "trip has no coordinates", nil)
		return
	}

	token := h.GeoTracker.Begin()
	line, err := h.Geo.Route(c.Request.Context(),
		geometry.Point{Lat: *enriched.OriginLat, Lng: *enriched.OriginLng},
		geometry.Point{Lat: *enriched.DestinationLat, Lng: *enriched.DestinationLng},
	)
	if err != nil {
		// Map drawing is best-effort: log and let the client skip the segment.
		h.Log.Warn().Err(err).Str("trip_id", trip.TripID).Msg("route geometry fetch failed")
		RespondDomainError(c, err)
		return
	}
	if !h.GeoTracker.Current(token) {
		c.JSON(http.StatusOK, gin.H{"stale": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trip_id":  trip.TripID,
		"geometry": gin.H{"type": "LineString", "coordinates": line},
	})
}

// POST /api/trips/geometry/reset
//
// Invalidates all pending geometry fetches, the "navigated away / reset
// search" cancellation hook.
func (h *Handler) ResetGeometry(c *gin.Context) {
	h.GeoTracker.Cancel()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
