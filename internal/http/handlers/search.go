package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busjo/internal/domain/models"
)

// GET /api/cities
func (h *Handler) Cities(c *gin.Context) {
	col := h.Data.Current()
	out := make([]gin.H, 0, len(col.Cities))
	for _, city := range col.Cities {
		out = append(out, gin.H{"value": city.ID, "label": city.Name})
	}
	c.JSON(http.StatusOK, gin.H{"cities": out})
}

// GET /api/features
func (h *Handler) Features(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": h.FeatureTags})
}

// GET /api/trips/search?from=&to=&date=&sort=&features=a,b
func (h *Handler) SearchTrips(c *gin.Context) {
	criteria := models.Criteria{
		From:   strings.TrimSpace(c.Query("from")),
		To:     strings.TrimSpace(c.Query("to")),
		Date:   strings.TrimSpace(c.Query("date")),
		SortBy: strings.TrimSpace(c.DefaultQuery("sort", models.SortDeparture)),
	}
	if raw := strings.TrimSpace(c.Query("features")); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				criteria.Features = append(criteria.Features, f)
			}
		}
	}

	// Missing from/to is "never searched", not an error: the result carries
	// searched=false and the UI keeps its empty state.
	result := h.Trips.Query(criteria)
	c.JSON(http.StatusOK, result)
}
