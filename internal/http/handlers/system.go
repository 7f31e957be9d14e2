package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	col := h.Data.Current()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"trips":  len(col.Trips),
		"cities": len(col.Cities),
	})
}

// POST /api/dataset/reload
//
// Re-fetches the dataset and swaps it in atomically. On failure the previous
// collection stays active.
func (h *Handler) ReloadDataset(c *gin.Context) {
	col, err := h.Loader.Load(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.Data.Swap(col)
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"trips":   len(col.Trips),
		"dropped": col.Dropped,
	})
}
