package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busjo/internal/domain"
	"busjo/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Booking
// rejections keep their kind as the error code so the UI can show the exact
// reason.
func RespondDomainError(c *gin.Context, err error) {
	if booking, ok := domain.AsBooking(err); ok {
		status := http.StatusBadRequest
		switch booking.Kind {
		case domain.InsufficientSeats:
			status = http.StatusConflict
		case domain.InsufficientBalance:
			status = http.StatusPaymentRequired
		}
		respondError(c, status, string(booking.Kind), booking.Error())
		return
	}

	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsLoad(err):
		respondError(c, http.StatusServiceUnavailable, "load_error", err.Error())
	case domain.IsGeometry(err):
		respondError(c, http.StatusBadGateway, "geometry_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
