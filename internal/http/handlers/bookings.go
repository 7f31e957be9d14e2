package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busjo/internal/http/middleware"
	"busjo/internal/store"
)

type bookingRequest struct {
	TripID   string `json:"trip_id"`
	Quantity int    `json:"quantity"`
}

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TripID == "" {
		RespondError(c, http.StatusBadRequest, "trip_id is required", nil)
		return
	}

	user := middleware.CurrentUser(c)
	result, err := h.Bookings.BookTrip(user, req.TripID, req.Quantity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /api/tickets
func (h *Handler) ListTickets(c *gin.Context) {
	owner := ticketOwner(c)
	tickets, err := h.Bookings.Tickets.List(owner)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load ticket history", err)
		return
	}

	totalSpent := 0.0
	for _, t := range tickets {
		totalSpent += t.Total
	}
	c.JSON(http.StatusOK, gin.H{
		"tickets":     tickets,
		"total_trips": len(tickets),
		"total_spent": totalSpent,
	})
}

// GET /api/tickets/:id/e-ticket
func (h *Handler) TicketPDF(c *gin.Context) {
	owner := ticketOwner(c)
	ticket, ok, err := h.Bookings.Tickets.Find(owner, c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load ticket", err)
		return
	}
	if !ok {
		RespondError(c, http.StatusNotFound, "ticket not found", nil)
		return
	}

	holder := ""
	if user := middleware.CurrentUser(c); user != nil {
		holder = user.FullName
	}
	raw, filename, err := h.Docs.GenerateETicket(ticket, holder)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render e-ticket", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}

func ticketOwner(c *gin.Context) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.UserID
	}
	return store.GuestOwner
}
