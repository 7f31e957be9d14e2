package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"busjo/internal/dataset"
	"busjo/internal/domain"
	"busjo/internal/domain/models"
	"busjo/internal/store"
)

// defaultGuestUser supplies the guest balance when present in the dataset.
const defaultGuestUser = "U1001"
const fallbackGuestBalance = 1000

// BookingService validates purchases and writes the ledger outcome: a
// deducted balance and an immutable ticket record. It deliberately never
// decrements available_seats on the trip; the dataset stays read-only and
// later queries see the original seat count (demo behavior, kept as-is).
type BookingService struct {
	Trips    TripService
	Sessions store.SessionStore
	Tickets  store.TicketStore
	Now      func() time.Time
	Log      zerolog.Logger
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BookingResult is the successful outcome of one booking attempt.
type BookingResult struct {
	NewBalance float64             `json:"new_balance"`
	Ticket     models.TicketRecord `json:"ticket"`
}

// Book runs the ledger checks in order and, when all pass, builds the ticket
// and deducts the total. First failing check determines the error; nothing is
// mutated before all checks pass.
func (s BookingService) Book(trip models.EnrichedTrip, quantity int, balance float64) (BookingResult, error) {
	if quantity < 1 {
		return BookingResult{}, domain.BookingError{
			Kind: domain.InvalidQuantity,
			Msg:  "please select at least one ticket",
		}
	}

	seats := trip.AvailableSeats
	if seats < 0 {
		seats = 0
	}
	if quantity > seats {
		return BookingResult{}, domain.BookingError{
			Kind: domain.InsufficientSeats,
			Msg:  fmt.Sprintf("only %d seats are available", seats),
		}
	}

	total := domain.Round2(float64(quantity) * trip.Price)
	if total > balance {
		return BookingResult{}, domain.BookingError{
			Kind: domain.InsufficientBalance,
			Msg:  fmt.Sprintf("not enough balance, required: %.2f JOD", total),
		}
	}

	ticket := models.TicketRecord{
		ID:       fmt.Sprintf("TKT_%d", s.now().UnixMilli()),
		Date:     trip.DepartureDate,
		Time:     trip.DepartureTime,
		From:     trip.OriginName,
		To:       trip.DestinationName,
		Price:    trip.Price,
		Quantity: quantity,
		Total:    total,
		Status:   models.TicketConfirmed,
	}
	return BookingResult{NewBalance: balance - total, Ticket: ticket}, nil
}

// BookTrip books a dataset trip for the given user (nil means guest),
// persisting the updated session balance and the new history entry. The
// ticket is only stored after the balance save succeeded.
func (s BookingService) BookTrip(user *models.User, tripID string, quantity int) (BookingResult, error) {
	col := s.Trips.Data.Current()
	trip, ok := col.TripByID(tripID)
	if !ok {
		return BookingResult{}, domain.NotFoundError{Resource: "trip"}
	}
	enriched := s.Trips.Enrich(trip)

	owner := store.GuestOwner
	balance := GuestBalance(col)
	if user != nil {
		owner = user.UserID
		balance = user.Balance
	}

	result, err := s.Book(enriched, quantity, balance)
	if err != nil {
		return BookingResult{}, err
	}

	if user != nil {
		user.Balance = result.NewBalance
		if err := s.Sessions.Save(*user); err != nil {
			return BookingResult{}, domain.InternalError{Msg: "failed to save balance", Err: err}
		}
	}
	if err := s.Tickets.Prepend(owner, result.Ticket); err != nil {
		return BookingResult{}, domain.InternalError{Msg: "failed to save ticket", Err: err}
	}

	s.Log.Info().
		Str("owner", owner).
		Str("trip_id", tripID).
		Str("ticket_id", result.Ticket.ID).
		Int("quantity", quantity).
		Float64("total", result.Ticket.Total).
		Msg("booking confirmed")
	return result, nil
}

// GuestBalance is the balance shown when nobody is logged in: dataset user
// U1001's balance, else 1000.
func GuestBalance(col *dataset.Collection) float64 {
	if u, ok := col.UserByID(defaultGuestUser); ok {
		return u.Balance
	}
	return fallbackGuestBalance
}
