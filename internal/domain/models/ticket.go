package models

// Ticket statuses. The core only ever writes Confirmed; Cancelled exists for
// records imported from elsewhere.
const (
	TicketConfirmed = "Confirmed"
	TicketCancelled = "Cancelled"
)

// TicketRecord is an immutable line in the booking history. Created once per
// successful booking, prepended newest-first, never mutated or deleted.
type TicketRecord struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}
