package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"busjo/internal/domain/models"
)

// DocsService renders printable e-tickets from history records.
type DocsService struct{}

// GenerateETicket builds an A4 PDF for the ticket and returns the bytes plus
// a download filename.
func (DocsService) GenerateETicket(ticket models.TicketRecord, holder string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket          : %s", safe(ticket.ID, "-")),
		fmt.Sprintf("Passenger       : %s", safe(holder, "Guest")),
		fmt.Sprintf("Route           : %s -> %s", safe(ticket.From, "-"), safe(ticket.To, "-")),
		fmt.Sprintf("Date / Time     : %s %s", safe(ticket.Date, "-"), safe(ticket.Time, "-")),
		fmt.Sprintf("Price per seat  : %.2f JOD", ticket.Price),
		fmt.Sprintf("Tickets         : %d", ticket.Quantity),
		fmt.Sprintf("Total           : %.2f JOD", ticket.Total),
		fmt.Sprintf("Status          : %s", safe(ticket.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: please present this e-ticket at the boarding station before departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eticket-%s.pdf", safeFilenamePart(ticket.ID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return "ticket"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, v)
}
