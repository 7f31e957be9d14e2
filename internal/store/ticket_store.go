package store

import (
	"encoding/json"
	"fmt"

	"busjo/internal/domain/models"
)

const ticketKeyPrefix = "ticketHistory:"

// GuestOwner is the history bucket used when nobody is logged in.
const GuestOwner = "guest"

// TicketStore keeps one ordered, newest-first ticket list per owner. Records
// are only ever prepended; existing entries are never rewritten.
type TicketStore struct {
	KV KV
}

func (s TicketStore) List(owner string) ([]models.TicketRecord, error) {
	raw, ok, err := s.KV.Get(ticketKeyPrefix + owner)
	if err != nil {
		return nil, fmt.Errorf("load ticket history %s: %w", owner, err)
	}
	if !ok {
		return []models.TicketRecord{}, nil
	}
	var tickets []models.TicketRecord
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("parse ticket history %s: %w", owner, err)
	}
	return tickets, nil
}

func (s TicketStore) Prepend(owner string, ticket models.TicketRecord) error {
	tickets, err := s.List(owner)
	if err != nil {
		return err
	}
	tickets = append([]models.TicketRecord{ticket}, tickets...)
	raw, err := json.Marshal(tickets)
	if err != nil {
		return err
	}
	if err := s.KV.Put(ticketKeyPrefix+owner, raw); err != nil {
		return fmt.Errorf("save ticket history %s: %w", owner, err)
	}
	return nil
}

// Find returns the ticket with the given id from an owner's history.
func (s TicketStore) Find(owner, id string) (models.TicketRecord, bool, error) {
	tickets, err := s.List(owner)
	if err != nil {
		return models.TicketRecord{}, false, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, true, nil
		}
	}
	return models.TicketRecord{}, false, nil
}
