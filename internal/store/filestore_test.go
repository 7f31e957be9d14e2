package store

import (
	"path/filepath"
	"testing"

	"busjo/internal/domain/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("missing key should be absent: %v %v", ok, err)
	}

	if err := s.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || string(v) != `{"a":1}` {
		t.Fatalf("get after put: %q %v %v", v, ok, err)
	}

	// A fresh handle sees the flushed file.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, err = reopened.Get("k")
	if err != nil || !ok || string(v) != `{"a":1}` {
		t.Fatalf("get after reopen: %q %v %v", v, ok, err)
	}

	if err := reopened.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := reopened.Get("k"); ok {
		t.Fatalf("key should be gone after delete")
	}
}

func TestTicketStorePrependsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tickets := TicketStore{KV: kv}

	first := models.TicketRecord{ID: "TKT_1", Total: 5, Status: models.TicketConfirmed}
	second := models.TicketRecord{ID: "TKT_2", Total: 7, Status: models.TicketConfirmed}
	if err := tickets.Prepend("U1", first); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	if err := tickets.Prepend("U1", second); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	got, err := tickets.List("U1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "TKT_2" || got[1].ID != "TKT_1" {
		t.Fatalf("history not newest-first: %+v", got)
	}

	// Owners are isolated.
	other, err := tickets.List(GuestOwner)
	if err != nil || len(other) != 0 {
		t.Fatalf("guest history should be empty: %v %d", err, len(other))
	}

	found, ok, err := tickets.Find("U1", "TKT_1")
	if err != nil || !ok || found.Total != 5 {
		t.Fatalf("find: %+v %v %v", found, ok, err)
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sessions := SessionStore{KV: kv}

	if _, ok, err := sessions.Load("U1"); err != nil || ok {
		t.Fatalf("no session expected: %v %v", ok, err)
	}

	u := models.User{UserID: "U1", Username: "laila", FullName: "Laila", Balance: 99.5}
	if err := sessions.Save(u); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := sessions.Load("U1")
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if got.Balance != 99.5 || got.Username != "laila" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := sessions.Clear("U1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := sessions.Load("U1"); ok {
		t.Fatalf("session should be cleared")
	}
}
