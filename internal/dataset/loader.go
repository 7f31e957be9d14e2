package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"busjo/internal/domain"
	"busjo/internal/domain/models"
)

// Loader fetches and validates the bus data document. URL wins over Path when
// both are set. Loading is all-or-nothing: a document that cannot be
// retrieved or parsed yields a domain.LoadError and no collection.
type Loader struct {
	URL    string
	Path   string
	Client *http.Client
	Log    zerolog.Logger
}

func (l Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// Load retrieves the document and builds an indexed collection. Records
// missing required fields are dropped with a warning rather than propagated
// half-empty through the pipeline.
func (l Loader) Load(ctx context.Context) (*Collection, error) {
	raw, src, err := l.fetch(ctx)
	if err != nil {
		return nil, domain.LoadError{Source: src, Err: err}
	}

	var ds models.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, domain.LoadError{Source: src, Err: fmt.Errorf("invalid json: %w", err)}
	}

	clean, dropped := l.validate(ds)
	col := newCollection(clean, dropped)
	l.Log.Info().
		Str("source", src).
		Int("cities", len(col.Cities)).
		Int("areas", len(col.Areas)).
		Int("routes", len(col.Routes)).
		Int("buses", len(col.Buses)).
		Int("trips", len(col.Trips)).
		Int("users", len(col.Users)).
		Int("dropped", dropped).
		Msg("dataset loaded")
	return col, nil
}

func (l Loader) fetch(ctx context.Context) ([]byte, string, error) {
	if l.URL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
		if err != nil {
			return nil, l.URL, err
		}
		resp, err := l.client().Do(req)
		if err != nil {
			return nil, l.URL, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, l.URL, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, l.URL, err
		}
		return raw, l.URL, nil
	}

	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, l.Path, err
	}
	return raw, l.Path, nil
}

// validate drops records missing required fields and counts them. The arrays
// themselves default to empty when absent (encoding/json leaves them nil).
func (l Loader) validate(ds models.Dataset) (models.Dataset, int) {
	dropped := 0
	reject := func(kind, id string) {
		dropped++
		l.Log.Warn().Str("kind", kind).Str("id", id).Msg("dataset record rejected")
	}

	out := models.Dataset{}
	for _, c := range ds.Cities {
		if c.ID == "" || c.Name == "" {
			reject("city", c.ID)
			continue
		}
		out.Cities = append(out.Cities, c)
	}
	for _, a := range ds.Areas {
		if a.ID == "" || a.CityID == "" {
			reject("area", a.ID)
			continue
		}
		out.Areas = append(out.Areas, a)
	}
	for _, r := range ds.Routes {
		if r.RouteID == "" || r.OriginID == "" || r.DestinationID == "" {
			reject("route", r.RouteID)
			continue
		}
		out.Routes = append(out.Routes, r)
	}
	for _, b := range ds.Buses {
		if b.BusID == "" {
			reject("bus", b.BusID)
			continue
		}
		out.Buses = append(out.Buses, b)
	}
	for _, t := range ds.Trips {
		if t.TripID == "" || t.RouteID == "" || t.BusID == "" || t.AvailableSeats < 0 {
			reject("trip", t.TripID)
			continue
		}
		out.Trips = append(out.Trips, t)
	}
	for _, u := range ds.Users {
		if u.UserID == "" || (u.Username == "" && u.Email == "") {
			reject("user", u.UserID)
			continue
		}
		out.Users = append(out.Users, u)
	}
	return out, dropped
}
