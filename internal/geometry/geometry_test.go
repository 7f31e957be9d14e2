package geometry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"busjo/internal/domain"
)

func TestRouteParsesLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("geometries") != "geojson" {
			t.Errorf("expected geojson geometries, got %q", r.URL.Query().Get("geometries"))
		}
		w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{"coordinates":[[35.91,31.96],[35.85,32.55]]},"distance":85000,"duration":5400}]}`))
	}))
	defer srv.Close()

	line, err := Client{BaseURL: srv.URL}.Route(context.Background(),
		Point{Lat: 31.96, Lng: 35.91}, Point{Lat: 32.55, Lng: 35.85})
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(line) != 2 || line[0] != [2]float64{35.91, 31.96} {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestRouteFailuresAreGeometryErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	if _, err := (Client{BaseURL: srv.URL}).Route(context.Background(), Point{}, Point{}); !domain.IsGeometry(err) {
		t.Fatalf("expected GeometryError, got %v", err)
	}

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()
	if _, err := (Client{BaseURL: bad.URL}).Route(context.Background(), Point{}, Point{}); !domain.IsGeometry(err) {
		t.Fatalf("expected GeometryError for HTTP failure, got %v", err)
	}
}

func TestTrackerDiscardsStaleGenerations(t *testing.T) {
	var tr Tracker

	first := tr.Begin()
	if !tr.Current(first) {
		t.Fatalf("fresh token should be current")
	}

	second := tr.Begin()
	if tr.Current(first) {
		t.Fatalf("superseded token must not be current")
	}
	if !tr.Current(second) {
		t.Fatalf("latest token should be current")
	}

	tr.Cancel()
	if tr.Current(second) {
		t.Fatalf("cancel must invalidate outstanding tokens")
	}
}
