// Package geometry fetches route line geometry from an OSRM-compatible
// routing service. It is a map-drawing collaborator only; trip matching and
// booking never depend on it.
package geometry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"busjo/internal/domain"
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Line is a GeoJSON-style LineString: [lng, lat] pairs.
type Line [][2]float64

// Client calls the routing service. Failures come back as
// domain.GeometryError; callers skip drawing that segment and move on.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func (c Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 10 * time.Second}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route fetches the driving line between two points.
func (c Client) Route(ctx context.Context, from, to Point) (Line, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f",
		c.BaseURL, from.Lng, from.Lat, to.Lng, to.Lat)
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, domain.GeometryError{Err: err}
	}
	q := u.Query()
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.GeometryError{Err: err}
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, domain.GeometryError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, domain.GeometryError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.GeometryError{Err: err}
	}
	var parsed osrmResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, domain.GeometryError{Err: err}
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, domain.GeometryError{Err: fmt.Errorf("no route in response (code %q)", parsed.Code)}
	}
	return Line(parsed.Routes[0].Geometry.Coordinates), nil
}
