package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventScout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "_embedded": {
    "events": [
      {
        "id": "ev-1",
        "name": "Jazz at the Vanguard",
        "url": "https://tickets.example/ev-1",
        "images": [
          {"url": "https://img.example/small.jpg", "width": 100, "height": 56},
          {"url": "https://img.example/wide.jpg", "width": 640, "height": 360}
        ],
        "dates": {"start": {"localDate": "2026-09-12", "localTime": "20:00:00"}},
        "classifications": [
          {"segment": {"name": "Music"}, "genre": {"name": "Jazz"}, "subGenre": {"name": "Bebop"}}
        ],
        "_embedded": {
          "venues": [
            {
              "name": "Village Vanguard",
              "city": {"name": "New York"},
              "state": {"stateCode": "NY", "name": "New York"},
              "location": {"latitude": "40.7358", "longitude": "-74.0014"}
            }
          ]
        }
      },
      {
        "id": "ev-2",
        "name": "Mystery Pop-Up",
        "images": [
          {"url": "https://img.example/tiny.jpg", "width": 120, "height": 80}
        ],
        "_embedded": {
          "venues": [
            {
              "name": "Somewhere",
              "location": {"latitude": "not-a-number", "longitude": "-74.0"}
            }
          ]
        }
      }
    ]
  },
  "page": {"size": 25, "totalElements": 2, "totalPages": 1, "number": 0}
}`

func TestQueryNormalizesEvents(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	repo := NewTicketmasterRepository(TicketmasterConfig{BaseURL: srv.URL, APIKey: "test-key"})

	page := repo.Query(context.Background(), domain.SearchQuery{
		Geohash:     "dr5reg",
		RadiusMiles: 30,
		Category:    "Music",
		SubFilters:  []string{"Jazz"},
		PageSize:    25,
	})

	require.Len(t, page.Items, 2)
	assert.Equal(t, 200, page.Diagnostic.StatusCode)
	assert.Equal(t, 2, page.Diagnostic.Items)
	assert.Empty(t, page.Diagnostic.Message)

	assert.Contains(t, gotURL, "apikey=test-key")
	assert.Contains(t, gotURL, "geoPoint=dr5reg")
	assert.Contains(t, gotURL, "radius=30")
	assert.Contains(t, gotURL, "unit=miles")
	assert.Contains(t, gotURL, "classificationName=Music")
	assert.Contains(t, gotURL, "classificationName=Jazz")

	first := page.Items[0]
	assert.Equal(t, "ev-1", first.ID)
	assert.Equal(t, "2026-09-12", first.Date)
	assert.Equal(t, "20:00:00", first.Time)
	assert.Equal(t, "Music", first.Segment)
	assert.Equal(t, "Jazz", first.Genre)
	assert.Equal(t, "Village Vanguard", first.Venue.Name)
	assert.Equal(t, "NY", first.Venue.State)
	require.NotNil(t, first.Venue.Location)
	assert.InDelta(t, 40.7358, first.Venue.Location.Lat, 1e-6)
	assert.InDelta(t, -74.0014, first.Venue.Location.Lon, 1e-6)

	// The first image wide enough wins over the leading thumbnail.
	assert.Equal(t, "https://img.example/wide.jpg", first.ImageURL)

	second := page.Items[1]
	assert.Nil(t, second.Venue.Location, "a half-parseable location stays unknown")
	assert.Empty(t, second.Date)
	assert.Equal(t, "https://img.example/tiny.jpg", second.ImageURL, "no image clears the width bar")
}

func TestQueryUpstreamErrorBecomesDiagnostic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	repo := NewTicketmasterRepository(TicketmasterConfig{BaseURL: srv.URL, APIKey: "k"})

	page := repo.Query(context.Background(), domain.SearchQuery{Category: "Music", RadiusMiles: 15, PageSize: 25})

	assert.Empty(t, page.Items)
	assert.Equal(t, http.StatusTooManyRequests, page.Diagnostic.StatusCode)
	assert.Contains(t, page.Diagnostic.Message, "rate limit")
	assert.Equal(t, "Music", page.Diagnostic.Category)
	assert.Equal(t, 15, page.Diagnostic.RadiusMiles)
}

func TestQueryMalformedPayloadBecomesDiagnostic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	repo := NewTicketmasterRepository(TicketmasterConfig{BaseURL: srv.URL, APIKey: "k"})

	page := repo.Query(context.Background(), domain.SearchQuery{PageSize: 25})

	assert.Empty(t, page.Items)
	assert.Contains(t, page.Diagnostic.Message, "malformed payload")
}

func TestQueryUnreachableHostBecomesDiagnostic(t *testing.T) {
	repo := NewTicketmasterRepository(TicketmasterConfig{BaseURL: "http://127.0.0.1:1", APIKey: "k"})

	page := repo.Query(context.Background(), domain.SearchQuery{PageSize: 25})

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Diagnostic.StatusCode)
	assert.Contains(t, page.Diagnostic.Message, "request failed")
}

func TestBuildURLOmitsGeoWithoutRadius(t *testing.T) {
	repo := NewTicketmasterRepository(TicketmasterConfig{BaseURL: "https://api.example", APIKey: "k"})

	u := repo.buildURL(domain.SearchQuery{Keyword: "virtual|concert", PageSize: 30})

	assert.Contains(t, u, "keyword=virtual%7Cconcert")
	assert.NotContains(t, u, "geoPoint")
	assert.NotContains(t, u, "radius")
}

func TestPickImage(t *testing.T) {
	assert.Equal(t, "", pickImage(nil))

	onlySmall := []tmImage{{URL: "s", Width: 100}}
	assert.Equal(t, "s", pickImage(onlySmall))

	mixed := []tmImage{{URL: "s", Width: 100}, {URL: "w", Width: 305}, {URL: "x", Width: 1024}}
	assert.Equal(t, "w", pickImage(mixed))
}
