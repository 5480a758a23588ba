package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventScout/domain"
)

const minImageWidth = 300

type TicketmasterConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type TicketmasterRepository struct {
	cfg    TicketmasterConfig
	client *http.Client
}

func NewTicketmasterRepository(cfg TicketmasterConfig) *TicketmasterRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}

	return &TicketmasterRepository{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ---- raw wire types ----

type tmImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type tmClassification struct {
	Segment  *tmNamed `json:"segment"`
	Genre    *tmNamed `json:"genre"`
	SubGenre *tmNamed `json:"subGenre"`
}

type tmNamed struct {
	Name string `json:"name"`
}

type tmVenue struct {
	Name string `json:"name"`
	City *struct {
		Name string `json:"name"`
	} `json:"city"`
	State *struct {
		StateCode string `json:"stateCode"`
		Name      string `json:"name"`
	} `json:"state"`
	Location *struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

type tmEvent struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	URL    string    `json:"url"`
	Images []tmImage `json:"images"`
	Dates  *struct {
		Start *struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []tmClassification `json:"classifications"`
	Embedded        *struct {
		Venues []tmVenue `json:"venues"`
	} `json:"_embedded"`
}

type tmResponse struct {
	Embedded *struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

// Query issues one bounded search against the Discovery API. It never
// returns an error: upstream failures of any kind come back as an empty page
// whose diagnostic records what went wrong.
func (r *TicketmasterRepository) Query(ctx context.Context, q domain.SearchQuery) domain.SearchPage {
	reqURL := r.buildURL(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failPage(q, 0, fmt.Sprintf("build request: %v", err))
	}

	res, err := r.client.Do(req)
	if err != nil {
		return failPage(q, 0, fmt.Sprintf("request failed: %v", err))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return failPage(q, res.StatusCode, fmt.Sprintf("read body: %v", err))
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return failPage(q, res.StatusCode, truncate(string(body), 200))
	}

	var parsed tmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failPage(q, res.StatusCode, fmt.Sprintf("malformed payload: %v", err))
	}

	var items []domain.Event
	if parsed.Embedded != nil {
		items = make([]domain.Event, 0, len(parsed.Embedded.Events))
		for _, raw := range parsed.Embedded.Events {
			items = append(items, normalizeEvent(raw))
		}
	}

	return domain.SearchPage{
		Items:      items,
		PageIndex:  parsed.Page.Number,
		TotalPages: parsed.Page.TotalPages,
		Total:      parsed.Page.TotalElements,
		Diagnostic: domain.QueryDiagnostic{
			RadiusMiles: q.RadiusMiles,
			Category:    q.Category,
			Keyword:     q.Keyword,
			StatusCode:  res.StatusCode,
			Items:       len(items),
		},
	}
}

func (r *TicketmasterRepository) buildURL(q domain.SearchQuery) string {
	params := url.Values{}
	params.Set("apikey", r.cfg.APIKey)
	params.Set("size", strconv.Itoa(q.PageSize))
	params.Set("page", strconv.Itoa(q.PageIndex))

	if q.Geohash != "" && q.RadiusMiles > 0 {
		params.Set("geoPoint", q.Geohash)
		params.Set("radius", strconv.Itoa(q.RadiusMiles))
		params.Set("unit", "miles")
	}
	if q.Category != "" {
		params.Add("classificationName", q.Category)
		for _, hint := range q.SubFilters {
			params.Add("classificationName", hint)
		}
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}

	return r.cfg.BaseURL + "/events.json?" + params.Encode()
}

// normalizeEvent turns one raw record into exactly one canonical Event.
// Missing fields become empty values; coordinates stay nil unless both
// latitude and longitude parse, so a real 0.0 is never mistaken for absent.
func normalizeEvent(raw tmEvent) domain.Event {
	ev := domain.Event{
		ID:       raw.ID,
		Name:     raw.Name,
		URL:      raw.URL,
		ImageURL: pickImage(raw.Images),
	}

	if raw.Dates != nil && raw.Dates.Start != nil {
		ev.Date = raw.Dates.Start.LocalDate
		ev.Time = raw.Dates.Start.LocalTime
	}

	if len(raw.Classifications) > 0 {
		c := raw.Classifications[0]
		if c.Segment != nil {
			ev.Segment = c.Segment.Name
		}
		if c.Genre != nil {
			ev.Genre = c.Genre.Name
		}
		if c.SubGenre != nil {
			ev.SubGenre = c.SubGenre.Name
		}
	}

	if raw.Embedded != nil && len(raw.Embedded.Venues) > 0 {
		v := raw.Embedded.Venues[0]
		ev.Venue.Name = v.Name
		if v.City != nil {
			ev.Venue.City = v.City.Name
		}
		if v.State != nil {
			ev.Venue.State = v.State.StateCode
			if ev.Venue.State == "" {
				ev.Venue.State = v.State.Name
			}
		}
		if v.Location != nil {
			lat, latErr := strconv.ParseFloat(v.Location.Latitude, 64)
			lon, lonErr := strconv.ParseFloat(v.Location.Longitude, 64)
			if latErr == nil && lonErr == nil {
				ev.Venue.Location = &domain.Coordinates{Lat: lat, Lon: lon}
			}
		}
	}

	return ev
}

// pickImage prefers the first image at least minImageWidth wide, falling
// back to the first image of any size.
func pickImage(images []tmImage) string {
	for _, img := range images {
		if img.Width >= minImageWidth {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}

	return ""
}

func failPage(q domain.SearchQuery, status int, msg string) domain.SearchPage {
	return domain.SearchPage{
		Diagnostic: domain.QueryDiagnostic{
			RadiusMiles: q.RadiusMiles,
			Category:    q.Category,
			Keyword:     q.Keyword,
			StatusCode:  status,
			Message:     msg,
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
