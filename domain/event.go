package domain

// Coordinates is an explicit optional: a nil *Coordinates means the venue
// position is unknown. A lat/lon of 0.0 is a valid point, not "missing".
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Venue struct {
	Name     string       `json:"name"`
	City     string       `json:"city"`
	State    string       `json:"state"`
	Location *Coordinates `json:"location,omitempty"`
}

// Event is the canonical record the engine works with. It is built once by
// the ticketmaster normalizer and immutable afterwards; RSVP / friends
// annotations live on DiscoveryItem, never here.
type Event struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Date     string `json:"date"` // ISO date, empty when the provider omitted it
	Time     string `json:"time"` // local start time, may be empty
	Venue    Venue  `json:"venue"`
	ImageURL string `json:"image_url"`
	Segment  string `json:"segment"`
	Genre    string `json:"genre"`
	SubGenre string `json:"sub_genre"`
}

// QueryDiagnostic records one external search attempt, success or not.
type QueryDiagnostic struct {
	RadiusMiles int    `json:"radius_miles,omitempty"`
	Category    string `json:"category,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
	StatusCode  int    `json:"status_code"`
	Message     string `json:"message,omitempty"`
	Items       int    `json:"items"`
}

type SearchResult struct {
	Items       []Event           `json:"items"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	Total       int               `json:"total"`
	Diagnostics []QueryDiagnostic `json:"diagnostics,omitempty"`
}

// DiscoveryItem is one event on the caller-facing page, enriched with the
// viewer's RSVP status and friend attendance after ranking and pagination.
type DiscoveryItem struct {
	Event
	RSVPStatus   string `json:"rsvp_status,omitempty"`
	FriendsGoing int    `json:"friends_going"`
}
