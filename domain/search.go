package domain

// SearchQuery is one bounded request against the external event API.
// Geohash and RadiusMiles are optional as a pair; Category and Keyword are
// independently optional. PageIndex is always 0 in practice because the
// engine aggregates locally instead of walking the provider's pages.
type SearchQuery struct {
	Geohash     string
	RadiusMiles int
	Category    string
	SubFilters  []string
	Keyword     string
	PageSize    int
	PageIndex   int
}

// SearchPage is what one external query produced. Upstream failures show up
// as zero items plus a diagnostic, never as an error.
type SearchPage struct {
	Items      []Event
	PageIndex  int
	TotalPages int
	Total      int
	Diagnostic QueryDiagnostic
}
