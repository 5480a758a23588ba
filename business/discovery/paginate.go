package discovery

import "eventScout/domain"

// Paginate slices the interleaved list into the caller's page. Pagination is
// purely local: the working set is already bounded, so there is no reason to
// page against the external API.
func Paginate(items []domain.Event, page, limit int) domain.SearchResult {
	if limit < 1 {
		limit = 1
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return domain.SearchResult{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
