package discovery

import (
	"context"
	"math"
	"strconv"

	"eventScout/domain"
	"eventScout/pkg/logger"
)

// SearchClient issues one bounded query against the external event API.
// Implementations must not return an error for upstream failures; those are
// reported as a zero-item page carrying a diagnostic.
type SearchClient interface {
	Query(ctx context.Context, q domain.SearchQuery) domain.SearchPage
}

// planner owns all per-request search state: the seen set, the per-category
// running counts and the collected working set. A fresh planner is built for
// every search so concurrent requests never share mutable state.
type planner struct {
	client          SearchClient
	cfg             Config
	signal          PersonaSignal
	geohash         string
	fallbackKeyword string

	collected   []domain.Event
	seen        map[string]struct{}
	targets     map[string]int
	counts      map[string]int
	diagnostics []domain.QueryDiagnostic
}

func newPlanner(client SearchClient, cfg Config, signal PersonaSignal, geohash, fallbackKeyword string) *planner {
	p := &planner{
		client:          client,
		cfg:             cfg,
		signal:          signal,
		geohash:         geohash,
		fallbackKeyword: fallbackKeyword,
		seen:            make(map[string]struct{}),
		targets:         make(map[string]int),
		counts:          make(map[string]int),
	}

	// Targets are fixed fractions of the GLOBAL cap, computed once. They are
	// never re-normalized per tier: a tier that under-fills a category leaves
	// the original target standing for later tiers. Rounding drift of a few
	// items across categories is accepted.
	for _, share := range signal.CategoryMix {
		p.targets[share.Category] = int(math.Round(float64(cfg.GlobalCap) * share.Fraction))
	}

	return p
}

// capReached and categoryDone are the planner's termination predicates,
// pure functions of the accumulated state.
func (p *planner) capReached() bool {
	return len(p.collected) >= p.cfg.GlobalCap
}

func (p *planner) categoryDone(category string) bool {
	return p.counts[category] >= p.targets[category]
}

// Plan expands the search over the radius tiers and the persona's category
// mix, one sequential bounded query per (tier, category) combination, then
// falls back to a generic keyword query if nothing at all was found.
// Cancellation mid-plan stops further queries and returns what was collected.
func (p *planner) Plan(ctx context.Context) ([]domain.Event, []domain.QueryDiagnostic) {
	tid := TraceIDFromContext(ctx)

	for _, radius := range p.cfg.RadiusTiers {
		if p.capReached() {
			break
		}

		for _, share := range p.signal.CategoryMix {
			if ctx.Err() != nil {
				logger.Debug("discovery_plan_cancelled",
					"trace_id", tid,
					"collected", len(p.collected),
				)
				return p.collected, p.diagnostics
			}
			if p.capReached() {
				break
			}
			if p.categoryDone(share.Category) {
				continue
			}

			p.queryTierCategory(ctx, radius, share.Category)
		}
	}

	if len(p.collected) == 0 && ctx.Err() == nil {
		p.queryFallback(ctx)
	}

	logger.Debug("discovery_plan_done",
		"trace_id", tid,
		"collected", len(p.collected),
		"queries", len(p.diagnostics),
	)

	return p.collected, p.diagnostics
}

func (p *planner) queryTierCategory(ctx context.Context, radius int, category string) {
	remaining := p.targets[category] - p.counts[category]
	size := p.cfg.QueryPageSize
	if remaining < size {
		size = remaining
	}
	if size <= 0 {
		return
	}

	page := p.client.Query(ctx, domain.SearchQuery{
		Geohash:     p.geohash,
		RadiusMiles: radius,
		Category:    category,
		SubFilters:  p.signal.CategoryHints[category],
		PageSize:    size,
		PageIndex:   0,
	})

	p.diagnostics = append(p.diagnostics, page.Diagnostic)
	ExternalQueriesTotal.WithLabelValues(category, outcomeLabel(page.Diagnostic)).Inc()

	// A failed combination contributes zero items; no retry, move on.
	for _, ev := range page.Items {
		if p.capReached() || p.categoryDone(category) {
			break
		}
		if ev.ID == "" {
			continue
		}
		if _, ok := p.seen[ev.ID]; ok {
			continue
		}
		p.seen[ev.ID] = struct{}{}
		p.collected = append(p.collected, ev)
		// The event counts toward the category whose query returned it
		// first, regardless of its own classification.
		p.counts[category]++
	}
}

// queryFallback issues exactly one geo-free keyword query and takes whatever
// comes back, capped, with no category bookkeeping.
func (p *planner) queryFallback(ctx context.Context) {
	page := p.client.Query(ctx, domain.SearchQuery{
		Keyword:   p.fallbackKeyword,
		PageSize:  p.cfg.FallbackCap,
		PageIndex: 0,
	})

	p.diagnostics = append(p.diagnostics, page.Diagnostic)
	FallbackQueriesTotal.Inc()

	for _, ev := range page.Items {
		if len(p.collected) >= p.cfg.FallbackCap {
			break
		}
		if ev.ID == "" {
			continue
		}
		if _, ok := p.seen[ev.ID]; ok {
			continue
		}
		p.seen[ev.ID] = struct{}{}
		p.collected = append(p.collected, ev)
	}
}

func outcomeLabel(d domain.QueryDiagnostic) string {
	if d.StatusCode >= 200 && d.StatusCode < 300 {
		return "ok"
	}
	if d.StatusCode == 0 {
		return "error"
	}
	return strconv.Itoa(d.StatusCode)
}
