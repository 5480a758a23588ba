package discovery

import (
	"context"
	"fmt"
	"testing"

	"eventScout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchClient records every query and answers via the respond hook.
type fakeSearchClient struct {
	calls   []domain.SearchQuery
	respond func(q domain.SearchQuery) domain.SearchPage
}

func (f *fakeSearchClient) Query(_ context.Context, q domain.SearchQuery) domain.SearchPage {
	f.calls = append(f.calls, q)
	return f.respond(q)
}

func emptyPage(q domain.SearchQuery) domain.SearchPage {
	return domain.SearchPage{
		Diagnostic: domain.QueryDiagnostic{
			RadiusMiles: q.RadiusMiles,
			Category:    q.Category,
			Keyword:     q.Keyword,
			StatusCode:  200,
		},
	}
}

func uniqueEvents(prefix string, n int, category string) []domain.Event {
	events := make([]domain.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, domain.Event{
			ID:      fmt.Sprintf("%s-%d", prefix, i),
			Name:    fmt.Sprintf("event %s %d", prefix, i),
			Segment: category,
		})
	}
	return events
}

func TestPlanQueryCountWhenEverythingIsEmpty(t *testing.T) {
	client := &fakeSearchClient{respond: emptyPage}
	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelBalancedRealist), "dr5reg", "virtual|concert|show")

	collected, diagnostics := p.Plan(context.Background())

	// 5 tiers x 4 categories, plus exactly one fallback.
	assert.Len(t, client.calls, 21)
	assert.Empty(t, collected)
	assert.Len(t, diagnostics, 21)

	last := client.calls[len(client.calls)-1]
	assert.Equal(t, "virtual|concert|show", last.Keyword)
	assert.Equal(t, 30, last.PageSize)
	assert.Empty(t, last.Category)
}

func TestPlanQueriesAlwaysAskPageZero(t *testing.T) {
	client := &fakeSearchClient{respond: emptyPage}
	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelSecureOptimist), "dr5reg", "virtual")

	p.Plan(context.Background())

	for _, q := range client.calls {
		assert.Equal(t, 0, q.PageIndex)
	}
}

func TestPlanQuerySizeIsRemainingTarget(t *testing.T) {
	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		page := emptyPage(q)
		// The first Music query under-fills its page.
		if q.RadiusMiles == 15 && q.Category == CategoryMusic {
			page.Items = uniqueEvents("m15", 10, CategoryMusic)
		}
		return page
	}}

	// Explorer: Music target is 40 of the 100 cap.
	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelAdventurousExplorer), "dr5reg", "virtual")
	p.Plan(context.Background())

	var musicSizes []int
	for _, q := range client.calls {
		if q.Category == CategoryMusic {
			musicSizes = append(musicSizes, q.PageSize)
		}
	}

	require.GreaterOrEqual(t, len(musicSizes), 2)
	// min(25, 40) on the first tier, then min(25, 40-10) on the second:
	// targets are fixed at plan time, never re-normalized per tier.
	assert.Equal(t, 25, musicSizes[0])
	assert.Equal(t, 25, musicSizes[1])

	var artsSizes []int
	for _, q := range client.calls {
		if q.Category == CategoryArts {
			artsSizes = append(artsSizes, q.PageSize)
		}
	}
	require.NotEmpty(t, artsSizes)
	assert.Equal(t, 20, artsSizes[0], "Arts target 20 is below the page size ceiling")
}

func TestPlanDeduplicatesAcrossQueries(t *testing.T) {
	// Every query returns the same ten events.
	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		page := emptyPage(q)
		if q.Category != "" {
			page.Items = uniqueEvents("dup", 10, q.Category)
		}
		return page
	}}

	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelBalancedRealist), "dr5reg", "virtual")
	collected, _ := p.Plan(context.Background())

	assert.Len(t, collected, 10)

	seen := make(map[string]struct{})
	for _, ev := range collected {
		_, dup := seen[ev.ID]
		assert.False(t, dup, "duplicate id %s", ev.ID)
		seen[ev.ID] = struct{}{}
	}
}

func TestPlanStopsAtGlobalCap(t *testing.T) {
	serial := 0
	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		page := emptyPage(q)
		if q.Category != "" {
			serial++
			page.Items = uniqueEvents(fmt.Sprintf("q%d", serial), q.PageSize, q.Category)
		}
		return page
	}}

	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelAdventurousExplorer), "dr5reg", "virtual")
	collected, _ := p.Plan(context.Background())

	assert.Len(t, collected, 100)

	// Explorer fills 80 on tier one (25+25+20+10), then Music 15 and
	// Sports 5 on tier two before the cap closes the plan.
	assert.Len(t, client.calls, 6)

	for _, q := range client.calls {
		assert.Empty(t, q.Keyword, "fallback must not fire once anything was collected")
	}
}

func TestPlanSkipsFailedComboWithoutRetry(t *testing.T) {
	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		if q.RadiusMiles == 15 && q.Category == CategoryMusic {
			return domain.SearchPage{
				Diagnostic: domain.QueryDiagnostic{
					RadiusMiles: q.RadiusMiles,
					Category:    q.Category,
					StatusCode:  502,
					Message:     "bad gateway",
				},
			}
		}
		page := emptyPage(q)
		if q.RadiusMiles == 15 && q.Category == CategorySports {
			page.Items = uniqueEvents("s", 5, CategorySports)
		}
		return page
	}}

	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelBalancedRealist), "dr5reg", "virtual")
	collected, diagnostics := p.Plan(context.Background())

	assert.Len(t, collected, 5)

	failedCalls := 0
	for _, q := range client.calls {
		if q.RadiusMiles == 15 && q.Category == CategoryMusic {
			failedCalls++
		}
	}
	assert.Equal(t, 1, failedCalls, "a failed combination is never retried")

	var failure *domain.QueryDiagnostic
	for i := range diagnostics {
		if diagnostics[i].StatusCode == 502 {
			failure = &diagnostics[i]
		}
	}
	require.NotNil(t, failure)
	assert.Equal(t, "bad gateway", failure.Message)
}

func TestPlanFallbackCap(t *testing.T) {
	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		page := emptyPage(q)
		if q.Keyword != "" {
			page.Items = uniqueEvents("fb", 50, CategoryMisc)
		}
		return page
	}}

	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelBalancedRealist), "dr5reg", "virtual")
	collected, _ := p.Plan(context.Background())

	assert.Len(t, collected, 30)
}

func TestPlanCancellationReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := &fakeSearchClient{respond: func(q domain.SearchQuery) domain.SearchPage {
		cancel() // cancel after the first query lands
		page := emptyPage(q)
		page.Items = uniqueEvents("p", 5, q.Category)
		return page
	}}

	p := newPlanner(client, DefaultConfig(), ResolveSignal(LabelBalancedRealist), "dr5reg", "virtual")
	collected, _ := p.Plan(ctx)

	assert.Len(t, client.calls, 1)
	assert.Len(t, collected, 5, "what was already collected is kept")
}
