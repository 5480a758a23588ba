package discovery

import "eventScout/domain"

// preferredCategoryOrder fixes the round-robin order for the provider's
// well-known segments; categories outside it follow in order of first
// appearance in the ranked list.
var preferredCategoryOrder = []string{
	CategoryMusic,
	CategorySports,
	CategoryArts,
	CategoryMisc,
}

// Interleave re-orders the ranked list so consecutive slots are not
// dominated by one category: one event per non-empty category bucket per
// round, preserving each category's internal rank, up to the global cap.
func Interleave(ranked []ScoredEvent, cfg Config) []domain.Event {
	buckets := make(map[string][]domain.Event)
	order := make([]string, 0, len(preferredCategoryOrder))
	inOrder := make(map[string]struct{})

	for _, cat := range preferredCategoryOrder {
		order = append(order, cat)
		inOrder[cat] = struct{}{}
	}

	for _, s := range ranked {
		cat := s.Event.Segment
		if _, ok := inOrder[cat]; !ok {
			order = append(order, cat)
			inOrder[cat] = struct{}{}
		}
		buckets[cat] = append(buckets[cat], s.Event)
	}

	out := make([]domain.Event, 0, len(ranked))
	for len(out) < len(ranked) && len(out) < cfg.GlobalCap {
		progressed := false
		for _, cat := range order {
			if len(out) >= cfg.GlobalCap {
				break
			}
			queue := buckets[cat]
			if len(queue) == 0 {
				continue
			}
			out = append(out, queue[0])
			buckets[cat] = queue[1:]
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return out
}
