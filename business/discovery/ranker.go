package discovery

import (
	"sort"
	"strings"
	"time"

	"eventScout/domain"
)

const personaScoreCap = 10.0

// ScoredEvent carries the per-axis components behind an event's final rank.
// Ephemeral: recomputed on every request, never persisted.
type ScoredEvent struct {
	Event          domain.Event `json:"event"`
	PersonaScore   float64      `json:"persona_score"`
	RecencyScore   float64      `json:"recency_score"`
	ProximityScore float64      `json:"proximity_score"`
	BaseScore      float64      `json:"base_score"`
	FinalScore     float64      `json:"final_score"`
}

// Rank scores every event on the persona/recency/proximity axes, combines
// them with the persona's weights and applies the two-pass venue diversity
// penalty. The result is a deterministic total order: ties keep the relative
// order of the base-score sort.
func Rank(events []domain.Event, signal PersonaSignal, viewer *domain.Coordinates, now time.Time, cfg Config) []ScoredEvent {
	scored := make([]ScoredEvent, 0, len(events))

	for _, ev := range events {
		s := ScoredEvent{
			Event:          ev,
			PersonaScore:   personaScore(ev, signal.Tokens),
			RecencyScore:   recencyScore(ev.Date, now, cfg),
			ProximityScore: proximityScore(viewer, ev.Venue.Location, cfg),
		}
		s.BaseScore = signal.Weights.Persona*s.PersonaScore +
			signal.Weights.Recency*s.RecencyScore +
			signal.Weights.Proximity*s.ProximityScore
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].BaseScore > scored[j].BaseScore
	})

	// Second pass: penalize venues already taken by higher-ranked events.
	// The counter increments only after an event is scored, so the penalty
	// grows with each repeat down the list.
	venueRepeats := make(map[string]int)
	for i := range scored {
		key := strings.ToLower(scored[i].Event.Venue.Name)
		repeats := venueRepeats[key]
		scored[i].FinalScore = scored[i].BaseScore -
			signal.Weights.Diversity*cfg.DiversityStep*float64(repeats)
		venueRepeats[key]++
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	return scored
}

// personaScore checks each persona token against the event's name, venue
// name and city. A full-phrase hit is worth 2; otherwise each word of the
// token that appears on its own is worth 1. Clamped to 10.
func personaScore(ev domain.Event, tokens []string) float64 {
	haystack := strings.ToLower(ev.Name + " " + ev.Venue.Name + " " + ev.Venue.City)

	score := 0.0
	for _, token := range tokens {
		phrase := strings.ToLower(token)
		if phrase == "" {
			continue
		}
		if strings.Contains(haystack, phrase) {
			score += 2
			continue
		}
		for _, word := range strings.Fields(phrase) {
			if strings.Contains(haystack, word) {
				score++
			}
		}
	}

	if score > personaScoreCap {
		score = personaScoreCap
	}

	return score
}

// recencyScore is 1.0 for events starting within RecencyFullDays of now and
// decays linearly to 0 at RecencyZeroDays. An unparseable or missing date is
// treated as starting now, never as a negative score.
func recencyScore(date string, now time.Time, cfg Config) float64 {
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		start = now
	}

	days := start.Sub(now).Hours() / 24
	if days < 0 {
		days = 0
	}
	if days <= cfg.RecencyFullDays {
		return 1.0
	}
	if days >= cfg.RecencyZeroDays {
		return 0.0
	}

	return 1.0 - (days-cfg.RecencyFullDays)/(cfg.RecencyZeroDays-cfg.RecencyFullDays)
}

// proximityScore decays from 1.0 at the viewer to 0 at ProximityZeroMiles.
// When either side's coordinates are unknown it is a neutral 0.5, never 0.
func proximityScore(viewer, venue *domain.Coordinates, cfg Config) float64 {
	if viewer == nil || venue == nil {
		return 0.5
	}

	miles := haversineMiles(*viewer, *venue)
	score := 1.0 - miles/cfg.ProximityZeroMiles
	if score < 0 {
		score = 0
	}

	return score
}
