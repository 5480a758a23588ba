package discovery

import (
	"strings"

	"eventScout/domain"
)

// KeywordGroups are pipe-delimited keyword lists for the last-resort
// fallback query. They never feed the main ranking.
type KeywordGroups struct {
	Primary   string
	Secondary string
}

// z-score above which a trait nudges the keyword groups.
const traitNudgeThreshold = 0.6

type keywordBase struct {
	primary   []string
	secondary []string
}

var personaKeywords = map[Persona]keywordBase{
	PersonaAdventurousExplorer: {
		primary:   []string{"festival", "live music", "outdoor"},
		secondary: []string{"adventure", "dance party", "road trip"},
	},
	PersonaSecureOptimist: {
		primary:   []string{"comedy", "family", "pop"},
		secondary: []string{"food festival", "musical", "matinee"},
	},
	PersonaThoughtfulHarmonizer: {
		primary:   []string{"theatre", "classical", "jazz"},
		secondary: []string{"gallery", "poetry", "acoustic"},
	},
	PersonaBalancedRealist: {
		primary:   []string{"concert", "show"},
		secondary: []string{"game", "fair", "exhibition"},
	},
}

// ComposeKeywords builds the persona's keyword groups and applies trait
// nudges. Each trait is checked independently against the same threshold,
// so several nudges can fire at once; nil traits skip all of them.
func ComposeKeywords(label string, traits *domain.TraitScores) KeywordGroups {
	persona, _ := ParsePersona(label)
	base := personaKeywords[persona]

	primary := make([]string, len(base.primary))
	copy(primary, base.primary)
	secondary := make([]string, len(base.secondary))
	copy(secondary, base.secondary)

	if traits != nil {
		if traits.Openness > traitNudgeThreshold {
			primary = append(primary, "experimental")
			secondary = append(secondary, "immersive art")
		}
		if traits.Extraversion > traitNudgeThreshold {
			primary = append(primary, "festival", "party")
		}
		if traits.Conscientiousness > traitNudgeThreshold {
			secondary = append(secondary, "workshop", "lecture")
		}
		if traits.Agreeableness > traitNudgeThreshold {
			secondary = append(secondary, "community", "charity")
		}
		if traits.Neuroticism > traitNudgeThreshold {
			secondary = append(secondary, "wellness", "mindfulness")
		}
	}

	return KeywordGroups{
		Primary:   strings.Join(dedupeTokens(primary), "|"),
		Secondary: strings.Join(dedupeTokens(secondary), "|"),
	}
}

// dedupeTokens drops case-insensitive duplicates, keeping the first
// occurrence in its original spelling and position.
func dedupeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		key := strings.ToLower(strings.TrimSpace(tok))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tok)
	}

	return out
}
