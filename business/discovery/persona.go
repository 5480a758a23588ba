package discovery

// Persona is the closed set of personality archetypes the questionnaire
// classifier can produce. Unknown labels resolve to PersonaBalancedRealist.
type Persona int

const (
	PersonaAdventurousExplorer Persona = iota
	PersonaSecureOptimist
	PersonaThoughtfulHarmonizer
	PersonaBalancedRealist
)

const (
	LabelAdventurousExplorer  = "Adventurous Explorer"
	LabelSecureOptimist       = "Secure Optimist"
	LabelThoughtfulHarmonizer = "Thoughtful Harmonizer"
	LabelBalancedRealist      = "Balanced Realist"
)

// Top-level segments of the external provider's event taxonomy.
const (
	CategoryMusic  = "Music"
	CategorySports = "Sports"
	CategoryArts   = "Arts & Theatre"
	CategoryMisc   = "Miscellaneous"
)

func ParsePersona(label string) (Persona, bool) {
	switch label {
	case LabelAdventurousExplorer:
		return PersonaAdventurousExplorer, true
	case LabelSecureOptimist:
		return PersonaSecureOptimist, true
	case LabelThoughtfulHarmonizer:
		return PersonaThoughtfulHarmonizer, true
	case LabelBalancedRealist:
		return PersonaBalancedRealist, true
	default:
		return PersonaBalancedRealist, false
	}
}

func (p Persona) String() string {
	switch p {
	case PersonaAdventurousExplorer:
		return LabelAdventurousExplorer
	case PersonaSecureOptimist:
		return LabelSecureOptimist
	case PersonaThoughtfulHarmonizer:
		return LabelThoughtfulHarmonizer
	default:
		return LabelBalancedRealist
	}
}

// CategoryShare is one entry of a persona's category mix. The mix is an
// ordered slice rather than a map so the planner walks categories in a
// deterministic order.
type CategoryShare struct {
	Category string
	Fraction float64
}

// Weights are the linear coefficients of the ranking formula. They do not
// have to sum to 1.
type Weights struct {
	Persona   float64
	Recency   float64
	Proximity float64
	Diversity float64
}

// PersonaSignal is the static per-persona configuration driving the planner
// and the ranker. Read-only after process start.
type PersonaSignal struct {
	Persona       Persona
	CategoryMix   []CategoryShare
	Tokens        []string
	CategoryHints map[string][]string
	Weights       Weights
}

var personaSignals = map[Persona]PersonaSignal{
	PersonaAdventurousExplorer: {
		Persona: PersonaAdventurousExplorer,
		CategoryMix: []CategoryShare{
			{CategoryMusic, 0.40},
			{CategorySports, 0.30},
			{CategoryArts, 0.20},
			{CategoryMisc, 0.10},
		},
		Tokens: []string{
			"festival", "live music", "outdoor", "extreme sports",
			"dance party", "adventure",
		},
		CategoryHints: map[string][]string{
			CategoryMusic:  {"Rock", "Dance/Electronic"},
			CategorySports: {"Extreme", "Motorsports/Racing"},
		},
		Weights: Weights{Persona: 1.0, Recency: 0.8, Proximity: 0.6, Diversity: 1.0},
	},
	PersonaSecureOptimist: {
		Persona: PersonaSecureOptimist,
		CategoryMix: []CategoryShare{
			{CategoryMusic, 0.30},
			{CategoryArts, 0.30},
			{CategorySports, 0.20},
			{CategoryMisc, 0.20},
		},
		Tokens: []string{
			"comedy", "family", "pop", "baseball", "food festival",
			"musical",
		},
		CategoryHints: map[string][]string{
			CategoryMusic:  {"Pop", "Country"},
			CategoryArts:   {"Comedy", "Theatre"},
			CategorySports: {"Baseball"},
		},
		Weights: Weights{Persona: 1.0, Recency: 0.6, Proximity: 1.0, Diversity: 0.8},
	},
	PersonaThoughtfulHarmonizer: {
		Persona: PersonaThoughtfulHarmonizer,
		CategoryMix: []CategoryShare{
			{CategoryArts, 0.40},
			{CategoryMusic, 0.30},
			{CategoryMisc, 0.20},
			{CategorySports, 0.10},
		},
		Tokens: []string{
			"theatre", "classical", "jazz", "gallery", "poetry",
			"symphony",
		},
		CategoryHints: map[string][]string{
			CategoryArts:  {"Theatre", "Fine Art"},
			CategoryMusic: {"Classical", "Jazz"},
		},
		Weights: Weights{Persona: 1.2, Recency: 0.5, Proximity: 0.8, Diversity: 1.0},
	},
	PersonaBalancedRealist: {
		Persona: PersonaBalancedRealist,
		CategoryMix: []CategoryShare{
			{CategoryMusic, 0.25},
			{CategorySports, 0.25},
			{CategoryArts, 0.25},
			{CategoryMisc, 0.25},
		},
		Tokens: []string{
			"concert", "game", "show", "fair", "exhibition",
		},
		CategoryHints: map[string][]string{},
		Weights:       Weights{Persona: 1.0, Recency: 0.7, Proximity: 0.7, Diversity: 0.7},
	},
}

// ResolveSignal looks up the static signal for a label. It never fails:
// unknown labels get the Balanced Realist signal. Trait z-scores do not
// change the signal; they only nudge the fallback keyword groups (see
// ComposeKeywords).
func ResolveSignal(label string) PersonaSignal {
	persona, _ := ParsePersona(label)
	return personaSignals[persona]
}
