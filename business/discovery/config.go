package discovery

// Config holds the engine tunables. The decay and penalty constants are
// empirically chosen; behavioral parity matters more than re-deriving them.
type Config struct {
	// Ascending search radii in miles, one query round per tier.
	RadiusTiers []int

	// Hard ceiling on the working set collected across all tiers.
	GlobalCap int

	// Per-call page size ceiling against the external API.
	QueryPageSize int

	// Item cap and keyword for the last-resort query when every tier
	// came back empty.
	FallbackCap     int
	FallbackKeyword string

	// Recency: full score inside RecencyFullDays, zero at RecencyZeroDays.
	RecencyFullDays float64
	RecencyZeroDays float64

	// Proximity: 1.0 at the viewer, zero at ProximityZeroMiles.
	ProximityZeroMiles float64

	// Penalty per repeated venue, scaled by the persona's diversity weight.
	DiversityStep float64
}

const (
	defaultGlobalCap          = 100
	defaultQueryPageSize      = 25
	defaultFallbackCap        = 30
	defaultFallbackKeyword    = "virtual"
	defaultRecencyFullDays    = 7
	defaultRecencyZeroDays    = 45
	defaultProximityZeroMiles = 150
	defaultDiversityStep      = 0.2
)

func DefaultConfig() Config {
	return Config{
		RadiusTiers:        []int{15, 30, 60, 120, 250},
		GlobalCap:          defaultGlobalCap,
		QueryPageSize:      defaultQueryPageSize,
		FallbackCap:        defaultFallbackCap,
		FallbackKeyword:    defaultFallbackKeyword,
		RecencyFullDays:    defaultRecencyFullDays,
		RecencyZeroDays:    defaultRecencyZeroDays,
		ProximityZeroMiles: defaultProximityZeroMiles,
		DiversityStep:      defaultDiversityStep,
	}
}
