package personality

import (
	"math"

	"eventScout/business/discovery"
	"eventScout/domain"
)

// centroid is a fixed point in five-trait z-score space:
// openness, conscientiousness, extraversion, agreeableness, neuroticism.
type centroid struct {
	label  string
	traits [5]float64
}

// Declaration order matters: distance ties resolve to the earlier centroid.
var centroids = []centroid{
	{discovery.LabelAdventurousExplorer, [5]float64{1.2, -0.3, 1.2, 0.2, -0.5}},
	{discovery.LabelSecureOptimist, [5]float64{0.0, 0.5, 0.6, 0.8, -1.0}},
	{discovery.LabelThoughtfulHarmonizer, [5]float64{0.8, 0.6, -0.8, 1.0, 0.3}},
	{discovery.LabelBalancedRealist, [5]float64{0, 0, 0, 0, 0}},
}

// Classify assigns the persona label whose centroid is nearest to the trait
// vector by Euclidean distance. Pure function, no failure mode.
func Classify(traits domain.TraitScores) string {
	v := [5]float64{
		traits.Openness,
		traits.Conscientiousness,
		traits.Extraversion,
		traits.Agreeableness,
		traits.Neuroticism,
	}

	best := centroids[0].label
	bestDist := math.Inf(1)

	for _, c := range centroids {
		d := 0.0
		for i := range v {
			diff := v[i] - c.traits[i]
			d += diff * diff
		}
		if d < bestDist {
			bestDist = d
			best = c.label
		}
	}

	return best
}
