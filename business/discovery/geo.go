package discovery

import (
	"math"

	"eventScout/domain"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusMiles = 3958.8

// DecodeGeohash turns a geohash string into coordinates. Empty or malformed
// input yields nil, which downstream scoring treats as "location unknown".
func DecodeGeohash(hash string) *domain.Coordinates {
	if hash == "" {
		return nil
	}
	if err := geohash.Validate(hash); err != nil {
		return nil
	}

	lat, lon := geohash.DecodeCenter(hash)

	return &domain.Coordinates{Lat: lat, Lon: lon}
}

// haversineMiles is the great-circle distance between two points.
func haversineMiles(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
