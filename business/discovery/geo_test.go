package discovery

import (
	"testing"

	"eventScout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGeohash(t *testing.T) {
	// dr5reg covers lower Manhattan.
	coords := DecodeGeohash("dr5reg")
	require.NotNil(t, coords)
	assert.InDelta(t, 40.71, coords.Lat, 0.05)
	assert.InDelta(t, -74.00, coords.Lon, 0.05)
}

func TestDecodeGeohashInvalid(t *testing.T) {
	assert.Nil(t, DecodeGeohash(""))
	assert.Nil(t, DecodeGeohash("not a geohash!"))
}

func TestHaversineMiles(t *testing.T) {
	nyc := domain.Coordinates{Lat: 40.7128, Lon: -74.0060}
	la := domain.Coordinates{Lat: 34.0522, Lon: -118.2437}

	assert.InDelta(t, 0, haversineMiles(nyc, nyc), 1e-9)
	assert.InDelta(t, 2445, haversineMiles(nyc, la), 15)
}
