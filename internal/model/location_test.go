package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_Empty(t *testing.T) {
	assert.Nil(t, Bounds(nil))
	assert.Nil(t, Bounds([]Location{}))
}

func TestBounds_CoversAllRecords(t *testing.T) {
	locs := []Location{
		{Film: "Ghostbusters", Latitude: 40.7, Longitude: -74.0},
		{Film: "Annie Hall", Latitude: 40.8, Longitude: -73.9},
		{Film: "Taxi Driver", Latitude: 40.75, Longitude: -73.98},
	}

	b := Bounds(locs)
	require.NotNil(t, b)
	assert.InDelta(t, -74.0, b.Min(0), 1e-9)
	assert.InDelta(t, -73.9, b.Max(0), 1e-9)
	assert.InDelta(t, 40.7, b.Min(1), 1e-9)
	assert.InDelta(t, 40.8, b.Max(1), 1e-9)
}

func TestBounds_SingleRecord(t *testing.T) {
	b := Bounds([]Location{{Film: "Big", Latitude: 40.7197, Longitude: -73.9866}})
	require.NotNil(t, b)
	assert.InDelta(t, b.Min(0), b.Max(0), 1e-9)
	assert.InDelta(t, b.Min(1), b.Max(1), 1e-9)
}
