package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeCache_NegativeDistinctFromNotAttempted(t *testing.T) {
	c := newOutcomeCache()

	_, ok := c.get("Central Park")
	assert.False(t, ok, "never-attempted query")

	c.put("Central Park", Result{Found: false})

	r, ok := c.get("Central Park")
	assert.True(t, ok, "a stored negative outcome is still an outcome")
	assert.False(t, r.Found)
}

func TestOutcomeCache_ExactKeying(t *testing.T) {
	c := newOutcomeCache()
	c.put("Central Park", Result{Found: true, Latitude: 40.78})

	_, ok := c.get("central park")
	assert.False(t, ok, "cache keys are the exact query text")
	assert.Equal(t, 1, c.size())
}
