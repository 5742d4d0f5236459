package geocode

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_BlankQueryNeverCallsProvider(t *testing.T) {
	fake := &fakeProvider{result: &Result{Found: true, Latitude: 1, Longitude: 2}}
	c := NewClient(WithProvider(fake), WithMinDelay(time.Millisecond))

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := c.Lookup(context.Background(), q)
		require.NoError(t, err)
		assert.False(t, result.Found)
	}
	assert.Equal(t, 0, fake.callCount())
	assert.Equal(t, 0, c.CachedQueries())
}

func TestLookup_RepeatedQueryServedFromCache(t *testing.T) {
	fake := &fakeProvider{result: &Result{Found: true, Latitude: 40.7484, Longitude: -73.9857}}
	c := NewClient(WithProvider(fake), WithMinDelay(time.Millisecond))

	first, err := c.Lookup(context.Background(), "Empire State Building")
	require.NoError(t, err)
	require.True(t, first.Found)

	second, err := c.Lookup(context.Background(), "Empire State Building")
	require.NoError(t, err)
	assert.Equal(t, first.Latitude, second.Latitude)
	assert.Equal(t, first.Longitude, second.Longitude)
	assert.Equal(t, 1, fake.callCount(), "cache hit must not re-invoke the provider")
}

func TestLookup_NotFoundOutcomeIsCached(t *testing.T) {
	fake := &fakeProvider{result: &Result{Found: false}}
	c := NewClient(WithProvider(fake), WithMinDelay(time.Millisecond))

	for i := 0; i < 3; i++ {
		result, err := c.Lookup(context.Background(), "nowhere at all")
		require.NoError(t, err)
		assert.False(t, result.Found)
	}
	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, 1, c.CachedQueries())
}

func TestLookup_TransientFailureNotCached(t *testing.T) {
	fake := &fakeProvider{err: eris.New("connection reset")}
	c := NewClient(WithProvider(fake), WithMinDelay(time.Millisecond))

	result, err := c.Lookup(context.Background(), "Central Park")
	require.Error(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 0, c.CachedQueries())

	// Provider recovers; the same query is retried rather than replayed.
	fake.err = nil
	fake.result = &Result{Found: true, Latitude: 40.78, Longitude: -73.96}

	result, err = c.Lookup(context.Background(), "Central Park")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 2, fake.callCount())
	assert.Equal(t, 1, c.CachedQueries())
}

func TestLookup_DistinctQueriesSpacedByMinDelay(t *testing.T) {
	const minDelay = 120 * time.Millisecond

	fake := &fakeProvider{result: &Result{Found: true}}
	c := NewClient(WithProvider(fake), WithMinDelay(minDelay))

	start := time.Now()
	_, err := c.Lookup(context.Background(), "first query")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "second query")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), minDelay,
		"consecutive distinct requests must honor the minimum delay")
	assert.Equal(t, 2, fake.callCount())
}

func TestLookup_TimeoutSurfacesAsFailure(t *testing.T) {
	fake := &fakeProvider{
		resolve: func(ctx context.Context, _ string) (*Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	c := NewClient(WithProvider(fake), WithMinDelay(time.Millisecond), WithTimeout(30*time.Millisecond))

	result, err := c.Lookup(context.Background(), "slow provider")
	require.Error(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 0, c.CachedQueries(), "timeouts are transient and must not be cached")
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, 10*time.Second, c.timeout)
	assert.Equal(t, "nominatim", c.provider.Name())
}
