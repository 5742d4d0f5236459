package geocode

import (
	"context"
	"sync"
)

// fakeProvider is a scriptable Provider that records call counts per query.
type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	byQuery map[string]int

	result *Result
	err    error

	// resolve, when set, overrides result/err.
	resolve func(ctx context.Context, query string) (*Result, error)
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Resolve(ctx context.Context, query string) (*Result, error) {
	f.mu.Lock()
	f.calls++
	if f.byQuery == nil {
		f.byQuery = make(map[string]int)
	}
	f.byQuery[query]++
	f.mu.Unlock()

	if f.resolve != nil {
		return f.resolve(ctx, query)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		r := *f.result
		return &r, nil
	}
	return &Result{Found: false}, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
