package metadata

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/numplan/phonemeta"
)

// Provider loads one metadata Document, typically by reading a blob from
// disk, an embedded asset, or a network fetch, and decoding it with
// DecodeBinary or DecodeJSON.
type Provider interface {
	Load() (*Document, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func() (*Document, error)

// Load calls f.
func (f ProviderFunc) Load() (*Document, error) {
	return f()
}

// LoadError aggregates every provider's failure from one LoadAll call.
// Per-provider causes are preserved in Causes rather than only the
// first, so a caller investigating a load failure sees every provider
// that failed, not just whichever happened to run first.
type LoadError struct {
	Causes []error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("metadata: %d provider(s) failed to load: %v", len(e.Causes), e.Causes[0])
}

// Unwrap exposes every cause to errors.Is/errors.As via the multi-error
// protocol.
func (e *LoadError) Unwrap() []error {
	return e.Causes
}

// LoadAll loads every provider concurrently, resolves each successfully
// decoded Document against requested, and returns the resulting
// classifiers sorted ascending by less. If any provider fails to load,
// decode, or resolve, LoadAll aborts and returns a *LoadError aggregating
// every failure observed; no partial results are returned in that case.
//
// maxConcurrency caps how many providers load at once; maxConcurrency <= 0
// means unlimited, matching errgroup.Group's own default.
func LoadAll(providers []Provider, requested phonemeta.VersionInfo, maxConcurrency int, less func(a, b phonemeta.VersionInfo) bool) ([]phonemeta.RawClassifier, error) {
	results := make([]phonemeta.RawClassifier, len(providers))
	errs := make([]error, len(providers))

	var grp errgroup.Group
	if maxConcurrency > 0 {
		grp.SetLimit(maxConcurrency)
	}
	var mu sync.Mutex
	for i, p := range providers {
		i, p := i, p
		grp.Go(func() error {
			doc, err := p.Load()
			if err != nil {
				mu.Lock()
				errs[i] = fmt.Errorf("provider %d: %w", i, err)
				mu.Unlock()
				return nil
			}
			raw, err := Resolve(doc, requested)
			if err != nil {
				mu.Lock()
				errs[i] = fmt.Errorf("provider %d: %w", i, err)
				mu.Unlock()
				return nil
			}
			results[i] = raw
			return nil
		})
	}
	// grp.Go's closures never return a non-nil error themselves; every
	// failure is recorded in errs instead, so every provider runs to
	// completion regardless of another's outcome.
	_ = grp.Wait()

	var causes []error
	for _, err := range errs {
		if err != nil {
			causes = append(causes, err)
		}
	}
	if len(causes) > 0 {
		return nil, &LoadError{Causes: causes}
	}

	sort.Slice(results, func(i, j int) bool {
		return less(results[i].GetVersion(), results[j].GetVersion())
	})
	return results, nil
}
