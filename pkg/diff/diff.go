// Package diff computes identity-keyed quantity reconciliation between
// two card database snapshots. The comparison is asymmetric: the result
// describes how the comparison store differs from the baseline store.
//
// The diff is intentionally identity/quantity-only; retrieving
// human-readable metadata for a key requires a second pass by the caller.
package diff

import (
	"sort"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/logging"
)

// Changeset is the result of reconciling two stores.
type Changeset struct {
	// Added lists identity keys present in comparison but absent from
	// baseline, sorted for deterministic output.
	Added []cards.Key

	// Removed lists identity keys present in baseline but absent from
	// comparison, sorted for deterministic output.
	Removed []cards.Key

	// Changed maps identity keys present in both to the signed delta
	// comparisonQty - baselineQty. Zero deltas are not retained.
	Changed map[cards.Key]int
}

// Empty reports whether the changeset holds no differences.
func (c *Changeset) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// QuantityDiagnosticFunc receives a report for each record skipped during
// quantity-map construction because its quantity was not a positive
// integer.
type QuantityDiagnosticFunc func(path string, key cards.Key, quantity int)

// Option configures a diff run.
type Option func(*config)

type config struct {
	exportableOnly bool
	diagnostics    QuantityDiagnosticFunc
}

// ExportableOnly restricts both sides to exportable cards (cards
// belonging to no group).
func ExportableOnly() Option {
	return func(c *config) {
		c.exportableOnly = true
	}
}

// WithDiagnostics installs a sink for skipped-quantity reports. Skips are
// always logged at warn level regardless.
func WithDiagnostics(fn QuantityDiagnosticFunc) Option {
	return func(c *config) {
		c.diagnostics = fn
	}
}

// Stores reconciles a comparison reader against a baseline reader. Both
// streams are consumed; each reader is single-pass, so callers wanting to
// inspect cards afterwards must reopen the stores.
func Stores(baseline, comparison *cardstore.Reader, opts ...Option) (*Changeset, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	baseQty, err := quantities(baseline, cfg)
	if err != nil {
		return nil, err
	}
	compQty, err := quantities(comparison, cfg)
	if err != nil {
		return nil, err
	}

	changeset := &Changeset{Changed: make(map[cards.Key]int)}

	for key, qty := range compQty {
		baseline, exists := baseQty[key]
		if !exists {
			changeset.Added = append(changeset.Added, key)
			continue
		}
		if delta := qty - baseline; delta != 0 {
			changeset.Changed[key] = delta
		}
	}

	for key := range baseQty {
		if _, exists := compQty[key]; !exists {
			changeset.Removed = append(changeset.Removed, key)
		}
	}

	sortKeys(changeset.Added)
	sortKeys(changeset.Removed)

	return changeset, nil
}

// quantities builds the identity -> total quantity map for one store,
// summing quantities across records sharing the same composite key.
// Records with non-positive quantity are skipped and reported.
func quantities(reader *cardstore.Reader, cfg *config) (map[cards.Key]int, error) {
	var opts []cardstore.StreamOption
	if cfg.exportableOnly {
		opts = append(opts, cardstore.ExportableOnly())
	}

	totals := make(map[cards.Key]int)
	for card := range reader.Cards(opts...) {
		key := card.Identity()
		if card.Quantity <= 0 {
			logging.Warn().
				Str("file", reader.Path()).
				Str("key", string(key)).
				Int("quantity", card.Quantity).
				Msg("Skipping record with non-positive quantity")
			if cfg.diagnostics != nil {
				cfg.diagnostics(reader.Path(), key, card.Quantity)
			}
			continue
		}
		totals[key] += card.Quantity
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

func sortKeys(keys []cards.Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
}
