package cardstore

import (
	"encoding/json"
	"iter"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/filter"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/logging"
)

// KeySet is the membership test capability used for unique-key stream
// filtering. cards.Keys satisfies it; any lookup structure with a Has
// method can be supplied.
type KeySet interface {
	Has(key cards.Key) bool
}

// DiagnosticFunc receives a report for each record skipped for a
// non-fatal reason (malformed entry, wrong discriminator). index is the
// record's position in the card array.
type DiagnosticFunc func(path string, index int, reason string)

// StreamOption configures one card stream. All options compose
// independently.
type StreamOption func(*streamConfig)

type streamConfig struct {
	filter      *filter.Filter
	filterFn    func(*cards.Card) bool
	skipGroups  map[cards.GroupKind]bool
	exportable  bool
	uniqueKeys  KeySet
	uniqueOnce  bool
	diagnostics DiagnosticFunc
}

// WithFilter applies a declarative card filter; cards failing the
// predicate are skipped.
func WithFilter(f *filter.Filter) StreamOption {
	return func(c *streamConfig) {
		c.filter = f
	}
}

// WithFilterFunc applies an arbitrary post-filter predicate, evaluated
// after every other stream stage.
func WithFilterFunc(fn func(*cards.Card) bool) StreamOption {
	return func(c *streamConfig) {
		c.filterFn = fn
	}
}

// WithoutGroups excludes cards whose source filename is tagged under any
// of the given group kinds.
func WithoutGroups(kinds ...cards.GroupKind) StreamOption {
	return func(c *streamConfig) {
		if c.skipGroups == nil {
			c.skipGroups = make(map[cards.GroupKind]bool, len(kinds))
		}
		for _, kind := range kinds {
			c.skipGroups[kind] = true
		}
	}
}

// ExportableOnly excludes all group kinds at once: an exportable card
// belongs to no group.
func ExportableOnly() StreamOption {
	return func(c *streamConfig) {
		c.exportable = true
	}
}

// WithUniqueKeys yields only cards whose composite identity key is a
// member of the given set.
func WithUniqueKeys(keys KeySet) StreamOption {
	return func(c *streamConfig) {
		c.uniqueKeys = keys
	}
}

// UniqueOnce yields at most one card per identity key, in
// first-encountered order, suppressing later duplicates.
func UniqueOnce() StreamOption {
	return func(c *streamConfig) {
		c.uniqueOnce = true
	}
}

// WithDiagnostics installs a sink for per-record skip reports. Skipped
// records are always logged at debug level regardless.
func WithDiagnostics(fn DiagnosticFunc) StreamOption {
	return func(c *streamConfig) {
		c.diagnostics = fn
	}
}

// Cards returns the lazy card stream for this store. The sequence is
// finite, forward-only, and not restartable: consumers needing multiple
// passes must open a new Reader or buffer results themselves. Breaking
// out of the loop early closes the underlying file.
//
// Malformed array entries (values that are not JSON objects, or records
// without the card discriminator) are skipped per record and reported
// to the diagnostics sink; they never abort the stream.
func (r *Reader) Cards(opts ...StreamOption) iter.Seq[*cards.Card] {
	config := &streamConfig{}
	for _, opt := range opts {
		opt(config)
	}

	return func(yield func(*cards.Card) bool) {
		if r.started {
			r.err = errors.New("card stream already consumed")
			return
		}
		r.started = true
		defer func() { _ = r.Close() }()

		if err := r.seekCards(); err != nil {
			r.err = err
			return
		}

		seen := make(cards.Keys)
		index := -1
		for r.dec.More() {
			index++

			var raw json.RawMessage
			if err := r.dec.Decode(&raw); err != nil {
				// Syntactically corrupt array; a streaming decoder
				// cannot resynchronize past this point.
				r.err = errors.WrapParse("json", r.path, err)
				return
			}

			card, reason := decodeCard(raw)
			if card == nil {
				r.skip(config, index, reason)
				continue
			}

			if config.exportable && !r.IsCardExportable(card) {
				continue
			}
			if !config.exportable && config.skipGroups != nil {
				excluded := false
				for kind := range config.skipGroups {
					if r.IsCardGroup(card, kind) {
						excluded = true
						break
					}
				}
				if excluded {
					continue
				}
			}

			if !config.filter.Match(card) {
				continue
			}

			key := card.Identity()
			if config.uniqueKeys != nil && !config.uniqueKeys.Has(key) {
				continue
			}
			if config.uniqueOnce {
				if seen.Has(key) {
					continue
				}
				seen.Add(key)
			}

			if config.filterFn != nil && !config.filterFn(card) {
				continue
			}

			if !yield(card) {
				return
			}
		}
	}
}

// seekCards advances the decoder from its post-envelope position to the
// first element of the cards array.
func (r *Reader) seekCards() error {
	for r.dec.More() {
		tok, err := r.dec.Token()
		if err != nil {
			return errors.WrapParse("json", r.path, err)
		}
		key, ok := tok.(string)
		if !ok {
			return errors.NewParseError("json", r.path, "unexpected token before cards array", nil)
		}

		if key != "cards" {
			// Unknown envelope-level key; skip its value.
			var discard json.RawMessage
			if err := r.dec.Decode(&discard); err != nil {
				return errors.WrapParse("json", r.path, err)
			}
			continue
		}

		tok, err = r.dec.Token()
		if err != nil {
			return errors.WrapParse("json", r.path, err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return errors.NewParseError("json", r.path, "cards is not an array", nil)
		}
		return nil
	}

	// No cards key at all; treat as an empty array.
	return nil
}

// decodeCard unmarshals one raw array element, returning nil and a skip
// reason for entries that are not well-formed card objects.
func decodeCard(raw json.RawMessage) (*cards.Card, string) {
	var card cards.Card
	if err := json.Unmarshal(raw, &card); err != nil {
		return nil, "not a well-formed object"
	}
	if !card.IsWellFormed() {
		return nil, "missing card discriminator"
	}
	return &card, ""
}

// skip reports one skipped record.
func (r *Reader) skip(config *streamConfig, index int, reason string) {
	logging.Debug().
		Str("file", r.path).
		Int("index", index).
		Str("reason", reason).
		Msg("Skipping malformed card record")
	if config.diagnostics != nil {
		config.diagnostics(r.path, index, reason)
	}
}
