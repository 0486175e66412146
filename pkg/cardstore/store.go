// Package cardstore implements durable storage for card collections as
// streaming JSON card database files. A store file is a single JSON
// document `{ "meta": {...}, "cards": [...] }` with the metadata envelope
// ordered before the card array, so a reader can expose the envelope
// without touching the potentially enormous array.
//
// Readers stream cards incrementally and never require the file to fit in
// memory; writers stream output the same way. Files are written wholesale
// and treated as immutable afterward; any transformation produces a new
// in-memory array or a new file.
//
// Example usage:
//
//	reader, err := cardstore.Open("inventory.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	for card := range reader.Cards(cardstore.ExportableOnly()) {
//	    fmt.Println(card.Name)
//	}
package cardstore

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/constants"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// Reader exposes one card database file: its path, its metadata envelope,
// and a lazy single-pass stream of card records.
type Reader struct {
	path string
	meta cards.Metadata

	file *os.File
	dec  *json.Decoder

	// group kind -> set of member source filenames, built once from meta
	groups map[cards.GroupKind]map[string]struct{}

	started bool
	err     error
}

// Open validates the path, reads the metadata envelope in a bounded
// pre-pass, and returns a reader positioned to stream the card array.
//
// The path must name a regular file. The document's first key must be
// "meta"; a document without the envelope fails with a metadata error
// before any card is read.
func Open(path string) (*Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("card database", path)
		}
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.IsDir() {
		return nil, errors.NewPathError(path, "is a directory, expected a card database file")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}

	reader := &Reader{
		path: path,
		file: file,
		dec:  json.NewDecoder(bufio.NewReaderSize(file, constants.ReadBufferSize)),
	}

	if err := reader.readMeta(); err != nil {
		_ = file.Close()
		return nil, err
	}

	reader.groups = make(map[cards.GroupKind]map[string]struct{}, len(reader.meta.Groups))
	for kind := range reader.meta.Groups {
		reader.groups[kind] = reader.meta.GroupSet(kind)
	}

	return reader, nil
}

// readMeta consumes tokens up to and including the meta envelope value,
// leaving the decoder positioned at the key following it. The pre-pass is
// bounded: it never looks past the first key of the document.
func (r *Reader) readMeta() error {
	tok, err := r.dec.Token()
	if err != nil {
		return errors.WrapParse("json", r.path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.NewParseError("json", r.path, "document is not a JSON object", nil)
	}

	if !r.dec.More() {
		return errors.NewMetadataError(r.path, "", "no meta key present")
	}

	tok, err = r.dec.Token()
	if err != nil {
		return errors.WrapParse("json", r.path, err)
	}
	key, ok := tok.(string)
	if !ok || key != "meta" {
		// The envelope must stream before the card array.
		return errors.NewMetadataError(r.path, "", "no meta key present")
	}

	if err := r.dec.Decode(&r.meta); err != nil {
		return errors.WrapParse("json", r.path, err)
	}

	return r.meta.Validate(r.path)
}

// Path returns the file path the reader was opened from.
func (r *Reader) Path() string {
	return r.path
}

// Metadata returns a deep copy of the envelope parsed from disk. The
// reader's own copy is never exposed, so the parsed metadata stays
// immutable for the lifetime of the reader.
func (r *Reader) Metadata() cards.Metadata {
	return r.meta.Clone()
}

// Err returns the first error encountered while streaming the card
// array, if any. Per-record skips are not errors; only a syntactically
// corrupt array or underlying I/O failure ends the stream early and is
// reported here.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file handle. It is safe to call after
// the stream has already terminated.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	file := r.file
	r.file = nil
	return file.Close()
}

// ReadAll materializes the card stream into a slice. It is a convenience
// for small files and tooling; large files should use Cards, which never
// holds the whole array in memory.
func (r *Reader) ReadAll(opts ...StreamOption) ([]*cards.Card, error) {
	var all []*cards.Card
	for card := range r.Cards(opts...) {
		all = append(all, card)
	}
	if r.err != nil {
		return nil, r.err
	}
	return all, nil
}

// IsCardGroup reports whether the card's source filename is tagged under
// the given group kind in this store's envelope.
func (r *Reader) IsCardGroup(c *cards.Card, kind cards.GroupKind) bool {
	members, ok := r.groups[kind]
	if !ok {
		return false
	}
	_, member := members[c.Filename]
	return member
}

// IsCardExportable reports whether the card belongs to no group kind.
func (r *Reader) IsCardExportable(c *cards.Card) bool {
	for kind := range r.groups {
		if r.IsCardGroup(c, kind) {
			return false
		}
	}
	return true
}
