package cardstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/constants"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/logging"
)

// LoadOption configures a directory scan.
type LoadOption func(*loadConfig)

type loadConfig struct {
	types     map[cards.StoreType]bool
	formats   map[cards.Format]bool
	recursive bool
}

// WithTypes restricts the scan to stores of the given types.
func WithTypes(types ...cards.StoreType) LoadOption {
	return func(c *loadConfig) {
		if c.types == nil {
			c.types = make(map[cards.StoreType]bool, len(types))
		}
		for _, t := range types {
			c.types[t] = true
		}
	}
}

// WithFormats restricts the scan to sorted_format stores of the given
// game formats. Only meaningful combined with the sorted_format type.
func WithFormats(formats ...cards.Format) LoadOption {
	return func(c *loadConfig) {
		if c.formats == nil {
			c.formats = make(map[cards.Format]bool, len(formats))
		}
		for _, f := range formats {
			c.formats[f] = true
		}
	}
}

// Recursive makes the scan descend into subdirectories.
func Recursive() LoadOption {
	return func(c *loadConfig) {
		c.recursive = true
	}
}

// OpenDir discovers and opens every qualifying card database file under
// dir, returning readers in discovery order. Files that fail to open or
// fail metadata validation are skipped, never failing the scan as a
// whole: a directory of many stores should not fail wholesale because of
// one corrupt entry.
func OpenDir(dir string, opts ...LoadOption) ([]*Reader, error) {
	config := &loadConfig{}
	for _, opt := range opts {
		opt(config)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("directory", dir)
		}
		return nil, errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewPathError(dir, "is a file, expected a directory")
	}

	var readers []*Reader
	err = godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if !config.recursive && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, constants.StoreExt) {
				return nil
			}

			reader, err := Open(path)
			if err != nil {
				logging.Debug().
					Str("file", path).
					Err(err).
					Msg("Skipping unreadable card database")
				return nil
			}

			if !config.match(reader.meta) {
				_ = reader.Close()
				return nil
			}

			readers = append(readers, reader)
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			logging.Debug().
				Str("path", path).
				Err(err).
				Msg("Skipping unreadable directory entry")
			return godirwalk.SkipNode
		},
		Unsorted: false, // lexical order keeps discovery deterministic
	})
	if err != nil {
		// Close anything opened before the walk failed.
		for _, reader := range readers {
			_ = reader.Close()
		}
		return nil, errors.WrapIO("walk", dir, err)
	}

	return readers, nil
}

// match applies the type and format filters to one store envelope.
func (c *loadConfig) match(meta cards.Metadata) bool {
	if c.types != nil && !c.types[meta.Type] {
		return false
	}
	if c.formats != nil {
		if meta.Type != cards.StoreSortedFormat {
			return false
		}
		if !c.formats[meta.Format] {
			return false
		}
	}
	return true
}
