package cardstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/version"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/constants"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/logging"
)

var (
	generatedOnce sync.Once
	generatedTime time.Time
)

// generatedAt returns the envelope generation timestamp, fixed once per
// process run so every file written in one invocation shares an
// identical generation time.
func generatedAt() time.Time {
	generatedOnce.Do(func() {
		generatedTime = time.Now().UTC().Truncate(time.Second)
	})
	return generatedTime
}

// Save persists a card array plus a metadata envelope to a new file at
// path, streaming the serialized output element by element through a
// buffered writer. Additional memory use is O(1) relative to the size of
// the card array.
//
// The target must carry the store file extension and must not be a
// directory. The envelope is validated synchronously before any byte is
// written; cliVersion, schemaVersion, and the process-wide generation
// timestamp are stamped over the caller-supplied metadata, and the name
// defaults to the file's base name when omitted.
func Save(path string, meta cards.Metadata, list []*cards.Card) error {
	if !strings.HasSuffix(path, constants.StoreExt) {
		return errors.NewValidationError("path", path, "card database files require the "+constants.StoreExt+" extension")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.NewPathError(path, "is a directory, expected a file target")
	}

	stamped := meta.Clone()
	if stamped.Name == "" {
		stamped.Name = strings.TrimSuffix(filepath.Base(path), constants.StoreExt)
	}
	stamped.CLIVersion = version.Version
	stamped.SchemaVersion = constants.SchemaVersion
	stamped.GeneratedAt = generatedAt()

	if err := stamped.Validate(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := writeDocument(file, &stamped, list); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}

	logging.Info().
		Str("file", path).
		Int("cards", len(list)).
		Str("type", string(stamped.Type)).
		Msg("Saved card database")
	return nil
}

// writeDocument streams the envelope and the card array. Each card is
// serialized independently and comma-joined, so the full output never
// exists as one string. Write backpressure is absorbed by the buffered
// writer, which blocks on flush until the sink drains.
func writeDocument(file *os.File, meta *cards.Metadata, list []*cards.Card) error {
	path := file.Name()
	w := bufio.NewWriterSize(file, constants.WriteBufferSize)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return errors.WrapParse("json", path, err)
	}

	if _, err := w.WriteString(`{"meta":`); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if _, err := w.Write(metaJSON); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if _, err := w.WriteString(`,"cards":[`); err != nil {
		return errors.WrapIO("write", path, err)
	}

	for i, card := range list {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return errors.WrapIO("write", path, err)
			}
		}
		record := *card
		if record.Object == "" {
			record.Object = cards.ObjectCard
		}
		cardJSON, err := json.Marshal(&record)
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
		if _, err := w.Write(cardJSON); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if _, err := w.WriteString("]}\n"); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := w.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
