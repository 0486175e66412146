package cards

import (
	"time"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// StoreType classifies a card database file.
type StoreType string

// Valid store types.
const (
	// StoreInventory is a raw imported collection
	StoreInventory StoreType = "inventory"
	// StoreSorted is a collection sorted for physical storage
	StoreSorted StoreType = "sorted"
	// StoreSortedFormat is a collection scoped to one game format
	StoreSortedFormat StoreType = "sorted_format"
)

// StoreTypes lists every valid store type.
var StoreTypes = []StoreType{StoreInventory, StoreSorted, StoreSortedFormat}

// Valid reports whether the store type is a member of the closed set.
func (t StoreType) Valid() bool {
	switch t {
	case StoreInventory, StoreSorted, StoreSortedFormat:
		return true
	}
	return false
}

// ParseStoreType validates a raw store type string.
func ParseStoreType(s string) (StoreType, error) {
	t := StoreType(s)
	if !t.Valid() {
		return "", errors.NewValidationError("type", s, "unknown store type")
	}
	return t, nil
}

// Format is a supported constructed game format.
type Format string

// Supported game formats.
const (
	FormatStandard    Format = "standard"
	FormatPioneer     Format = "pioneer"
	FormatModern      Format = "modern"
	FormatLegacy      Format = "legacy"
	FormatVintage     Format = "vintage"
	FormatCommander   Format = "commander"
	FormatPauper      Format = "pauper"
	FormatBrawl       Format = "brawl"
	FormatOathbreaker Format = "oathbreaker"
	FormatPenny       Format = "penny"
)

// Formats lists every supported game format.
var Formats = []Format{
	FormatStandard,
	FormatPioneer,
	FormatModern,
	FormatLegacy,
	FormatVintage,
	FormatCommander,
	FormatPauper,
	FormatBrawl,
	FormatOathbreaker,
	FormatPenny,
}

// Valid reports whether the format is a member of the supported set.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat validates a raw format string.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", errors.NewValidationError("format", s, "unsupported game format")
	}
	return f, nil
}

// GroupKind is a named membership tag associating source filenames with
// non-default handling, commonly exclusion from export.
type GroupKind string

// Valid group kinds. Any other string is rejected, never silently accepted.
const (
	GroupDecks    GroupKind = "decks"
	GroupExternal GroupKind = "external"
	GroupProxy    GroupKind = "proxy"
)

// GroupKinds lists every valid group kind.
var GroupKinds = []GroupKind{GroupDecks, GroupExternal, GroupProxy}

// Valid reports whether the group kind is a member of the closed set.
func (g GroupKind) Valid() bool {
	switch g {
	case GroupDecks, GroupExternal, GroupProxy:
		return true
	}
	return false
}

// ParseGroupKind validates a raw group kind string.
func ParseGroupKind(s string) (GroupKind, error) {
	g := GroupKind(s)
	if !g.Valid() {
		return "", errors.NewValidationError("group", s, "unknown group kind")
	}
	return g, nil
}

// Metadata is the envelope describing a stored collection.
type Metadata struct {
	// Display name, defaults to the filename without extension
	Name string `json:"name"`

	// Store classification
	Type StoreType `json:"type"`

	// Game format, required when Type is sorted_format
	Format Format `json:"format,omitempty"`

	// Group kind to set of source filenames belonging to that group
	Groups map[GroupKind][]string `json:"groups,omitempty"`

	// Stamped by the writer
	CLIVersion    string    `json:"cliVersion,omitempty"`
	SchemaVersion string    `json:"schemaVersion,omitempty"`
	GeneratedAt   time.Time `json:"generatedAt,omitempty"`
}

// Validate checks the envelope against the closed enumerations. Type must
// be a valid store type; sorted_format stores additionally require a
// supported game format; group kinds must be members of the closed set.
func (m *Metadata) Validate(file string) error {
	if !m.Type.Valid() {
		return errors.NewMetadataError(file, "type", "unknown store type "+string(m.Type))
	}
	if m.Type == StoreSortedFormat {
		if m.Format == "" {
			return errors.NewMetadataError(file, "format", "sorted_format store requires a format")
		}
		if !m.Format.Valid() {
			return errors.NewMetadataError(file, "format", "unsupported game format "+string(m.Format))
		}
	}
	for kind := range m.Groups {
		if !kind.Valid() {
			return errors.NewMetadataError(file, "groups", "unknown group kind "+string(kind))
		}
	}
	return nil
}

// GroupSet returns the member filenames of one group kind as a set.
func (m *Metadata) GroupSet(kind GroupKind) map[string]struct{} {
	members := m.Groups[kind]
	if len(members) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(members))
	for _, filename := range members {
		set[filename] = struct{}{}
	}
	return set
}

// Clone returns a deep copy of the metadata. Readers hand out clones so
// the envelope parsed from disk stays immutable.
func (m *Metadata) Clone() Metadata {
	clone := *m
	if m.Groups != nil {
		clone.Groups = make(map[GroupKind][]string, len(m.Groups))
		for kind, members := range m.Groups {
			clone.Groups[kind] = append([]string(nil), members...)
		}
	}
	return clone
}
