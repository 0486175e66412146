// Package constants provides shared constants used throughout the scrydex codebase.
// This includes file permissions, file naming conventions, and schema versioning
// values that should be consistent across the application.
package constants

// File naming constants for card database files
const (
	// StoreExt is the file extension required for card database files
	StoreExt = ".json"

	// SchemaVersion is the current card database schema version stamped
	// into every envelope written by the store
	SchemaVersion = "1.1.0"
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created card
	// database files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define buffering sizes for streaming I/O
const (
	// WriteBufferSize is the buffered writer size used when streaming a
	// card database to disk
	WriteBufferSize = 64 * 1024

	// ReadBufferSize is the buffered reader size used when streaming a
	// card database from disk
	ReadBufferSize = 64 * 1024
)
