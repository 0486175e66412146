// Package appcontext provides the shared application context interface
// used by all CLI commands. Commands accept this interface rather than
// the concrete App type, keeping them testable with mock implementations.
package appcontext

import (
	"github.com/rs/zerolog"
)

// Interface defines the application context that commands need.
// The App struct from cmd/scrydex/app implements this interface.
type Interface interface {
	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// StoreDir returns the default directory scanned for card databases
	// when a command is invoked without an explicit path argument.
	StoreDir() string

	// Recursive reports whether directory scans descend into
	// subdirectories by default.
	Recursive() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
