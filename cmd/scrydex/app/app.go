// Package app provides the application context and dependency management
// for the scrydex CLI. It centralizes configuration, logging, and
// lifecycle concerns so command implementations stay small.
package app

import (
	"github.com/rs/zerolog"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// App represents the scrydex application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Ensure App implements the command context interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// StoreDir returns the configured default card database directory.
func (a *App) StoreDir() string {
	return a.config.StoreDir
}

// Recursive reports whether directory scans recurse by default.
func (a *App) Recursive() bool {
	return a.config.Recursive
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
