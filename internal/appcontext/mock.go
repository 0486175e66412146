package appcontext

import (
	"github.com/rs/zerolog"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc    func() *zerolog.Logger
	StoreDirFunc  func() string
	RecursiveFunc func() bool
	VersionFunc   func() string
	CommitFunc    func() string
	DateFunc      func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// StoreDir returns the store directory using the mock function or ".".
func (m *Mock) StoreDir() string {
	if m.StoreDirFunc != nil {
		return m.StoreDirFunc()
	}
	return "."
}

// Recursive returns the recursion default using the mock function or false.
func (m *Mock) Recursive() bool {
	if m.RecursiveFunc != nil {
		return m.RecursiveFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
