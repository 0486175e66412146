package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPathError(t *testing.T) {
	t.Run("IsInvalidPath", func(t *testing.T) {
		err := NewPathError("/tmp/somewhere", "is a directory, expected a file")
		if !errors.Is(err, ErrInvalidPath) {
			t.Error("PathError should match ErrInvalidPath")
		}
		if !IsInvalidPath(err) {
			t.Error("IsInvalidPath should return true for PathError")
		}
	})

	t.Run("Message", func(t *testing.T) {
		err := NewPathError("/tmp/x", "does not exist")
		want := "path /tmp/x: does not exist"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("card database", "/data/inventory.json")
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsInvalidPath(err) {
		t.Error("NotFoundError should not match ErrInvalidPath")
	}
}

func TestMetadataError(t *testing.T) {
	t.Run("MissingEnvelope", func(t *testing.T) {
		err := NewMetadataError("inventory.json", "", "no meta key present")
		if !IsMetadataMissing(err) {
			t.Error("MetadataError without field should match ErrMetadataMissing")
		}
	})

	t.Run("InvalidField", func(t *testing.T) {
		err := NewMetadataError("inventory.json", "type", "unknown store type")
		if IsMetadataMissing(err) {
			t.Error("field-level MetadataError should not match ErrMetadataMissing")
		}
		if !IsValidationError(err) {
			t.Error("field-level MetadataError should match ErrInvalidInput")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("formats", "modern:modern", "duplicate entry")
	if !IsValidationError(err) {
		t.Error("IsValidationError should return true for ValidationError")
	}
	want := "validation failed for field formats: duplicate entry"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapHelpers(t *testing.T) {
	t.Run("NilPassthrough", func(t *testing.T) {
		if WrapIO("read", "/tmp/x", nil) != nil {
			t.Error("WrapIO(nil) should return nil")
		}
		if WrapParse("json", "x.json", nil) != nil {
			t.Error("WrapParse(nil) should return nil")
		}
		if WrapValidation("cmc", nil) != nil {
			t.Error("WrapValidation(nil) should return nil")
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := WrapIO("write", "/data/out.json", cause)
		if !errors.Is(err, cause) {
			t.Error("wrapped IOError should unwrap to its cause")
		}
	})

	t.Run("WrappedChain", func(t *testing.T) {
		inner := NewPathError("/d", "is a directory, expected a file")
		outer := fmt.Errorf("opening store: %w", inner)
		if !errors.Is(outer, ErrInvalidPath) {
			t.Error("fmt wrapped PathError should still match ErrInvalidPath")
		}
	})
}
