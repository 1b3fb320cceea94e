package docx

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DocxError.
type ErrorKind int

const (
	// KindDestination means the output file or writer could not be
	// created or written.
	KindDestination ErrorKind = iota
	// KindSerialization means the container stream could not be produced.
	KindSerialization
)

func (k ErrorKind) String() string {
	switch k {
	case KindDestination:
		return "destination"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// DocxError represents a failure while packaging or saving a document.
// Rendering XML never fails; only the container and the file system can.
type DocxError struct {
	Kind      ErrorKind
	Operation string
	Path      string
	Cause     error
}

func (e *DocxError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("docx %s error during %s of '%s': %v", e.Kind, e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("docx %s error during %s of '%s'", e.Kind, e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("docx %s error during %s: %v", e.Kind, e.Operation, e.Cause)
	}
	return fmt.Sprintf("docx %s error during %s", e.Kind, e.Operation)
}

func (e *DocxError) Unwrap() error {
	return e.Cause
}

// NewDocxError creates a new docx error
func NewDocxError(kind ErrorKind, operation, path string, cause error) error {
	return &DocxError{
		Kind:      kind,
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsDocxError checks if an error is, or wraps, a docx error
func IsDocxError(err error) bool {
	var de *DocxError
	return errors.As(err, &de)
}

// IsDestinationError checks if an error is a docx error caused by the
// output destination
func IsDestinationError(err error) bool {
	var de *DocxError
	return errors.As(err, &de) && de.Kind == KindDestination
}
