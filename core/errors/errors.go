// Package errors provides standardized error types and helpers for the TanachReader codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrGrammar indicates a reference string matched none of the accepted
	// grammars, or produced an invalid verse range.
	ErrGrammar = errors.New("reference grammar error")
	// ErrFormat indicates a corpus file that is missing its header or has no
	// parsable chapters.
	ErrFormat = errors.New("corpus format error")
	// ErrNotFound indicates an unknown book, parasha, aliyah, or a
	// chapter/verse index beyond what a book contains.
	ErrNotFound = errors.New("not found")
	// ErrVariantUnavailable indicates a known book for which no file
	// satisfies the requested variant preference and no fallback exists.
	ErrVariantUnavailable = errors.New("variant unavailable")
	// ErrIO indicates a filesystem failure while scanning or reading the
	// corpus, lectionary, or configuration.
	ErrIO = errors.New("io error")
)

// GrammarError represents a reference-parsing failure with context.
type GrammarError struct {
	Reference string // The reference string that failed to parse
	Message   string // Human-readable error message
	Err       error  // Underlying error, if any
}

func (e *GrammarError) Error() string {
	if e.Reference != "" {
		return fmt.Sprintf("cannot parse reference %q: %s", e.Reference, e.Message)
	}
	return fmt.Sprintf("cannot parse reference: %s", e.Message)
}

func (e *GrammarError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrGrammar
}

// Is matches the ErrGrammar sentinel even when an underlying error is
// wrapped.
func (e *GrammarError) Is(target error) bool {
	return target == ErrGrammar
}

// FormatError represents a malformed corpus file with context.
type FormatError struct {
	Path    string // File path involved
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed corpus file %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("malformed corpus file: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFormat
}

// Is matches the ErrFormat sentinel even when an underlying error is wrapped.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book", "parasha", "verse")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// Is matches the ErrNotFound sentinel even when an underlying error is
// wrapped.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// VariantError represents an unsatisfiable text-variant preference.
type VariantError struct {
	Book    string // Canonical book name
	Variant string // Requested variant label
	Err     error  // Underlying error, if any
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("no %s variant available for %s", e.Variant, e.Book)
}

func (e *VariantError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrVariantUnavailable
}

// Is matches the ErrVariantUnavailable sentinel even when an underlying
// error is wrapped.
func (e *VariantError) Is(target error) bool {
	return target == ErrVariantUnavailable
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open", "scan")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches the ErrIO sentinel even when an underlying error is wrapped.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// Helper functions for creating common errors

// NewGrammar creates a GrammarError
func NewGrammar(reference, message string) *GrammarError {
	return &GrammarError{
		Reference: reference,
		Message:   message,
	}
}

// NewFormat creates a FormatError
func NewFormat(path, message string) *FormatError {
	return &FormatError{
		Path:    path,
		Message: message,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewVariant creates a VariantError
func NewVariant(book, variant string) *VariantError {
	return &VariantError{
		Book:    book,
		Variant: variant,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
