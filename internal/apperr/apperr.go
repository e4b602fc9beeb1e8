package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates a referenced record or template does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidationFailed indicates caller input was rejected before any write.
	ErrValidationFailed = errors.New("validation failed")
	// ErrStoreFailure indicates a database read or write failed.
	ErrStoreFailure = errors.New("store failure")
	// ErrAggregationFailed indicates a store failure while recomputing a summary.
	ErrAggregationFailed = errors.New("aggregation failed")
)

// NotFound builds an error matching ErrNotFound with a formatted message.
func NotFound(format string, args ...any) error {
	return errors.Join(ErrNotFound, fmt.Errorf(format, args...))
}

// Store maps a gorm error into the taxonomy. gorm.ErrRecordNotFound becomes
// ErrNotFound, everything else ErrStoreFailure. nil stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreFailure) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNotFound, fmt.Errorf("%s: %w", op, err))
	}
	return errors.Join(ErrStoreFailure, fmt.Errorf("%s: %w", op, err))
}

// AggregationError is returned when a subject's summary could not be
// recomputed. The underlying cause stays reachable through Unwrap.
type AggregationError struct {
	SubjectID string
	Err       error
}

func (e *AggregationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("recompute summary for %s: %v", e.SubjectID, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

func (e *AggregationError) Is(target error) bool { return target == ErrAggregationFailed }

// Aggregation wraps err as an AggregationError. nil stays nil.
func Aggregation(subjectID string, err error) error {
	if err == nil {
		return nil
	}
	return &AggregationError{SubjectID: subjectID, Err: err}
}
