package errors

import (
	"fmt"
)

// ParseError occurs when a raw cell value is malformed or unconvertible to
// the DataType declared for its column
type ParseError struct {
	Name   string      // column name
	Index  int         // column position
	Raw    interface{} // offending raw value
	Reason error
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	return fmt.Sprintf("Value for column %s (position %d) could not be parsed. Was: %#v (%v)", e.Name, e.Index, e.Raw, e.Reason)
}

// Unwrap returns the underlying cause of this ParseError
func (e ParseError) Unwrap() error {
	return e.Reason
}

// SchemaMismatchError occurs when a raw row's length disagrees with the
// length of a Schema
type SchemaMismatchError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// DeserializationError occurs when a serialized batch stream is corrupt or
// otherwise unreadable. It is fatal for the partition being decoded.
type DeserializationError struct {
	PartitionID string
	Reason      error
}

// Error returns a textual representation of this DeserializationError
func (e DeserializationError) Error() string {
	return fmt.Sprintf("Unable to deserialize batch data for partition %s: %v", e.PartitionID, e.Reason)
}

// Unwrap returns the underlying cause of this DeserializationError
func (e DeserializationError) Unwrap() error {
	return e.Reason
}

// ColumnNotFoundError occurs when a Schema does not contain a column with a
// given name
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// DuplicateColumnNameError occurs when a column is added to a Schema which
// already contains a column with the same name
type DuplicateColumnNameError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnNameError
func (e DuplicateColumnNameError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// IndexOutOfRangeError occurs when a position is requested which is beyond
// the bounds of a Schema, Partition or Row
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Index %d is out of range [0, %d)", e.Index, e.Size)
}

// NilValueError occurs when a typed getter is used on a nil value in a Row
type NilValueError struct{ Index int }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value at position %d is nil", e.Index)
}

// UnsupportedFormatVersionError occurs when a persisted artifact is tagged
// with a format version this build does not understand. It is fatal: no
// speculative parsing of unknown layouts is ever attempted.
type UnsupportedFormatVersionError struct {
	Version   int
	Supported int
}

// Error returns a textual representation of this UnsupportedFormatVersionError
func (e UnsupportedFormatVersionError) Error() string {
	return fmt.Sprintf("Artifact format version %d is not supported (expected %d)", e.Version, e.Supported)
}

// NoMorePartitionsError occurs when there are no more partitions in a
// PartitionIterator
type NoMorePartitionsError struct{}

// Error returns a textual representation of this NoMorePartitionsError
func (e NoMorePartitionsError) Error() string {
	return "No more partitions"
}
