package xframe

// Partition is an independently processable, ordered subset of the rows of a
// Frame. Row order within a Partition is preserved through every transform
// and codec operation. Partitions are immutable once attached to a Frame.
type Partition interface {
	ID() string                                          // ID retrieves the ID of this Partition
	NumRows() int                                        // NumRows retrieves the number of rows in this Partition
	GetRow(rowNum int) (Row, error)                      // GetRow retrieves a specific row from this Partition, or an IndexOutOfRangeError
	ForEachRow(fn func(rowNum int, row Row) error) error // ForEachRow runs a function against each row in this Partition, in order
}

// BuildablePartition is a Partition which is still being populated, row by
// row, before being attached to a Frame. Once attached, a Partition is no
// longer appended to.
type BuildablePartition interface {
	Partition
	AppendRow(values []interface{}) error // AppendRow appends canonical row values to the end of this Partition
}
