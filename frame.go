package xframe

// A Frame is a partitioned collection of canonical Rows conforming to a
// Schema, along with a tool for constructing chains of transformations
// applied to that data. Frames are immutable: every transform produces a new
// Frame, never mutates in place.
type Frame interface {
	Schema() Schema                          // Schema returns the Schema of a Frame
	NumPartitions() int                      // NumPartitions returns the number of Partitions in a Frame
	NumRows() int                            // NumRows returns the total number of Rows across all Partitions of a Frame
	PartitionIterator() PartitionIterator    // PartitionIterator returns an ordered iterator over the Partitions of a Frame
	To(ops ...FrameOperation) (Frame, error) // To is a "functional operations" factory method for Frames, chaining operations onto the current one(s)
	Collect() ([][]interface{}, error)       // Collect returns the values of every Row of a Frame, in partition order. Useful for testing and small frames.
}

// FrameOperation - a generic Frame transform, pure from (Frame) to a
// FrameOperationResult describing the new Frame's state. Preconditions are
// checked synchronously, before any partition-level work is scheduled. A nil
// result (with a nil error) is treated as a no-op.
type FrameOperation func(f Frame) (*FrameOperationResult, error)

// FrameOperationResult is the result of a FrameOperation: a new Schema,
// and (for operations which touch row contents) new Partitions. A nil
// Partitions slice indicates a metadata-only operation, in which case the new
// Frame shares the previous Frame's immutable Partitions.
type FrameOperationResult struct {
	Schema     Schema
	Partitions []Partition
}
