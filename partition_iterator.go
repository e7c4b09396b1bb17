package xframe

// PartitionIterator is a generalized interface for iterating over Partitions,
// regardless of where they come from
type PartitionIterator interface {
	HasNextPartition() bool            // HasNextPartition returns true iff there is another Partition remaining
	NextPartition() (Partition, error) // NextPartition returns the next Partition, or a NoMorePartitionsError
	OnEnd(onEnd func())                // OnEnd registers a callback which fires when iteration is complete
}
