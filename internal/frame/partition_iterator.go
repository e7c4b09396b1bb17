package frame

import (
	"sync"

	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
)

// partitionIteratorImpl iterates over an in-memory slice of Partitions, in order
type partitionIteratorImpl struct {
	partitions   []xframe.Partition
	next         int
	lock         sync.Mutex
	endListeners []func()
}

// createPartitionIterator produces an iterator over a Partition slice
func createPartitionIterator(partitions []xframe.Partition) xframe.PartitionIterator {
	return &partitionIteratorImpl{partitions: partitions, endListeners: []func(){}}
}

// OnEnd registers a callback which fires when iteration is complete
func (pi *partitionIteratorImpl) OnEnd(onEnd func()) {
	pi.lock.Lock()
	defer pi.lock.Unlock()
	pi.endListeners = append(pi.endListeners, onEnd)
}

// HasNextPartition returns true iff there is another Partition remaining
func (pi *partitionIteratorImpl) HasNextPartition() bool {
	pi.lock.Lock()
	defer pi.lock.Unlock()
	return pi.next < len(pi.partitions)
}

// NextPartition returns the next Partition, in order
func (pi *partitionIteratorImpl) NextPartition() (xframe.Partition, error) {
	pi.lock.Lock()
	defer pi.lock.Unlock()
	if pi.next >= len(pi.partitions) {
		return nil, errors.NoMorePartitionsError{}
	}
	part := pi.partitions[pi.next]
	pi.next++
	if pi.next == len(pi.partitions) {
		for _, l := range pi.endListeners {
			l()
		}
		pi.endListeners = []func(){}
	}
	return part, nil
}
