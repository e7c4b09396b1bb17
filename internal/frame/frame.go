// Package frame implements xframe's Frame: an immutable, partitioned
// collection of canonical Rows conforming to a Schema.
package frame

import (
	"github.com/go-xframe/xframe"
)

// frameImpl is xframe's internal implementation of Frame
type frameImpl struct {
	schema     xframe.Schema
	partitions []xframe.Partition
}

// CreateFrame builds a Frame from a Schema and ordered Partitions. The
// partition slice is owned by the Frame after this call.
func CreateFrame(schema xframe.Schema, partitions []xframe.Partition) xframe.Frame {
	return &frameImpl{schema: schema, partitions: partitions}
}

// Schema returns the Schema of this Frame
func (f *frameImpl) Schema() xframe.Schema {
	return f.schema
}

// NumPartitions returns the number of Partitions in this Frame
func (f *frameImpl) NumPartitions() int {
	return len(f.partitions)
}

// NumRows returns the total number of Rows across all Partitions of this Frame
func (f *frameImpl) NumRows() int {
	total := 0
	for _, p := range f.partitions {
		total += p.NumRows()
	}
	return total
}

// PartitionIterator returns an ordered iterator over the Partitions of this Frame
func (f *frameImpl) PartitionIterator() xframe.PartitionIterator {
	return createPartitionIterator(f.partitions)
}

// To chains operations onto this Frame, applying each one sequentially
// against the evolving Frame state and producing a new Frame. The data of
// this Frame is never mutated.
func (f *frameImpl) To(ops ...xframe.FrameOperation) (xframe.Frame, error) {
	cur := f
	for _, op := range ops {
		res, err := op(cur)
		if err != nil {
			return nil, err
		}
		next := &frameImpl{schema: cur.schema, partitions: cur.partitions}
		// a nil result is equivalent to an empty one: a no-op
		if res != nil {
			if res.Schema != nil {
				next.schema = res.Schema
			}
			if res.Partitions != nil {
				next.partitions = res.Partitions
			}
		}
		cur = next
	}
	return cur, nil
}

// Collect returns the values of every Row of this Frame, in partition order
func (f *frameImpl) Collect() ([][]interface{}, error) {
	res := make([][]interface{}, 0, f.NumRows())
	for _, p := range f.partitions {
		err := p.ForEachRow(func(rowNum int, row xframe.Row) error {
			res = append(res, row.Values())
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
