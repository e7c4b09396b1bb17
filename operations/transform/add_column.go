package transform

import (
	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/internal/partition"
)

// AddColumn appends a new column with a specific type and name. Every row of
// the new Frame carries a nil value in the new position, so this operation
// materializes new Rows rather than sharing the previous Frame's Partitions.
func AddColumn(colName string, colType xframe.DataType) xframe.FrameOperation {
	return func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		newSchema, err := f.Schema().CreateColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		newParts, err := mapPartitions(f, newSchema, func(values []interface{}) []interface{} {
			return append(values, nil)
		})
		if err != nil {
			return nil, err
		}
		return &xframe.FrameOperationResult{Schema: newSchema, Partitions: newParts}, nil
	}
}

// mapPartitions materializes new Partitions by applying a value-level
// mapping to each row of a Frame, preserving partition boundaries and row
// order. fn receives a copy of each row's values and may return it modified.
func mapPartitions(f xframe.Frame, newSchema xframe.Schema, fn func(values []interface{}) []interface{}) ([]xframe.Partition, error) {
	newParts := make([]xframe.Partition, 0, f.NumPartitions())
	pi := f.PartitionIterator()
	for pi.HasNextPartition() {
		part, err := pi.NextPartition()
		if err != nil {
			return nil, err
		}
		newPart := partition.CreatePartition(newSchema, part.NumRows())
		err = part.ForEachRow(func(rowNum int, row xframe.Row) error {
			return newPart.AppendRow(fn(row.Values()))
		})
		if err != nil {
			return nil, err
		}
		newParts = append(newParts, newPart)
	}
	return newParts, nil
}
