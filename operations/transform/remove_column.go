package transform

import (
	"github.com/go-xframe/xframe"
)

// RemoveColumn removes existing columns. Because row values are bound to
// columns positionally, this operation materializes new Rows with the
// removed positions stripped.
func RemoveColumn(colNames ...string) xframe.FrameOperation {
	return func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		oldSchema := f.Schema()
		removed := make(map[int]bool, len(colNames))
		newSchema := oldSchema
		for _, colName := range colNames {
			col, err := oldSchema.GetColumn(colName)
			if err != nil {
				return nil, err
			}
			removed[col.Index()] = true
			newSchema, err = newSchema.RemoveColumn(colName)
			if err != nil {
				return nil, err
			}
		}
		if len(removed) == 0 {
			return &xframe.FrameOperationResult{Schema: oldSchema}, nil
		}
		newParts, err := mapPartitions(f, newSchema, func(values []interface{}) []interface{} {
			kept := make([]interface{}, 0, len(values)-len(removed))
			for i, v := range values {
				if !removed[i] {
					kept = append(kept, v)
				}
			}
			return kept
		})
		if err != nil {
			return nil, err
		}
		return &xframe.FrameOperationResult{Schema: newSchema, Partitions: newParts}, nil
	}
}
