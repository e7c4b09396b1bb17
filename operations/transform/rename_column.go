package transform

import (
	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/schema"
)

// ColumnRename is one (old name, new name) pair within a bulk rename
type ColumnRename struct {
	Old string
	New string
}

// RenameColumn renames an existing column. This is a metadata-only
// operation: the new Frame shares the previous Frame's Partitions, and no
// row data is copied or touched.
func RenameColumn(oldName string, newName string) xframe.FrameOperation {
	return RenameColumns(ColumnRename{Old: oldName, New: newName})
}

// RenameColumns renames existing columns in bulk. Pairs are applied
// sequentially against the evolving Schema, so a pair whose old name matches
// an earlier pair's new name resolves against the Schema as of the prior
// step, not the original. When a name is transiently borne by two columns
// mid-sequence, a later pair resolves to the column not yet renamed by this
// operation, so {a->b, b->c} on [a, b] yields [b, c]. Duplicate names in the
// final Schema are an error. An empty pair list is a legal no-op. All
// preconditions are checked here, before any partition-level work.
func RenameColumns(renames ...ColumnRename) xframe.FrameOperation {
	return func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		names := f.Schema().ColumnNames()
		types := f.Schema().ColumnTypes()
		touched := make([]bool, len(names))
		for _, r := range renames {
			idx := -1
			for i, n := range names {
				if n != r.Old {
					continue
				}
				if !touched[i] {
					idx = i
					break
				}
				if idx < 0 {
					idx = i
				}
			}
			if idx < 0 {
				return nil, errors.ColumnNotFoundError{Name: r.Old}
			}
			names[idx] = r.New
			touched[idx] = true
		}
		newSchema, err := schema.CreateSchemaWithColumns(names, types)
		if err != nil {
			return nil, err
		}
		return &xframe.FrameOperationResult{Schema: newSchema}, nil
	}
}
