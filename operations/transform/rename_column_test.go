package transform

import (
	"testing"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
	"github.com/go-xframe/xframe/datasource/memory"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/schema"
	"github.com/stretchr/testify/require"
)

func createTestRenameFrame(t *testing.T) xframe.Frame {
	s, err := schema.CreateSchemaWithColumns(
		[]string{"a", "b"},
		[]xframe.DataType{&columntype.Int64Type{}, &columntype.StringType{}},
	)
	require.Nil(t, err)
	f, report, err := memory.CreateFrame([]interface{}{
		[]interface{}{int64(1), "one"},
		[]interface{}{int64(2), "two"},
		[]interface{}{int64(3), "three"},
	}, &memory.FrameConf{Schema: s, PartitionSize: 2})
	require.Nil(t, err)
	require.Equal(t, 3, report.RowsConverted)
	return f
}

func TestRenameColumn(t *testing.T) {
	f := createTestRenameFrame(t)
	before, err := f.Collect()
	require.Nil(t, err)

	renamed, err := f.To(RenameColumn("a", "id"))
	require.Nil(t, err)
	require.Equal(t, []string{"id", "b"}, renamed.Schema().ColumnNames())
	// the original frame's schema is untouched
	require.Equal(t, []string{"a", "b"}, f.Schema().ColumnNames())

	// row data is untouched by a rename
	after, err := renamed.Collect()
	require.Nil(t, err)
	require.Equal(t, before, after)
	require.Equal(t, f.NumPartitions(), renamed.NumPartitions())
}

func TestRenameColumnNotFound(t *testing.T) {
	f := createTestRenameFrame(t)
	_, err := f.To(RenameColumn("nope", "id"))
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestRenameColumnNoOp(t *testing.T) {
	f := createTestRenameFrame(t)
	renamed, err := f.To(RenameColumn("a", "a"))
	require.Nil(t, err)
	require.Nil(t, f.Schema().Equals(renamed.Schema()))
	before, err := f.Collect()
	require.Nil(t, err)
	after, err := renamed.Collect()
	require.Nil(t, err)
	require.Equal(t, before, after)
}

func TestRenameColumnsEmptyIsNoOp(t *testing.T) {
	f := createTestRenameFrame(t)
	renamed, err := f.To(RenameColumns())
	require.Nil(t, err)
	require.Nil(t, f.Schema().Equals(renamed.Schema()))
}

// Bulk rename pairs resolve sequentially against the evolving schema. On
// [a, b], the pair a->b transiently leaves two columns named b; the later
// pair b->c then resolves to the column this operation has not yet renamed,
// which is the original b. The sequence therefore yields [b, c].
func TestRenameColumnsSequentialSemantics(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b]

	renamed, err := f.To(RenameColumns(
		ColumnRename{Old: "a", New: "b"},
		ColumnRename{Old: "b", New: "c"},
	))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c"}, renamed.Schema().ColumnNames())

	// pair order is respected either way around
	renamed, err = f.To(RenameColumns(
		ColumnRename{Old: "b", New: "c"},
		ColumnRename{Old: "a", New: "b"},
	))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "c"}, renamed.Schema().ColumnNames())
}

func TestRenameColumnDuplicateName(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b]
	_, err := f.To(RenameColumn("a", "b"))
	require.IsType(t, errors.DuplicateColumnNameError{}, err)
}

// A rename target may be used as a later source: the later pair sees the
// schema as of the prior step, not the original.
func TestRenameColumnsChainedTarget(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b]
	renamed, err := f.To(RenameColumns(
		ColumnRename{Old: "a", New: "tmp"},
		ColumnRename{Old: "tmp", New: "id"},
	))
	require.Nil(t, err)
	require.Equal(t, []string{"id", "b"}, renamed.Schema().ColumnNames())
}
