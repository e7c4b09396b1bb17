package transform

import (
	"testing"

	"github.com/go-xframe/xframe/columntype"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/stretchr/testify/require"
)

func TestAddColumn(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b]
	added, err := f.To(AddColumn("c", &columntype.Float64Type{}))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "c"}, added.Schema().ColumnNames())
	require.Equal(t, f.NumPartitions(), added.NumPartitions())

	// every row gains a nil cell in the new position
	rows, err := added.Collect()
	require.Nil(t, err)
	require.Equal(t, f.NumRows(), len(rows))
	for _, row := range rows {
		require.Equal(t, 3, len(row))
		require.Nil(t, row[2])
	}

	// the original frame is untouched
	require.Equal(t, 2, f.Schema().NumColumns())
	before, err := f.Collect()
	require.Nil(t, err)
	for _, row := range before {
		require.Equal(t, 2, len(row))
	}
}

func TestAddColumnDuplicateName(t *testing.T) {
	f := createTestRenameFrame(t)
	_, err := f.To(AddColumn("a", &columntype.Int64Type{}))
	require.IsType(t, errors.DuplicateColumnNameError{}, err)
}

func TestRemoveColumn(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b], rows (1,one)(2,two)(3,three)
	removed, err := f.To(RemoveColumn("a"))
	require.Nil(t, err)
	require.Equal(t, []string{"b"}, removed.Schema().ColumnNames())

	// remaining column is reindexed to 0
	col, err := removed.Schema().GetColumn("b")
	require.Nil(t, err)
	require.Equal(t, 0, col.Index())

	rows, err := removed.Collect()
	require.Nil(t, err)
	require.Equal(t, [][]interface{}{{"one"}, {"two"}, {"three"}}, rows)
}

func TestRemoveColumnNotFound(t *testing.T) {
	f := createTestRenameFrame(t)
	_, err := f.To(RemoveColumn("nope"))
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestRemoveColumnNone(t *testing.T) {
	f := createTestRenameFrame(t)
	same, err := f.To(RemoveColumn())
	require.Nil(t, err)
	require.Nil(t, f.Schema().Equals(same.Schema()))
	require.Equal(t, f.NumRows(), same.NumRows())
}

func TestChainedOperations(t *testing.T) {
	f := createTestRenameFrame(t) // schema [a, b]
	out, err := f.To(
		RenameColumn("a", "id"),
		AddColumn("score", &columntype.Float64Type{}),
		RemoveColumn("b"),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"id", "score"}, out.Schema().ColumnNames())
	rows, err := out.Collect()
	require.Nil(t, err)
	require.Equal(t, [][]interface{}{
		{int64(1), nil},
		{int64(2), nil},
		{int64(3), nil},
	}, rows)
}
