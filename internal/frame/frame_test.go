package frame

import (
	"testing"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/internal/partition"
	"github.com/go-xframe/xframe/schema"
	"github.com/stretchr/testify/require"
)

func createTestFrame(t *testing.T, rowsPerPartition ...int) xframe.Frame {
	s, err := schema.CreateSchemaWithColumns(
		[]string{"id"},
		[]xframe.DataType{&columntype.Int64Type{}},
	)
	require.Nil(t, err)
	next := int64(0)
	parts := make([]xframe.Partition, 0, len(rowsPerPartition))
	for _, n := range rowsPerPartition {
		part := partition.CreatePartition(s, n)
		for i := 0; i < n; i++ {
			require.Nil(t, part.AppendRow([]interface{}{next}))
			next++
		}
		parts = append(parts, part)
	}
	return CreateFrame(s, parts)
}

func TestFrameCounts(t *testing.T) {
	f := createTestFrame(t, 3, 0, 2)
	require.Equal(t, 3, f.NumPartitions())
	require.Equal(t, 5, f.NumRows())
}

func TestFrameCollectOrder(t *testing.T) {
	f := createTestFrame(t, 3, 0, 2)
	rows, err := f.Collect()
	require.Nil(t, err)
	require.Equal(t, 5, len(rows))
	for i, row := range rows {
		require.Equal(t, int64(i), row[0])
	}
}

func TestFrameToMetadataOnlyOperationSharesPartitions(t *testing.T) {
	f := createTestFrame(t, 2, 2)
	s2, err := f.Schema().RenameColumn("id", "key")
	require.Nil(t, err)
	f2, err := f.To(func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		return &xframe.FrameOperationResult{Schema: s2}, nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"key"}, f2.Schema().ColumnNames())
	require.Equal(t, []string{"id"}, f.Schema().ColumnNames())

	srcIt := f.PartitionIterator()
	dstIt := f2.PartitionIterator()
	for srcIt.HasNextPartition() {
		src, err := srcIt.NextPartition()
		require.Nil(t, err)
		dst, err := dstIt.NextPartition()
		require.Nil(t, err)
		require.Equal(t, src.ID(), dst.ID())
	}
}

func TestFrameToNilResultIsNoOp(t *testing.T) {
	f := createTestFrame(t, 2)
	f2, err := f.To(func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		return nil, nil
	})
	require.Nil(t, err)
	require.Nil(t, f.Schema().Equals(f2.Schema()))
	require.Equal(t, f.NumPartitions(), f2.NumPartitions())
	require.Equal(t, f.NumRows(), f2.NumRows())
}

func TestFrameToFailedOperation(t *testing.T) {
	f := createTestFrame(t, 2)
	_, err := f.To(func(f xframe.Frame) (*xframe.FrameOperationResult, error) {
		return nil, errors.ColumnNotFoundError{Name: "nope"}
	})
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestPartitionIterator(t *testing.T) {
	f := createTestFrame(t, 1, 1, 1)
	pi := f.PartitionIterator()
	ended := false
	pi.OnEnd(func() { ended = true })

	seen := 0
	for pi.HasNextPartition() {
		_, err := pi.NextPartition()
		require.Nil(t, err)
		seen++
	}
	require.Equal(t, 3, seen)
	require.True(t, ended)

	_, err := pi.NextPartition()
	require.IsType(t, errors.NoMorePartitionsError{}, err)
}

func TestPartitionIteratorEmpty(t *testing.T) {
	f := createTestFrame(t)
	pi := f.PartitionIterator()
	require.False(t, pi.HasNextPartition())
	_, err := pi.NextPartition()
	require.IsType(t, errors.NoMorePartitionsError{}, err)
}
