package partition

import (
	"testing"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/schema"
	"github.com/stretchr/testify/require"
)

func createTestPartitionSchema(t *testing.T) xframe.Schema {
	s, err := schema.CreateSchemaWithColumns(
		[]string{"id", "label"},
		[]xframe.DataType{&columntype.Int64Type{}, &columntype.StringType{}},
	)
	require.Nil(t, err)
	return s
}

func TestPartitionAppendAndGet(t *testing.T) {
	s := createTestPartitionSchema(t)
	part := CreatePartition(s, 4)
	require.NotEmpty(t, part.ID())
	require.Equal(t, 0, part.NumRows())

	require.Nil(t, part.AppendRow([]interface{}{int64(1), "a"}))
	require.Nil(t, part.AppendRow([]interface{}{int64(2), nil}))
	require.Equal(t, 2, part.NumRows())

	row, err := part.GetRow(1)
	require.Nil(t, err)
	id, err := row.GetInt64(0)
	require.Nil(t, err)
	require.Equal(t, int64(2), id)
	require.True(t, row.IsNil(1))

	_, err = part.GetRow(2)
	require.IsType(t, errors.IndexOutOfRangeError{}, err)
}

func TestPartitionAppendWidthMismatch(t *testing.T) {
	s := createTestPartitionSchema(t)
	part := CreatePartition(s, 4)
	err := part.AppendRow([]interface{}{int64(1)})
	require.IsType(t, errors.SchemaMismatchError{}, err)
	require.Equal(t, 0, part.NumRows())
}

func TestPartitionForEachRowOrder(t *testing.T) {
	s := createTestPartitionSchema(t)
	part := CreatePartition(s, 8)
	for i := int64(0); i < 8; i++ {
		require.Nil(t, part.AppendRow([]interface{}{i, "x"}))
	}
	seen := make([]int64, 0, 8)
	err := part.ForEachRow(func(rowNum int, row xframe.Row) error {
		id, err := row.GetInt64(0)
		require.Nil(t, err)
		require.Equal(t, int(id), rowNum)
		seen = append(seen, id)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7}, seen)
}

func TestPartitionWithIDPreservesID(t *testing.T) {
	s := createTestPartitionSchema(t)
	part := CreatePartitionWithID("part-7", s, 0)
	require.Equal(t, "part-7", part.ID())
}
