package partition

import (
	"log"

	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
	uuid "github.com/gofrs/uuid"
)

// partitionImpl is xframe's internal implementation of Partition
type partitionImpl struct {
	id     string
	rows   [][]interface{}
	schema xframe.Schema
}

// CreatePartition creates a new, empty Partition for rows conforming to a schema
func CreatePartition(schema xframe.Schema, initialCapacity int) xframe.BuildablePartition {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Partition: %v", err)
	}
	return &partitionImpl{
		id:     id.String(),
		rows:   make([][]interface{}, 0, initialCapacity),
		schema: schema,
	}
}

// CreatePartitionWithID creates a new, empty Partition with a predetermined
// ID. Used by codecs which must preserve partition identity across a decode.
func CreatePartitionWithID(id string, schema xframe.Schema, initialCapacity int) xframe.BuildablePartition {
	return &partitionImpl{
		id:     id,
		rows:   make([][]interface{}, 0, initialCapacity),
		schema: schema,
	}
}

// ID retrieves the ID of this Partition
func (p *partitionImpl) ID() string {
	return p.id
}

// NumRows retrieves the number of rows in this Partition
func (p *partitionImpl) NumRows() int {
	return len(p.rows)
}

// GetRow retrieves a specific row from this Partition
func (p *partitionImpl) GetRow(rowNum int) (xframe.Row, error) {
	if rowNum < 0 || rowNum >= len(p.rows) {
		return nil, errors.IndexOutOfRangeError{Index: rowNum, Size: len(p.rows)}
	}
	return &rowImpl{values: p.rows[rowNum], schema: p.schema}, nil
}

// ForEachRow runs a function against each row in this Partition, in order
func (p *partitionImpl) ForEachRow(fn func(rowNum int, row xframe.Row) error) error {
	row := &rowImpl{schema: p.schema}
	for i := range p.rows {
		row.values = p.rows[i]
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// AppendRow appends canonical row values to the end of this Partition. The
// value slice must match the schema width, and is owned by the Partition
// after this call.
func (p *partitionImpl) AppendRow(values []interface{}) error {
	if len(values) != p.schema.NumColumns() {
		return errors.SchemaMismatchError{Expected: p.schema.NumColumns(), Actual: len(values)}
	}
	p.rows = append(p.rows, values)
	return nil
}
