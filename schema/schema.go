package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
)

// column is a named, typed position within a schema
type column struct {
	name    string
	idx     int
	colType xframe.DataType
}

// Clone returns a copy of this Column
func (c *column) Clone() xframe.Column {
	return &column{c.name, c.idx, c.colType}
}

// Name returns the name of this Column within a Schema
func (c *column) Name() string {
	return c.name
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the DataType of this Column
func (c *column) Type() xframe.DataType {
	return c.colType
}

// Schema is an ordered mapping from column names to column
// positions and types within a Row. Mutating operations
// return a new Schema, leaving the receiver untouched.
type schema struct {
	columns []*column
	byName  map[string]int
}

// CreateSchema is a factory for Schemas
func CreateSchema() xframe.Schema {
	return &schema{
		columns: make([]*column, 0),
		byName:  make(map[string]int),
	}
}

// CreateSchemaWithColumns builds a Schema from ordered (name, type) pairs.
// Names and types must have equal lengths, and names must be unique.
func CreateSchemaWithColumns(names []string, types []xframe.DataType) (xframe.Schema, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%d column names provided for %d column types", len(names), len(types))
	}
	s := CreateSchema()
	var err error
	for i := range names {
		s, err = s.CreateColumn(names[i], types[i])
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema xframe.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return otherSchema.ForEachColumn(func(otherCol xframe.Column) error {
		col := s.columns[otherCol.Index()]
		if col.name != otherCol.Name() {
			return fmt.Errorf("Column names at position %d do not match", otherCol.Index())
		}
		if reflect.TypeOf(col.colType) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", col.name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() xframe.Schema {
	newColumns := make([]*column, len(s.columns))
	newByName := make(map[string]int, len(s.byName))
	for i, col := range s.columns {
		newColumns[i] = &column{col.name, col.idx, col.colType}
		newByName[col.name] = i
	}
	return &schema{columns: newColumns, byName: newByName}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.columns)
}

// ColumnAt returns the Column at a given position
func (s *schema) ColumnAt(idx int) (xframe.Column, error) {
	if idx < 0 || idx >= len(s.columns) {
		return nil, errors.IndexOutOfRangeError{Index: idx, Size: len(s.columns)}
	}
	return s.columns[idx], nil
}

// GetColumn returns the Column with a given name
func (s *schema) GetColumn(colName string) (xframe.Column, error) {
	idx, ok := s.byName[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName}
	}
	return s.columns[idx], nil
}

// HasColumn returns true iff this Schema contains a Column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.byName[colName]
	return ok
}

// ColumnNames returns the names of the columns in this Schema, in order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.name
	}
	return names
}

// ColumnTypes returns the DataTypes of the columns in this Schema, in order
func (s *schema) ColumnTypes() []xframe.DataType {
	types := make([]xframe.DataType, len(s.columns))
	for i, col := range s.columns {
		types[i] = col.colType
	}
	return types
}

// CreateColumn returns a new Schema with an additional column appended
func (s *schema) CreateColumn(colName string, t xframe.DataType) (xframe.Schema, error) {
	if _, ok := s.byName[colName]; ok {
		return nil, errors.DuplicateColumnNameError{Name: colName}
	}
	newSchema := s.Clone().(*schema)
	newSchema.columns = append(newSchema.columns, &column{colName, len(newSchema.columns), t})
	newSchema.byName[colName] = len(newSchema.columns) - 1
	return newSchema, nil
}

// RenameColumn returns a new Schema with a column renamed. Renaming a column
// to its existing name is a no-op.
func (s *schema) RenameColumn(oldName string, newName string) (xframe.Schema, error) {
	idx, ok := s.byName[oldName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: oldName}
	}
	if oldName == newName {
		return s.Clone(), nil
	}
	if _, ok := s.byName[newName]; ok {
		return nil, errors.DuplicateColumnNameError{Name: newName}
	}
	newSchema := s.Clone().(*schema)
	newSchema.columns[idx].name = newName
	delete(newSchema.byName, oldName)
	newSchema.byName[newName] = idx
	return newSchema, nil
}

// RemoveColumn returns a new Schema with a column removed. Positions of
// subsequent columns shift down by one.
func (s *schema) RemoveColumn(colName string) (xframe.Schema, error) {
	idx, ok := s.byName[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName}
	}
	newSchema := &schema{
		columns: make([]*column, 0, len(s.columns)-1),
		byName:  make(map[string]int, len(s.columns)-1),
	}
	for i, col := range s.columns {
		if i == idx {
			continue
		}
		newSchema.columns = append(newSchema.columns, &column{col.name, len(newSchema.columns), col.colType})
		newSchema.byName[col.name] = len(newSchema.columns) - 1
	}
	return newSchema, nil
}

// ForEachColumn runs a function against each column in this Schema, in order
func (s *schema) ForEachColumn(fn func(col xframe.Column) error) error {
	for _, col := range s.columns {
		if err := fn(col); err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of this Schema
func (s *schema) String() string {
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, col := range s.columns {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%s: %s", col.name, col.colType.Name())
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
