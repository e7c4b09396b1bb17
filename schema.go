package xframe

// Schema is an ordered mapping from column names to column positions and
// types within a Row. Column names are unique within a Schema, and column
// order is significant: it defines the positional binding between a Schema
// and the values of a Row. Schemas are immutable - mutating operations return
// a new Schema - and are therefore safe to share across concurrently
// executing partition-level tasks without synchronization.
type Schema interface {
	Equals(otherSchema Schema) error                             // Equals returns nil iff this and another Schema are equivalent
	Clone() Schema                                               // Clone returns a copy of this Schema
	NumColumns() int                                             // NumColumns returns the number of columns in this Schema
	ColumnAt(idx int) (Column, error)                            // ColumnAt returns the Column at a given position, or an IndexOutOfRangeError
	GetColumn(colName string) (Column, error)                    // GetColumn returns the Column with a given name, or a ColumnNotFoundError
	HasColumn(colName string) bool                               // HasColumn returns true iff this Schema contains a Column with the given name
	ColumnNames() []string                                       // ColumnNames returns the names of the columns in this Schema, in order
	ColumnTypes() []DataType                                     // ColumnTypes returns the DataTypes of the columns in this Schema, in order
	CreateColumn(colName string, t DataType) (Schema, error)     // CreateColumn returns a new Schema with an additional column appended, or a DuplicateColumnNameError
	RenameColumn(oldName string, newName string) (Schema, error) // RenameColumn returns a new Schema with a column renamed, or a ColumnNotFoundError
	RemoveColumn(colName string) (Schema, error)                 // RemoveColumn returns a new Schema with a column removed, or a ColumnNotFoundError
	ForEachColumn(fn func(col Column) error) error               // ForEachColumn runs a function against each column in this Schema, in order
	String() string                                              // String returns a string representation of this Schema
}
