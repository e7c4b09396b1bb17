package xframe

// Column describes a named, typed position within a Schema. The position of a
// Column within its Schema defines the positional mapping to Row values.
type Column interface {
	Clone() Column  // Clone returns a copy of this Column
	Name() string   // Name returns the name of this Column within a Schema
	Index() int     // Index returns the index of this Column within a Schema
	Type() DataType // Type returns the DataType of this Column
}
