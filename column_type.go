package xframe

// DataType is an interface which is implemented to define a supported column
// type. Each DataType knows how to parse an arbitrary raw value into its
// canonical representation. xframe provides a closed set of built-in types in
// the columntype package.
type DataType interface {
	Name() string                               // returns the registry name of this type
	Parse(raw interface{}) (interface{}, error) // coerces an arbitrary raw value into this type's canonical representation, or fails
	ToString(v interface{}) string              // produces a string representation of a canonical value of this type
}
