package xframe

import "time"

// Row is a representation of a single canonical row of data: a fixed-length,
// ordered sequence of typed values whose positions correspond to the columns
// of a Schema. Row values are immutable once built. In practice, users of Row
// will call its getter methods to retrieve data by column position.
type Row interface {
	Width() int                          // Width returns the number of values in this Row
	IsNil(idx int) bool                  // IsNil returns true iff the value at the given position is nil. Out-of-range positions report false.
	Get(idx int) (interface{}, error)    // Get returns the value at any position as an interface{}, if it exists
	GetBool(idx int) (bool, error)       // GetBool retrieves a single bool from the given position
	GetInt32(idx int) (int32, error)     // GetInt32 retrieves a single int32 from the given position
	GetInt64(idx int) (int64, error)     // GetInt64 retrieves a single int64 from the given position
	GetFloat32(idx int) (float32, error) // GetFloat32 retrieves a single float32 from the given position
	GetFloat64(idx int) (float64, error) // GetFloat64 retrieves a single float64 from the given position
	GetString(idx int) (string, error)   // GetString retrieves a single string from the given position
	GetTime(idx int) (time.Time, error)  // GetTime retrieves a single Time from the given position
	Values() []interface{}               // Values returns a copy of the values in this Row, in order
	String() string                      // String returns a string representation of this Row
}
