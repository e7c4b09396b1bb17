package partition

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
)

// rowImpl is xframe's internal implementation of Row: a fixed-length,
// ordered sequence of canonical typed values, positionally bound to a Schema
type rowImpl struct {
	values []interface{}
	schema xframe.Schema
}

// CreateRow builds a new Row from canonical values and the Schema they
// conform to. The value slice is owned by the Row after this call.
func CreateRow(values []interface{}, schema xframe.Schema) xframe.Row {
	return &rowImpl{values: values, schema: schema}
}

// Width returns the number of values in this Row
func (r *rowImpl) Width() int {
	return len(r.values)
}

// IsNil returns true iff the value at the given position is nil
func (r *rowImpl) IsNil(idx int) bool {
	if idx < 0 || idx >= len(r.values) {
		return false
	}
	return r.values[idx] == nil
}

// Get returns the value at any position as an interface{}, if it exists
func (r *rowImpl) Get(idx int) (interface{}, error) {
	if idx < 0 || idx >= len(r.values) {
		return nil, errors.IndexOutOfRangeError{Index: idx, Size: len(r.values)}
	}
	return r.values[idx], nil
}

func (r *rowImpl) checked(idx int) (interface{}, error) {
	v, err := r.Get(idx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NilValueError{Index: idx}
	}
	return v, nil
}

// GetBool retrieves a single bool from the given position
func (r *rowImpl) GetBool(idx int) (bool, error) {
	v, err := r.checked(idx)
	if err != nil {
		return false, err
	}
	val, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("value at position %d is not a bool. Was: %#v", idx, v)
	}
	return val, nil
}

// GetInt32 retrieves a single int32 from the given position
func (r *rowImpl) GetInt32(idx int) (int32, error) {
	v, err := r.checked(idx)
	if err != nil {
		return 0, err
	}
	val, ok := v.(int32)
	if !ok {
		return 0, fmt.Errorf("value at position %d is not an int32. Was: %#v", idx, v)
	}
	return val, nil
}

// GetInt64 retrieves a single int64 from the given position
func (r *rowImpl) GetInt64(idx int) (int64, error) {
	v, err := r.checked(idx)
	if err != nil {
		return 0, err
	}
	val, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("value at position %d is not an int64. Was: %#v", idx, v)
	}
	return val, nil
}

// GetFloat32 retrieves a single float32 from the given position
func (r *rowImpl) GetFloat32(idx int) (float32, error) {
	v, err := r.checked(idx)
	if err != nil {
		return 0, err
	}
	val, ok := v.(float32)
	if !ok {
		return 0, fmt.Errorf("value at position %d is not a float32. Was: %#v", idx, v)
	}
	return val, nil
}

// GetFloat64 retrieves a single float64 from the given position
func (r *rowImpl) GetFloat64(idx int) (float64, error) {
	v, err := r.checked(idx)
	if err != nil {
		return 0, err
	}
	val, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("value at position %d is not a float64. Was: %#v", idx, v)
	}
	return val, nil
}

// GetString retrieves a single string from the given position
func (r *rowImpl) GetString(idx int) (string, error) {
	v, err := r.checked(idx)
	if err != nil {
		return "", err
	}
	val, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("value at position %d is not a string. Was: %#v", idx, v)
	}
	return val, nil
}

// GetTime retrieves a single Time from the given position
func (r *rowImpl) GetTime(idx int) (time.Time, error) {
	v, err := r.checked(idx)
	if err != nil {
		return time.Time{}, err
	}
	val, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("value at position %d is not a datetime. Was: %#v", idx, v)
	}
	return val, nil
}

// Values returns a copy of the values in this Row, in order
func (r *rowImpl) Values() []interface{} {
	vals := make([]interface{}, len(r.values))
	copy(vals, r.values)
	return vals
}

// String returns a string representation of this Row
func (r *rowImpl) String() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, v := range r.values {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		col, err := r.schema.ColumnAt(i)
		if err != nil || v == nil {
			fmt.Fprintf(&res, "nil")
			continue
		}
		fmt.Fprintf(&res, "\"%s\": %s", col.Name(), col.Type().ToString(v))
	}
	fmt.Fprint(&res, "}")
	return res.String()
}
