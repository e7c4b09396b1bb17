// Package columntype provides the built-in DataTypes supported by xframe,
// along with the parsing logic which coerces raw foreign-runtime values into
// canonical typed representations.
package columntype

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDatetimeFormat is the format used to parse datetime strings when no
// explicit format is configured on a DatetimeType
const DefaultDatetimeFormat = time.RFC3339

// BoolType is a column type which stores a boolean value
type BoolType struct{}

// Name returns the registry name of a BoolType
func (b *BoolType) Name() string {
	return "bool"
}

// Parse coerces a raw value into a bool
func (b *BoolType) Parse(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	}
	if i, err := toInt64(raw); err == nil {
		return i != 0, nil
	}
	return nil, fmt.Errorf("value is not a boolean. Was: %#v", raw)
}

// ToString produces a string representation of a BoolType value
func (b *BoolType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int32Type is a column type which stores an int32 value
type Int32Type struct{}

// Name returns the registry name of an Int32Type
func (b *Int32Type) Name() string {
	return "int32"
}

// Parse coerces a raw value into an int32
func (b *Int32Type) Parse(raw interface{}) (interface{}, error) {
	i, err := toInt64(raw)
	if err != nil {
		return nil, err
	}
	if i > math.MaxInt32 || i < math.MinInt32 {
		return nil, fmt.Errorf("value %d overflows int32", i)
	}
	return int32(i), nil
}

// ToString produces a string representation of an Int32Type value
func (b *Int32Type) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64Type is a column type which stores an int64 value
type Int64Type struct{}

// Name returns the registry name of an Int64Type
func (b *Int64Type) Name() string {
	return "int64"
}

// Parse coerces a raw value into an int64
func (b *Int64Type) Parse(raw interface{}) (interface{}, error) {
	return toInt64(raw)
}

// ToString produces a string representation of an Int64Type value
func (b *Int64Type) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32Type is a column type which stores a float32 value
type Float32Type struct{}

// Name returns the registry name of a Float32Type
func (b *Float32Type) Name() string {
	return "float32"
}

// Parse coerces a raw value into a float32
func (b *Float32Type) Parse(raw interface{}) (interface{}, error) {
	f, err := toFloat64(raw)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

// ToString produces a string representation of a Float32Type value
func (b *Float32Type) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float32))
}

// Float64Type is a column type which stores a float64 value
type Float64Type struct{}

// Name returns the registry name of a Float64Type
func (b *Float64Type) Name() string {
	return "float64"
}

// Parse coerces a raw value into a float64
func (b *Float64Type) Parse(raw interface{}) (interface{}, error) {
	return toFloat64(raw)
}

// ToString produces a string representation of a Float64Type value
func (b *Float64Type) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// StringType is a column type which stores a string value
type StringType struct{}

// Name returns the registry name of a StringType
func (b *StringType) Name() string {
	return "string"
}

// Parse coerces a raw value into a string
func (b *StringType) Parse(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case time.Time:
		return v.Format(DefaultDatetimeFormat), nil
	}
	if i, err := toInt64(raw); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return nil, fmt.Errorf("value is not a string. Was: %#v", raw)
}

// ToString produces a string representation of a StringType value
func (b *StringType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// DatetimeType is a column type which stores a time.Time value
type DatetimeType struct {
	Format string
}

// Name returns the registry name of a DatetimeType
func (b *DatetimeType) Name() string {
	return "datetime"
}

func (b *DatetimeType) format() string {
	if b.Format == "" {
		return DefaultDatetimeFormat
	}
	return b.Format
}

// Parse coerces a raw value into a time.Time. Strings are parsed with the
// configured format; numbers are treated as Unix timestamps in seconds.
func (b *DatetimeType) Parse(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(b.format(), v)
		if err != nil {
			return nil, fmt.Errorf("value could not be parsed as datetime with format %s. Was: %#v", b.format(), v)
		}
		return t, nil
	case float64:
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
	}
	if i, err := toInt64(raw); err == nil {
		return time.Unix(i, 0).UTC(), nil
	}
	return nil, fmt.Errorf("value is not a datetime. Was: %#v", raw)
}

// ToString produces a string representation of a DatetimeType value
func (b *DatetimeType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).Format(b.format()))
}

// toInt64 widens any native integer representation to int64, truncates
// floats, and parses integer strings
func toInt64(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value is not an integer. Was: %#v", v)
		}
		return i, nil
	}
	return 0, fmt.Errorf("value is not an integer. Was: %#v", raw)
}

// toFloat64 widens any native numeric representation to float64 and parses
// numeric strings
func toFloat64(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value is not a number. Was: %#v", v)
		}
		return f, nil
	}
	if i, err := toInt64(raw); err == nil {
		return float64(i), nil
	}
	return 0, fmt.Errorf("value is not a number. Was: %#v", raw)
}
