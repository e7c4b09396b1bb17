package columntype

import (
	"fmt"

	"github.com/go-xframe/xframe"
)

// FromName resolves a registry name (as produced by DataType.Name()) to a
// fresh instance of the corresponding built-in DataType. Used when
// reconstructing Schemas from persisted artifacts.
func FromName(name string) (xframe.DataType, error) {
	switch name {
	case "bool":
		return &BoolType{}, nil
	case "int32":
		return &Int32Type{}, nil
	case "int64":
		return &Int64Type{}, nil
	case "float32":
		return &Float32Type{}, nil
	case "float64":
		return &Float64Type{}, nil
	case "string":
		return &StringType{}, nil
	case "datetime":
		return &DatetimeType{}, nil
	default:
		return nil, fmt.Errorf("unknown column type name %s", name)
	}
}
