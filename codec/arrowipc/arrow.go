package arrowipc

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
)

// toArrowSchema maps an xframe Schema to the equivalent Arrow schema. All
// fields are nullable, since any cell of a canonical Row may be nil.
func toArrowSchema(s xframe.Schema) (*arrow.Schema, error) {
	fields := make([]arrow.Field, s.NumColumns())
	err := s.ForEachColumn(func(col xframe.Column) error {
		at, err := toArrowType(col.Type())
		if err != nil {
			return err
		}
		fields[col.Index()] = arrow.Field{Name: col.Name(), Type: at, Nullable: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

// toArrowType maps a built-in xframe DataType to an Arrow DataType
func toArrowType(t xframe.DataType) (arrow.DataType, error) {
	switch t.(type) {
	case *columntype.BoolType:
		return arrow.FixedWidthTypes.Boolean, nil
	case *columntype.Int32Type:
		return arrow.PrimitiveTypes.Int32, nil
	case *columntype.Int64Type:
		return arrow.PrimitiveTypes.Int64, nil
	case *columntype.Float32Type:
		return arrow.PrimitiveTypes.Float32, nil
	case *columntype.Float64Type:
		return arrow.PrimitiveTypes.Float64, nil
	case *columntype.StringType:
		return arrow.BinaryTypes.String, nil
	case *columntype.DatetimeType:
		return arrow.FixedWidthTypes.Timestamp_ns, nil
	default:
		return nil, fmt.Errorf("batch encoding does not support column type %s", t.Name())
	}
}

// appendValue appends one canonical cell value to an Arrow array builder.
// Type tags are stripped at this boundary: the foreign runtime sees only the
// self-describing batch representation.
func appendValue(b array.Builder, row xframe.Row, idx int) error {
	if row.IsNil(idx) {
		b.AppendNull()
		return nil
	}
	switch builder := b.(type) {
	case *array.BooleanBuilder:
		v, err := row.GetBool(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.Int32Builder:
		v, err := row.GetInt32(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.Int64Builder:
		v, err := row.GetInt64(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.Float32Builder:
		v, err := row.GetFloat32(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.Float64Builder:
		v, err := row.GetFloat64(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.StringBuilder:
		v, err := row.GetString(idx)
		if err != nil {
			return err
		}
		builder.Append(v)
	case *array.TimestampBuilder:
		v, err := row.GetTime(idx)
		if err != nil {
			return err
		}
		builder.Append(arrow.Timestamp(v.UnixNano()))
	default:
		return fmt.Errorf("batch encoding does not support builder type %T", b)
	}
	return nil
}

// extractValue reads one cell from a decoded Arrow column as an opaque,
// untyped value. Decoding accepts whatever types the foreign runtime wrote;
// the Row Converter is responsible for coercing each cell to the target
// Schema afterwards. Unrecognized array types degrade to their string
// representation, which the per-column parse functions can often recover.
func extractValue(col arrow.Array, i int) interface{} {
	if col.IsNull(i) {
		return nil
	}
	switch arr := col.(type) {
	case *array.Boolean:
		return arr.Value(i)
	case *array.Int8:
		return arr.Value(i)
	case *array.Int16:
		return arr.Value(i)
	case *array.Int32:
		return arr.Value(i)
	case *array.Int64:
		return arr.Value(i)
	case *array.Uint8:
		return arr.Value(i)
	case *array.Uint16:
		return arr.Value(i)
	case *array.Uint32:
		return arr.Value(i)
	case *array.Uint64:
		return arr.Value(i)
	case *array.Float32:
		return arr.Value(i)
	case *array.Float64:
		return arr.Value(i)
	case *array.String:
		return arr.Value(i)
	case *array.LargeString:
		return arr.Value(i)
	case *array.Binary:
		return arr.Value(i)
	case *array.Timestamp:
		tsType := arr.DataType().(*arrow.TimestampType)
		return arr.Value(i).ToTime(tsType.Unit)
	default:
		return col.ValueStr(i)
	}
}
