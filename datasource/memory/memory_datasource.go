// Package memory creates Frames from in-memory row data, inferring a Schema
// from the data itself when one is not provided.
package memory

import (
	"fmt"
	"time"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/internal/frame"
	"github.com/go-xframe/xframe/internal/partition"
	"github.com/go-xframe/xframe/logging"
	"github.com/go-xframe/xframe/rowconv"
	"github.com/go-xframe/xframe/schema"
)

// inferenceSampleSize is the number of leading rows examined when inferring
// column types from data
const inferenceSampleSize = 100

// FrameConf configures Frame creation from in-memory data
type FrameConf struct {
	// Schema declares column names and types. When nil, column types are
	// inferred from the first 100 rows of data and columns are named from
	// ColumnNames (or numbered C0, C1, ... when that is also absent).
	Schema xframe.Schema
	// ColumnNames labels inferred columns. Ignored when Schema is set.
	ColumnNames []string
	// PartitionSize is the maximum number of rows per Partition.
	// Defaults to 128.
	PartitionSize int
	// ValidateData runs every row through the RowConverter against the
	// Schema, coercing cells to their declared types. Cells which cannot
	// be coerced follow Policy. When false, values are stored as given.
	ValidateData bool
	// Policy controls parse failure handling during validation
	Policy xframe.ParsePolicy
}

func (c *FrameConf) applyDefaults() {
	if c.PartitionSize <= 0 {
		c.PartitionSize = 128
	}
}

// CreateFrame builds a Frame from a sequence of raw rows. Each raw row may
// be a []interface{} or any other slice-like sequence of values; both shapes
// are normalized before use. Rows whose width disagrees with the schema are
// dropped and reported, never nulled.
func CreateFrame(data []interface{}, conf *FrameConf) (xframe.Frame, *xframe.ConversionReport, error) {
	if conf == nil {
		conf = &FrameConf{}
	}
	conf.applyDefaults()

	raws := make([][]interface{}, 0, len(data))
	report := xframe.CreateConversionReport()
	for _, rawRow := range data {
		vals, err := rowconv.NormalizeValues(rawRow)
		if err != nil {
			report.RowsDropped++
			report.Record(err)
			logging.Logf(logging.WarnLevel, "dropping row: %v", err)
			continue
		}
		raws = append(raws, vals)
	}

	frameSchema := conf.Schema
	if frameSchema == nil {
		var err error
		frameSchema, err = InferSchema(raws, conf.ColumnNames)
		if err != nil {
			return nil, nil, err
		}
	}

	var rows []xframe.Row
	if conf.ValidateData {
		converter := rowconv.CreateRowConverter(conf.Policy)
		converted, convReport, err := converter.ConvertAll(raws, frameSchema)
		if err != nil {
			return nil, nil, err
		}
		report.Merge(convReport)
		rows = converted
	} else {
		rows = make([]xframe.Row, 0, len(raws))
		for _, raw := range raws {
			if len(raw) != frameSchema.NumColumns() {
				err := errors.SchemaMismatchError{Expected: frameSchema.NumColumns(), Actual: len(raw)}
				report.RowsDropped++
				report.Record(err)
				logging.Logf(logging.WarnLevel, "dropping row: %v", err)
				continue
			}
			report.RowsConverted++
			rows = append(rows, partition.CreateRow(raw, frameSchema))
		}
	}

	parts, err := partitionRows(rows, frameSchema, conf.PartitionSize)
	if err != nil {
		return nil, nil, err
	}
	return frame.CreateFrame(frameSchema, parts), report, nil
}

// partitionRows groups rows into Partitions of at most partitionSize rows,
// preserving row order
func partitionRows(rows []xframe.Row, frameSchema xframe.Schema, partitionSize int) ([]xframe.Partition, error) {
	parts := make([]xframe.Partition, 0, (len(rows)+partitionSize-1)/partitionSize)
	for start := 0; start < len(rows); start += partitionSize {
		end := start + partitionSize
		if end > len(rows) {
			end = len(rows)
		}
		part := partition.CreatePartition(frameSchema, end-start)
		for _, row := range rows[start:end] {
			if err := part.AppendRow(row.Values()); err != nil {
				return nil, err
			}
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// InferSchema derives a Schema from the first 100 rows of raw data, using
// the most general type observed per column: int64 widens to float64, and
// anything mixed beyond that widens to string. Columns are named from names,
// or numbered C0, C1, ... when names are absent. The width of the first row
// defines the column count.
func InferSchema(raws [][]interface{}, names []string) (xframe.Schema, error) {
	if len(raws) == 0 && len(names) == 0 {
		return nil, fmt.Errorf("cannot infer a schema from empty data")
	}
	width := len(names)
	if len(raws) > 0 {
		width = len(raws[0])
	}
	if len(names) > 0 && len(names) != width {
		return nil, fmt.Errorf("%d column names provided for data of width %d", len(names), width)
	}

	sample := raws
	if len(sample) > inferenceSampleSize {
		sample = sample[:inferenceSampleSize]
	}
	kinds := make([]inferredKind, width)
	for _, raw := range sample {
		if len(raw) != width {
			continue
		}
		for i, v := range raw {
			kinds[i] = widen(kinds[i], kindOf(v))
		}
	}

	colNames := names
	if len(colNames) == 0 {
		colNames = make([]string, width)
		for i := range colNames {
			colNames[i] = fmt.Sprintf("C%d", i)
		}
	}
	types := make([]xframe.DataType, width)
	for i, k := range kinds {
		types[i] = k.dataType()
	}
	return schema.CreateSchemaWithColumns(colNames, types)
}

// inferredKind is the widening lattice for schema inference:
// none -> bool/int64/float64/datetime -> string
type inferredKind int

const (
	kindNone inferredKind = iota
	kindBool
	kindInt
	kindFloat
	kindDatetime
	kindString
)

func kindOf(v interface{}) inferredKind {
	switch v.(type) {
	case nil:
		return kindNone
	case bool:
		return kindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt
	case float32, float64:
		return kindFloat
	case time.Time:
		return kindDatetime
	default:
		return kindString
	}
}

func widen(a, b inferredKind) inferredKind {
	if a == b || b == kindNone {
		return a
	}
	if a == kindNone {
		return b
	}
	if (a == kindInt && b == kindFloat) || (a == kindFloat && b == kindInt) {
		return kindFloat
	}
	return kindString
}

func (k inferredKind) dataType() xframe.DataType {
	switch k {
	case kindBool:
		return &columntype.BoolType{}
	case kindInt:
		return &columntype.Int64Type{}
	case kindFloat:
		return &columntype.Float64Type{}
	case kindDatetime:
		return &columntype.DatetimeType{}
	default:
		// all-nil columns infer as string, the most general type
		return &columntype.StringType{}
	}
}
