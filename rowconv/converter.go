// Package rowconv implements xframe's RowConverter: the transformation of
// raw, untyped positional value sequences into canonical Rows conforming to
// a Schema.
package rowconv

import (
	"fmt"
	"reflect"

	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/internal/partition"
	"github.com/go-xframe/xframe/logging"
)

// converterImpl is a stateless RowConverter, instantiated once per process
// and safe to share across concurrent partition tasks
type converterImpl struct {
	policy xframe.ParsePolicy
}

// CreateRowConverter is a factory for RowConverters with a given ParsePolicy
func CreateRowConverter(policy xframe.ParsePolicy) xframe.RowConverter {
	return &converterImpl{policy: policy}
}

// Policy returns the ParsePolicy of this RowConverter
func (c *converterImpl) Policy() xframe.ParsePolicy {
	return c.policy
}

// Convert produces a canonical Row from one raw value sequence
func (c *converterImpl) Convert(raw []interface{}, schema xframe.Schema) (xframe.Row, error) {
	values, _, err := c.convertValues(raw, schema, nil)
	if err != nil {
		return nil, err
	}
	return partition.CreateRow(values, schema), nil
}

// ConvertAll converts a sequence of raw rows against a Schema. Rows whose
// length disagrees with the schema are dropped and counted; cell-level
// failures follow the configured ParsePolicy. The returned slice preserves
// the order of the surviving input rows.
func (c *converterImpl) ConvertAll(raws [][]interface{}, schema xframe.Schema) ([]xframe.Row, *xframe.ConversionReport, error) {
	report := xframe.CreateConversionReport()
	rows := make([]xframe.Row, 0, len(raws))
	for _, raw := range raws {
		values, nulled, err := c.convertValues(raw, schema, report)
		if err != nil {
			if _, ok := err.(errors.SchemaMismatchError); ok {
				report.RowsDropped++
				report.Record(err)
				logging.Logf(logging.WarnLevel, "dropping row: %v", err)
				continue
			}
			return nil, report, err
		}
		report.RowsConverted++
		report.CellsNulled += nulled
		rows = append(rows, partition.CreateRow(values, schema))
	}
	return rows, report, nil
}

// convertValues applies per-column parsing and null handling to one raw
// value sequence. Returns the canonical values and the number of cells
// nulled under the lenient policy.
func (c *converterImpl) convertValues(raw []interface{}, schema xframe.Schema, report *xframe.ConversionReport) ([]interface{}, int, error) {
	if len(raw) != schema.NumColumns() {
		return nil, 0, errors.SchemaMismatchError{Expected: schema.NumColumns(), Actual: len(raw)}
	}
	values := make([]interface{}, len(raw))
	nulled := 0
	for i, rawVal := range raw {
		// a legitimate null is not a parse failure
		if rawVal == nil {
			values[i] = nil
			continue
		}
		col, err := schema.ColumnAt(i)
		if err != nil {
			return nil, 0, err
		}
		parsed, err := col.Type().Parse(rawVal)
		if err != nil {
			parseErr := errors.ParseError{Name: col.Name(), Index: i, Raw: rawVal, Reason: err}
			if c.policy == xframe.StrictParsePolicy {
				return nil, 0, parseErr
			}
			values[i] = nil
			nulled++
			if report != nil {
				report.NulledByColumn[col.Name()]++
				report.Record(parseErr)
			}
			continue
		}
		values[i] = parsed
	}
	return values, nulled, nil
}

// NormalizeValues accepts either a flat []interface{} or any other slice-like
// sequence of opaque values, and normalizes it to one array form. Foreign
// runtimes produce row-shaped data in both shapes.
func NormalizeValues(raw interface{}) ([]interface{}, error) {
	if raw == nil {
		return nil, fmt.Errorf("raw row is nil")
	}
	if vals, ok := raw.([]interface{}); ok {
		return vals, nil
	}
	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("raw row is not a sequence of values. Was: %#v", raw)
	}
	vals := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		vals[i] = v.Index(i).Interface()
	}
	return vals, nil
}
