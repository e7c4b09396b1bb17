package xframe

// ParsePolicy controls how a RowConverter reacts to a cell-level parse
// failure. The policy is explicit configuration, chosen at converter
// construction time, never hidden control flow.
type ParsePolicy int

const (
	// LenientParsePolicy substitutes nil for any cell value which fails to
	// parse, and continues converting the row. Malformed cells become nulls
	// rather than aborting the whole job.
	LenientParsePolicy ParsePolicy = iota
	// StrictParsePolicy propagates the first cell-level ParseError,
	// aborting conversion of the offending row.
	StrictParsePolicy
)

// RowConverter transforms raw positional value sequences, as produced by
// deserializing foreign-runtime data, into canonical Rows conforming to a
// Schema. Implementations are stateless and safe to share across
// concurrently executing partition-level tasks.
type RowConverter interface {
	Policy() ParsePolicy                                                              // Policy returns the ParsePolicy of this RowConverter
	Convert(raw []interface{}, schema Schema) (Row, error)                            // Convert produces a canonical Row from one raw value sequence, or a SchemaMismatchError/ParseError
	ConvertAll(raws [][]interface{}, schema Schema) ([]Row, *ConversionReport, error) // ConvertAll converts a sequence of raw rows, dropping (and reporting) mismatched rows
}
