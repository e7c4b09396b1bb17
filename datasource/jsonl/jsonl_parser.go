// Package jsonl parses line-delimited JSON into Frames. Column names are
// gjson paths, so dotted names address nested keys (e.g. "meta.index").
package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/internal/frame"
	"github.com/go-xframe/xframe/internal/partition"
	"github.com/go-xframe/xframe/logging"
	"github.com/go-xframe/xframe/rowconv"
	"github.com/tidwall/gjson"
)

// ParserConf configures a jsonl Parser
type ParserConf struct {
	// PartitionSize is the maximum number of rows per Partition.
	// Defaults to 128.
	PartitionSize int
	// Policy controls how cell values which cannot be coerced to their
	// declared column types are handled. Defaults to LenientParsePolicy.
	Policy xframe.ParsePolicy
}

// Parser produces Frames from line-delimited JSON data
type Parser struct {
	conf      *ParserConf
	converter xframe.RowConverter
}

// CreateParser is a factory for jsonl Parsers
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.PartitionSize <= 0 {
		conf.PartitionSize = 128
	}
	return &Parser{
		conf:      conf,
		converter: rowconv.CreateRowConverter(conf.Policy),
	}
}

// Parse reads line-delimited JSON and produces a Frame conforming to the
// given Schema. Missing keys and JSON nulls become nil cells. Lines which
// are not valid JSON are dropped and reported, never nulled.
func (p *Parser) Parse(r io.Reader, schema xframe.Schema) (xframe.Frame, *xframe.ConversionReport, error) {
	colNames := schema.ColumnNames()
	report := xframe.CreateConversionReport()
	raws := make([][]interface{}, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if !gjson.Valid(line) {
			report.RowsDropped++
			report.Record(fmt.Errorf("line is not valid JSON: %.80q", line))
			logging.Logf(logging.WarnLevel, "dropping line which is not valid JSON")
			continue
		}
		raw := make([]interface{}, len(colNames))
		for i, colName := range colNames {
			res := gjson.Get(line, colName)
			if !res.Exists() || res.Type == gjson.Null {
				raw[i] = nil
				continue
			}
			raw[i] = res.Value()
		}
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	rows, convReport, err := p.converter.ConvertAll(raws, schema)
	if err != nil {
		return nil, nil, err
	}
	report.Merge(convReport)

	parts := make([]xframe.Partition, 0, (len(rows)+p.conf.PartitionSize-1)/p.conf.PartitionSize)
	for start := 0; start < len(rows); start += p.conf.PartitionSize {
		end := start + p.conf.PartitionSize
		if end > len(rows) {
			end = len(rows)
		}
		part := partition.CreatePartition(schema, end-start)
		for _, row := range rows[start:end] {
			if err := part.AppendRow(row.Values()); err != nil {
				return nil, nil, err
			}
		}
		parts = append(parts, part)
	}
	return frame.CreateFrame(schema, parts), report, nil
}
