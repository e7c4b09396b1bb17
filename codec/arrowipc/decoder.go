package arrowipc

import (
	"bytes"
	"context"
	"runtime"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/go-xframe/xframe"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/internal/frame"
	"github.com/go-xframe/xframe/internal/partition"
	"github.com/go-xframe/xframe/logging"
	"github.com/go-xframe/xframe/rowconv"
	"golang.org/x/sync/errgroup"
)

// DecoderConf configures a Decoder
type DecoderConf struct {
	// Policy controls how cell-level parse failures are handled while
	// converting decoded generic rows to the target Schema. Defaults to
	// LenientParsePolicy: malformed cells become nil rather than failing
	// the partition.
	Policy xframe.ParsePolicy
	// MaxParallel limits how many partitions decode concurrently.
	// Defaults to the number of CPUs.
	MaxParallel int
}

func (c *DecoderConf) applyDefaults() {
	if c.MaxParallel <= 0 {
		c.MaxParallel = runtime.NumCPU()
	}
}

// Decoder deserializes per-partition batch streams back into Frames of
// canonical Rows. A Decoder is stateless and safe for concurrent use.
type Decoder struct {
	conf      *DecoderConf
	converter xframe.RowConverter
}

// CreateDecoder is a factory for Decoders
func CreateDecoder(conf *DecoderConf) *Decoder {
	if conf == nil {
		conf = &DecoderConf{}
	}
	conf.applyDefaults()
	return &Decoder{
		conf:      conf,
		converter: rowconv.CreateRowConverter(conf.Policy),
	}
}

// DecodeFrame deserializes a sequence of encoded partitions into a Frame
// conforming to the target Schema. Partition boundaries are preserved 1:1,
// and row order within each partition is preserved exactly. An empty
// partition sequence yields an empty Frame with the target schema attached.
// Corrupt batch data is fatal for its partition, and therefore for the
// decode as a whole; cell-level parse failures follow the configured
// ParsePolicy and are aggregated into the returned ConversionReport.
func (d *Decoder) DecodeFrame(ctx context.Context, parts []EncodedPartition, schema xframe.Schema) (xframe.Frame, *xframe.ConversionReport, error) {
	decoded := make([]xframe.Partition, len(parts))
	reports := make([]*xframe.ConversionReport, len(parts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.conf.MaxParallel)
	for i, ep := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			part, report, err := d.decodePartition(ep, schema)
			if err != nil {
				return err
			}
			decoded[i] = part
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := xframe.CreateConversionReport()
	for _, r := range reports {
		report.Merge(r)
	}
	if report.CellsNulled > 0 || report.RowsDropped > 0 {
		logging.Logf(logging.WarnLevel, "decode nulled %d cells and dropped %d rows across %d partitions", report.CellsNulled, report.RowsDropped, len(parts))
	}
	return frame.CreateFrame(schema, decoded), report, nil
}

// decodePartition deserializes one partition's framed batch stream and
// converts its generic rows to canonical Rows under the target Schema
func (d *Decoder) decodePartition(ep EncodedPartition, schema xframe.Schema) (xframe.Partition, *xframe.ConversionReport, error) {
	payload, err := unframeBytes(ep.Data)
	if err != nil {
		return nil, nil, errors.DeserializationError{PartitionID: ep.ID, Reason: err}
	}
	rdr, err := ipc.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, nil, errors.DeserializationError{PartitionID: ep.ID, Reason: err}
	}
	defer rdr.Release()

	newPart := partition.CreatePartitionWithID(ep.ID, schema, 0)
	report := xframe.CreateConversionReport()
	for rdr.Next() {
		rec := rdr.Record()
		raws := make([][]interface{}, int(rec.NumRows()))
		for i := range raws {
			raw := make([]interface{}, int(rec.NumCols()))
			for c := range raw {
				raw[c] = extractValue(rec.Column(c), i)
			}
			raws[i] = raw
		}
		rows, batchReport, err := d.converter.ConvertAll(raws, schema)
		if err != nil {
			return nil, nil, err
		}
		report.Merge(batchReport)
		for _, row := range rows {
			if err := newPart.AppendRow(row.Values()); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, nil, errors.DeserializationError{PartitionID: ep.ID, Reason: err}
	}
	return newPart, report, nil
}
