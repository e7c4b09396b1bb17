package arrowipc

import (
	"bytes"
	"context"
	"runtime"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-xframe/xframe"
	"golang.org/x/sync/errgroup"
)

// EncodedPartition is one partition's worth of serialized batch data, ready
// for transfer across a runtime boundary. ID preserves partition identity
// through a round trip.
type EncodedPartition struct {
	ID   string
	Data []byte
}

// EncoderConf configures an Encoder
type EncoderConf struct {
	// TargetBatchBytes is the intended serialized size of one batch. The
	// encoder adapts rows-per-batch toward this target: larger batches as
	// serialized row size shrinks, smaller batches as it grows. Purely a
	// throughput/memory tradeoff - decoding never depends on batch
	// boundaries. Defaults to 1MiB.
	TargetBatchBytes int
	// InitialBatchRows is the rows-per-batch starting point, before any
	// serialized sizes have been observed. Defaults to 64.
	InitialBatchRows int
	// MinBatchRows and MaxBatchRows clamp the adaptive rows-per-batch.
	// Default to 16 and 16384.
	MinBatchRows int
	MaxBatchRows int
	// MaxParallel limits how many partitions encode concurrently.
	// Defaults to the number of CPUs.
	MaxParallel int
}

func (c *EncoderConf) applyDefaults() {
	if c.TargetBatchBytes <= 0 {
		c.TargetBatchBytes = 1 << 20
	}
	if c.InitialBatchRows <= 0 {
		c.InitialBatchRows = 64
	}
	if c.MinBatchRows <= 0 {
		c.MinBatchRows = 16
	}
	if c.MaxBatchRows <= 0 {
		c.MaxBatchRows = 16384
	}
	if c.MaxParallel <= 0 {
		c.MaxParallel = runtime.NumCPU()
	}
}

// Encoder serializes Frames of canonical Rows into per-partition batch
// streams. An Encoder is stateless and safe for concurrent use.
type Encoder struct {
	conf *EncoderConf
}

// CreateEncoder is a factory for Encoders
func CreateEncoder(conf *EncoderConf) *Encoder {
	if conf == nil {
		conf = &EncoderConf{}
	}
	conf.applyDefaults()
	return &Encoder{conf: conf}
}

// EncodeFrame serializes every partition of a Frame, in order. Partitions
// are encoded independently and in parallel; the result slice preserves the
// Frame's partition order.
func (e *Encoder) EncodeFrame(ctx context.Context, f xframe.Frame) ([]EncodedPartition, error) {
	arrowSchema, err := toArrowSchema(f.Schema())
	if err != nil {
		return nil, err
	}
	parts := make([]xframe.Partition, 0, f.NumPartitions())
	pi := f.PartitionIterator()
	for pi.HasNextPartition() {
		part, err := pi.NextPartition()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	res := make([]EncodedPartition, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.conf.MaxParallel)
	for i, part := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := e.encodePartition(part, arrowSchema)
			if err != nil {
				return err
			}
			res[i] = EncodedPartition{ID: part.ID(), Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// encodePartition traverses one partition's rows in order, grouping them
// into size-adaptive Arrow record batches within a single framed IPC stream
func (e *Encoder) encodePartition(part xframe.Partition, arrowSchema *arrow.Schema) ([]byte, error) {
	var ipcBuf bytes.Buffer
	w := ipc.NewWriter(&ipcBuf, ipc.WithSchema(arrowSchema), ipc.WithAllocator(memory.DefaultAllocator))
	builder := array.NewRecordBuilder(memory.DefaultAllocator, arrowSchema)
	defer builder.Release()

	batchRows := e.conf.InitialBatchRows
	pending := 0
	lastLen := 0
	flush := func() error {
		rec := builder.NewRecord()
		defer rec.Release()
		if err := w.Write(rec); err != nil {
			return err
		}
		written := ipcBuf.Len() - lastLen
		lastLen = ipcBuf.Len()
		if written < e.conf.TargetBatchBytes/2 && batchRows*2 <= e.conf.MaxBatchRows {
			batchRows *= 2
		} else if written > e.conf.TargetBatchBytes*2 && batchRows/2 >= e.conf.MinBatchRows {
			batchRows /= 2
		}
		pending = 0
		return nil
	}

	err := part.ForEachRow(func(rowNum int, row xframe.Row) error {
		for c, fb := range builder.Fields() {
			if err := appendValue(fb, row, c); err != nil {
				return err
			}
		}
		pending++
		if pending >= batchRows {
			return flush()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return frameBytes(ipcBuf.Bytes())
}
