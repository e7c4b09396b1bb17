// Package persist implements the versioned artifact layout used to save and
// load model metadata alongside the Schema it was trained against. Every
// artifact is tagged with a format version integer; unknown versions are
// rejected outright, never speculatively parsed.
package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/go-xframe/xframe"
	"github.com/go-xframe/xframe/columntype"
	errors "github.com/go-xframe/xframe/errors"
	"github.com/go-xframe/xframe/schema"
)

// FormatVersion is the artifact layout version written by this build
const FormatVersion = 1

var artifactMagic = []byte{'X', 'F', 'R', 'M'}

// columnWire is the persisted representation of one schema column
type columnWire struct {
	Name   string
	Type   string
	Format string // datetime format, where applicable
}

// artifactWire is the persisted representation of an artifact body
type artifactWire struct {
	Columns  []columnWire
	Metadata []byte
}

// Save writes a schema and an opaque, versioned metadata blob to w
func Save(w io.Writer, frameSchema xframe.Schema, metadata []byte) error {
	header := make([]byte, 8)
	copy(header, artifactMagic)
	binary.BigEndian.PutUint32(header[4:8], FormatVersion)
	if _, err := w.Write(header); err != nil {
		return err
	}

	wire := artifactWire{
		Columns:  make([]columnWire, 0, frameSchema.NumColumns()),
		Metadata: metadata,
	}
	err := frameSchema.ForEachColumn(func(col xframe.Column) error {
		cw := columnWire{Name: col.Name(), Type: col.Type().Name()}
		if dt, ok := col.Type().(*columntype.DatetimeType); ok {
			cw.Format = dt.Format
		}
		wire.Columns = append(wire.Columns, cw)
		return nil
	})
	if err != nil {
		return err
	}
	return gob.NewEncoder(w).Encode(&wire)
}

// Load reads a schema and metadata blob from r, rejecting artifacts tagged
// with an unknown format version before reading anything else
func Load(r io.Reader) (xframe.Schema, []byte, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, nil, fmt.Errorf("unable to read artifact header: %v", err)
	}
	if !bytes.Equal(header[:4], artifactMagic) {
		return nil, nil, fmt.Errorf("artifact has unrecognized magic %x", header[:4])
	}
	version := int(binary.BigEndian.Uint32(header[4:8]))
	if version != FormatVersion {
		return nil, nil, errors.UnsupportedFormatVersionError{Version: version, Supported: FormatVersion}
	}

	var wire artifactWire
	if err := gob.NewDecoder(r).Decode(&wire); err != nil {
		return nil, nil, fmt.Errorf("unable to decode artifact body: %v", err)
	}
	frameSchema := schema.CreateSchema()
	for _, cw := range wire.Columns {
		t, err := columntype.FromName(cw.Type)
		if err != nil {
			return nil, nil, err
		}
		if dt, ok := t.(*columntype.DatetimeType); ok {
			dt.Format = cw.Format
		}
		frameSchema, err = frameSchema.CreateColumn(cw.Name, t)
		if err != nil {
			return nil, nil, err
		}
	}
	return frameSchema, wire.Metadata, nil
}
