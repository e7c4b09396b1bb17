package arrowipc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	lz4 "github.com/pierrec/lz4/v4"
)

// batchFormatVersion tags every framed partition stream. Streams carrying an
// unknown version are rejected outright, never speculatively parsed.
const batchFormatVersion = 1

var frameMagic = []byte{'X', 'F', 'R', 'B'}

const frameHeaderSize = 4 + 1 + 8 // magic + version + checksum

// frameBytes wraps a partition's serialized batch payload with a framing
// header: magic, format version, and an xxhash64 checksum of the
// lz4-compressed payload which follows.
func frameBytes(payload []byte) ([]byte, error) {
	var compressed bytes.Buffer
	w := lz4.NewWriter(&compressed)
	if _, err := w.Write(payload); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	framed := make([]byte, frameHeaderSize+compressed.Len())
	copy(framed, frameMagic)
	framed[4] = batchFormatVersion
	binary.BigEndian.PutUint64(framed[5:13], xxhash.Sum64(compressed.Bytes()))
	copy(framed[frameHeaderSize:], compressed.Bytes())
	return framed, nil
}

// unframeBytes validates and strips the framing header, returning the
// decompressed batch payload
func unframeBytes(framed []byte) ([]byte, error) {
	if len(framed) < frameHeaderSize {
		return nil, fmt.Errorf("framed batch data is truncated (%d bytes)", len(framed))
	}
	if !bytes.Equal(framed[:4], frameMagic) {
		return nil, fmt.Errorf("framed batch data has unrecognized magic %x", framed[:4])
	}
	if framed[4] != batchFormatVersion {
		return nil, fmt.Errorf("framed batch data has unsupported format version %d (expected %d)", framed[4], batchFormatVersion)
	}
	compressed := framed[frameHeaderSize:]
	if sum := xxhash.Sum64(compressed); sum != binary.BigEndian.Uint64(framed[5:13]) {
		return nil, fmt.Errorf("framed batch data failed checksum validation")
	}
	payload, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, fmt.Errorf("unable to decompress batch data: %v", err)
	}
	return payload, nil
}
