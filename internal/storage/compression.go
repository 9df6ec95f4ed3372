package storage

import (
	"encoding/binary"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4/v4"
)

// CompressionType represents different compression algorithms
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionLZ4
)

// String returns the configuration name of the algorithm.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompressionType maps a configuration name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, errors.Newf("unsupported compression type: %q", name)
	}
}

// Frame headers written in front of every stored row.
const (
	frameRaw byte = 0
	frameLZ4 byte = 1
)

// Compressor interface for different compression algorithms
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte, originalSize int) ([]byte, error)
	Type() CompressionType
}

// LZ4Compressor implements LZ4 block compression
type LZ4Compressor struct{}

// NewLZ4Compressor creates a new LZ4 compressor
func NewLZ4Compressor() *LZ4Compressor {
	return &LZ4Compressor{}
}

// Compress compresses data using LZ4. A nil result means the input did not compress.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, errors.Wrap(err, "LZ4 compression failed")
	}
	if n == 0 {
		return nil, nil
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4 data
func (c *LZ4Compressor) Decompress(data []byte, originalSize int) ([]byte, error) {
	dst := make([]byte, originalSize)

	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, errors.Wrap(err, "LZ4 decompression failed")
	}

	if n != originalSize {
		return nil, errors.Newf("LZ4 decompression size mismatch: expected %d, got %d", originalSize, n)
	}

	return dst, nil
}

// Type returns the compression type
func (c *LZ4Compressor) Type() CompressionType {
	return CompressionLZ4
}

// CompressionStats tracks compression counters for one table
type CompressionStats struct {
	CompressedRows  int64
	RawRows         int64
	BytesCompressed int64
	TotalSavings    int64
}

// frameCodec frames encoded rows, compressing the ones worth compressing.
type frameCodec struct {
	compressor Compressor
	minSize    int

	mu    sync.Mutex
	stats CompressionStats
}

func newFrameCodec(opts Options) *frameCodec {
	fc := &frameCodec{minSize: opts.CompressionMinSize}
	if opts.Compression == CompressionLZ4 {
		fc.compressor = NewLZ4Compressor()
	}
	return fc
}

// pack returns header || payload, where the payload is compressed when it pays off.
func (fc *frameCodec) pack(data []byte) ([]byte, error) {
	if fc.compressor != nil && len(data) >= fc.minSize {
		compressed, err := fc.compressor.Compress(data)
		if err != nil {
			return nil, err
		}
		sizeLen := uvarintLen(uint64(len(data)))
		if compressed != nil && 1+sizeLen+len(compressed) < 1+len(data) {
			out := make([]byte, 1+sizeLen+len(compressed))
			out[0] = frameLZ4
			binary.PutUvarint(out[1:], uint64(len(data)))
			copy(out[1+sizeLen:], compressed)
			fc.record(true, len(data), len(out))
			return out, nil
		}
	}

	out := make([]byte, 1+len(data))
	out[0] = frameRaw
	copy(out[1:], data)
	fc.record(false, len(data), len(out))
	return out, nil
}

// unpack reverses pack.
func (fc *frameCodec) unpack(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, errors.Wrap(ErrCorruptRow, "empty frame")
	}
	switch frame[0] {
	case frameRaw:
		return frame[1:], nil
	case frameLZ4:
		size, n := binary.Uvarint(frame[1:])
		if n <= 0 {
			return nil, errors.Wrap(ErrCorruptRow, "bad original size")
		}
		data, err := NewLZ4Compressor().Decompress(frame[1+n:], int(size)) //nolint:gosec // size was written by pack
		if err != nil {
			return nil, errors.Mark(err, ErrCorruptRow)
		}
		return data, nil
	default:
		return nil, errors.Wrapf(ErrCorruptRow, "unknown frame header %d", frame[0])
	}
}

func (fc *frameCodec) record(compressed bool, original, stored int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if compressed {
		fc.stats.CompressedRows++
		fc.stats.BytesCompressed += int64(original)
		fc.stats.TotalSavings += int64(original - stored)
		return
	}
	fc.stats.RawRows++
}

// Stats returns a copy of the counters.
func (fc *frameCodec) Stats() CompressionStats {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.stats
}

func uvarintLen(x uint64) int {
	var buf [binary.MaxVarintLen64]byte
	return binary.PutUvarint(buf[:], x)
}
