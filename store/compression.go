package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the block compression applied to stored records.
type Compression uint8

const (
	// CompressionNone stores records uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the data is stored uncompressed (either
// CompressionNone, or the block did not shrink).
const blockHeaderSize = 8

var errBlockTruncated = errors.New("store: truncated block")

// compressBlock frames and compresses data with the given algorithm,
// falling back to raw storage when compression does not help.
func compressBlock(data []byte, compression Compression, zenc *zstd.Encoder) ([]byte, error) {
	raw := func() []byte {
		out := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:4], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:8], 0)
		copy(out[blockHeaderSize:], data)
		return out
	}

	switch compression {
	case CompressionNone:
		return raw(), nil
	case CompressionLZ4:
		var c lz4.Compressor
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := c.CompressBlock(data, buf)
		if err != nil {
			return nil, fmt.Errorf("store: lz4 compress: %w", err)
		}
		if n == 0 || n >= len(data) {
			// Incompressible
			return raw(), nil
		}
		out := make([]byte, blockHeaderSize+n)
		binary.LittleEndian.PutUint32(out[0:4], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:8], uint32(n))
		copy(out[blockHeaderSize:], buf[:n])
		return out, nil
	case CompressionZSTD:
		compressed := zenc.EncodeAll(data, nil)
		if len(compressed) >= len(data) {
			return raw(), nil
		}
		out := make([]byte, blockHeaderSize+len(compressed))
		binary.LittleEndian.PutUint32(out[0:4], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:8], uint32(len(compressed)))
		copy(out[blockHeaderSize:], compressed)
		return out, nil
	default:
		return nil, fmt.Errorf("store: unknown compression type %d", compression)
	}
}

// decompressBlock reverses compressBlock.
func decompressBlock(block []byte, compression Compression, zdec *zstd.Decoder) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, errBlockTruncated
	}
	uncompressedSize := binary.LittleEndian.Uint32(block[0:4])
	compressedSize := binary.LittleEndian.Uint32(block[4:8])
	data := block[blockHeaderSize:]

	if compressedSize == 0 {
		if uint32(len(data)) != uncompressedSize {
			return nil, errBlockTruncated
		}
		return data, nil
	}
	if uint32(len(data)) != compressedSize {
		return nil, errBlockTruncated
	}

	switch compression {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("store: lz4 decompress: %w", err)
		}
		return out[:n], nil
	case CompressionZSTD:
		out, err := zdec.DecodeAll(data, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("store: zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("store: compressed block with compression type %d", compression)
	}
}
