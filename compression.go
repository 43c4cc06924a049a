package textq

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionType identifies the compression wrapping an input file, if any.
type compressionType int

const (
	// compressionNone represents an uncompressed input
	compressionNone compressionType = iota
	// compressionGZ represents gzip compression
	compressionGZ
	// compressionBZ2 represents bzip2 compression
	compressionBZ2
	// compressionXZ represents xz compression
	compressionXZ
	// compressionZSTD represents zstd compression
	compressionZSTD
)

// extension returns the file extension for the compression type.
func (c compressionType) extension() string {
	switch c {
	case compressionGZ:
		return extGZ
	case compressionBZ2:
		return extBZ2
	case compressionXZ:
		return extXZ
	case compressionZSTD:
		return extZSTD
	default:
		return ""
	}
}

// compressionFromPath detects the compression type from a file path suffix.
func compressionFromPath(path string) compressionType {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, extGZ):
		return compressionGZ
	case strings.HasSuffix(lower, extBZ2):
		return compressionBZ2
	case strings.HasSuffix(lower, extXZ):
		return compressionXZ
	case strings.HasSuffix(lower, extZSTD):
		return compressionZSTD
	default:
		return compressionNone
	}
}

// newDecompressor wraps reader with a decompression reader for the given
// compression type. The returned func releases decompressor resources; the
// underlying reader is not closed.
func newDecompressor(reader io.Reader, c compressionType) (io.Reader, func() error, error) {
	switch c {
	case compressionNone:
		return reader, func() error { return nil }, nil

	case compressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case compressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case compressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case compressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type: %v", c)
	}
}
