package numdiff

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/amp-approx/closer"
	"github.com/amp-labs/amp-approx/errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open opens the file at path for comparison. Files ending in .gz, .zst,
// .zstd, .lz4 or .br are decompressed. A UTF-8 byte order mark is removed
// and UTF-16 input with a byte order mark is decoded to UTF-8.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, decoder, err := decompress(strings.ToLower(filepath.Ext(path)), file)
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("%w: %s: %w", errors.ErrUnsupportedFormat, path, err)
	}

	text := transform.NewReader(reader, unicode.BOMOverride(transform.Nop))

	return closer.ReadCloser(text, decoder, file), nil
}

// decompress returns a reader over the decompressed content of r and the
// closer that releases the decompressor, which may be nil.
func decompress(ext string, r io.Reader) (io.Reader, io.Closer, error) {
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return zr, zr, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return zr, closer.CustomCloser(func() error {
			zr.Close()

			return nil
		}), nil
	case ".lz4":
		return lz4.NewReader(r), nil, nil
	case ".br":
		return brotli.NewReader(r), nil, nil
	default:
		return r, nil, nil
	}
}
