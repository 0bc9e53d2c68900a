// Package oned registers the one-dimensional barcode formats with zxingpipe.
package oned

import (
	"github.com/makiuchi-d/gozxing"
	gzoned "github.com/makiuchi-d/gozxing/oned"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/internal/zxbridge"
)

func init() {
	// Every 1D format shares one factory so MultiFormatReader builds a single
	// reader that scans each row once per format family.
	factory := func(opts *zxingpipe.DecodeOptions) zxingpipe.Reader {
		return NewMultiFormatOneDReader(opts)
	}
	for _, f := range []zxingpipe.Format{
		zxingpipe.FormatCode128,
		zxingpipe.FormatCode39,
		zxingpipe.FormatCode93,
		zxingpipe.FormatEAN13,
		zxingpipe.FormatEAN8,
		zxingpipe.FormatUPCA,
		zxingpipe.FormatUPCE,
		zxingpipe.FormatITF,
		zxingpipe.FormatCodabar,
	} {
		zxingpipe.RegisterReader(f, factory)
	}
}

// MultiFormatOneDReader tries each configured 1D reader in turn.
type MultiFormatOneDReader struct {
	readers []gozxing.Reader
}

// NewMultiFormatOneDReader creates a reader for the 1D formats named in
// opts.PossibleFormats, or for all of them when none are named.
func NewMultiFormatOneDReader(opts *zxingpipe.DecodeOptions) *MultiFormatOneDReader {
	hints := zxbridge.Hints(opts)
	var readers []gozxing.Reader

	if opts != nil && len(opts.PossibleFormats) > 0 {
		formats := make(map[zxingpipe.Format]bool)
		for _, f := range opts.PossibleFormats {
			formats[f] = true
		}
		if formats[zxingpipe.FormatEAN13] || formats[zxingpipe.FormatUPCA] ||
			formats[zxingpipe.FormatEAN8] || formats[zxingpipe.FormatUPCE] {
			readers = append(readers, gzoned.NewMultiFormatUPCEANReader(hints))
		}
		if formats[zxingpipe.FormatCode39] {
			readers = append(readers, gzoned.NewCode39Reader())
		}
		if formats[zxingpipe.FormatCode93] {
			readers = append(readers, gzoned.NewCode93Reader())
		}
		if formats[zxingpipe.FormatCode128] {
			readers = append(readers, gzoned.NewCode128Reader())
		}
		if formats[zxingpipe.FormatITF] {
			readers = append(readers, gzoned.NewITFReader())
		}
		if formats[zxingpipe.FormatCodabar] {
			readers = append(readers, gzoned.NewCodaBarReader())
		}
	}

	if len(readers) == 0 {
		readers = []gozxing.Reader{
			gzoned.NewMultiFormatUPCEANReader(hints),
			gzoned.NewCode39Reader(),
			gzoned.NewCodaBarReader(),
			gzoned.NewCode93Reader(),
			gzoned.NewCode128Reader(),
			gzoned.NewITFReader(),
		}
	}
	return &MultiFormatOneDReader{readers: readers}
}

// Decode returns the first symbol any of the readers finds.
func (r *MultiFormatOneDReader) Decode(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) (*zxingpipe.Result, error) {
	bmp, err := zxbridge.Bitmap(image)
	if err != nil {
		return nil, err
	}
	hints := zxbridge.Hints(opts)
	for _, reader := range r.readers {
		result, err := reader.Decode(bmp, hints)
		if err == nil {
			return zxbridge.FromResult(result), nil
		}
		if err = zxbridge.Error(err); zxingpipe.Classify(err) != zxingpipe.KindReader {
			return nil, err
		}
	}
	return nil, zxingpipe.ErrNotFound
}

// Reset resets every reader.
func (r *MultiFormatOneDReader) Reset() {
	for _, reader := range r.readers {
		reader.Reset()
	}
}
