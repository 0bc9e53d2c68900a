package zxbridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/makiuchi-d/gozxing"
	gzmulti "github.com/makiuchi-d/gozxing/multi"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

// Reader runs a gozxing reader as a zxingpipe.Reader.
type Reader struct {
	reader gozxing.Reader
}

// NewReader wraps r.
func NewReader(r gozxing.Reader) *Reader {
	return &Reader{reader: r}
}

// Decode decodes one symbol from image.
func (r *Reader) Decode(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) (*zxingpipe.Result, error) {
	bmp, err := Bitmap(image)
	if err != nil {
		return nil, err
	}
	result, err := r.reader.Decode(bmp, Hints(opts))
	if err != nil {
		return nil, Error(err)
	}
	return FromResult(result), nil
}

// Reset resets the wrapped reader.
func (r *Reader) Reset() {
	r.reader.Reset()
}

// MultiReader runs a gozxing multiple barcode reader as a
// zxingpipe.MultipleBarcodeReader.
type MultiReader struct {
	reader gzmulti.MultipleBarcodeReader
}

// NewMultiReader wraps r.
func NewMultiReader(r gzmulti.MultipleBarcodeReader) *MultiReader {
	return &MultiReader{reader: r}
}

// DecodeMultiple decodes every symbol the wrapped reader finds.
func (r *MultiReader) DecodeMultiple(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	bmp, err := Bitmap(image)
	if err != nil {
		return nil, err
	}
	results, err := r.reader.DecodeMultiple(bmp, Hints(opts))
	if err != nil {
		return nil, Error(err)
	}
	out := make([]*zxingpipe.Result, len(results))
	for i, res := range results {
		out[i] = FromResult(res)
	}
	return out, nil
}

// Hints translates opts to a gozxing hint map. gozxing tests most hints for
// presence, so false flags are left out.
func Hints(opts *zxingpipe.DecodeOptions) map[gozxing.DecodeHintType]interface{} {
	hints := make(map[gozxing.DecodeHintType]interface{})
	if opts == nil {
		return hints
	}
	if opts.PureBarcode {
		hints[gozxing.DecodeHintType_PURE_BARCODE] = true
	}
	if opts.TryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}
	if opts.AlsoInverted {
		hints[gozxing.DecodeHintType_ALSO_INVERTED] = true
	}
	if opts.CharacterSet != "" {
		hints[gozxing.DecodeHintType_CHARACTER_SET] = opts.CharacterSet
	}
	if len(opts.PossibleFormats) > 0 {
		formats := make([]gozxing.BarcodeFormat, 0, len(opts.PossibleFormats))
		for _, f := range opts.PossibleFormats {
			if bf, ok := ToBarcodeFormat(f); ok {
				formats = append(formats, bf)
			}
		}
		hints[gozxing.DecodeHintType_POSSIBLE_FORMATS] = formats
	}
	return hints
}

// FromResult converts a gozxing result.
func FromResult(r *gozxing.Result) *zxingpipe.Result {
	var points []zxingpipe.ResultPoint
	for _, p := range r.GetResultPoints() {
		if p == nil {
			continue
		}
		points = append(points, zxingpipe.ResultPoint{X: p.GetX(), Y: p.GetY()})
	}
	return zxingpipe.NewResult(r.GetText(), r.GetRawBytes(), points, FromBarcodeFormat(r.GetBarcodeFormat()))
}

// Error maps a gozxing failure onto the zxingpipe sentinels, keeping the
// original message.
func Error(err error) error {
	if err == nil {
		return nil
	}
	var (
		notFound gozxing.NotFoundException
		checksum gozxing.ChecksumException
		format   gozxing.FormatException
		reader   gozxing.ReaderException
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Errorf("%w: %v", zxingpipe.ErrNotFound, err)
	case errors.As(err, &checksum):
		return fmt.Errorf("%w: %v", zxingpipe.ErrChecksum, err)
	case errors.As(err, &format):
		return fmt.Errorf("%w: %v", zxingpipe.ErrFormat, err)
	case errors.As(err, &reader):
		return fmt.Errorf("%w: %v", zxingpipe.ErrNotFound, err)
	case strings.Contains(err.Error(), "IllegalArgumentException"):
		return fmt.Errorf("%w: %v", zxingpipe.ErrIllegalArgument, err)
	case errors.Is(err, zxingpipe.ErrIllegalArgument), errors.Is(err, zxingpipe.ErrNotFound):
		return err
	default:
		return fmt.Errorf("%w: %v", zxingpipe.ErrDecode, err)
	}
}
