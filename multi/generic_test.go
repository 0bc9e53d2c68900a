package multi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/binarizer"
)

const squareSize = 10

// squareReader "decodes" the first non-zero square it meets scanning in
// row-major order. The sample value names the symbol.
type squareReader struct {
	calls int
	err   error
}

func (r *squareReader) Decode(image *zxingpipe.BinaryBitmap, _ *zxingpipe.DecodeOptions) (*zxingpipe.Result, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	src := image.Binarizer().LuminanceSource()
	pix := src.Matrix()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if v := pix[y*src.Width()+x]; v != 0 {
				points := []zxingpipe.ResultPoint{
					{X: float64(x), Y: float64(y)},
					{X: float64(x + squareSize - 1), Y: float64(y + squareSize - 1)},
				}
				return zxingpipe.NewResult(string(rune('A'+v-1)), nil, points, zxingpipe.FormatQRCode), nil
			}
		}
	}
	return nil, zxingpipe.ErrNotFound
}

func (r *squareReader) Reset() {}

func canvas(t *testing.T, width, height int, squares map[[2]int]byte) *zxingpipe.BinaryBitmap {
	t.Helper()
	buf, err := zxingpipe.NewPixelBuffer(width, height)
	require.NoError(t, err)
	pix := buf.Pix()
	for at, v := range squares {
		for y := at[1]; y < at[1]+squareSize; y++ {
			for x := at[0]; x < at[0]+squareSize; x++ {
				pix[y*width+x] = v
			}
		}
	}
	bitmap, err := zxingpipe.NewBinaryBitmap(binarizer.NewPassthrough(buf.Source()))
	require.NoError(t, err)
	return bitmap
}

func TestDecodeMultipleFindsSeparatedSymbols(t *testing.T) {
	image := canvas(t, 400, 300, map[[2]int]byte{
		{20, 20}:   1,
		{300, 200}: 2,
	})
	reader := NewGenericMultipleBarcodeReader(&squareReader{})

	results, err := reader.DecodeMultiple(image, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Text)
	assert.Equal(t, "B", results[1].Text)
	assert.Equal(t, zxingpipe.ResultPoint{X: 300, Y: 200}, results[1].Points[0],
		"points are reported in full-image coordinates")
}

func TestDecodeMultipleDeduplicatesByText(t *testing.T) {
	image := canvas(t, 400, 300, map[[2]int]byte{
		{20, 20}:   1,
		{300, 200}: 1,
	})
	results, err := NewGenericMultipleBarcodeReader(&squareReader{}).DecodeMultiple(image, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Text)
}

func TestDecodeMultipleNothingFound(t *testing.T) {
	image := canvas(t, 200, 200, nil)
	results, err := NewGenericMultipleBarcodeReader(&squareReader{}).DecodeMultiple(image, nil)
	assert.ErrorIs(t, err, zxingpipe.ErrNotFound)
	assert.Empty(t, results)
}

func TestDecodeMultipleReturnsDecoderFailure(t *testing.T) {
	image := canvas(t, 200, 200, nil)
	boom := errors.New("boom")
	reader := &squareReader{err: boom}

	_, err := NewGenericMultipleBarcodeReader(reader).DecodeMultiple(image, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, reader.calls)
}

func TestDecodeMultipleSmallImageDoesNotRecurse(t *testing.T) {
	image := canvas(t, 60, 60, map[[2]int]byte{{25, 25}: 3})
	reader := &squareReader{}

	results, err := NewGenericMultipleBarcodeReader(reader).DecodeMultiple(image, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "C", results[0].Text)
	assert.Equal(t, 1, reader.calls)
}

// cropFailReader decodes the full image with squareReader and fails on
// every smaller region.
type cropFailReader struct {
	squareReader
	width int
	err   error
}

func (r *cropFailReader) Decode(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) (*zxingpipe.Result, error) {
	if image.Width() < r.width {
		r.calls++
		return nil, r.err
	}
	return r.squareReader.Decode(image, opts)
}

func TestDecodeMultipleSubRegionFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want zxingpipe.ErrorKind
	}{
		{"decode", zxingpipe.ErrDecode, zxingpipe.KindDecode},
		{"illegal argument", zxingpipe.ErrIllegalArgument, zxingpipe.KindIllegalArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := canvas(t, 400, 300, map[[2]int]byte{{150, 20}: 1})
			reader := &cropFailReader{width: 400, err: tt.err}

			results, err := NewGenericMultipleBarcodeReader(reader).DecodeMultiple(image, nil)
			assert.Equal(t, tt.want, zxingpipe.Classify(err))
			assert.Nil(t, results)
		})
	}
}

func TestDecodeMultipleSubRegionNotFoundKeepsResults(t *testing.T) {
	image := canvas(t, 400, 300, map[[2]int]byte{{150, 20}: 1})
	reader := &cropFailReader{width: 400, err: zxingpipe.ErrChecksum}

	results, err := NewGenericMultipleBarcodeReader(reader).DecodeMultiple(image, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Text)
	assert.Positive(t, reader.calls)
}
