// Package zxbridge lets gozxing readers run over zxingpipe bitmaps.
package zxbridge

import (
	"errors"
	"fmt"

	"github.com/makiuchi-d/gozxing"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/bitutil"
)

// Bitmap wraps image for a single gozxing Decode call. The black matrix is
// copied out of image on first use, so any in-place change made to image's
// cached matrix before the call (such as an inversion) is what the reader
// sees.
func Bitmap(image *zxingpipe.BinaryBitmap) (*gozxing.BinaryBitmap, error) {
	if image == nil {
		return nil, fmt.Errorf("nil bitmap: %w", zxingpipe.ErrIllegalArgument)
	}
	src := image.Binarizer().LuminanceSource()
	return gozxing.NewBinaryBitmap(&bridgeBinarizer{
		image:  image,
		source: newLuminanceSource(src),
	})
}

// bridgeBinarizer serves rows and the matrix from a zxingpipe.BinaryBitmap
// so both libraries share its cache.
type bridgeBinarizer struct {
	image  *zxingpipe.BinaryBitmap
	source *luminanceSource
	row    *bitutil.BitArray
}

func (b *bridgeBinarizer) GetLuminanceSource() gozxing.LuminanceSource { return b.source }

func (b *bridgeBinarizer) GetWidth() int { return b.image.Width() }

func (b *bridgeBinarizer) GetHeight() int { return b.image.Height() }

func (b *bridgeBinarizer) GetBlackRow(y int, row *gozxing.BitArray) (*gozxing.BitArray, error) {
	width := b.image.Width()
	bits, err := b.image.BlackRow(y, b.row)
	if err != nil {
		return nil, toException(err)
	}
	b.row = bits
	if row == nil || row.GetSize() < width {
		row = gozxing.NewBitArray(width)
	} else {
		row.Clear()
	}
	copyWords(row, bits.Words(), width)
	return row, nil
}

func (b *bridgeBinarizer) GetBlackMatrix() (*gozxing.BitMatrix, error) {
	m, err := b.image.BlackMatrix()
	if err != nil {
		return nil, toException(err)
	}
	out, err := gozxing.NewBitMatrix(m.Width(), m.Height())
	if err != nil {
		return nil, err
	}
	row := gozxing.NewBitArray(m.Width())
	for y := 0; y < m.Height(); y++ {
		copyWords(row, m.RowWords(y), m.Width())
		out.SetRow(y, row)
	}
	return out, nil
}

// copyWords fills dst from packed words, dropping bits at or past width.
// Those can be set by a whole-matrix flip and gozxing scans whole words.
func copyWords(dst *gozxing.BitArray, words []uint32, width int) {
	n := (width + 31) / 32
	for i, w := range words[:n] {
		if i == n-1 && width%32 != 0 {
			w &= 1<<uint(width%32) - 1
		}
		dst.SetBulk(i*32, w)
	}
}

// CreateBinarizer is only reached through gozxing's own cropping, which the
// bridged source does not support; a gozxing hybrid binarizer keeps the
// contract.
func (b *bridgeBinarizer) CreateBinarizer(source gozxing.LuminanceSource) gozxing.Binarizer {
	return gozxing.NewHybridBinarizer(source)
}

// toException converts binarizer failures into the exception types gozxing
// readers switch on.
func toException(err error) error {
	if errors.Is(err, zxingpipe.ErrNotFound) {
		return gozxing.WrapNotFoundException(err)
	}
	return err
}

type luminanceSource struct {
	gozxing.LuminanceSourceBase
	src zxingpipe.LuminanceSource
}

func newLuminanceSource(src zxingpipe.LuminanceSource) *luminanceSource {
	return &luminanceSource{
		LuminanceSourceBase: gozxing.LuminanceSourceBase{Width: src.Width(), Height: src.Height()},
		src:                 src,
	}
}

func (s *luminanceSource) GetRow(y int, row []byte) ([]byte, error) {
	if y < 0 || y >= s.Height {
		return nil, fmt.Errorf("IllegalArgumentException: requested row is outside the image: %d", y)
	}
	return s.src.Row(y, row), nil
}

func (s *luminanceSource) GetMatrix() []byte { return s.src.Matrix() }

func (s *luminanceSource) Invert() gozxing.LuminanceSource {
	return gozxing.LuminanceSourceInvert(s)
}

func (s *luminanceSource) String() string {
	return gozxing.LuminanceSourceString(s)
}
