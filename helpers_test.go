package zxingpipe

import (
	"errors"

	"github.com/ericlevine/zxingpipe/bitutil"
)

// thresholdBinarizer marks every sample below 128 black and counts the work
// it is asked to do.
type thresholdBinarizer struct {
	source      LuminanceSource
	rowCalls    int
	matrixCalls int
	err         error
}

func (t *thresholdBinarizer) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	t.rowCalls++
	if t.err != nil {
		return nil, t.err
	}
	lum := t.source.Row(y, nil)
	if row == nil || row.Size() < len(lum) {
		row = bitutil.NewBitArray(len(lum))
	} else {
		row.Clear()
	}
	for x, v := range lum {
		if v < 128 {
			row.Set(x)
		}
	}
	return row, nil
}

func (t *thresholdBinarizer) BlackMatrix() (*bitutil.BitMatrix, error) {
	t.matrixCalls++
	if t.err != nil {
		return nil, t.err
	}
	w, h := t.source.Width(), t.source.Height()
	m := bitutil.NewBitMatrix(w, h)
	lum := t.source.Matrix()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if lum[y*w+x] < 128 {
				m.Set(x, y)
			}
		}
	}
	return m, nil
}

func (t *thresholdBinarizer) LuminanceSource() LuminanceSource { return t.source }

func (t *thresholdBinarizer) CreateBinarizer(source LuminanceSource) Binarizer {
	return &thresholdBinarizer{source: source}
}

func (t *thresholdBinarizer) Width() int  { return t.source.Width() }
func (t *thresholdBinarizer) Height() int { return t.source.Height() }

// plainSource is a LuminanceSource that cannot crop.
type plainSource struct{ src *BufferSource }

func (p plainSource) Row(y int, row []byte) []byte { return p.src.Row(y, row) }
func (p plainSource) Matrix() []byte               { return p.src.Matrix() }
func (p plainSource) Width() int                   { return p.src.Width() }
func (p plainSource) Height() int                  { return p.src.Height() }

var errBoom = errors.New("boom")

// ramp returns a width*height buffer whose sample at (x, y) is y*width+x.
func ramp(width, height int) []byte {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = byte(i)
	}
	return pix
}
