package binarizer

import (
	"fmt"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/bitutil"
)

// Passthrough treats the luminance samples as already binarized: any non-zero
// sample is a black module. Hosts that threshold on their side use it to skip
// a second pass.
type Passthrough struct {
	source     zxingpipe.LuminanceSource
	luminances []byte
}

// NewPassthrough creates a Passthrough binarizer over source.
func NewPassthrough(source zxingpipe.LuminanceSource) *Passthrough {
	return &Passthrough{source: source}
}

// LuminanceSource returns the underlying source.
func (p *Passthrough) LuminanceSource() zxingpipe.LuminanceSource { return p.source }

// Width returns the image width.
func (p *Passthrough) Width() int { return p.source.Width() }

// Height returns the image height.
func (p *Passthrough) Height() int { return p.source.Height() }

// CreateBinarizer returns a fresh Passthrough over source.
func (p *Passthrough) CreateBinarizer(source zxingpipe.LuminanceSource) zxingpipe.Binarizer {
	return NewPassthrough(source)
}

// BlackRow returns row y with bit x set iff sample x is non-zero. A reused
// row is cleared first.
func (p *Passthrough) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := p.source.Width()
	row = prepareRow(row, width)
	p.luminances = growScratch(p.luminances, width)
	samples := p.source.Row(y, p.luminances)
	if samples == nil {
		return nil, fmt.Errorf("row %d of %d: %w", y, p.source.Height(), zxingpipe.ErrIllegalArgument)
	}
	for x := 0; x < width; x++ {
		if samples[x] != 0 {
			row.Set(x)
		}
	}
	return row, nil
}

// BlackMatrix returns a new matrix on every call.
func (p *Passthrough) BlackMatrix() (*bitutil.BitMatrix, error) {
	width := p.source.Width()
	height := p.source.Height()
	matrix := bitutil.NewBitMatrix(width, height)
	samples := p.source.Matrix()
	for y := 0; y < height; y++ {
		offset := y * width
		for x, v := range samples[offset : offset+width] {
			if v != 0 {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}

// prepareRow hands back row cleared when it can hold width bits, else a new
// array.
func prepareRow(row *bitutil.BitArray, width int) *bitutil.BitArray {
	if row == nil || row.Size() < width {
		return bitutil.NewBitArray(width)
	}
	row.Clear()
	return row
}

// growScratch never shrinks.
func growScratch(buf []byte, n int) []byte {
	if len(buf) < n {
		return make([]byte, n)
	}
	return buf
}
