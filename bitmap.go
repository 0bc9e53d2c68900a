package zxingpipe

import (
	"fmt"

	"github.com/ericlevine/zxingpipe/bitutil"
)

// BinaryBitmap pairs a Binarizer with a cache of the rows and matrix it has
// already produced. A BinaryBitmap is meant to live for one decode pass.
type BinaryBitmap struct {
	binarizer Binarizer
	matrix    *bitutil.BitMatrix
	rows      []*bitutil.BitArray
}

// NewBinaryBitmap creates a new BinaryBitmap from the given Binarizer.
func NewBinaryBitmap(binarizer Binarizer) (*BinaryBitmap, error) {
	if binarizer == nil {
		return nil, fmt.Errorf("binary bitmap: nil binarizer: %w", ErrIllegalArgument)
	}
	return &BinaryBitmap{binarizer: binarizer}, nil
}

// Binarizer returns the underlying Binarizer.
func (b *BinaryBitmap) Binarizer() Binarizer {
	return b.binarizer
}

// Width returns the width of the bitmap.
func (b *BinaryBitmap) Width() int {
	return b.binarizer.Width()
}

// Height returns the height of the bitmap.
func (b *BinaryBitmap) Height() int {
	return b.binarizer.Height()
}

// BlackRow returns row y of black/white values. The result is written into
// row when it is large enough. Rows are binarized once per bitmap; later
// requests copy the cached bits so callers are free to modify what they get.
func (b *BinaryBitmap) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	if y < 0 || y >= b.Height() {
		return nil, fmt.Errorf("row %d of %d: %w", y, b.Height(), ErrIllegalArgument)
	}
	if b.rows == nil {
		b.rows = make([]*bitutil.BitArray, b.Height())
	}
	if cached := b.rows[y]; cached != nil {
		if row == nil || row.Size() < cached.Size() {
			return cached.Clone(), nil
		}
		row.CopyFrom(cached)
		return row, nil
	}
	row, err := b.binarizer.BlackRow(y, row)
	if err != nil {
		return nil, err
	}
	b.rows[y] = row.Clone()
	return row, nil
}

// BlackMatrix returns the 2D matrix of black/white values, computing it on
// first use.
func (b *BinaryBitmap) BlackMatrix() (*bitutil.BitMatrix, error) {
	if b.matrix != nil {
		return b.matrix, nil
	}
	m, err := b.binarizer.BlackMatrix()
	if err != nil {
		return nil, err
	}
	b.matrix = m
	return m, nil
}

// CropSupported reports whether Crop can succeed on this bitmap.
func (b *BinaryBitmap) CropSupported() bool {
	_, ok := b.binarizer.LuminanceSource().(Cropper)
	return ok
}

// Crop returns a new bitmap over the given sub-rectangle, binarized afresh by
// a binarizer of the same kind.
func (b *BinaryBitmap) Crop(left, top, width, height int) (*BinaryBitmap, error) {
	cropper, ok := b.binarizer.LuminanceSource().(Cropper)
	if !ok {
		return nil, fmt.Errorf("luminance source does not support cropping: %w", ErrIllegalArgument)
	}
	source, err := cropper.Crop(left, top, width, height)
	if err != nil {
		return nil, err
	}
	return NewBinaryBitmap(b.binarizer.CreateBinarizer(source))
}
