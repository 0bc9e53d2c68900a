package zxingpipe

import "github.com/ericlevine/zxingpipe/bitutil"

// LuminanceSource provides read access to greyscale luminance values for an
// image. Values range from 0 (black) to 255 (white).
type LuminanceSource interface {
	// Row returns row y of luminance data. If row is at least Width() long it
	// may be filled and returned instead of allocating; callers must always use
	// the returned slice.
	Row(y int, row []byte) []byte

	// Matrix returns the row-major luminance matrix. Callers must not modify
	// the result.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// Cropper is implemented by luminance sources that can produce a view of a
// sub-rectangle of themselves.
type Cropper interface {
	Crop(left, top, width, height int) (LuminanceSource, error)
}

// Binarizer converts luminance data to 1-bit black/white data.
type Binarizer interface {
	// BlackRow returns row y of black/white values. If row is non-nil and large
	// enough it is cleared and reused; callers must use the returned array.
	BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix returns the 2D matrix of black/white values.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// LuminanceSource returns the underlying LuminanceSource.
	LuminanceSource() LuminanceSource

	// CreateBinarizer returns a new Binarizer of the same kind bound to source.
	// The new instance shares no scratch state with the receiver.
	CreateBinarizer(source LuminanceSource) Binarizer

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
