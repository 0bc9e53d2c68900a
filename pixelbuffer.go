package zxingpipe

import "fmt"

// PixelBuffer owns a width*height greyscale byte buffer that a host fills
// before decoding. Samples are stored row-major with no padding.
type PixelBuffer struct {
	width  int
	height int
	pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer of width*height bytes.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("pixel buffer %dx%d: %w", width, height, ErrIllegalArgument)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height),
	}, nil
}

// Pix returns the writable sample buffer.
func (p *PixelBuffer) Pix() []byte { return p.pix }

// Width returns the width of the buffer in pixels.
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the height of the buffer in pixels.
func (p *PixelBuffer) Height() int { return p.height }

// Source returns a LuminanceSource view over the whole buffer. The view reads
// the buffer directly, so writes made after Source is called are visible.
func (p *PixelBuffer) Source() *BufferSource {
	return NewBufferSource(p.pix, p.width, p.height)
}

// BufferSource is a non-owning LuminanceSource over a row-major byte slice.
// It may describe a sub-rectangle of a larger buffer.
type BufferSource struct {
	pix    []byte
	stride int
	left   int
	top    int
	width  int
	height int
}

// NewBufferSource creates a view over pix, which must hold at least
// width*height samples.
func NewBufferSource(pix []byte, width, height int) *BufferSource {
	return &BufferSource{
		pix:    pix,
		stride: width,
		width:  width,
		height: height,
	}
}

// Row copies row y into row, reallocating when it is shorter than the width.
// It returns nil when y is outside the view.
func (s *BufferSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := (s.top+y)*s.stride + s.left
	copy(row, s.pix[offset:offset+s.width])
	return row
}

// Matrix returns the luminance matrix. A view covering its whole buffer
// returns the buffer itself; a cropped view returns a compacted copy.
func (s *BufferSource) Matrix() []byte {
	area := s.width * s.height
	if s.left == 0 && s.top == 0 && s.stride == s.width {
		return s.pix[:area]
	}
	matrix := make([]byte, area)
	for y := 0; y < s.height; y++ {
		offset := (s.top+y)*s.stride + s.left
		copy(matrix[y*s.width:], s.pix[offset:offset+s.width])
	}
	return matrix
}

// Width returns the width of the view.
func (s *BufferSource) Width() int { return s.width }

// Height returns the height of the view.
func (s *BufferSource) Height() int { return s.height }

// Crop returns a view of the given sub-rectangle sharing the same buffer.
func (s *BufferSource) Crop(left, top, width, height int) (LuminanceSource, error) {
	if left < 0 || top < 0 || width < 1 || height < 1 ||
		left+width > s.width || top+height > s.height {
		return nil, fmt.Errorf("crop %d,%d %dx%d of %dx%d: %w",
			left, top, width, height, s.width, s.height, ErrIllegalArgument)
	}
	return &BufferSource{
		pix:    s.pix,
		stride: s.stride,
		left:   s.left + left,
		top:    s.top + top,
		width:  width,
		height: height,
	}, nil
}
