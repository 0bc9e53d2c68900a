package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
// Each row occupies RowSize() consecutive uint32 words.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new BitMatrix with the given width and height.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from image[y][x].
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	bm := NewBitMatrix(len(image[0]), len(image))
	for y, row := range image {
		for x, set := range row {
			if set {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Flip flips the bit at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// FlipAll flips every bit in the matrix.
func (bm *BitMatrix) FlipAll() {
	for i := range bm.data {
		bm.data[i] = ^bm.data[i]
	}
}

// Clear clears all bits.
func (bm *BitMatrix) Clear() {
	clear(bm.data)
}

// Row returns row y as a BitArray. If row is nil or too small, a new one is
// allocated; otherwise it is overwritten.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	if row == nil || row.Size() < bm.width {
		row = NewBitArray(bm.width)
	} else {
		row.Clear()
	}
	offset := y * bm.rowSize
	for x := 0; x < bm.rowSize; x++ {
		row.SetBulk(x*32, bm.data[offset+x])
	}
	return row
}

// RowWords returns the packed words of row y. The slice aliases the matrix.
func (bm *BitMatrix) RowWords(y int) []uint32 {
	offset := y * bm.rowSize
	return bm.data[offset : offset+bm.rowSize]
}

// SetRow sets row y from the given BitArray.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	copy(bm.data[y*bm.rowSize:(y+1)*bm.rowSize], row.Words())
}

// EnclosingRectangle returns [left, top, width, height] of the smallest
// rectangle containing every set bit, or nil if no bit is set.
func (bm *BitMatrix) EnclosingRectangle() []int {
	left, top := bm.width, bm.height
	right, bottom := -1, -1
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if !bm.Get(x, y) {
				continue
			}
			left = min(left, x)
			right = max(right, x)
			top = min(top, y)
			bottom = max(bottom, y)
		}
	}
	if right < left || bottom < top {
		return nil
	}
	return []int{left, top, right - left + 1, bottom - top + 1}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// RowSize returns the row size in uint32 units.
func (bm *BitMatrix) RowSize() int { return bm.rowSize }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// Equal reports whether two matrices have the same size and bits.
func (bm *BitMatrix) Equal(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
