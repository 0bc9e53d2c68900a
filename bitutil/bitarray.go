// Package bitutil provides the packed bit containers produced by binarizers.
package bitutil

import (
	"math/bits"
	"strings"
)

// BitArray is a fixed-size row of bits packed into uint32 words.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size, all bits unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// Flip flips bit i.
func (ba *BitArray) Flip(i int) {
	ba.bits[i/32] ^= 1 << uint(i&0x1F)
}

// SetBulk sets the 32 bits starting at bit i, which must be a multiple of 32.
func (ba *BitArray) SetBulk(i int, newBits uint32) {
	ba.bits[i/32] = newBits
}

// Clear clears all bits.
func (ba *BitArray) Clear() {
	clear(ba.bits)
}

// CopyFrom overwrites the receiver with the bits of other. The receiver must
// be at least as large as other; bits past other's size are cleared.
func (ba *BitArray) CopyFrom(other *BitArray) {
	n := copy(ba.bits, other.bits)
	clear(ba.bits[n:])
}

// Words returns the underlying uint32 words, bit i living in word i/32.
func (ba *BitArray) Words() []uint32 {
	return ba.bits
}

// GetNextSet returns the index of the first set bit at or after from, or
// Size() if there is none.
func (ba *BitArray) GetNextSet(from int) int {
	if from >= ba.size {
		return ba.size
	}
	offset := from / 32
	current := ba.bits[offset] & (^uint32(0) << uint(from&0x1F))
	for current == 0 {
		offset++
		if offset == len(ba.bits) {
			return ba.size
		}
		current = ba.bits[offset]
	}
	return min(offset*32+bits.TrailingZeros32(current), ba.size)
}

// Count returns the number of set bits.
func (ba *BitArray) Count() int {
	n := 0
	for _, w := range ba.bits {
		n += bits.OnesCount32(w)
	}
	return n
}

// Clone returns a copy of this BitArray.
func (ba *BitArray) Clone() *BitArray {
	b := make([]uint32, len(ba.bits))
	copy(b, ba.bits)
	return &BitArray{bits: b, size: ba.size}
}

// String returns a string representation using 'X' for set and '.' for unset,
// with a space before every group of eight bits.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
