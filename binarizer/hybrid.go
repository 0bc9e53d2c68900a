package binarizer

import (
	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/bitutil"
)

const (
	blockSizePower   = 3
	blockSize        = 1 << blockSizePower
	blockSizeMask    = blockSize - 1
	minimumDimension = blockSize * 5
	minDynamicRange  = 24
)

// Hybrid thresholds each 8x8 block against the average black point of the
// surrounding 5x5 blocks, which copes with shadows and gradients. Rows are
// still binarized by the global histogram. Images under 40 pixels on a side
// fall back to GlobalHistogram entirely.
type Hybrid struct {
	GlobalHistogram
	matrix *bitutil.BitMatrix
}

// NewHybrid creates a Hybrid binarizer over source.
func NewHybrid(source zxingpipe.LuminanceSource) *Hybrid {
	return &Hybrid{GlobalHistogram: GlobalHistogram{source: source}}
}

// CreateBinarizer returns a fresh Hybrid over source.
func (h *Hybrid) CreateBinarizer(source zxingpipe.LuminanceSource) zxingpipe.Binarizer {
	return NewHybrid(source)
}

// BlackMatrix computes the matrix once and returns the cached copy after.
func (h *Hybrid) BlackMatrix() (*bitutil.BitMatrix, error) {
	if h.matrix != nil {
		return h.matrix, nil
	}
	width, height := h.Width(), h.Height()
	if width < minimumDimension || height < minimumDimension {
		m, err := h.GlobalHistogram.BlackMatrix()
		if err != nil {
			return nil, err
		}
		h.matrix = m
		return m, nil
	}

	luminances := h.source.Matrix()
	g := blockGrid{
		width:     width,
		height:    height,
		subWidth:  blocksFor(width),
		subHeight: blocksFor(height),
	}
	blackPoints := g.blackPoints(luminances)
	matrix := bitutil.NewBitMatrix(width, height)
	g.threshold(luminances, blackPoints, matrix)
	h.matrix = matrix
	return matrix, nil
}

func blocksFor(n int) int {
	blocks := n >> blockSizePower
	if n&blockSizeMask != 0 {
		blocks++
	}
	return blocks
}

// blockGrid describes how an image is tiled into blockSize squares. The last
// row and column of blocks are pulled inwards so they stay inside the image.
type blockGrid struct {
	width, height       int
	subWidth, subHeight int
}

func (g blockGrid) origin(bx, by int) (int, int) {
	return min(bx<<blockSizePower, g.width-blockSize), min(by<<blockSizePower, g.height-blockSize)
}

// blackPoints estimates one black point per block. Low-contrast blocks
// borrow from already computed neighbours so that a flat area inside a
// symbol is not mistaken for background.
func (g blockGrid) blackPoints(luminances []byte) [][]int {
	points := make([][]int, g.subHeight)
	for i := range points {
		points[i] = make([]int, g.subWidth)
	}
	for by := 0; by < g.subHeight; by++ {
		for bx := 0; bx < g.subWidth; bx++ {
			xoffset, yoffset := g.origin(bx, by)
			sum, lo, hi := 0, 0xFF, 0
			for yy, offset := 0, yoffset*g.width+xoffset; yy < blockSize; yy, offset = yy+1, offset+g.width {
				for _, v := range luminances[offset : offset+blockSize] {
					pixel := int(v)
					sum += pixel
					lo = min(lo, pixel)
					hi = max(hi, pixel)
				}
				// Contrast is established; finish the sum without tracking bounds.
				if hi-lo > minDynamicRange {
					for yy, offset = yy+1, offset+g.width; yy < blockSize; yy, offset = yy+1, offset+g.width {
						for _, v := range luminances[offset : offset+blockSize] {
							sum += int(v)
						}
					}
				}
			}

			average := sum >> (blockSizePower * 2)
			if hi-lo <= minDynamicRange {
				average = lo / 2
				if by > 0 && bx > 0 {
					neighbours := (points[by-1][bx] + 2*points[by][bx-1] + points[by-1][bx-1]) / 4
					if lo < neighbours {
						average = neighbours
					}
				}
			}
			points[by][bx] = average
		}
	}
	return points
}

func (g blockGrid) threshold(luminances []byte, points [][]int, matrix *bitutil.BitMatrix) {
	for by := 0; by < g.subHeight; by++ {
		top := clampBlock(by, g.subHeight-3)
		for bx := 0; bx < g.subWidth; bx++ {
			left := clampBlock(bx, g.subWidth-3)
			sum := 0
			for _, row := range points[top-2 : top+3] {
				for _, p := range row[left-2 : left+3] {
					sum += p
				}
			}
			xoffset, yoffset := g.origin(bx, by)
			thresholdBlock(luminances, xoffset, yoffset, sum/25, g.width, matrix)
		}
	}
}

func clampBlock(value, upper int) int {
	return max(2, min(value, upper))
}

func thresholdBlock(luminances []byte, xoffset, yoffset, threshold, stride int, matrix *bitutil.BitMatrix) {
	for y, offset := 0, yoffset*stride+xoffset; y < blockSize; y, offset = y+1, offset+stride {
		for x, v := range luminances[offset : offset+blockSize] {
			if int(v) <= threshold {
				matrix.Set(xoffset+x, yoffset+y)
			}
		}
	}
}
