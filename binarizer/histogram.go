// Package binarizer turns luminance sources into black/white bit data.
package binarizer

import (
	"fmt"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/bitutil"
)

const (
	luminanceBits    = 5
	luminanceShift   = 8 - luminanceBits
	luminanceBuckets = 1 << luminanceBits
)

// GlobalHistogram picks one black point per row (or per image for the
// matrix) from a coarse luminance histogram. It is cheap but struggles with
// uneven lighting; Hybrid is the better default.
type GlobalHistogram struct {
	source     zxingpipe.LuminanceSource
	luminances []byte
	buckets    [luminanceBuckets]int
}

// NewGlobalHistogram creates a GlobalHistogram binarizer over source.
func NewGlobalHistogram(source zxingpipe.LuminanceSource) *GlobalHistogram {
	return &GlobalHistogram{source: source}
}

// LuminanceSource returns the underlying source.
func (g *GlobalHistogram) LuminanceSource() zxingpipe.LuminanceSource { return g.source }

// Width returns the image width.
func (g *GlobalHistogram) Width() int { return g.source.Width() }

// Height returns the image height.
func (g *GlobalHistogram) Height() int { return g.source.Height() }

// CreateBinarizer returns a fresh GlobalHistogram over source.
func (g *GlobalHistogram) CreateBinarizer(source zxingpipe.LuminanceSource) zxingpipe.Binarizer {
	return NewGlobalHistogram(source)
}

// BlackRow binarizes row y against the row's own histogram, sharpening each
// sample against its neighbours.
func (g *GlobalHistogram) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := g.source.Width()
	row = prepareRow(row, width)
	g.reset(width)

	samples := g.source.Row(y, g.luminances)
	if samples == nil {
		return nil, fmt.Errorf("row %d of %d: %w", y, g.source.Height(), zxingpipe.ErrIllegalArgument)
	}
	for _, v := range samples[:width] {
		g.buckets[v>>luminanceShift]++
	}
	blackPoint, err := estimateBlackPoint(g.buckets[:])
	if err != nil {
		return nil, err
	}

	if width < 3 {
		for x, v := range samples[:width] {
			if int(v) < blackPoint {
				row.Set(x)
			}
		}
		return row, nil
	}
	left, center := int(samples[0]), int(samples[1])
	for x := 1; x < width-1; x++ {
		right := int(samples[x+1])
		if (center*4-left-right)/2 < blackPoint {
			row.Set(x)
		}
		left, center = center, right
	}
	return row, nil
}

// BlackMatrix samples four rows through the middle of the image to choose a
// single black point, then thresholds every pixel against it.
func (g *GlobalHistogram) BlackMatrix() (*bitutil.BitMatrix, error) {
	width := g.source.Width()
	height := g.source.Height()
	g.reset(width)

	for i := 1; i < 5; i++ {
		samples := g.source.Row(height*i/5, g.luminances)
		for _, v := range samples[width/5 : width*4/5] {
			g.buckets[v>>luminanceShift]++
		}
	}
	blackPoint, err := estimateBlackPoint(g.buckets[:])
	if err != nil {
		return nil, err
	}

	matrix := bitutil.NewBitMatrix(width, height)
	all := g.source.Matrix()
	for y := 0; y < height; y++ {
		for x, v := range all[y*width : (y+1)*width] {
			if int(v) < blackPoint {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}

func (g *GlobalHistogram) reset(width int) {
	g.luminances = growScratch(g.luminances, width)
	g.buckets = [luminanceBuckets]int{}
}

// estimateBlackPoint finds the two tallest well-separated peaks of the
// histogram and returns the deepest valley between them, scaled back to a
// luminance value.
func estimateBlackPoint(buckets []int) (int, error) {
	numBuckets := len(buckets)
	maxCount, firstPeak := 0, 0
	for x, count := range buckets {
		if count > buckets[firstPeak] {
			firstPeak = x
		}
		maxCount = max(maxCount, count)
	}

	// Favour a second peak that is both tall and far from the first.
	secondPeak, secondScore := 0, 0
	for x, count := range buckets {
		dist := x - firstPeak
		if score := count * dist * dist; score > secondScore {
			secondPeak, secondScore = x, score
		}
	}
	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}
	if secondPeak-firstPeak <= numBuckets/16 {
		return 0, zxingpipe.ErrNotFound
	}

	bestValley, bestScore := secondPeak-1, -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (maxCount - buckets[x])
		if score > bestScore {
			bestValley, bestScore = x, score
		}
	}
	return bestValley << luminanceShift, nil
}
