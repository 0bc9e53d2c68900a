// Package multi finds several barcodes in one image by decoding, then
// searching the regions around each hit.
package multi

import (
	zxingpipe "github.com/ericlevine/zxingpipe"
)

const (
	minDimensionToRecur = 100
	maxDepth            = 4
)

// GenericMultipleBarcodeReader locates multiple barcodes by repeatedly
// decoding portions of the image. After one barcode is found, the areas
// left, above, right and below its result points are scanned recursively.
// Results come back in discovery order.
type GenericMultipleBarcodeReader struct {
	delegate zxingpipe.Reader
}

// NewGenericMultipleBarcodeReader wraps delegate, which decodes a single
// symbol per call.
func NewGenericMultipleBarcodeReader(delegate zxingpipe.Reader) *GenericMultipleBarcodeReader {
	return &GenericMultipleBarcodeReader{delegate: delegate}
}

// DecodeMultiple returns every distinct symbol it can find, or ErrNotFound.
// A reader failure only ends its branch of the search; any other failure,
// in the full image or a sub-region, fails the whole call.
func (r *GenericMultipleBarcodeReader) DecodeMultiple(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	s := search{delegate: r.delegate, opts: opts, seen: make(map[string]bool)}
	if err := s.run(image, 0, 0, 0); err != nil {
		return nil, err
	}
	if len(s.results) == 0 {
		return nil, zxingpipe.ErrNotFound
	}
	return s.results, nil
}

type search struct {
	delegate zxingpipe.Reader
	opts     *zxingpipe.DecodeOptions
	seen     map[string]bool
	results  []*zxingpipe.Result
}

type region struct {
	left, top, width, height int
}

func (s *search) run(image *zxingpipe.BinaryBitmap, xOffset, yOffset, depth int) error {
	if depth > maxDepth {
		return nil
	}
	result, err := s.delegate.Decode(image, s.opts)
	if err != nil {
		if zxingpipe.Classify(err) == zxingpipe.KindReader {
			return nil
		}
		return err
	}
	if !s.seen[result.Text] {
		s.seen[result.Text] = true
		s.results = append(s.results, result.Translate(xOffset, yOffset))
	}
	if len(result.Points) == 0 {
		return nil
	}

	for _, reg := range surrounding(result.Points, image.Width(), image.Height()) {
		cropped, err := image.Crop(reg.left, reg.top, reg.width, reg.height)
		if err != nil {
			continue
		}
		if err := s.run(cropped, xOffset+reg.left, yOffset+reg.top, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// surrounding lists the regions left of, above, right of and below the
// bounding box of points that are wide enough to hold another symbol.
func surrounding(points []zxingpipe.ResultPoint, width, height int) []region {
	minX, minY := float64(width), float64(height)
	maxX, maxY := 0.0, 0.0
	for _, p := range points {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	var regions []region
	if minX > minDimensionToRecur {
		regions = append(regions, region{0, 0, int(minX), height})
	}
	if minY > minDimensionToRecur {
		regions = append(regions, region{0, 0, width, int(minY)})
	}
	if maxX < float64(width-minDimensionToRecur) {
		regions = append(regions, region{int(maxX), 0, width - int(maxX), height})
	}
	if maxY < float64(height-minDimensionToRecur) {
		regions = append(regions, region{0, int(maxY), width, height - int(maxY)})
	}
	return regions
}
