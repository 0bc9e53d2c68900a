// Package zxingpipe turns host-supplied greyscale pixel buffers into binary
// bitmaps and hands them to barcode readers.
package zxingpipe

// Format represents a barcode format.
type Format int

// Formats are ordered by the priority MultiFormatReader gives them.
const (
	FormatQRCode Format = iota
	FormatDataMatrix
	FormatAztec
	FormatCode128
	FormatCode39
	FormatCode93
	FormatEAN13
	FormatEAN8
	FormatUPCA
	FormatUPCE
	FormatITF
	FormatCodabar
	FormatUnknown
)

// String returns the name of the barcode format.
func (f Format) String() string {
	switch f {
	case FormatQRCode:
		return "QR_CODE"
	case FormatDataMatrix:
		return "DATA_MATRIX"
	case FormatAztec:
		return "AZTEC"
	case FormatCode128:
		return "CODE_128"
	case FormatCode39:
		return "CODE_39"
	case FormatCode93:
		return "CODE_93"
	case FormatEAN13:
		return "EAN_13"
	case FormatEAN8:
		return "EAN_8"
	case FormatUPCA:
		return "UPC_A"
	case FormatUPCE:
		return "UPC_E"
	case FormatITF:
		return "ITF"
	case FormatCodabar:
		return "CODABAR"
	default:
		return "UNKNOWN"
	}
}

// ResultPoint is a point of interest reported by a reader, in image
// coordinates.
type ResultPoint struct {
	X, Y float64
}

// Result is a decoded barcode. Only Text is consumed by the dispatcher; the
// rest is carried for callers that want it.
type Result struct {
	Text     string
	RawBytes []byte
	Points   []ResultPoint
	Format   Format
}

// NewResult creates a new Result.
func NewResult(text string, rawBytes []byte, points []ResultPoint, format Format) *Result {
	return &Result{
		Text:     text,
		RawBytes: rawBytes,
		Points:   points,
		Format:   format,
	}
}

// Translate returns a copy of r with every point shifted by (dx, dy).
func (r *Result) Translate(dx, dy int) *Result {
	if len(r.Points) == 0 || (dx == 0 && dy == 0) {
		return r
	}
	points := make([]ResultPoint, len(r.Points))
	for i, p := range r.Points {
		points[i] = ResultPoint{X: p.X + float64(dx), Y: p.Y + float64(dy)}
	}
	return NewResult(r.Text, r.RawBytes, points, r.Format)
}
