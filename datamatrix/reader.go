// Package datamatrix registers Data Matrix reading with zxingpipe.
package datamatrix

import (
	gzdatamatrix "github.com/makiuchi-d/gozxing/datamatrix"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/internal/zxbridge"
)

func init() {
	zxingpipe.RegisterReader(zxingpipe.FormatDataMatrix, func(*zxingpipe.DecodeOptions) zxingpipe.Reader {
		return NewReader()
	})
}

// NewReader returns a Data Matrix reader.
func NewReader() zxingpipe.Reader {
	return zxbridge.NewReader(gzdatamatrix.NewDataMatrixReader())
}
