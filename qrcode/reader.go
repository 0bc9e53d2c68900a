// Package qrcode registers QR code reading with zxingpipe.
package qrcode

import (
	gzmultiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	gzqrcode "github.com/makiuchi-d/gozxing/qrcode"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/internal/zxbridge"
)

func init() {
	zxingpipe.RegisterReader(zxingpipe.FormatQRCode, func(*zxingpipe.DecodeOptions) zxingpipe.Reader {
		return NewReader()
	})
}

// NewReader returns a reader that locates and decodes a single QR code.
func NewReader() zxingpipe.Reader {
	return zxbridge.NewReader(gzqrcode.NewQRCodeReader())
}

// NewMultiReader returns a reader that finds every QR code in the image in
// one pass over its finder patterns, merging structured-append sequences.
func NewMultiReader() zxingpipe.MultipleBarcodeReader {
	return zxbridge.NewMultiReader(gzmultiqr.NewQRCodeMultiReader())
}
