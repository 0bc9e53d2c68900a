package zxbridge

import (
	"github.com/makiuchi-d/gozxing"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

var formats = map[zxingpipe.Format]gozxing.BarcodeFormat{
	zxingpipe.FormatQRCode:     gozxing.BarcodeFormat_QR_CODE,
	zxingpipe.FormatDataMatrix: gozxing.BarcodeFormat_DATA_MATRIX,
	zxingpipe.FormatAztec:      gozxing.BarcodeFormat_AZTEC,
	zxingpipe.FormatCode128:    gozxing.BarcodeFormat_CODE_128,
	zxingpipe.FormatCode39:     gozxing.BarcodeFormat_CODE_39,
	zxingpipe.FormatCode93:     gozxing.BarcodeFormat_CODE_93,
	zxingpipe.FormatEAN13:      gozxing.BarcodeFormat_EAN_13,
	zxingpipe.FormatEAN8:       gozxing.BarcodeFormat_EAN_8,
	zxingpipe.FormatUPCA:       gozxing.BarcodeFormat_UPC_A,
	zxingpipe.FormatUPCE:       gozxing.BarcodeFormat_UPC_E,
	zxingpipe.FormatITF:        gozxing.BarcodeFormat_ITF,
	zxingpipe.FormatCodabar:    gozxing.BarcodeFormat_CODABAR,
}

// ToBarcodeFormat returns the gozxing format for f.
func ToBarcodeFormat(f zxingpipe.Format) (gozxing.BarcodeFormat, bool) {
	bf, ok := formats[f]
	return bf, ok
}

// FromBarcodeFormat returns the zxingpipe format for bf, or FormatUnknown.
func FromBarcodeFormat(bf gozxing.BarcodeFormat) zxingpipe.Format {
	for f, g := range formats {
		if g == bf {
			return f
		}
	}
	return zxingpipe.FormatUnknown
}
