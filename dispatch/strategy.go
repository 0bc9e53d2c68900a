package dispatch

import (
	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/multi"

	// Register the formats the strategies draw on.
	_ "github.com/ericlevine/zxingpipe/aztec"
	_ "github.com/ericlevine/zxingpipe/datamatrix"
	_ "github.com/ericlevine/zxingpipe/oned"
	_ "github.com/ericlevine/zxingpipe/qrcode"
)

// Strategy runs one decode attempt over image.
type Strategy func(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error)

// DecodeQR finds a single QR code with the registered QR reader.
func DecodeQR(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	reader, err := zxingpipe.NewReader(zxingpipe.FormatQRCode, opts)
	if err != nil {
		return nil, err
	}
	return single(reader, image, opts)
}

// DecodeAny finds a single symbol of any registered format.
func DecodeAny(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	return single(zxingpipe.NewMultiFormatReader(), image, opts)
}

// DecodeMulti finds every symbol of any registered format, in discovery
// order.
func DecodeMulti(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	reader := multi.NewGenericMultipleBarcodeReader(zxingpipe.NewMultiFormatReader())
	return reader.DecodeMultiple(image, opts)
}

func single(reader zxingpipe.Reader, image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
	result, err := reader.Decode(image, opts)
	if err != nil {
		return nil, err
	}
	return []*zxingpipe.Result{result}, nil
}

func defaultStrategies() map[DecodeMode]Strategy {
	return map[DecodeMode]Strategy{
		ModeQR:    DecodeQR,
		ModeAny:   DecodeAny,
		ModeMulti: DecodeMulti,
	}
}
