// Package aztec registers Aztec reading with zxingpipe.
package aztec

import (
	gzaztec "github.com/makiuchi-d/gozxing/aztec"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/internal/zxbridge"
)

func init() {
	zxingpipe.RegisterReader(zxingpipe.FormatAztec, func(*zxingpipe.DecodeOptions) zxingpipe.Reader {
		return NewReader()
	})
}

// NewReader returns an Aztec reader.
func NewReader() zxingpipe.Reader {
	return zxbridge.NewReader(gzaztec.NewAztecReader())
}
