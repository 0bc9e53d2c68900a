package binarizer

import (
	"fmt"
	"strings"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

// Factory builds a binarizer over a luminance source.
type Factory func(source zxingpipe.LuminanceSource) zxingpipe.Binarizer

// Names accepted by ByName.
const (
	NameHybrid      = "hybrid"
	NameHistogram   = "histogram"
	NamePassthrough = "passthrough"
)

// ByName returns the factory for "hybrid", "histogram" or "passthrough".
func ByName(name string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameHybrid, "":
		return func(s zxingpipe.LuminanceSource) zxingpipe.Binarizer { return NewHybrid(s) }, nil
	case NameHistogram:
		return func(s zxingpipe.LuminanceSource) zxingpipe.Binarizer { return NewGlobalHistogram(s) }, nil
	case NamePassthrough:
		return func(s zxingpipe.LuminanceSource) zxingpipe.Binarizer { return NewPassthrough(s) }, nil
	default:
		return nil, fmt.Errorf("binarizer %q: %w", name, zxingpipe.ErrIllegalArgument)
	}
}
