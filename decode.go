package zxingpipe

// DecodeOptions configures barcode decoding behavior. Readers treat it as an
// opaque bag and ignore fields they do not understand.
type DecodeOptions struct {
	// PureBarcode hints that the image contains only the barcode with minimal
	// border and no rotation.
	PureBarcode bool

	// TryHarder enables spending more time looking for barcodes.
	TryHarder bool

	// PossibleFormats limits which formats to look for. Empty means all.
	PossibleFormats []Format

	// CharacterSet specifies the character set to use when decoding.
	CharacterSet string

	// AlsoInverted enables checking for barcodes on inverted images.
	AlsoInverted bool
}

// DefaultDecodeOptions returns the configuration used by the dispatcher: every
// registered format, no extra effort.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

// Clone returns a deep copy of o. A nil receiver yields the defaults.
func (o *DecodeOptions) Clone() *DecodeOptions {
	if o == nil {
		return DefaultDecodeOptions()
	}
	c := *o
	c.PossibleFormats = append([]Format(nil), o.PossibleFormats...)
	return &c
}

// Reader decodes barcodes from a BinaryBitmap.
type Reader interface {
	// Decode attempts to decode a barcode from the image.
	Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error)

	// Reset resets any internal state.
	Reset()
}

// MultipleBarcodeReader can decode multiple barcodes from a single image.
type MultipleBarcodeReader interface {
	// DecodeMultiple attempts to decode all barcodes in the image.
	DecodeMultiple(image *BinaryBitmap, opts *DecodeOptions) ([]*Result, error)
}
