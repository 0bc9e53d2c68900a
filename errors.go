package zxingpipe

import "errors"

var (
	// ErrNotFound is returned when a barcode is not found in the image.
	ErrNotFound = errors.New("barcode not found")

	// ErrChecksum is returned when a barcode's checksum does not match.
	ErrChecksum = errors.New("checksum error")

	// ErrFormat is returned when a barcode cannot be decoded due to format issues.
	ErrFormat = errors.New("format error")

	// ErrIllegalArgument is returned when configuration or geometry handed to
	// the pipeline is invalid for the requested operation.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrDecode is returned for any other failure raised by a decoder.
	ErrDecode = errors.New("decoding failed")

	// ErrNoSource is returned when decoding is attempted before any pixel
	// buffer has been configured.
	ErrNoSource = errors.New("no pixel buffer configured")

	// ErrPanic wraps a panic recovered from a decoder.
	ErrPanic = errors.New("decoder panic")
)

// ErrorKind is the coarse failure category of a decode attempt.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindReader means no valid symbol was found or the reader rejected it.
	KindReader
	// KindIllegalArgument means invalid configuration or geometry.
	KindIllegalArgument
	// KindDecode means any other failure raised by the decoder.
	KindDecode
	// KindUnclassified means an error from outside the decoder.
	KindUnclassified
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindReader:
		return "reader"
	case KindIllegalArgument:
		return "illegal_argument"
	case KindDecode:
		return "decode"
	default:
		return "unclassified"
	}
}

// Classify maps err to its ErrorKind. The checks run from most to least
// specific: reader failures, illegal arguments, general decoding failures,
// and finally everything else.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrChecksum), errors.Is(err, ErrFormat):
		return KindReader
	case errors.Is(err, ErrIllegalArgument):
		return KindIllegalArgument
	case errors.Is(err, ErrDecode):
		return KindDecode
	default:
		return KindUnclassified
	}
}
