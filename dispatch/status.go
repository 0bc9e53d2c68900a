package dispatch

import (
	"fmt"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

// Status is the code a decode entry point returns to its host.
type Status int

// Status codes. -1 is unused.
const (
	StatusOK              Status = 0
	StatusReaderError     Status = -2
	StatusIllegalArgument Status = -3
	StatusDecodeError     Status = -4
	StatusUnclassified    Status = -5
)

// StatusFor maps an error kind to its status code.
func StatusFor(kind zxingpipe.ErrorKind) Status {
	switch kind {
	case zxingpipe.KindNone:
		return StatusOK
	case zxingpipe.KindReader:
		return StatusReaderError
	case zxingpipe.KindIllegalArgument:
		return StatusIllegalArgument
	case zxingpipe.KindDecode:
		return StatusDecodeError
	default:
		return StatusUnclassified
	}
}

// StatusOf classifies err and returns its status code.
func StatusOf(err error) Status {
	return StatusFor(zxingpipe.Classify(err))
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusReaderError:
		return "reader error"
	case StatusIllegalArgument:
		return "illegal argument"
	case StatusDecodeError:
		return "decode error"
	case StatusUnclassified:
		return "unclassified error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
