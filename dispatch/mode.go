package dispatch

import (
	"fmt"
	"strings"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

// DecodeMode selects the decode strategy for one call.
type DecodeMode int

const (
	// ModeQR decodes a single QR code.
	ModeQR DecodeMode = iota
	// ModeAny decodes a single symbol of any registered format.
	ModeAny
	// ModeMulti decodes every symbol it can find.
	ModeMulti
)

var modeNames = [...]string{ModeQR: "qr", ModeAny: "any", ModeMulti: "multi"}

func (m DecodeMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("DecodeMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses "qr", "any" or "multi", ignoring case.
func ParseMode(s string) (DecodeMode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return DecodeMode(m), nil
		}
	}
	return 0, fmt.Errorf("decode mode %q: %w", s, zxingpipe.ErrIllegalArgument)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DecodeMode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m DecodeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
