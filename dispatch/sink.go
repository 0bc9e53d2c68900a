package dispatch

import (
	"log/slog"

	"github.com/ericlevine/zxingpipe/charset"
)

// Sink receives decoded results. index is the 0-based position of the result
// and total the number of results of the decode call; both are final when
// Emit is first called.
type Sink interface {
	Emit(text []byte, length, index, total int)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text []byte, length, index, total int)

// Emit calls f.
func (f SinkFunc) Emit(text []byte, length, index, total int) {
	f(text, length, index, total)
}

// Emission is one recorded Emit call.
type Emission struct {
	Text   string
	Length int
	Index  int
	Total  int
}

// Collector records every emission.
type Collector struct {
	Emissions []Emission
}

// Emit records the call.
func (c *Collector) Emit(text []byte, length, index, total int) {
	c.Emissions = append(c.Emissions, Emission{
		Text:   string(text),
		Length: length,
		Index:  index,
		Total:  total,
	})
}

// Texts returns the emitted texts in order.
func (c *Collector) Texts() []string {
	texts := make([]string, len(c.Emissions))
	for i, e := range c.Emissions {
		texts[i] = e.Text
	}
	return texts
}

// Reset drops recorded emissions.
func (c *Collector) Reset() {
	c.Emissions = c.Emissions[:0]
}

// EncodingSink re-encodes text into a host character set before passing it
// on. Text that cannot be represented is passed on as UTF-8.
type EncodingSink struct {
	next    Sink
	charset string
	logger  *slog.Logger
}

// NewEncodingSink wraps next. An empty or UTF-8 charset passes text through.
func NewEncodingSink(next Sink, charsetName string, logger *slog.Logger) *EncodingSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EncodingSink{next: next, charset: charsetName, logger: logger}
}

// Emit encodes text and forwards it with its encoded length.
func (s *EncodingSink) Emit(text []byte, length, index, total int) {
	if charset.IsUTF8(s.charset) {
		s.next.Emit(text, length, index, total)
		return
	}
	out, err := charset.Encode(string(text), s.charset)
	if err != nil {
		s.logger.Warn("falling back to UTF-8", "charset", s.charset, "index", index, "error", err)
		s.next.Emit(text, length, index, total)
		return
	}
	s.next.Emit(out, len(out), index, total)
}
