// Package dispatch drives decoding over a host-filled pixel buffer and
// reports results to a sink.
//
// A Session owns one live pixel buffer. The host calls Resize, writes
// greyscale samples into the returned slice, then calls one of the decode
// entry points. Each decode binarizes the current buffer, runs one strategy,
// and either emits every result to the sink and returns StatusOK, or emits
// nothing and returns a negative Status naming the failure category.
//
// A Session is not safe for concurrent use.
package dispatch

import (
	"fmt"
	"log/slog"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/binarizer"
)

// Session holds the live pixel buffer and the decode configuration.
type Session struct {
	sink       Sink
	logger     *slog.Logger
	binarizer  binarizer.Factory
	strategies map[DecodeMode]Strategy
	opts       *zxingpipe.DecodeOptions

	buffer *zxingpipe.PixelBuffer
	source *zxingpipe.BufferSource
}

// NewSession creates a session that reports results to sink. A nil sink
// discards results.
func NewSession(sink Sink, opts ...Option) *Session {
	if sink == nil {
		sink = SinkFunc(func([]byte, int, int, int) {})
	}
	s := &Session{
		sink:       sink,
		logger:     slog.New(slog.DiscardHandler),
		strategies: defaultStrategies(),
		opts:       zxingpipe.DefaultDecodeOptions(),
	}
	s.binarizer, _ = binarizer.ByName(binarizer.NameHybrid)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resize replaces the pixel buffer with a zeroed width*height one and
// returns it for the host to fill. The previous buffer is released.
func (s *Session) Resize(width, height int) ([]byte, error) {
	buf, err := zxingpipe.NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	s.buffer = buf
	s.source = buf.Source()
	s.logger.Debug("pixel buffer resized", "width", width, "height", height)
	return buf.Pix(), nil
}

// Pixels returns the live buffer, or nil before the first Resize.
func (s *Session) Pixels() []byte {
	if s.buffer == nil {
		return nil
	}
	return s.buffer.Pix()
}

// Width returns the buffer width, or 0 before the first Resize.
func (s *Session) Width() int {
	if s.buffer == nil {
		return 0
	}
	return s.buffer.Width()
}

// Height returns the buffer height, or 0 before the first Resize.
func (s *Session) Height() int {
	if s.buffer == nil {
		return 0
	}
	return s.buffer.Height()
}

// DecodeQR decodes a single QR code.
func (s *Session) DecodeQR() Status { return s.Decode(ModeQR) }

// DecodeAny decodes a single symbol of any format.
func (s *Session) DecodeAny() Status { return s.Decode(ModeAny) }

// DecodeMulti decodes every symbol in the buffer.
func (s *Session) DecodeMulti() Status { return s.Decode(ModeMulti) }

// Decode runs mode against the current buffer, emits the results and returns
// the status. Results are emitted only when the whole decode succeeded.
func (s *Session) Decode(mode DecodeMode) Status {
	results, err := s.Run(mode)
	status := StatusOf(err)
	if err != nil {
		s.logger.Debug("decode failed",
			"mode", mode,
			"kind", zxingpipe.Classify(err),
			"status", int(status),
			"error", err)
		return status
	}
	s.logger.Debug("decode succeeded", "mode", mode, "results", len(results))
	total := len(results)
	for i, r := range results {
		text := []byte(r.Text)
		s.sink.Emit(text, len(text), i, total)
	}
	return StatusOK
}

// Run runs mode against the current buffer and returns the results without
// emitting them. Panics raised while decoding are returned as ErrPanic.
func (s *Session) Run(mode DecodeMode) (results []*zxingpipe.Result, err error) {
	if s.source == nil {
		return nil, zxingpipe.ErrNoSource
	}
	strategy, ok := s.strategies[mode]
	if !ok {
		return nil, fmt.Errorf("no strategy for %s: %w", mode, zxingpipe.ErrIllegalArgument)
	}
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("%w: %v", zxingpipe.ErrPanic, r)
		}
	}()

	image, err := zxingpipe.NewBinaryBitmap(s.binarizer(s.source))
	if err != nil {
		return nil, err
	}
	return strategy(image, s.opts)
}
