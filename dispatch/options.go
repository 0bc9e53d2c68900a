package dispatch

import (
	"log/slog"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/binarizer"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBinarizer replaces the hybrid binarizer used for every decode.
func WithBinarizer(f binarizer.Factory) Option {
	return func(s *Session) {
		if f != nil {
			s.binarizer = f
		}
	}
}

// WithStrategy replaces the strategy run for mode.
func WithStrategy(mode DecodeMode, strategy Strategy) Option {
	return func(s *Session) {
		if strategy != nil {
			s.strategies[mode] = strategy
		}
	}
}

// WithDecodeOptions replaces the default decode options.
func WithDecodeOptions(opts *zxingpipe.DecodeOptions) Option {
	return func(s *Session) {
		s.opts = opts.Clone()
	}
}
