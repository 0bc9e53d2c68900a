// Package config loads scanner settings from the environment.
//
// Variables are read with the ZXING_ prefix, after an optional .env file in
// the working directory has been applied:
//
//	ZXING_MODE        qr | any | multi (default multi)
//	ZXING_BINARIZER   hybrid | histogram | passthrough (default hybrid)
//	ZXING_CHARSET     output character set (default UTF-8)
//	ZXING_LOG_LEVEL   debug | info | warn | error (default info)
//	ZXING_LOG_FORMAT  text | json (default text)
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ericlevine/zxingpipe/binarizer"
	"github.com/ericlevine/zxingpipe/dispatch"
)

// Prefix is prepended to every variable name.
const Prefix = "ZXING_"

// ErrParsing is returned when the environment cannot be parsed.
var ErrParsing = errors.New("config: failed to parse environment")

// LogFormat selects the slog handler.
type LogFormat string

// Log formats.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds scanner settings.
type Config struct {
	Mode          dispatch.DecodeMode `env:"MODE" envDefault:"multi"`
	Binarizer     string              `env:"BINARIZER" envDefault:"hybrid"`
	OutputCharset string              `env:"CHARSET" envDefault:"UTF-8"`
	LogLevel      slog.Level          `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     LogFormat           `env:"LOG_FORMAT" envDefault:"text"`
}

// Load applies ./.env when present and parses the environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles applies the named dotenv files, skipping missing ones, and
// parses the environment.
func LoadFiles(filenames ...string) (Config, error) {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(ErrParsing, fmt.Errorf("load %s: %w", name, err))
		}
	}
	return Parse(env.Options{Prefix: Prefix})
}

// Parse parses the environment with opts, validating the result.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsing, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that env cannot check on its own.
func (c Config) Validate() error {
	if _, err := binarizer.ByName(c.Binarizer); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: log format %q: must be %q or %q", c.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}

// Logger builds a logger writing to w at the configured level and format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
