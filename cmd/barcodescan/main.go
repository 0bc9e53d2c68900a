// Command barcodescan decodes barcodes in image files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/binarizer"
	"github.com/ericlevine/zxingpipe/dispatch"
	"github.com/ericlevine/zxingpipe/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "barcodescan: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("barcodescan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.TextVar(&cfg.Mode, "mode", cfg.Mode, "decode mode: qr, any or multi")
	fs.StringVar(&cfg.Binarizer, "binarizer", cfg.Binarizer, "binarizer: hybrid, histogram or passthrough")
	fs.StringVar(&cfg.OutputCharset, "charset", cfg.OutputCharset, "character set results are printed in")
	verbose := fs.Bool("v", false, "log every decode attempt")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: barcodescan [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(stderr, "Detect and decode barcodes in image files (PNG, JPEG, GIF, BMP, TIFF, WebP).\n")
		fmt.Fprintf(stderr, "Flags default to the ZXING_* environment variables.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "barcodescan: %v\n", err)
		return 2
	}
	factory, err := binarizer.ByName(cfg.Binarizer)
	if err != nil {
		fmt.Fprintf(stderr, "barcodescan: %v\n", err)
		return 2
	}
	logger := cfg.Logger(stderr)

	exitCode := 0
	for _, path := range fs.Args() {
		prefix := ""
		if fs.NArg() > 1 {
			prefix = path + ": "
		}
		printer := dispatch.SinkFunc(func(text []byte, _, index, total int) {
			fmt.Fprintf(stdout, "%s%d/%d: %s\n", prefix, index+1, total, text)
		})
		session := dispatch.NewSession(
			dispatch.NewEncodingSink(printer, cfg.OutputCharset, logger),
			dispatch.WithLogger(logger.With("file", path)),
			dispatch.WithBinarizer(factory),
		)
		if err := scanFile(session, path, cfg.Mode); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	return exitCode
}

// errNoBarcode is reported when a file decodes cleanly but holds nothing.
var errNoBarcode = errors.New("no barcodes found")

func scanFile(session *dispatch.Session, path string, mode dispatch.DecodeMode) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	pix, err := session.Resize(bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	if err := zxingpipe.WriteLuminance(pix, img); err != nil {
		return err
	}

	switch status := session.Decode(mode); status {
	case dispatch.StatusOK:
		return nil
	case dispatch.StatusReaderError:
		return errNoBarcode
	default:
		return fmt.Errorf("%s (%d)", status, int(status))
	}
}
