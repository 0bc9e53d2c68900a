// Package fixture renders barcodes into greyscale buffers for tests.
package fixture

import (
	"fmt"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/skip2/go-qrcode"

	zxingpipe "github.com/ericlevine/zxingpipe"
)

const (
	black = 0x00
	white = 0xFF

	// barHeight is how tall a one-row symbol is drawn, in modules.
	barHeight = 40
	// quietModules of white are left around symbols that come without one.
	quietModules = 8
)

// Canvas is a white greyscale image.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte
}

// NewCanvas returns a white canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = white
	}
	return &Canvas{Width: width, Height: height, Pix: pix}
}

// Fill writes every sample to v.
func (c *Canvas) Fill(v byte) {
	for i := range c.Pix {
		c.Pix[i] = v
	}
}

// Source returns a luminance view over the canvas.
func (c *Canvas) Source() *zxingpipe.BufferSource {
	return zxingpipe.NewBufferSource(c.Pix, c.Width, c.Height)
}

// DrawQR draws content as a medium error-correction QR code whose top-left
// quiet zone corner sits at (x, y). Each module is scale pixels square.
func (c *Canvas) DrawQR(content string, x, y, scale int) error {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode %q: %w", content, err)
	}
	return c.drawModules(code.Bitmap(), x, y, scale, scale)
}

// DrawSymbol draws content in format with its top-left quiet zone corner at
// (x, y). One-row formats are drawn barHeight modules tall.
func (c *Canvas) DrawSymbol(format zxingpipe.Format, content string, x, y, scale int) error {
	modules, err := encode(format, content)
	if err != nil {
		return err
	}
	rowScale := scale
	if len(modules) == 1 {
		rowScale = scale * barHeight
	}
	return c.drawModules(modules, x, y, scale, rowScale)
}

func (c *Canvas) drawModules(modules [][]bool, x, y, colScale, rowScale int) error {
	h := len(modules) * rowScale
	w := len(modules[0]) * colScale
	if x < 0 || y < 0 || x+w > c.Width || y+h > c.Height {
		return fmt.Errorf("symbol of %dx%d at %d,%d does not fit %dx%d", w, h, x, y, c.Width, c.Height)
	}
	for my, row := range modules {
		for mx, on := range row {
			v := byte(white)
			if on {
				v = black
			}
			for dy := 0; dy < rowScale; dy++ {
				offset := (y+my*rowScale+dy)*c.Width + x + mx*colScale
				for dx := 0; dx < colScale; dx++ {
					c.Pix[offset+dx] = v
				}
			}
		}
	}
	return nil
}

// QR renders content on a canvas just large enough for it.
func QR(content string, scale int) (*Canvas, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", content, err)
	}
	size := len(code.Bitmap()) * scale
	c := NewCanvas(size, size)
	return c, c.DrawQR(content, 0, 0, scale)
}

// Symbol renders content in format on a canvas just large enough for it.
func Symbol(format zxingpipe.Format, content string, scale int) (*Canvas, error) {
	modules, err := encode(format, content)
	if err != nil {
		return nil, err
	}
	rowScale := scale
	if len(modules) == 1 {
		rowScale = scale * barHeight
	}
	c := NewCanvas(len(modules[0])*scale, len(modules)*rowScale)
	return c, c.drawModules(modules, 0, 0, scale, rowScale)
}

// encode returns the symbol's modules with a white border on every side.
func encode(format zxingpipe.Format, content string) ([][]bool, error) {
	var (
		writer gozxing.Writer
		bf     gozxing.BarcodeFormat
	)
	switch format {
	case zxingpipe.FormatDataMatrix:
		writer, bf = datamatrix.NewDataMatrixWriter(), gozxing.BarcodeFormat_DATA_MATRIX
	case zxingpipe.FormatCode128:
		writer, bf = oned.NewCode128Writer(), gozxing.BarcodeFormat_CODE_128
	case zxingpipe.FormatCode39:
		writer, bf = oned.NewCode39Writer(), gozxing.BarcodeFormat_CODE_39
	case zxingpipe.FormatEAN13:
		writer, bf = oned.NewEAN13Writer(), gozxing.BarcodeFormat_EAN_13
	case zxingpipe.FormatITF:
		writer, bf = oned.NewITFWriter(), gozxing.BarcodeFormat_ITF
	default:
		return nil, fmt.Errorf("no writer for %s", format)
	}
	m, err := writer.Encode(content, bf, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("encode %q as %s: %w", content, format, err)
	}

	// One-row symbols only get horizontal quiet zones.
	margin, top := quietModules, 0
	w, h := m.GetWidth()+2*margin, m.GetHeight()
	if h > 1 {
		top = margin
		h += 2 * margin
	}
	modules := make([][]bool, h)
	for y := range modules {
		modules[y] = make([]bool, w)
	}
	for y := 0; y < m.GetHeight(); y++ {
		for x := 0; x < m.GetWidth(); x++ {
			modules[top+y][margin+x] = m.Get(x, y)
		}
	}
	return modules, nil
}
