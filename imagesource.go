package zxingpipe

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ericlevine/zxingpipe/bitutil"
)

// WriteLuminance fills dst with the greyscale luminance of img, row-major.
// dst must hold at least width*height bytes of the image bounds. Fully
// transparent pixels are written as white.
//
// The conversion is (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit
// components. *image.Gray input is copied as is.
func WriteLuminance(dst []byte, img image.Image) error {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if len(dst) < w*h {
		return fmt.Errorf("luminance buffer holds %d bytes, image needs %d: %w", len(dst), w*h, ErrIllegalArgument)
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			srcOff := (bounds.Min.Y+y-gray.Rect.Min.Y)*gray.Stride + (bounds.Min.X - gray.Rect.Min.X)
			copy(dst[y*w:(y+1)*w], gray.Pix[srcOff:srcOff+w])
		}
		return nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				dst[y*w+x] = 0xFF
				continue
			}
			r8, g8, b8 := r>>8, g>>8, b>>8
			dst[y*w+x] = byte((306*r8 + 601*g8 + 117*b8 + 0x200) >> 10)
		}
	}
	return nil
}

// BitMatrixToImage renders a BitMatrix as a greyscale image, black modules
// as 0 and white modules as 255.
func BitMatrixToImage(matrix *bitutil.BitMatrix) *image.Gray {
	w, h := matrix.Width(), matrix.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
