package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Image renders d as a max-normalized grayscale image: the largest rate
// maps to white, zero to black. Returns ErrNoRates when d has no
// positive entry, since there is nothing to normalize against.
func Image(d *mat.Dense) (image.Image, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := d.Dims()
	max := mat.Max(d)
	if max <= 0 {
		return nil, ErrNoRates
	}

	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j) / max
			if v < 0 {
				v = 0
			}
			img.SetGray16(j, i, color.Gray16{Y: uint16(v * 0xFFFF)})
		}
	}

	return img, nil
}

// WritePNG renders d with Image and encodes it as PNG to w.
func WritePNG(w io.Writer, d *mat.Dense) error {
	img, err := Image(d)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
