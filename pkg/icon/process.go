package icon

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultInset is the padding added on every side of a resolved bitmap.
	DefaultInset = 30
	// DefaultCornerRadius is applied to the icon container.
	DefaultCornerRadius = 10.0
	// DefaultSize is the target edge length when none is given.
	DefaultSize = 128
)

// Fit scales img to fit within a size x size box, preserving aspect ratio.
// An image whose longer edge already equals size is returned unchanged.
func Fit(img image.Image, size int) image.Image {
	if img == nil || size <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}
	if max(w, h) == size {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = size
		nh = max(1, h*size/w)
	} else {
		nh = size
		nw = max(1, w*size/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Pad returns a copy of img with a transparent border of inset pixels on each side.
func Pad(img image.Image, inset int) image.Image {
	if img == nil {
		return nil
	}
	if inset < 0 {
		inset = 0
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*inset, b.Dy()+2*inset))
	draw.Draw(dst, image.Rect(inset, inset, inset+b.Dx(), inset+b.Dy()), img, b.Min, draw.Src)
	return dst
}
