package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
)

// CoverRect returns the largest centered region of src with the aspect ratio
// of a w×h viewport. Scaling that region to the viewport fills it completely.
func CoverRect(src image.Rectangle, w, h int) image.Rectangle {
	srcW, srcH := src.Dx(), src.Dy()
	if w <= 0 || h <= 0 || srcW <= 0 || srcH <= 0 {
		return src
	}

	// Source is wider than the viewport: crop the sides.
	if srcW*h > srcH*w {
		cropW := srcH * w / h
		if cropW < 1 {
			cropW = 1
		}
		x0 := src.Min.X + (srcW-cropW)/2
		return image.Rect(x0, src.Min.Y, x0+cropW, src.Max.Y)
	}

	cropH := srcW * h / w
	if cropH < 1 {
		cropH = 1
	}
	y0 := src.Min.Y + (srcH-cropH)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+cropH)
}

// coverPixels converts a widget size to the bitmap size it is rendered at,
// keeping the aspect ratio when the longest side is capped.
func coverPixels(size fyne.Size) (int, int) {
	w, h := int(size.Width+0.5), int(size.Height+0.5)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w > MaxCoverPixels || h > MaxCoverPixels {
		if w >= h {
			h = h * MaxCoverPixels / w
			w = MaxCoverPixels
		} else {
			w = w * MaxCoverPixels / h
			h = MaxCoverPixels
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// CoverImage draws a bitmap scaled to fill its whole area, cropping the
// overflow and preserving the aspect ratio.
type CoverImage struct {
	widget.BaseWidget

	src         image.Image
	description string
}

// NewCoverImage creates a crop-to-fill image widget
func NewCoverImage(src image.Image, description string) *CoverImage {
	c := &CoverImage{src: src, description: description}
	c.ExtendBaseWidget(c)
	return c
}

// Description returns the alternative text of the image
func (c *CoverImage) Description() string {
	return c.description
}

// MinSize lets the image shrink to nothing; it always takes what it is given.
func (c *CoverImage) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// CreateRenderer creates the renderer for the cover image
func (c *CoverImage) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	return &coverRenderer{cover: c, image: img}
}

type coverRenderer struct {
	cover   *CoverImage
	image   *canvas.Image
	renderW int
	renderH int
}

func (r *coverRenderer) Layout(size fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(size)

	w, h := coverPixels(size)
	if w == 0 || (w == r.renderW && h == r.renderH) {
		return
	}

	src := r.cover.src
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, CoverRect(src.Bounds(), w, h), draw.Src, nil)

	r.renderW, r.renderH = w, h
	r.image.Image = dst
	r.image.Refresh()
}

func (r *coverRenderer) MinSize() fyne.Size {
	return r.cover.MinSize()
}

func (r *coverRenderer) Refresh() {
	r.renderW, r.renderH = 0, 0
	r.Layout(r.cover.Size())
}

func (r *coverRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *coverRenderer) Destroy() {}
