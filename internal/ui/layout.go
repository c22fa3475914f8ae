package ui

import (
	"fyne.io/fyne/v2"

	"github.com/cityread/article-screen/internal/model"
)

// heightForWidther is implemented by objects whose height depends on the
// width they are given (wrapping text).
type heightForWidther interface {
	HeightForWidth(width float32) float32
}

// layoutHeightForWidther is the container-level counterpart, implemented by
// layouts that stack wrapping children.
type layoutHeightForWidther interface {
	HeightForWidth(objects []fyne.CanvasObject, width float32) float32
}

// heightForWidth returns the height obj needs when laid out at width
func heightForWidth(obj fyne.CanvasObject, width float32) float32 {
	switch o := obj.(type) {
	case heightForWidther:
		return o.HeightForWidth(width)
	case *fyne.Container:
		if l, ok := o.Layout.(layoutHeightForWidther); ok {
			return l.HeightForWidth(o.Objects, width)
		}
	}
	return obj.MinSize().Height
}

// overlayLayout draws every object in the same area, each placed by its own
// alignment and padding. Objects and layers are matched by index.
type overlayLayout struct {
	layers []model.Layer
}

func (l *overlayLayout) layer(i int) model.Layer {
	if i < len(l.layers) {
		return l.layers[i]
	}
	return model.Layer{Align: model.AlignFill}
}

// Layout positions each object according to its layer
func (l *overlayLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for i, obj := range objects {
		layer := l.layer(i)
		pad := layer.Padding
		innerW := size.Width - pad.Left - pad.Right
		innerH := size.Height - pad.Top - pad.Bottom

		switch layer.Align {
		case model.AlignTopCenter:
			m := obj.MinSize()
			obj.Resize(m)
			obj.Move(fyne.NewPos(pad.Left+(innerW-m.Width)/2, pad.Top))
		case model.AlignBottomStart:
			h := heightForWidth(obj, innerW)
			obj.Resize(fyne.NewSize(innerW, h))
			obj.Move(fyne.NewPos(pad.Left, size.Height-pad.Bottom-h))
		default:
			obj.Resize(fyne.NewSize(innerW, innerH))
			obj.Move(fyne.NewPos(pad.Left, pad.Top))
		}
	}
}

// MinSize is the largest padded minimum of the layers
func (l *overlayLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for i, obj := range objects {
		pad := l.layer(i).Padding
		m := obj.MinSize().Add(fyne.NewSize(pad.Left+pad.Right, pad.Top+pad.Bottom))
		minSize = minSize.Max(m)
	}
	return minSize
}

// columnLayout stacks objects vertically with no gaps, start-aligned. Objects
// that wrap take the full width; everything else keeps its minimum width.
type columnLayout struct {
	padding model.Insets
}

// Layout positions the objects top to bottom
func (l *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	innerW := size.Width - l.padding.Left - l.padding.Right
	y := l.padding.Top
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		w := obj.MinSize().Width
		if _, ok := obj.(heightForWidther); ok {
			w = innerW
		}
		if w > innerW {
			w = innerW
		}
		h := heightForWidth(obj, w)
		obj.Resize(fyne.NewSize(w, h))
		obj.Move(fyne.NewPos(l.padding.Left, y))
		y += h
	}
}

// MinSize is the widest child by the summed heights, plus padding
func (l *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		m := obj.MinSize()
		if m.Width > w {
			w = m.Width
		}
		h += m.Height
	}
	return fyne.NewSize(w+l.padding.Left+l.padding.Right, h+l.padding.Top+l.padding.Bottom)
}

// HeightForWidth reports the column height once wrapping children are
// given the available width.
func (l *columnLayout) HeightForWidth(objects []fyne.CanvasObject, width float32) float32 {
	innerW := width - l.padding.Left - l.padding.Right
	h := l.padding.Top + l.padding.Bottom
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		w := obj.MinSize().Width
		if _, ok := obj.(heightForWidther); ok || w > innerW {
			w = innerW
		}
		h += heightForWidth(obj, w)
	}
	return h
}

// rowLayout places objects left to right with no gaps, centered vertically
type rowLayout struct{}

// Layout positions the objects left to right
func (rowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var x float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		m := obj.MinSize()
		obj.Resize(m)
		obj.Move(fyne.NewPos(x, (size.Height-m.Height)/2))
		x += m.Width
	}
}

// MinSize is the summed widths by the tallest child
func (rowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		m := obj.MinSize()
		w += m.Width
		if m.Height > h {
			h = m.Height
		}
	}
	return fyne.NewSize(w, h)
}

// paddedLayout insets a single child by fixed padding
type paddedLayout struct {
	padding model.Insets
}

// Layout insets every object by the padding
func (l *paddedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(l.padding.Left, l.padding.Top)
	inner := fyne.NewSize(size.Width-l.padding.Left-l.padding.Right, size.Height-l.padding.Top-l.padding.Bottom)
	for _, obj := range objects {
		obj.Resize(inner)
		obj.Move(pos)
	}
}

// MinSize is the largest child minimum plus padding
func (l *paddedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize.Add(fyne.NewSize(l.padding.Left+l.padding.Right, l.padding.Top+l.padding.Bottom))
}

// dockLayout fills the area with the first object and docks the last one to
// the bottom edge at its minimum height, with no gap between them.
type dockLayout struct{}

// Layout places the content above the docked bar
func (dockLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	var barH float32
	if len(objects) > 1 {
		bar := objects[len(objects)-1]
		barH = bar.MinSize().Height
		bar.Resize(fyne.NewSize(size.Width, barH))
		bar.Move(fyne.NewPos(0, size.Height-barH))
	}
	content := objects[0]
	content.Resize(fyne.NewSize(size.Width, size.Height-barH))
	content.Move(fyne.NewPos(0, 0))
}

// MinSize is the wider of the two by their summed heights
func (dockLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, obj := range objects {
		m := obj.MinSize()
		if m.Width > w {
			w = m.Width
		}
		h += m.Height
	}
	return fyne.NewSize(w, h)
}
