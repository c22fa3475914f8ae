package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/cityread/article-screen/internal/model"
	"github.com/cityread/article-screen/internal/tokens"
)

// textBlock draws a text run, optionally word-wrapped to its width
type textBlock struct {
	widget.BaseWidget

	text       string
	color      color.Color
	size       float32
	lineHeight float32
	style      fyne.TextStyle
	wrap       bool
}

// newTextBlock resolves the node's style token against the scheme mode
func newTextBlock(node model.Text, dark, wrap bool) *textBlock {
	attrs := tokens.Resolve(node.Style, dark)
	t := &textBlock{
		text:       node.Text,
		color:      node.Color,
		size:       attrs.Size,
		lineHeight: attrs.LineHeight,
		style:      fyne.TextStyle{Bold: node.Bold || attrs.Bold},
		wrap:       wrap,
	}
	t.ExtendBaseWidget(t)
	return t
}

// Text returns the literal text
func (t *textBlock) Text() string {
	return t.text
}

func (t *textBlock) measure(s string) fyne.Size {
	return fyne.MeasureText(s, t.size, t.style)
}

func (t *textBlock) lineSpacing() float32 {
	h := t.measure("Mg").Height
	if t.lineHeight > h {
		return t.lineHeight
	}
	return h
}

// lines splits the text greedily into lines no wider than width
func (t *textBlock) lines(width float32) []string {
	if !t.wrap || width <= 0 {
		return []string{t.text}
	}

	words := strings.Fields(t.text)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if t.measure(candidate).Width <= width {
			current = candidate
			continue
		}
		out = append(out, current)
		current = word
	}
	return append(out, current)
}

// HeightForWidth returns the height of the wrapped text at width
func (t *textBlock) HeightForWidth(width float32) float32 {
	return float32(len(t.lines(width))) * t.lineSpacing()
}

// CreateRenderer creates the renderer for the text block
func (t *textBlock) CreateRenderer() fyne.WidgetRenderer {
	r := &textBlockRenderer{block: t}
	r.Layout(t.Size())
	return r
}

type textBlockRenderer struct {
	block *textBlock
	texts []*canvas.Text
}

func (r *textBlockRenderer) Layout(size fyne.Size) {
	lines := r.block.lines(size.Width)
	for len(r.texts) < len(lines) {
		text := canvas.NewText("", r.block.color)
		text.TextSize = r.block.size
		text.TextStyle = r.block.style
		r.texts = append(r.texts, text)
	}
	r.texts = r.texts[:len(lines)]

	spacing := r.block.lineSpacing()
	for i, line := range lines {
		text := r.texts[i]
		text.Text = line
		text.Move(fyne.NewPos(0, float32(i)*spacing))
		text.Resize(fyne.NewSize(size.Width, spacing))
	}
}

// MinSize is one line high. Wrapping blocks only need their widest word.
func (r *textBlockRenderer) MinSize() fyne.Size {
	b := r.block
	if !b.wrap {
		return fyne.NewSize(b.measure(b.text).Width, b.lineSpacing())
	}

	var w float32
	for _, word := range strings.Fields(b.text) {
		if ww := b.measure(word).Width; ww > w {
			w = ww
		}
	}
	return fyne.NewSize(w, b.lineSpacing())
}

func (r *textBlockRenderer) Refresh() {
	r.Layout(r.block.Size())
	for _, text := range r.texts {
		text.Refresh()
	}
}

func (r *textBlockRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(r.texts))
	for i, text := range r.texts {
		objects[i] = text
	}
	return objects
}

func (r *textBlockRenderer) Destroy() {}
