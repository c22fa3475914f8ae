package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/cityread/article-screen/internal/assets"
	"github.com/cityread/article-screen/internal/model"
)

// Renderer turns a model tree into Fyne canvas objects. It keeps handles to
// the objects tests and callers need to reach after rendering.
type Renderer struct {
	dark bool

	navItems []*NavItem
	navBars  []fyne.CanvasObject
	texts    []*textBlock
	covers   []*CoverImage
	boxes    map[*canvas.Rectangle]model.Box
}

// NewRenderer creates a renderer for the light or dark scheme
func NewRenderer(dark bool) *Renderer {
	return &Renderer{
		dark:  dark,
		boxes: make(map[*canvas.Rectangle]model.Box),
	}
}

// Render builds the canvas object for a node
func (r *Renderer) Render(node model.Node) fyne.CanvasObject {
	return r.render(node, false)
}

// NavItems returns the rendered navigation items in bar order
func (r *Renderer) NavItems() []*NavItem {
	return r.navItems
}

// NavBars returns the rendered navigation bars
func (r *Renderer) NavBars() []fyne.CanvasObject {
	return r.navBars
}

// Texts returns the literal text of every rendered text block in tree order
func (r *Renderer) Texts() []string {
	out := make([]string, len(r.texts))
	for i, t := range r.texts {
		out[i] = t.Text()
	}
	return out
}

// CoverImages returns the rendered crop-to-fill images
func (r *Renderer) CoverImages() []*CoverImage {
	return r.covers
}

// FixedBoxes returns the rendered fixed-size boxes with their records
func (r *Renderer) FixedBoxes() map[*canvas.Rectangle]model.Box {
	return r.boxes
}

func (r *Renderer) render(node model.Node, wrap bool) fyne.CanvasObject {
	switch n := node.(type) {
	case model.Text:
		t := newTextBlock(n, r.dark, wrap)
		r.texts = append(r.texts, t)
		return t
	case model.Image:
		if n.Scale == model.ScaleFit {
			img := canvas.NewImageFromImage(assets.Image(n.Resource))
			img.FillMode = canvas.ImageFillContain
			return img
		}
		cover := NewCoverImage(assets.Image(n.Resource), n.Description)
		r.covers = append(r.covers, cover)
		return cover
	case model.Icon:
		return glyphImage(n.Glyph, n.Tint, n.Size)
	case model.Spacer:
		return fixedSpacer(n.Width, n.Height)
	case model.Box:
		return r.renderBox(n)
	case model.Row:
		return container.New(rowLayout{}, r.renderAll(n.Children, false)...)
	case model.Column:
		return container.New(&columnLayout{padding: n.Padding}, r.renderAll(n.Children, true)...)
	case model.Stack:
		objects := make([]fyne.CanvasObject, len(n.Layers))
		for i, layer := range n.Layers {
			objects[i] = r.render(layer.Node, false)
		}
		return container.New(&overlayLayout{layers: n.Layers}, objects...)
	case model.NavBar:
		return r.renderNavBar(n)
	case *model.NavBar:
		return r.renderNavBar(*n)
	case model.Scaffold:
		return r.renderScaffold(n)
	case nil:
		return fixedSpacer(0, 0)
	default:
		log.Printf("Warning: no renderer for node kind %s", node.Kind())
		return canvas.NewText(fmt.Sprintf("<%s>", node.Kind()), theme.Color(theme.ColorNameForeground))
	}
}

func (r *Renderer) renderAll(nodes []model.Node, wrap bool) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(nodes))
	for i, n := range nodes {
		objects[i] = r.render(n, wrap)
	}
	return objects
}

func (r *Renderer) renderBox(n model.Box) fyne.CanvasObject {
	rect := canvas.NewRectangle(n.Background)
	rect.CornerRadius = n.CornerRadius
	rect.SetMinSize(fyne.NewSize(n.Width, n.Height))

	if n.Child == nil {
		r.boxes[rect] = n
		return rect
	}

	// Box content never wraps; the box sizes to it.
	child := r.render(n.Child, false)
	return container.NewStack(rect, container.New(&paddedLayout{padding: n.Padding}, child))
}

func (r *Renderer) renderNavBar(n model.NavBar) fyne.CanvasObject {
	bar, items := newNavBar(n)
	r.navItems = append(r.navItems, items...)
	r.navBars = append(r.navBars, bar)
	return bar
}

func (r *Renderer) renderScaffold(n model.Scaffold) fyne.CanvasObject {
	content := r.render(n.Content, false)

	var bottom fyne.CanvasObject
	if n.BottomBar != nil {
		bottom = r.renderNavBar(*n.BottomBar)
	}

	bg := canvas.NewRectangle(n.Background)
	if bottom == nil {
		return container.NewStack(bg, content)
	}
	return container.NewStack(bg, container.New(dockLayout{}, content, bottom))
}
