package model

import (
	"image/color"

	"github.com/cityread/article-screen/internal/tokens"
)

// Kind identifies the concrete type of a Node
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindIcon     Kind = "icon"
	KindBox      Kind = "box"
	KindRow      Kind = "row"
	KindColumn   Kind = "column"
	KindSpacer   Kind = "spacer"
	KindStack    Kind = "stack"
	KindNavBar   Kind = "navbar"
	KindScaffold Kind = "scaffold"
)

// Node is an element of a view tree
type Node interface {
	Kind() Kind
}

// Align positions a child inside a Stack
type Align int

const (
	// AlignFill stretches the child over the whole stack
	AlignFill Align = iota
	AlignTopCenter
	AlignBottomStart
)

// String returns the align name used by Describe
func (a Align) String() string {
	switch a {
	case AlignFill:
		return "fill"
	case AlignTopCenter:
		return "top-center"
	case AlignBottomStart:
		return "bottom-start"
	default:
		return "unknown"
	}
}

// Scale is an image scaling mode
type Scale int

const (
	// ScaleCrop fills the target completely, preserving aspect ratio and
	// cropping whatever overflows.
	ScaleCrop Scale = iota
	// ScaleFit shows the whole image inside the target, leaving margins
	// where the aspect ratios differ.
	ScaleFit
)

// String returns the scale name used by Describe
func (s Scale) String() string {
	if s == ScaleCrop {
		return "crop"
	}
	return "fit"
}

// Glyph names a built-in icon
type Glyph string

const (
	GlyphList   Glyph = "list"
	GlyphPerson Glyph = "person"
	GlyphClock  Glyph = "clock"
)

// Insets is padding in device-independent units
type Insets struct {
	Top, Bottom, Left, Right float32
}

// Symmetric returns insets with equal left/right and top/bottom values
func Symmetric(horizontal, vertical float32) Insets {
	return Insets{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// Text is a run of literal text drawn with a typography token
type Text struct {
	Text  string
	Style tokens.StyleToken
	Color color.NRGBA
	Bold  bool
}

func (Text) Kind() Kind { return KindText }

// Image is a bundled raster image referenced by logical name
type Image struct {
	Resource    string
	Description string
	Scale       Scale
}

func (Image) Kind() Kind { return KindImage }

// Icon is a square glyph
type Icon struct {
	Glyph       Glyph
	Description string
	Tint        color.NRGBA
	Size        float32
}

func (Icon) Kind() Kind { return KindIcon }

// Box is a filled rounded rectangle with optional content. A zero Width or
// Height means the box takes its size from the content.
type Box struct {
	Background   color.NRGBA
	CornerRadius float32
	Padding      Insets
	Width        float32
	Height       float32
	Child        Node
}

func (Box) Kind() Kind { return KindBox }

// Row lays out children horizontally, centered vertically
type Row struct {
	Children []Node
}

func (Row) Kind() Kind { return KindRow }

// Column lays out children vertically, aligned to the start edge
type Column struct {
	Padding  Insets
	Children []Node
}

func (Column) Kind() Kind { return KindColumn }

// Spacer is fixed empty space
type Spacer struct {
	Width, Height float32
}

func (Spacer) Kind() Kind { return KindSpacer }

// Layer is a Stack child with its alignment and outer padding
type Layer struct {
	Align   Align
	Padding Insets
	Node    Node
}

// Stack draws its layers back to front in the same area
type Stack struct {
	Layers []Layer
}

func (Stack) Kind() Kind { return KindStack }

// NavItem is a bottom navigation destination
type NavItem struct {
	Label       string
	Description string
	Glyph       Glyph
	Selected    bool
	Tint        color.NRGBA
	// OnActivate runs when the item is tapped
	OnActivate func()
}

// NavBar is a bottom navigation bar
type NavBar struct {
	Background color.NRGBA
	Indicator  color.NRGBA
	Items      []NavItem
}

func (NavBar) Kind() Kind { return KindNavBar }

// Scaffold is the screen root: content above a docked bottom bar
type Scaffold struct {
	Background color.NRGBA
	Content    Node
	BottomBar  *NavBar
}

func (Scaffold) Kind() Kind { return KindScaffold }
