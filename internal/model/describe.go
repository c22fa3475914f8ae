package model

import (
	"fmt"
	"image/color"
	"strings"
)

// Describe renders the tree as an indented, deterministic text outline.
// Two trees built from the same inputs always describe identically, which
// makes the outline usable as an equality check where reflect.DeepEqual
// can't be (NavItem carries a func).
func Describe(n Node) string {
	var b strings.Builder
	describe(&b, n, 0)
	return b.String()
}

func describe(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	switch v := n.(type) {
	case Text:
		fmt.Fprintf(b, "%stext %q style=%s color=%s bold=%v\n", indent, v.Text, v.Style, hex(v.Color), v.Bold)
	case Image:
		fmt.Fprintf(b, "%simage %q desc=%q scale=%s\n", indent, v.Resource, v.Description, v.Scale)
	case Icon:
		fmt.Fprintf(b, "%sicon %s desc=%q tint=%s size=%g\n", indent, v.Glyph, v.Description, hex(v.Tint), v.Size)
	case Box:
		fmt.Fprintf(b, "%sbox bg=%s radius=%g pad=%s size=%gx%g\n", indent, hex(v.Background), v.CornerRadius, insets(v.Padding), v.Width, v.Height)
		if v.Child != nil {
			describe(b, v.Child, depth+1)
		}
	case Row:
		fmt.Fprintf(b, "%srow\n", indent)
		for _, c := range v.Children {
			describe(b, c, depth+1)
		}
	case Column:
		fmt.Fprintf(b, "%scolumn pad=%s\n", indent, insets(v.Padding))
		for _, c := range v.Children {
			describe(b, c, depth+1)
		}
	case Spacer:
		fmt.Fprintf(b, "%sspacer %gx%g\n", indent, v.Width, v.Height)
	case Stack:
		fmt.Fprintf(b, "%sstack\n", indent)
		for _, l := range v.Layers {
			fmt.Fprintf(b, "%s  layer align=%s pad=%s\n", indent, l.Align, insets(l.Padding))
			describe(b, l.Node, depth+2)
		}
	case NavBar:
		describeNavBar(b, v, depth)
	case *NavBar:
		describeNavBar(b, *v, depth)
	case Scaffold:
		fmt.Fprintf(b, "%sscaffold bg=%s\n", indent, hex(v.Background))
		describe(b, v.Content, depth+1)
		if v.BottomBar != nil {
			describeNavBar(b, *v.BottomBar, depth+1)
		}
	default:
		fmt.Fprintf(b, "%s%s\n", indent, n.Kind())
	}
}

func describeNavBar(b *strings.Builder, v NavBar, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%snavbar bg=%s indicator=%s\n", indent, hex(v.Background), hex(v.Indicator))
	for i, item := range v.Items {
		fmt.Fprintf(b, "%s  item %d %q desc=%q glyph=%s selected=%v tint=%s handler=%v\n",
			indent, i, item.Label, item.Description, item.Glyph, item.Selected, hex(item.Tint), item.OnActivate != nil)
	}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func insets(i Insets) string {
	return fmt.Sprintf("%g,%g,%g,%g", i.Top, i.Right, i.Bottom, i.Left)
}

// Walk visits n and every descendant depth-first, back to front. Returning
// false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch v := n.(type) {
	case Box:
		Walk(v.Child, fn)
	case Row:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case Column:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case Stack:
		for _, l := range v.Layers {
			Walk(l.Node, fn)
		}
	case Scaffold:
		Walk(v.Content, fn)
		if v.BottomBar != nil {
			Walk(*v.BottomBar, fn)
		}
	}
}

// Texts returns the literal strings of every Text node in tree order
func Texts(n Node) []string {
	var out []string
	Walk(n, func(node Node) bool {
		if t, ok := node.(Text); ok {
			out = append(out, t.Text)
		}
		return true
	})
	return out
}
