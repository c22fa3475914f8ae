package model

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/cityread/article-screen/internal/tokens"
)

func sampleTree() Node {
	return Scaffold{
		Background: tokens.Black,
		Content: Stack{Layers: []Layer{
			{Align: AlignFill, Node: Image{Resource: "city_image", Description: "Cityscape", Scale: ScaleCrop}},
			{Align: AlignBottomStart, Node: Column{
				Padding: Symmetric(16, 24),
				Children: []Node{
					Box{Background: tokens.ChipGold, CornerRadius: 4, Child: Text{Text: "TECH", Style: tokens.BodySmall}},
					Spacer{Height: 8},
					Row{Children: []Node{Icon{Glyph: GlyphPerson, Size: 16}, Text{Text: "Sarah Chen"}}},
				},
			}},
		}},
		BottomBar: &NavBar{Items: []NavItem{{Label: "NEWS", Selected: true, OnActivate: func() {}}}},
	}
}

func TestDescribe_Deterministic(t *testing.T) {
	first := Describe(sampleTree())
	second := Describe(sampleTree())

	if first != second {
		t.Errorf("Describe should be deterministic:\n%s\nvs\n%s", first, second)
	}
}

func TestDescribe_Content(t *testing.T) {
	out := Describe(sampleTree())

	expected := []string{
		"scaffold bg=#000000FF",
		`image "city_image" desc="Cityscape" scale=crop`,
		"layer align=bottom-start pad=0,0,0,0",
		"column pad=24,16,24,16",
		`text "TECH" style=body-small`,
		"spacer 0x8",
		`item 0 "NEWS"`,
		"selected=true",
		"handler=true",
	}
	for _, fragment := range expected {
		if !strings.Contains(out, fragment) {
			t.Errorf("Describe output missing %q:\n%s", fragment, out)
		}
	}
}

func TestDescribe_DetectsChanges(t *testing.T) {
	base := Describe(Text{Text: "a", Color: color.NRGBA{A: 255}})
	changed := Describe(Text{Text: "a", Color: color.NRGBA{R: 1, A: 255}})

	if base == changed {
		t.Error("Describe should differ when a color differs")
	}
}

func TestDescribe_Nil(t *testing.T) {
	if out := Describe(nil); out != "<nil>\n" {
		t.Errorf("Describe(nil) = %q, expected %q", out, "<nil>\n")
	}
}

func TestTexts(t *testing.T) {
	result := Texts(sampleTree())
	expected := []string{"TECH", "Sarah Chen"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Texts() = %v, expected %v", result, expected)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	var kinds []Kind
	Walk(sampleTree(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindStack
	})

	expected := []Kind{KindScaffold, KindStack, KindNavBar}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("Walk visited %v, expected %v", kinds, expected)
	}
}

func TestAlign_String(t *testing.T) {
	tests := []struct {
		align    Align
		expected string
	}{
		{AlignFill, "fill"},
		{AlignTopCenter, "top-center"},
		{AlignBottomStart, "bottom-start"},
		{Align(42), "unknown"},
	}

	for _, test := range tests {
		if result := test.align.String(); result != test.expected {
			t.Errorf("Align(%d).String() = %s, expected %s", test.align, result, test.expected)
		}
	}
}

func TestSymmetric(t *testing.T) {
	result := Symmetric(12, 4)
	expected := Insets{Top: 4, Bottom: 4, Left: 12, Right: 12}

	if result != expected {
		t.Errorf("Symmetric(12, 4) = %+v, expected %+v", result, expected)
	}
}
