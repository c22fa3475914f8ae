package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/cityread/article-screen/internal/assets"
)

func TestCoverRect(t *testing.T) {
	src := image.Rect(0, 0, 180, 320)

	tests := []struct {
		name     string
		w, h     int
		expected image.Rectangle
	}{
		{"same aspect", 90, 160, image.Rect(0, 0, 180, 320)},
		{"square viewport", 400, 400, image.Rect(0, 70, 180, 250)},
		{"landscape viewport", 1600, 900, image.Rect(0, 109, 180, 210)},
		{"very tall viewport", 100, 1000, image.Rect(74, 0, 106, 320)},
		{"empty viewport", 0, 0, src},
	}

	for _, tc := range tests {
		result := CoverRect(src, tc.w, tc.h)
		if result != tc.expected {
			t.Errorf("%s: CoverRect(%v, %d, %d) = %v, expected %v", tc.name, src, tc.w, tc.h, result, tc.expected)
		}
	}
}

func TestCoverRect_AspectAndBounds(t *testing.T) {
	sources := []image.Rectangle{
		image.Rect(0, 0, 180, 320),
		image.Rect(10, 20, 1930, 1100),
		image.Rect(0, 0, 500, 500),
	}
	viewports := [][2]int{{412, 915}, {915, 412}, {300, 300}, {1, 2000}, {2000, 1}, {768, 1024}}

	for _, src := range sources {
		for _, vp := range viewports {
			crop := CoverRect(src, vp[0], vp[1])

			if !crop.In(src) {
				t.Errorf("CoverRect(%v, %v) = %v is outside the source", src, vp, crop)
			}
			if crop.Dx() != src.Dx() && crop.Dy() != src.Dy() {
				t.Errorf("CoverRect(%v, %v) = %v should span the source on one axis", src, vp, crop)
			}

			// Width/height of the crop must match the viewport aspect to within a pixel.
			wantW := float64(crop.Dy()) * float64(vp[0]) / float64(vp[1])
			if crop.Dx() == src.Dx() {
				wantH := float64(crop.Dx()) * float64(vp[1]) / float64(vp[0])
				if diff := wantH - float64(crop.Dy()); diff > 1 || diff < -1 {
					t.Errorf("CoverRect(%v, %v) = %v has wrong aspect", src, vp, crop)
				}
			} else if diff := wantW - float64(crop.Dx()); diff > 1 || diff < -1 {
				t.Errorf("CoverRect(%v, %v) = %v has wrong aspect", src, vp, crop)
			}
		}
	}
}

func TestCoverPixels(t *testing.T) {
	tests := []struct {
		size fyne.Size
		w, h int
	}{
		{fyne.NewSize(412, 835), 412, 835},
		{fyne.NewSize(0, 100), 0, 0},
		{fyne.NewSize(4096, 1024), 2048, 512},
		{fyne.NewSize(1000, 5000), 409, 2048},
	}

	for _, tc := range tests {
		w, h := coverPixels(tc.size)
		if w != tc.w || h != tc.h {
			t.Errorf("coverPixels(%v) = %dx%d, expected %dx%d", tc.size, w, h, tc.w, tc.h)
		}
	}
}

// The rendered bitmap must fill the widget with no transparent margin at
// any aspect ratio.
func TestCoverImage_NoLetterboxing(t *testing.T) {
	test.NewApp()

	cover := NewCoverImage(assets.Image(assets.CityImage), "Cityscape")
	sizes := []fyne.Size{
		fyne.NewSize(412, 835),
		fyne.NewSize(835, 412),
		fyne.NewSize(300, 300),
		fyne.NewSize(1200, 90),
		fyne.NewSize(60, 900),
	}

	for _, size := range sizes {
		cover.Resize(size)

		objects := test.WidgetRenderer(cover).Objects()
		if len(objects) != 1 {
			t.Fatalf("Expected 1 object, got %d", len(objects))
		}
		img, ok := objects[0].(*canvas.Image)
		if !ok {
			t.Fatalf("Expected *canvas.Image, got %T", objects[0])
		}

		if img.Position() != fyne.NewPos(0, 0) || img.Size() != size {
			t.Errorf("At %v image placed at %v size %v, expected to fill", size, img.Position(), img.Size())
		}
		if img.FillMode != canvas.ImageFillStretch {
			t.Errorf("At %v fill mode = %v, expected stretch of the cropped bitmap", size, img.FillMode)
		}

		bitmap := img.Image
		if bitmap == nil {
			t.Fatalf("At %v no bitmap rendered", size)
		}
		w, h := coverPixels(size)
		if bitmap.Bounds().Dx() != w || bitmap.Bounds().Dy() != h {
			t.Errorf("At %v bitmap is %v, expected %dx%d", size, bitmap.Bounds(), w, h)
		}

		b := bitmap.Bounds()
		corners := []image.Point{
			b.Min,
			{X: b.Max.X - 1, Y: b.Min.Y},
			{X: b.Min.X, Y: b.Max.Y - 1},
			{X: b.Max.X - 1, Y: b.Max.Y - 1},
			{X: (b.Min.X + b.Max.X) / 2, Y: b.Min.Y},
			{X: b.Min.X, Y: (b.Min.Y + b.Max.Y) / 2},
		}
		for _, p := range corners {
			if _, _, _, a := bitmap.At(p.X, p.Y).RGBA(); a != 0xFFFF {
				t.Errorf("At %v pixel %v is not opaque (alpha %d)", size, p, a)
			}
		}
	}
}

func TestCoverImage_MinSize(t *testing.T) {
	test.NewApp()

	cover := NewCoverImage(assets.Fallback(), "")
	if m := cover.MinSize(); m.Width != 0 || m.Height != 0 {
		t.Errorf("Cover image should not impose a minimum size, got %v", m)
	}
}
