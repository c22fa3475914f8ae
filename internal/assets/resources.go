package assets

import (
	"bytes"
	_ "embed"
	"image"
	"image/color"
	_ "image/png"
	"log"

	"fyne.io/fyne/v2"
)

const (
	// CityImage is the logical name of the bundled hero image
	CityImage = "city_image"

	cityImageFile = "city_image.png"
)

//go:embed city_image.png
var cityImagePNG []byte

// CityImageResource is the bundled hero image
var CityImageResource = fyne.NewStaticResource(cityImageFile, cityImagePNG)

var bundled = map[string]fyne.Resource{
	CityImage: CityImageResource,
}

// Resolve returns the bundled resource registered under a logical name
func Resolve(name string) (fyne.Resource, bool) {
	res, ok := bundled[name]
	return res, ok
}

// Image resolves and decodes a bundled image. Unknown names and undecodable
// content yield a 1x1 black image so callers always get something to draw.
func Image(name string) image.Image {
	res, ok := Resolve(name)
	if !ok {
		log.Printf("Warning: no bundled image named %q, using fallback", name)
		return Fallback()
	}

	img, _, err := image.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		log.Printf("Warning: failed to decode %s: %v", res.Name(), err)
		return Fallback()
	}
	return img
}

// Fallback returns the image drawn in place of a missing asset
func Fallback() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0xFF})
	return img
}
