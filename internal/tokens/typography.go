package tokens

// StyleToken names a typography role.
type StyleToken string

const (
	Headline  StyleToken = "headline"
	BodySmall StyleToken = "body-small"
	Body      StyleToken = "body"
)

// TextAttrs are the concrete rendering attributes of a style token.
type TextAttrs struct {
	Size       float32
	LineHeight float32
	Bold       bool
}

// Type scale, in device-independent units.
const (
	HeadlineSize       float32 = 32
	HeadlineLineHeight float32 = 40
	BodySize           float32 = 16
	BodyLineHeight     float32 = 24
	BodySmallSize      float32 = 12
	BodySmallLine      float32 = 16
	LabelSize          float32 = 12
)

// Resolve maps a style token and dark-mode flag to text attributes.
// The type scale does not change between modes; unknown tokens resolve to Body.
func Resolve(token StyleToken, dark bool) TextAttrs {
	switch token {
	case Headline:
		return TextAttrs{Size: HeadlineSize, LineHeight: HeadlineLineHeight}
	case BodySmall:
		return TextAttrs{Size: BodySmallSize, LineHeight: BodySmallLine}
	default:
		return TextAttrs{Size: BodySize, LineHeight: BodyLineHeight}
	}
}
