package screen

// Article copy
const (
	Headline     = "The Future of Urban Living"
	Author       = "Sarah Chen"
	ReadTime     = "8 min read"
	Category     = "TECH"
	HeroImage    = "city_image"
	HeroImageAlt = "Cityscape"

	AuthorIconDescription   = "Author"
	ReadTimeIconDescription = "Read Time"
)

// Navigation labels, in bar order
const (
	NavNews     = "NEWS"
	NavPromos   = "PROMOS"
	NavSettings = "SETTINGS"
)

// Layout sizing
const (
	ContentPaddingH float32 = 16
	ContentPaddingV float32 = 24

	ChipPaddingH  float32 = 12
	ChipPaddingV  float32 = 4
	ChipRadius    float32 = 4
	ChipSpacing   float32 = 8
	TitleSpacing  float32 = 16
	MetaIconSize  float32 = 16
	MetaIconGap   float32 = 4
	MetaGroupGap  float32 = 16
	MetaTextAlpha float32 = 0.8

	AccentBarWidth  float32 = 40
	AccentBarHeight float32 = 4
	AccentBarRadius float32 = 2
	AccentBarTop    float32 = 8
)
