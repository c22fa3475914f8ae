package screen

import (
	"github.com/cityread/article-screen/internal/model"
	"github.com/cityread/article-screen/internal/tokens"
)

// Inert is the activation handler of every navigation item. The bar has no
// destinations wired yet, so tapping an item must not change anything.
func Inert() {}

// Compose builds the article screen tree for the given scheme
func Compose(scheme tokens.Scheme) model.Scaffold {
	bar := NavBar()
	return model.Scaffold{
		Background: scheme.Surface,
		Content:    Content(),
		BottomBar:  &bar,
	}
}

// Content is the article area: hero image, text block and accent bar
func Content() model.Stack {
	return model.Stack{Layers: []model.Layer{
		{
			Align: model.AlignFill,
			Node: model.Image{
				Resource:    HeroImage,
				Description: HeroImageAlt,
				Scale:       model.ScaleCrop,
			},
		},
		{
			Align: model.AlignBottomStart,
			Node:  textBlock(),
		},
		{
			Align:   model.AlignTopCenter,
			Padding: model.Insets{Top: AccentBarTop},
			Node:    AccentBar(),
		},
	}}
}

func textBlock() model.Column {
	return model.Column{
		Padding: model.Symmetric(ContentPaddingH, ContentPaddingV),
		Children: []model.Node{
			Chip(Category),
			model.Spacer{Height: ChipSpacing},
			model.Text{
				Text:  Headline,
				Style: tokens.Headline,
				Color: tokens.White,
				Bold:  true,
			},
			model.Spacer{Height: TitleSpacing},
			metaRow(),
		},
	}
}

func metaRow() model.Row {
	metaColor := tokens.WithAlpha(tokens.White, MetaTextAlpha)
	return model.Row{Children: []model.Node{
		model.Icon{Glyph: model.GlyphPerson, Description: AuthorIconDescription, Tint: tokens.LightGray, Size: MetaIconSize},
		model.Spacer{Width: MetaIconGap},
		model.Text{Text: Author, Style: tokens.BodySmall, Color: metaColor},
		model.Spacer{Width: MetaGroupGap},
		model.Icon{Glyph: model.GlyphClock, Description: ReadTimeIconDescription, Tint: tokens.LightGray, Size: MetaIconSize},
		model.Spacer{Width: MetaIconGap},
		model.Text{Text: ReadTime, Style: tokens.BodySmall, Color: metaColor},
	}}
}

// Chip returns a small filled label tagging a category
func Chip(label string) model.Box {
	return model.Box{
		Background:   tokens.ChipGold,
		CornerRadius: ChipRadius,
		Padding:      model.Symmetric(ChipPaddingH, ChipPaddingV),
		Child: model.Text{
			Text:  label,
			Style: tokens.BodySmall,
			Color: tokens.Black,
			Bold:  true,
		},
	}
}

// AccentBar returns the decorative bar drawn at the top of the screen
func AccentBar() model.Box {
	return model.Box{
		Background:   tokens.Accent,
		CornerRadius: AccentBarRadius,
		Width:        AccentBarWidth,
		Height:       AccentBarHeight,
	}
}

// NavBar returns the bottom navigation bar. The first item is always the
// selected one.
func NavBar() model.NavBar {
	return model.NavBar{
		Background: tokens.Black,
		Indicator:  tokens.Black,
		Items: []model.NavItem{
			navItem(NavNews, "News", true),
			navItem(NavPromos, "Promos", false),
			navItem(NavSettings, "Settings", false),
		},
	}
}

func navItem(label, description string, selected bool) model.NavItem {
	tint := tokens.Gray
	if selected {
		tint = tokens.White
	}
	return model.NavItem{
		Label:       label,
		Description: description,
		Glyph:       model.GlyphList,
		Selected:    selected,
		Tint:        tint,
		OnActivate:  Inert,
	}
}
