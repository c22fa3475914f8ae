package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/cityread/article-screen/internal/config"
	"github.com/cityread/article-screen/internal/model"
	"github.com/cityread/article-screen/internal/screen"
	"github.com/cityread/article-screen/internal/tokens"
)

// Screen is a mounted article screen
type Screen struct {
	// ID identifies this mount in log lines
	ID   uuid.UUID
	Dark bool

	Tree     model.Scaffold
	Content  fyne.CanvasObject
	Renderer *Renderer
}

// NewScreen composes and renders the article screen without attaching it
// to a window.
func NewScreen(dark bool) *Screen {
	tree := screen.Compose(tokens.SchemeFor(dark))
	renderer := NewRenderer(dark)

	return &Screen{
		ID:       uuid.New(),
		Dark:     dark,
		Tree:     tree,
		Content:  renderer.Render(tree),
		Renderer: renderer,
	}
}

// Mount renders the article screen into window. It takes no props: the
// only input is the light/dark choice from settings.
func Mount(window fyne.Window, app fyne.App, settings *config.Settings) *Screen {
	dark := settings.IsDark()
	app.Settings().SetTheme(NewArticleTheme(dark))

	s := NewScreen(dark)

	mobile := NewMobileUI(app)
	mobile.SizeWindow(window, settings.GetWindowSize())
	window.SetPadded(false)
	window.SetContent(s.Content)

	log.Printf("Article screen mounted (id=%s, mode=%s, dark=%v, mobile=%v, landscape=%v)",
		s.ID, settings.GetThemeMode(), dark, mobile.IsMobileDevice(), mobile.IsLandscape())
	return s
}
