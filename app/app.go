package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/ninepatch-go/assets"
	"github.com/soocke/ninepatch-go/config"
	"github.com/soocke/ninepatch-go/debug"
	"github.com/soocke/ninepatch-go/ui/layout"
	"github.com/soocke/ninepatch-go/ui/theme"
	"github.com/soocke/ninepatch-go/ui/view"
)

const debugLogInterval = 2 * time.Second

type app struct {
	c        *AppContainer
	stopDbg  chan struct{}
	shutdown bool
}

// NewApp prepares the main window at screen position (x, y) and the component container.
// The window size is left to Tk so it follows the preview and controls.
func NewApp(title string, x, y int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{}
	a.c = BuildContainer(cfg, cfgPath, logger)

	App.WmTitle(title)
	if len(assets.IconPNG) != 0 {
		App.IconPhoto(NewPhoto(Data(assets.IconPNG)))
	}
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, layout.WindowPosition(x, y))
	return a
}

// Start builds the UI and runs the Tk event loop until the window closes.
func (a *app) Start() {
	theme.SetDark(a.c.Config.DarkMode)
	p := a.c.Presenter
	a.c.RootView.Build(view.Handlers{
		OnOpen:        p.OpenClicked,
		OnSave:        p.ExportClicked,
		OnToggleTheme: a.toggleTheme,
		OnExit:        a.exitHandler,
		OnSlider:      p.SliderChanged,
	})

	if a.c.Config.Debug {
		a.stopDbg = make(chan struct{})
		debug.StartRuntimeLogger(debugLogInterval, a.c.Logger, a.stopDbg)
	}
	a.c.Logger.Info("editor started", "config", a.c.ConfigPath)
	App.Wait()
}

func (a *app) toggleTheme() {
	a.c.Config.DarkMode = theme.ToggleDark()
	if err := a.c.Config.Save(a.c.ConfigPath); err != nil {
		a.c.Logger.Error("config save failed", "error", err)
	}
}

func (a *app) exitHandler() {
	if a.shutdown {
		return
	}
	a.shutdown = true
	if a.stopDbg != nil {
		close(a.stopDbg)
	}
	a.c.Logger.Info("editor closed")
	Destroy(App)
}
