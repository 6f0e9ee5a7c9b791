package view

import (
	"image"
	"log/slog"

	"github.com/soocke/ninepatch-go/config"
	"github.com/soocke/ninepatch-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the callbacks RootView invokes on user actions.
type Handlers struct {
	OnOpen        func()
	OnSave        func()
	OnToggleTheme func()
	OnExit        func()
	OnSlider      func(index, value int)
}

// RootView composes the editor layout and implements the presenter's EditorView.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Preview Preview
	Regions RegionPanel
	Status  StatusBar
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout top to bottom: toolbar, preview, sliders, save button, status.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	openBtn := TButton(Txt("Open Image"), Style(theme.StylePrimaryButton), Command(h.OnOpen))
	Grid(openBtn, In(btnFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	themeBtn := TButton(Txt("Light / Dark"), Command(h.OnToggleTheme))
	Grid(themeBtn, In(btnFrame), Row(0), Column(1), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("e"), Padx("0.2m"), Pady("0.2m"))

	maxW, maxH := 0, 0
	if rv.cfg != nil {
		maxW, maxH = rv.cfg.PreviewMaxW, rv.cfg.PreviewMaxH
	}
	rv.Preview = NewPreview(1, maxW, maxH)

	rv.Regions = NewRegionPanel(h.OnSlider)
	row := rv.Regions.Build(2)

	saveBtn := TButton(Txt("Save 9-patch"), Style(theme.StyleSaveButton), Command(h.OnSave))
	Grid(saveBtn, Row(row), Column(0), Columnspan(4), Padx("0.4m"), Pady("0.6m"))
	row++

	rv.Status = NewStatusBar(row)
	GridColumnConfigure(App, 1, Weight(1))
}

// ShowPreview replaces the displayed bitmap.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv == nil || rv.Preview == nil {
		return
	}
	if err := rv.Preview.Show(img); err != nil && rv.logger != nil {
		rv.logger.Error("preview skipped", "error", err)
	}
}

// ResetSliders applies the bounds of a newly loaded image and zeroes every slider.
func (rv *RootView) ResetSliders(maxX, maxY int) {
	if rv != nil && rv.Regions != nil {
		rv.Regions.Reset(maxX, maxY)
	}
}

// SetSliderValue moves one slider without emitting a change.
func (rv *RootView) SetSliderValue(index, value int) {
	if rv != nil && rv.Regions != nil {
		rv.Regions.SetValue(index, value)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.Status == nil {
		return
	}
	rv.Status.SetText(text)
	if rv.logger != nil {
		rv.logger.Debug("status", "text", text)
	}
}
