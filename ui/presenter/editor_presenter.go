package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/soocke/ninepatch-go/config"
	"github.com/soocke/ninepatch-go/domain/ninepatch"
	"github.com/soocke/ninepatch-go/ui/model"
)

// EditorView is the subset of widget operations the editor needs.
type EditorView interface {
	ShowPreview(img image.Image)
	ResetSliders(maxX, maxY int)
	SetSliderValue(index, value int)
	SetStatus(text string)
}

// Dialogs abstracts native file pickers and modal notifications.
// The path pickers return ok=false when the user cancels.
type Dialogs interface {
	OpenImagePath(dir string) (string, bool)
	SaveNinePatchPath(dir, name string) (string, bool)
	ConfirmOverwrite(path string) bool
	ShowError(title, msg string)
	ShowInfo(title, msg string)
}

// Backend performs the image I/O. Tests substitute it; production uses ninepatch.
type Backend struct {
	Load   func(path string) (image.Image, error)
	Export func(path string, src image.Image, rs ninepatch.Regions) (ninepatch.Result, error)
	Exists func(path string) bool
}

// DefaultBackend reads and writes files through the ninepatch package.
func DefaultBackend() Backend {
	return Backend{Load: ninepatch.Load, Export: ninepatch.Export, Exists: fileExists}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EditorPresenter owns the editor's command handling: it mutates the model, renders the
// preview and reports outcomes through the view and dialogs. All methods run on the UI thread.
type EditorPresenter struct {
	model   *model.EditorModel
	view    EditorView
	dialogs Dialogs
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	backend Backend
}

// NewEditorPresenter wires the presenter. cfgPath may be empty to skip persisting preferences.
func NewEditorPresenter(m *model.EditorModel, view EditorView, dialogs Dialogs, cfg *config.Config, cfgPath string, logger *slog.Logger, backend Backend) *EditorPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if backend.Load == nil {
		backend.Load = ninepatch.Load
	}
	if backend.Export == nil {
		backend.Export = ninepatch.Export
	}
	if backend.Exists == nil {
		backend.Exists = fileExists
	}
	return &EditorPresenter{model: m, view: view, dialogs: dialogs, cfg: cfg, cfgPath: cfgPath, logger: logger, backend: backend}
}

// Dispatch executes cmd.
func (p *EditorPresenter) Dispatch(cmd Command) {
	if p == nil || p.model == nil || p.view == nil || p.dialogs == nil {
		return
	}
	switch c := cmd.(type) {
	case LoadImage:
		p.loadImage(c.Path)
	case SetRegionValue:
		p.setRegionValue(c)
	case Export:
		p.export(c.Path)
	default:
		p.logger.Warn("unknown command", "type", fmt.Sprintf("%T", cmd))
	}
}

// OpenClicked runs the open dialog and loads the chosen file. Cancel is a no-op.
func (p *EditorPresenter) OpenClicked() {
	if p == nil || p.dialogs == nil {
		return
	}
	path, ok := p.dialogs.OpenImagePath(p.cfg.LastOpenDir)
	if !ok || path == "" {
		p.logger.Debug("open dialog cancelled")
		return
	}
	p.Dispatch(LoadImage{Path: path})
}

// ExportClicked checks that an image is loaded, asks for an output path and exports.
func (p *EditorPresenter) ExportClicked() {
	if p == nil || p.dialogs == nil || p.model == nil {
		return
	}
	if !p.model.Loaded() {
		p.reportNoImage()
		return
	}
	dir := p.cfg.LastSaveDir
	if dir == "" {
		dir = filepath.Dir(p.model.Path())
	}
	path, ok := p.dialogs.SaveNinePatchPath(dir, suggestedName(p.model.Path()))
	if !ok || path == "" {
		p.logger.Debug("save dialog cancelled")
		return
	}
	// The dialog only confirmed overwriting the name it returned; a suffixed name that
	// already exists needs its own confirmation.
	target := ninepatch.NinePatchName(path)
	if target != path && p.backend.Exists(target) && !p.dialogs.ConfirmOverwrite(target) {
		p.logger.Debug("overwrite declined", "path", target)
		return
	}
	p.Dispatch(Export{Path: target})
}

// SliderChanged translates a slider index into a SetRegionValue command.
func (p *EditorPresenter) SliderChanged(index, value int) {
	kind, coord, ok := ninepatch.SliderCoord(index)
	if !ok {
		return
	}
	p.Dispatch(SetRegionValue{Kind: kind, Coord: coord, Value: value})
}

func (p *EditorPresenter) loadImage(path string) {
	img, err := p.backend.Load(path)
	if err != nil {
		p.logger.Error("image load failed", "path", path, "error", err)
		p.dialogs.ShowError("Error", fmt.Sprintf("Could not open image:\n%v", err))
		return
	}
	p.model.Load(img, path)
	size := p.model.Size()
	p.logger.Info("image loaded", "path", path, "width", size.X, "height", size.Y)

	p.view.ResetSliders(p.model.Max(ninepatch.X1), p.model.Max(ninepatch.Y1))
	p.render()
	p.view.SetStatus(fmt.Sprintf("%s  %dx%d", filepath.Base(path), size.X, size.Y))
	p.rememberDir(&p.cfg.LastOpenDir, filepath.Dir(path))
}

func (p *EditorPresenter) setRegionValue(c SetRegionValue) {
	if !p.model.Loaded() {
		return
	}
	v, changed := p.model.SetRegionValue(c.Kind, c.Coord, c.Value)
	if v != c.Value {
		p.view.SetSliderValue(ninepatch.SliderIndex(c.Kind, c.Coord), v)
	}
	if !changed {
		return
	}
	p.logger.Debug("region value", "region", c.Kind.String(), "coord", c.Coord.String(), "value", v)
	p.render()
}

func (p *EditorPresenter) export(path string) {
	if !p.model.Loaded() {
		p.reportNoImage()
		return
	}
	res, err := p.backend.Export(path, p.model.Image(), p.model.Regions())
	if err != nil {
		if errors.Is(err, ninepatch.ErrNoImageLoaded) {
			p.reportNoImage()
			return
		}
		p.logger.Error("export failed", "path", path, "error", err)
		p.dialogs.ShowError("Error", fmt.Sprintf("Could not save nine-patch image:\n%v", err))
		return
	}
	p.logger.Info("nine-patch exported", "path", res.Path, "width", res.Size.X, "height", res.Size.Y, "bytes", res.Bytes)
	p.view.SetStatus(fmt.Sprintf("Saved %s (%s)", filepath.Base(res.Path), humanize.Bytes(uint64(res.Bytes))))
	p.dialogs.ShowInfo("Done", fmt.Sprintf("Nine-patch image saved to %s", res.Path))
	p.rememberDir(&p.cfg.LastSaveDir, filepath.Dir(res.Path))
}

func (p *EditorPresenter) render() {
	img := ninepatch.Preview(p.model.Image(), p.model.Regions(), p.previewStyle())
	if img == nil {
		return
	}
	p.view.ShowPreview(img)
}

func (p *EditorPresenter) previewStyle() ninepatch.PreviewStyle {
	return ninepatch.PreviewStyle{Color: p.cfg.Guide(), StretchWidth: p.cfg.StretchWidth, PaddingWidth: p.cfg.PaddingWidth}
}

func (p *EditorPresenter) reportNoImage() {
	p.logger.Warn("export without image", "error", ninepatch.ErrNoImageLoaded)
	p.dialogs.ShowError("Error", "Select an image first.")
}

// rememberDir stores dir into *field and persists the config when it changed.
func (p *EditorPresenter) rememberDir(field *string, dir string) {
	if dir == "" || *field == dir {
		return
	}
	*field = dir
	if err := p.cfg.Save(p.cfgPath); err != nil {
		p.logger.Error("config save failed", "error", err)
	}
}

// suggestedName derives the default output file name from the source path.
func suggestedName(src string) string {
	if src == "" {
		return ""
	}
	base := filepath.Base(src)
	if strings.HasSuffix(strings.ToLower(base), ninepatch.Extension) {
		return base
	}
	ext := filepath.Ext(base)
	return ninepatch.NinePatchName(base[:len(base)-len(ext)])
}
