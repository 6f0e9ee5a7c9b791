package presenter

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/ninepatch-go/config"
	"github.com/soocke/ninepatch-go/domain/ninepatch"
	"github.com/soocke/ninepatch-go/ui/model"
)

type mockEditorView struct {
	previews   []image.Image
	resets     int
	maxX, maxY int
	sliderSets map[int]int
	status     string
}

func (v *mockEditorView) ShowPreview(img image.Image) { v.previews = append(v.previews, img) }
func (v *mockEditorView) ResetSliders(maxX, maxY int) { v.resets++; v.maxX, v.maxY = maxX, maxY }
func (v *mockEditorView) SetSliderValue(i, val int) {
	if v.sliderSets == nil {
		v.sliderSets = map[int]int{}
	}
	v.sliderSets[i] = val
}
func (v *mockEditorView) SetStatus(text string) { v.status = text }

type mockDialogs struct {
	openPath, savePath string
	openOK, saveOK     bool
	saveCalls          int
	saveDir, saveName  string
	errors, infos      []string
	confirm            bool
	confirmed          []string
}

func (d *mockDialogs) OpenImagePath(dir string) (string, bool) { return d.openPath, d.openOK }
func (d *mockDialogs) SaveNinePatchPath(dir, name string) (string, bool) {
	d.saveCalls++
	d.saveDir, d.saveName = dir, name
	return d.savePath, d.saveOK
}
func (d *mockDialogs) ConfirmOverwrite(path string) bool {
	d.confirmed = append(d.confirmed, path)
	return d.confirm
}
func (d *mockDialogs) ShowError(title, msg string) { d.errors = append(d.errors, msg) }
func (d *mockDialogs) ShowInfo(title, msg string)  { d.infos = append(d.infos, msg) }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func fixture(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

type harness struct {
	p        *EditorPresenter
	m        *model.EditorModel
	view     *mockEditorView
	dialogs  *mockDialogs
	cfg      *config.Config
	loads    []string
	exports  []string
	existing map[string]bool
}

func newHarness(t *testing.T, loadErr, exportErr error) *harness {
	t.Helper()
	h := &harness{m: model.NewEditorModel(), view: &mockEditorView{}, dialogs: &mockDialogs{}, cfg: config.DefaultConfig(), existing: map[string]bool{}}
	backend := Backend{
		Load: func(path string) (image.Image, error) {
			h.loads = append(h.loads, path)
			if loadErr != nil {
				return nil, loadErr
			}
			return fixture(100, 60), nil
		},
		Export: func(path string, src image.Image, rs ninepatch.Regions) (ninepatch.Result, error) {
			h.exports = append(h.exports, path)
			if exportErr != nil {
				return ninepatch.Result{}, exportErr
			}
			return ninepatch.Result{Path: path, Size: image.Pt(102, 62), Bytes: 2048}, nil
		},
		Exists: func(path string) bool { return h.existing[path] },
	}
	h.p = NewEditorPresenter(h.m, h.view, h.dialogs, h.cfg, "", quietLogger(), backend)
	return h
}

func TestEditorPresenter_LoadResetsSlidersAndRenders(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/bubble.png"})
	if !h.m.Loaded() {
		t.Fatalf("model not loaded")
	}
	if h.view.resets != 1 || h.view.maxX != 99 || h.view.maxY != 59 {
		t.Fatalf("slider reset wrong: resets=%d max=(%d,%d)", h.view.resets, h.view.maxX, h.view.maxY)
	}
	if len(h.view.previews) != 1 {
		t.Fatalf("expected one preview, got %d", len(h.view.previews))
	}
	if !strings.Contains(h.view.status, "bubble.png") || !strings.Contains(h.view.status, "100x60") {
		t.Fatalf("status=%q", h.view.status)
	}
	if h.cfg.LastOpenDir != "/img" {
		t.Fatalf("open dir not remembered: %q", h.cfg.LastOpenDir)
	}
}

func TestEditorPresenter_LoadFailureKeepsPriorState(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/good.png"})
	h.p.SliderChanged(2, 40)

	h.p.backend.Load = func(string) (image.Image, error) {
		return nil, ninepatch.ErrDecode
	}
	h.p.Dispatch(LoadImage{Path: "/img/bad.png"})
	if len(h.dialogs.errors) != 1 {
		t.Fatalf("expected one error dialog, got %v", h.dialogs.errors)
	}
	if h.m.Path() != "/img/good.png" || h.m.Regions().Stretch.X2 != 40 {
		t.Fatalf("prior state lost: path=%q regions=%+v", h.m.Path(), h.m.Regions())
	}
}

func TestEditorPresenter_SliderBeforeLoadIsNoop(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.SliderChanged(0, 10)
	if len(h.view.previews) != 0 {
		t.Fatalf("preview rendered without an image")
	}
}

func TestEditorPresenter_SliderRendersAndClamps(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "a.png"})
	h.p.SliderChanged(5, 30) // padding y1
	if h.m.Regions().Padding.Y1 != 30 {
		t.Fatalf("padding y1=%d", h.m.Regions().Padding.Y1)
	}
	if len(h.view.previews) != 2 {
		t.Fatalf("expected a redraw per change, got %d previews", len(h.view.previews))
	}
	h.p.Dispatch(SetRegionValue{Kind: ninepatch.Stretch, Coord: ninepatch.Y2, Value: 1000})
	if got := h.m.Regions().Stretch.Y2; got != 59 {
		t.Fatalf("clamped y2=%d", got)
	}
	if h.view.sliderSets[3] != 59 {
		t.Fatalf("slider not corrected: %v", h.view.sliderSets)
	}
	// same value again: no redraw
	n := len(h.view.previews)
	h.p.SliderChanged(5, 30)
	if len(h.view.previews) != n {
		t.Fatalf("unchanged value triggered redraw")
	}
	h.p.SliderChanged(9, 1)
	if len(h.view.previews) != n {
		t.Fatalf("out of range slider index triggered redraw")
	}
}

func TestEditorPresenter_PreviewUsesConfiguredColour(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.cfg.GuideColor = "#0000ff"
	h.p.Dispatch(LoadImage{Path: "a.png"})
	h.p.SliderChanged(2, 20)
	last := h.view.previews[len(h.view.previews)-1]
	got := color.NRGBAModel.Convert(last.At(10, 0)).(color.NRGBA)
	if got != (color.NRGBA{B: 255, A: 255}) {
		t.Fatalf("guide colour=%v", got)
	}
}

func TestEditorPresenter_ExportWithoutImage(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.dialogs.saveOK, h.dialogs.savePath = true, "/out/x.9.png"
	h.p.ExportClicked()
	if len(h.dialogs.errors) != 1 {
		t.Fatalf("expected NoImageLoaded error dialog, got %v", h.dialogs.errors)
	}
	if h.dialogs.saveCalls != 0 || len(h.exports) != 0 {
		t.Fatalf("no dialog or export expected: saveCalls=%d exports=%v", h.dialogs.saveCalls, h.exports)
	}
	h.p.Dispatch(Export{Path: "/out/x.9.png"})
	if len(h.dialogs.errors) != 2 || len(h.exports) != 0 {
		t.Fatalf("direct export command must also be rejected")
	}
}

func TestEditorPresenter_ExportCancelIsSilent(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/a.png"})
	h.p.ExportClicked()
	if h.dialogs.saveCalls != 1 || len(h.exports) != 0 || len(h.dialogs.errors) != 0 || len(h.dialogs.infos) != 0 {
		t.Fatalf("cancel should be a silent no-op")
	}
	if h.dialogs.saveDir != "/img" || h.dialogs.saveName != "a.9.png" {
		t.Fatalf("dialog defaults dir=%q name=%q", h.dialogs.saveDir, h.dialogs.saveName)
	}
}

func TestEditorPresenter_ExportSuccessAppliesSuffix(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/a.png"})
	h.dialogs.saveOK, h.dialogs.savePath = true, "/out/button.png"
	h.p.ExportClicked()
	if len(h.exports) != 1 || h.exports[0] != "/out/button.9.png" {
		t.Fatalf("exports=%v", h.exports)
	}
	if len(h.dialogs.infos) != 1 || !strings.Contains(h.dialogs.infos[0], "/out/button.9.png") {
		t.Fatalf("confirmation should name the path: %v", h.dialogs.infos)
	}
	if !strings.Contains(h.view.status, "2.0 kB") {
		t.Fatalf("status=%q", h.view.status)
	}
	if h.cfg.LastSaveDir != "/out" {
		t.Fatalf("save dir not remembered: %q", h.cfg.LastSaveDir)
	}
}

func TestEditorPresenter_ExportAsksBeforeReplacingSuffixedFile(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/a.png"})
	h.existing["/out/foo.9.png"] = true
	h.dialogs.saveOK, h.dialogs.savePath = true, "/out/foo.png"

	h.p.ExportClicked()
	if len(h.dialogs.confirmed) != 1 || h.dialogs.confirmed[0] != "/out/foo.9.png" {
		t.Fatalf("expected confirmation for the suffixed name, got %v", h.dialogs.confirmed)
	}
	if len(h.exports) != 0 || len(h.dialogs.errors) != 0 {
		t.Fatalf("declined overwrite must not export: exports=%v errors=%v", h.exports, h.dialogs.errors)
	}

	h.dialogs.confirm = true
	h.p.ExportClicked()
	if len(h.exports) != 1 || h.exports[0] != "/out/foo.9.png" {
		t.Fatalf("accepted overwrite should export, got %v", h.exports)
	}
}

func TestEditorPresenter_ExportSkipsConfirmWhenNameUnchanged(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.p.Dispatch(LoadImage{Path: "/img/a.png"})
	h.existing["/out/foo.9.png"] = true
	h.dialogs.saveOK, h.dialogs.savePath = true, "/out/foo.9.png"
	h.p.ExportClicked()
	if len(h.dialogs.confirmed) != 0 || len(h.exports) != 1 {
		t.Fatalf("dialog already confirmed this name: confirmed=%v exports=%v", h.dialogs.confirmed, h.exports)
	}
}

func TestEditorPresenter_ExportWriteFailure(t *testing.T) {
	h := newHarness(t, nil, errors.Join(ninepatch.ErrWrite, os.ErrPermission))
	h.p.Dispatch(LoadImage{Path: "/img/a.png"})
	h.p.Dispatch(Export{Path: "/ro/a.9.png"})
	if len(h.dialogs.errors) != 1 || len(h.dialogs.infos) != 0 {
		t.Fatalf("expected error dialog only: errors=%v infos=%v", h.dialogs.errors, h.dialogs.infos)
	}
}

func TestEditorPresenter_RealExportEndToEnd(t *testing.T) {
	dir := t.TempDir()
	m := model.NewEditorModel()
	view := &mockEditorView{}
	dialogs := &mockDialogs{}
	cfgPath := filepath.Join(dir, "config.json")
	p := NewEditorPresenter(m, view, dialogs, config.DefaultConfig(), cfgPath, quietLogger(), DefaultBackend())

	src := filepath.Join(dir, "src.png")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := ninepatch.Encode(f, fixture(10, 6)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	dialogs.openOK, dialogs.openPath = true, src
	p.OpenClicked()
	p.SliderChanged(2, 9)
	dialogs.saveOK, dialogs.savePath = true, filepath.Join(dir, "out")
	p.ExportClicked()

	out, err := ninepatch.Load(filepath.Join(dir, "out.9.png"))
	if err != nil {
		t.Fatalf("exported file unreadable: %v", err)
	}
	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 8 {
		t.Fatalf("exported size %v", out.Bounds())
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config not persisted: %v", err)
	}
}

func TestSuggestedName(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"/a/bubble.png":       "bubble.9.png",
		"/a/bubble.9.png":     "bubble.9.png",
		"/a/photo.final.jpeg": "photo.final.9.png",
	}
	for in, want := range cases {
		if got := suggestedName(in); got != want {
			t.Fatalf("suggestedName(%q)=%q want %q", in, got, want)
		}
	}
}
