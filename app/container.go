package app

import (
	"log/slog"

	"github.com/soocke/ninepatch-go/config"
	"github.com/soocke/ninepatch-go/ui/model"
	"github.com/soocke/ninepatch-go/ui/presenter"
	"github.com/soocke/ninepatch-go/ui/view"
)

// AppContainer assembles the model, root view and presenter.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Editor     *model.EditorModel
	RootView   *view.RootView
	Presenter  *presenter.EditorPresenter
}

// BuildContainer constructs all components. No widgets are created until RootView.Build.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Editor = model.NewEditorModel()
	c.RootView = view.NewRootView(cfg, logger)
	c.Presenter = presenter.NewEditorPresenter(c.Editor, c.RootView, view.Dialogs{}, cfg, cfgPath, logger, presenter.DefaultBackend())
	return c
}
