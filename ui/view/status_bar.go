package view

import (
	"github.com/soocke/ninepatch-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows a one-line summary (loaded file, last export).
type StatusBar interface {
	SetText(text string)
}

type statusBar struct{ lbl *TLabelWidget }

// NewStatusBar places the status label at row spanning all columns.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{lbl: TLabel(Txt("No image loaded"), Anchor("w"), Style(theme.StyleStatusLabel))}
	Grid(s.lbl, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return s
}

func (s *statusBar) SetText(text string) {
	if s == nil || s.lbl == nil {
		return
	}
	s.lbl.Configure(Txt(text))
}
