package view

import (
	"strconv"

	"github.com/soocke/ninepatch-go/domain/ninepatch"
	"github.com/soocke/ninepatch-go/ui/layout"
	"github.com/soocke/ninepatch-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RegionPanel owns the eight region sliders and their value readouts.
type RegionPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	Reset(maxX, maxY int)
	SetValue(index, value int)
}

var sliderLabels = [ninepatch.SliderCount]string{
	"Stretch x1", "Stretch y1", "Stretch x2", "Stretch y2",
	"Padding x1", "Padding y1", "Padding x2", "Padding y2",
}

const sliderLength = 600

type regionPanel struct {
	onChange func(index, value int)
	scales   [ninepatch.SliderCount]*TScaleWidget
	values   [ninepatch.SliderCount]*TLabelWidget
	last     [ninepatch.SliderCount]int
}

// NewRegionPanel creates the panel; onChange receives integer slider positions.
func NewRegionPanel(onChange func(index, value int)) RegionPanel {
	return &regionPanel{onChange: onChange}
}

func (v *regionPanel) Build(startRow int) (row int) {
	row = startRow
	for i := range ninepatch.SliderCount {
		lbl := TLabel(Txt(sliderLabels[i]), Anchor("w"), Style(theme.StyleRegionLabel))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		sc := TScale(From(0), To(100), Orient("horizontal"), Length(sliderLength), Command(func() { v.changed(i) }))
		Grid(sc, Row(row), Column(1), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		val := TLabel(Txt("0"), Width(5), Anchor("e"), Style(theme.StyleValueLabel))
		Grid(val, Row(row), Column(3), Sticky("e"), Padx("0.4m"), Pady("0.15m"))
		v.scales[i] = sc
		v.values[i] = val
		row++
	}
	return row
}

func (v *regionPanel) changed(i int) {
	sc := v.scales[i]
	if sc == nil {
		return
	}
	n, ok := layout.SliderStep(sc.Get(), v.last[i])
	if !ok {
		return
	}
	v.show(i, n)
	if v.onChange != nil {
		v.onChange(i, n)
	}
}

// Reset applies new bounds (even indices use maxX, odd maxY) and moves every slider to 0.
func (v *regionPanel) Reset(maxX, maxY int) {
	for i, sc := range v.scales {
		if sc == nil {
			continue
		}
		sc.Configure(To(layout.SliderBound(i, maxX, maxY)), Value(0))
		v.show(i, 0)
	}
}

func (v *regionPanel) SetValue(index, value int) {
	if index < 0 || index >= len(v.scales) || v.scales[index] == nil {
		return
	}
	v.scales[index].Configure(Value(value))
	v.show(index, value)
}

func (v *regionPanel) show(i, n int) {
	v.last[i] = n
	if v.values[i] != nil {
		v.values[i].Configure(Txt(strconv.Itoa(n)))
	}
}
