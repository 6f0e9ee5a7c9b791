package theme

// Palette and ttk style setup for the editor window. Light and dark variants share the
// same style names so widgets never need to be rebuilt when the mode flips.

import (
	tk "modernc.org/tk9.0"
)

// Palette defines the semantic colors of one mode.
type Palette struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Text      string
	TextMuted string
}

var (
	light = Palette{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Border:    "#d0d7de",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = Palette{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleSaveButton    = "save.TButton"
	StyleRegionLabel   = "region.TLabel"
	StyleValueLabel    = "value.TLabel"
	StyleStatusLabel   = "status.TLabel"
)

var darkMode bool

// CurrentPalette returns colors for the current mode.
func CurrentPalette() Palette {
	if darkMode {
		return dark
	}
	return light
}

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

// SetDark switches mode and reapplies styles. Returns the new mode.
func SetDark(d bool) bool {
	darkMode = d
	InitStyles()
	return darkMode
}

// ToggleDark flips the mode.
func ToggleDark() bool { return SetDark(!darkMode) }

// InitStyles (re)applies styles for the current mode.
func InitStyles() {
	p := CurrentPalette()
	if darkMode {
		_ = tk.ActivateTheme("azure dark")
	} else {
		_ = tk.ActivateTheme("azure light")
	}
	tk.App.Configure(tk.Background(p.AppBg))

	tk.StyleConfigure(StylePrimaryButton,
		tk.Background(p.Primary),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleSaveButton,
		tk.Background(p.Danger),
		tk.Foreground("white"),
		tk.Padding("4p 3p"),
		tk.Borderwidth(1),
		tk.Relief("ridge"),
	)
	tk.StyleConfigure(StyleRegionLabel, tk.Foreground(p.Text), tk.Background(p.AppBg), tk.Padding("2p 1p"))
	tk.StyleConfigure(StyleValueLabel, tk.Foreground(p.Primary), tk.Background(p.AppBg), tk.Padding("2p 1p"))
	tk.StyleConfigure(StyleStatusLabel,
		tk.Foreground(p.TextMuted),
		tk.Background(p.Surface),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
}
