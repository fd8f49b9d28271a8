package config

// ColorschemeType selects one of the builtin default colorschemes.
type ColorschemeType int

const (
	Dark ColorschemeType = iota
	Light
)

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Defaults: Defaults{
			Currency: "£",
			Rate:     0,
			TimeBase: "hour",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:           Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			NormalEmphasized: Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			MonthHeader:      Styling{Fg: "#ccebff", Bg: "#003c5e", Style: &FontStyle{Bold: true}},
			MonthTotal:       Styling{Fg: "#c2edab", Bg: "#000000", Style: &FontStyle{Bold: true}},
			ColumnHeader:     Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{Underlined: true}},
			Status:           Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:           Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			NormalEmphasized: Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			MonthHeader:      Styling{Fg: "#003c5e", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			MonthTotal:       Styling{Fg: "#3a751a", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			ColumnHeader:     Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{Underlined: true}},
			Status:           Styling{Fg: "#000000", Bg: "#d0d0d0", Style: &FontStyle{}},
		}
	}
}
