package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"timeaftertime/internal/config"
)

func TestNewStylesheetFromConfig(t *testing.T) {
	stylesheet := NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)

	for name, style := range map[string]DrawStyling{
		"normal":            stylesheet.Normal,
		"normal-emphasized": stylesheet.NormalEmphasized,
		"month-header":      stylesheet.MonthHeader,
		"month-total":       stylesheet.MonthTotal,
		"column-header":     stylesheet.ColumnHeader,
		"status":            stylesheet.Status,
	} {
		if style == nil {
			t.Fatalf("style '%s' missing from constructed stylesheet", name)
		}
	}

	_, _, attrs := stylesheet.MonthHeader.AsTcell().Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("month header should render bold")
	}
}

func TestStyleFromConfigCarriesFontStyle(t *testing.T) {
	style := StyleFromConfig(config.Styling{
		Fg:    "#102030",
		Bg:    "#405060",
		Style: &config.FontStyle{Italic: true, Underlined: true},
	})

	_, _, attrs := style.AsTcell().Decompose()
	if attrs&tcell.AttrItalic == 0 || attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("font style lost in conversion (attrs: %b)", attrs)
	}
}
