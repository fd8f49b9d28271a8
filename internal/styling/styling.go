package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"timeaftertime/internal/config"
)

// DrawStyling is style information used for rendering text.
// It represents foreground and background color as well as modifiers such as
// boldness. A DrawStyling can be converted to the styling needed by a
// renderer, e.g. tcell.Style for a tcell-based renderer via AsTcell.
type DrawStyling interface {
	AsTcell() tcell.Style
}

// FallbackStyling is a DrawStyling that holds non-renderer-specific colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	fg := colorfulColorToTcellColor(s.fg)
	bg := colorfulColorToTcellColor(s.bg)

	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	style = style.Bold(s.bold).Italic(s.italic).Underline(s.underlined)

	return style
}

// StyleFromHex constructs and returns a styling from two hexadecimally
// formatted strings for the foreground and background color.
// Strings have to have hexadecimal or HTML color notation and lead with a '#'.
func StyleFromHex(fg, bg string) *FallbackStyling {
	return &FallbackStyling{
		fg: colorfulColorFromHexString(fg),
		bg: colorfulColorFromHexString(bg),
	}
}

// StyleFromConfig constructs a styling from a config file styling definition.
func StyleFromConfig(styling config.Styling) *FallbackStyling {
	result := StyleFromHex(styling.Fg, styling.Bg)

	if styling.Style != nil {
		result.bold = styling.Style.Bold
		result.italic = styling.Style.Italic
		result.underlined = styling.Style.Underlined
	}

	return result
}
