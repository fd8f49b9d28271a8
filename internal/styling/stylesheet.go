package styling

import (
	"timeaftertime/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	MonthHeader  DrawStyling
	MonthTotal   DrawStyling
	ColumnHeader DrawStyling

	Status DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.NormalEmphasized = StyleFromConfig(config.NormalEmphasized)
	stylesheet.MonthHeader = StyleFromConfig(config.MonthHeader)
	stylesheet.MonthTotal = StyleFromConfig(config.MonthTotal)
	stylesheet.ColumnHeader = StyleFromConfig(config.ColumnHeader)
	stylesheet.Status = StyleFromConfig(config.Status)

	return &stylesheet
}
