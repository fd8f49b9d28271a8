package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${TIMEAFTERTIME_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet `yaml:"stylesheet"`
	Defaults   Defaults   `yaml:"defaults"`
}

// Defaults are the pay parameters a newly created timesheet starts out with
// unless overridden on the command line.
type Defaults struct {
	Currency string  `yaml:"currency,omitempty"`
	Rate     float64 `yaml:"rate,omitempty"`
	TimeBase string  `yaml:"timebase,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`
	MonthHeader      Styling `yaml:"month-header"`
	MonthTotal       Styling `yaml:"month-total"`
	ColumnHeader     Styling `yaml:"column-header"`
	Status           Styling `yaml:"status"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Defaults = base.Defaults.augmentWith(augment.Defaults)

	return result
}

func (base Defaults) augmentWith(augment Defaults) Defaults {
	result := base

	if augment.Currency != "" {
		result.Currency = augment.Currency
	}
	if augment.Rate != 0 {
		result.Rate = augment.Rate
	}
	if augment.TimeBase != "" {
		result.TimeBase = augment.TimeBase
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.MonthHeader.overwriteIfDefined(augment.MonthHeader)
	result.MonthTotal.overwriteIfDefined(augment.MonthTotal)
	result.ColumnHeader.overwriteIfDefined(augment.ColumnHeader)
	result.Status.overwriteIfDefined(augment.Status)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
		s.Style = augment.Style
	}
}
