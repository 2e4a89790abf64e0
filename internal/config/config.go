// Package config provides YAML configuration for the demo's status bar:
// distribution strategy, spacing, and the styled sections to display.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/holt/flexbar"
	"github.com/holt/flexbar/layout"
	"github.com/holt/flexbar/text"
)

// Config describes a status bar.
type Config struct {
	Flex       string    `yaml:"flex"`
	Spacing    int       `yaml:"spacing"`
	Background string    `yaml:"background"`
	Sections   []Section `yaml:"sections"`
}

// Section describes one section of the bar. Colors are lipgloss color
// strings (ANSI numbers or hex).
type Section struct {
	Content       string `yaml:"content"`
	Foreground    string `yaml:"foreground"`
	Background    string `yaml:"background"`
	Bold          bool   `yaml:"bold"`
	PreSeparator  string `yaml:"preSeparator"`
	PostSeparator string `yaml:"postSeparator"`
}

var flexNames = map[string]layout.Flex{
	"start":         layout.FlexStart,
	"end":           layout.FlexEnd,
	"center":        layout.FlexCenter,
	"space-between": layout.FlexSpaceBetween,
	"space-around":  layout.FlexSpaceAround,
	"ratio":         layout.FlexRatio,
}

// Default returns the built-in three-section configuration used when no
// config file exists: mode badge, filename, clock.
func Default() *Config {
	return &Config{
		Flex:       "space-between",
		Spacing:    1,
		Background: "236",
		Sections: []Section{
			{Foreground: "0", Background: "86", Bold: true},
			{Foreground: "255"},
			{Foreground: "243"},
		},
	}
}

// Load reads the configuration from path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, ok := flexNames[c.Flex]; !ok {
		return fmt.Errorf("unknown flex strategy %q", c.Flex)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative, got %d", c.Spacing)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	return nil
}

// Bar builds a StatusBar from the configuration.
func (c *Config) Bar() (*flexbar.StatusBar, error) {
	flex, ok := flexNames[c.Flex]
	if !ok {
		return nil, fmt.Errorf("unknown flex strategy %q", c.Flex)
	}

	bar := flexbar.New(len(c.Sections)).Flex(flex).Spacing(c.Spacing)
	if c.Background != "" {
		bar.Background(lipgloss.NewStyle().Background(lipgloss.Color(c.Background)))
	}

	for i, sc := range c.Sections {
		sec := flexbar.NewSection(sc.Content).Style(sc.style())
		if sc.PreSeparator != "" {
			sec = sec.PreSeparator(text.Raw(sc.PreSeparator))
		}
		if sc.PostSeparator != "" {
			sec = sec.PostSeparator(text.Raw(sc.PostSeparator))
		}
		if _, err := bar.Section(i, sec); err != nil {
			return nil, err
		}
	}
	return bar, nil
}

func (s Section) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}
