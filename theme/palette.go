package theme

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Palette holds the colors of a theme. Colors are tcell color names or
// "#rrggbb" values.
type Palette struct {
	Text     string `yaml:"text"`
	Face     string `yaml:"face"`
	Hot      string `yaml:"hot"`
	Selected string `yaml:"selected"`
	Focus    string `yaml:"focus"`
	Disabled string `yaml:"disabled"`
}

func DarkPalette() Palette {
	return Palette{
		Text:     "#ffffcd",
		Face:     "#001040",
		Hot:      "#1f1f9f",
		Selected: "#7fff7f",
		Focus:    "#ffff00",
		Disabled: "#808080",
	}
}

func LightPalette() Palette {
	return Palette{
		Text:     "#000000",
		Face:     "#dfdfdf",
		Hot:      "#bfbfff",
		Selected: "#001040",
		Focus:    "#0000ff",
		Disabled: "#8f8f8f",
	}
}

// DefaultPalette picks the palette matching the terminal background.
func DefaultPalette(darkBackground bool) Palette {
	if darkBackground {
		return DarkPalette()
	}
	return LightPalette()
}

// LoadPalette reads a palette from a YAML file. Colors missing from the file
// are taken from base.
func LoadPalette(path string, base Palette) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read theme %s: %w", path, err)
	}
	palette := base
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return base, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err := palette.Validate(); err != nil {
		return base, fmt.Errorf("theme %s: %w", path, err)
	}
	return palette, nil
}

// Validate checks that every color is known to tcell.
func (p Palette) Validate() error {
	for name, value := range map[string]string{
		"text":     p.Text,
		"face":     p.Face,
		"hot":      p.Hot,
		"selected": p.Selected,
		"focus":    p.Focus,
		"disabled": p.Disabled,
	} {
		if tcell.GetColor(value) == tcell.ColorDefault {
			return fmt.Errorf("invalid color %q for %s", value, name)
		}
	}
	return nil
}
