// Package formats provides level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Respawn  *YAMLPoint        `yaml:"respawn,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a position in tile units.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Respawn  *core.Vector // nil keeps the physics default
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. It checks the document shape only;
// the plan itself is validated when the level is built.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, errors.New("level has no id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s has no rows", yl.ID)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}
	if yl.Respawn != nil {
		pos := core.V(yl.Respawn.X, yl.Respawn.Y)
		level.Respawn = &pos
	}

	return level, nil
}

// MarshalYAML encodes a level back into its file form.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Rows,
		Metadata: l.Metadata,
	}
	if l.Respawn != nil {
		yl.Respawn = &YAMLPoint{X: l.Respawn.X, Y: l.Respawn.Y}
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
