// Package scene provides the building model: named objects, the static
// regions used by navigation, preset viewpoints and hit testing.
package scene

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Point is a Vec3 written as a three-element YAML sequence.
type Point math.Vec3

// UnmarshalYAML decodes [x, y, z].
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xyz []float32
	if err := value.Decode(&xyz); err != nil {
		return err
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: point needs 3 components, got %d", value.Line, len(xyz))
	}
	*p = Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

// MarshalYAML encodes the point as [x, y, z].
func (p Point) MarshalYAML() (interface{}, error) {
	return []float32{p.X, p.Y, p.Z}, nil
}

// Vec3 returns the point as a math.Vec3.
func (p Point) Vec3() math.Vec3 {
	return math.Vec3(p)
}

// Box is an axis-aligned box given by two corners.
type Box struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// AABB returns the box with its corners sorted.
func (b Box) AABB() picking.AABB {
	return picking.NewAABB(b.Min.Vec3(), b.Max.Vec3())
}

// ObjectSpec describes one named piece of building geometry.
type ObjectSpec struct {
	Name string `yaml:"name"`
	Box  `yaml:",inline"`

	// Hidden objects start invisible. Unpickable objects never block
	// walk-to-surface rays (glass, décor). MinimapHidden objects never
	// appear in the minimap, whatever their visibility.
	Hidden        bool `yaml:"hidden"`
	Unpickable    bool `yaml:"unpickable"`
	MinimapHidden bool `yaml:"minimap_hidden"`
}

// Regions are the static navigation regions of the building.
type Regions struct {
	Interior Box `yaml:"interior"` // Free roam is suppressed inside
	Minimap  Box `yaml:"minimap"`  // Minimap is shown inside
}

// PresetSpec is a named viewpoint as written in the layout file.
type PresetSpec struct {
	Name       string        `yaml:"name"`
	Label      string        `yaml:"label"`
	Position   Point         `yaml:"position"`
	Target     Point         `yaml:"target"`
	Duration   time.Duration `yaml:"duration"`
	Transition bool          `yaml:"transition"`

	// Requires lists the viewpoints this preset may start from. Empty
	// means any, including unset.
	Requires []string `yaml:"requires"`

	Visibility       map[string]bool `yaml:"visibility"`
	ArriveVisibility map[string]bool `yaml:"arrive_visibility"`

	// Routes replace the timing and visibility above when the preset
	// starts from a given viewpoint.
	Routes []RouteSpec `yaml:"routes"`
}

// RouteSpec is a per-origin variant of a preset move. Duration and
// transition always replace the preset's; nil visibility maps inherit.
type RouteSpec struct {
	From       string        `yaml:"from"`
	Duration   time.Duration `yaml:"duration"`
	Transition bool          `yaml:"transition"`

	Visibility       map[string]bool `yaml:"visibility"`
	ArriveVisibility map[string]bool `yaml:"arrive_visibility"`
}

// Layout is the building description file.
type Layout struct {
	Name    string       `yaml:"name"`
	Objects []ObjectSpec `yaml:"objects"`
	Regions Regions      `yaml:"regions"`
	Presets []PresetSpec `yaml:"presets"`
}

var (
	// ErrEmptyLayout is returned for a layout without geometry.
	ErrEmptyLayout = errors.New("layout has no objects")

	// ErrDuplicateName is returned when two objects or presets share a name.
	ErrDuplicateName = errors.New("duplicate name")
)

// ParseLayout decodes and validates a layout document.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout reads a layout from path. An empty path loads the built-in
// lift lobby.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return ParseLayout(defaultLayout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Validate checks names are present and unique.
func (l *Layout) Validate() error {
	if len(l.Objects) == 0 {
		return ErrEmptyLayout
	}

	seen := make(map[string]bool, len(l.Objects))
	for i, o := range l.Objects {
		if o.Name == "" {
			return fmt.Errorf("object %d: missing name", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("object %q: %w", o.Name, ErrDuplicateName)
		}
		seen[o.Name] = true
	}

	presets := make(map[string]bool, len(l.Presets))
	for i, p := range l.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d: missing name", i)
		}
		if presets[p.Name] {
			return fmt.Errorf("preset %q: %w", p.Name, ErrDuplicateName)
		}
		presets[p.Name] = true

		from := make(map[string]bool, len(p.Routes))
		for j, r := range p.Routes {
			if r.From == "" {
				return fmt.Errorf("preset %q route %d: missing from", p.Name, j)
			}
			if from[r.From] {
				return fmt.Errorf("preset %q route from %q: %w", p.Name, r.From, ErrDuplicateName)
			}
			from[r.From] = true
		}
	}
	return nil
}
