package nav

import (
	"time"

	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Viewpoint names the last viewpoint a scripted move reached.
type Viewpoint string

// ViewpointNone is the unset viewpoint. Walk-to-surface is disabled while
// it is current.
const ViewpointNone Viewpoint = ""

// Viewpoints of the built-in lobby.
const (
	Overview    Viewpoint = "overview"
	TopView     Viewpoint = "topview"
	CenterLobby Viewpoint = "centerlobby"
)

// Preset is a named scripted move.
type Preset struct {
	Name       Viewpoint
	Label      string
	Position   math.Vec3
	Target     math.Vec3
	Duration   time.Duration
	Transition bool

	Requires         []Viewpoint
	Visibility       map[string]bool // Applied when the move starts
	ArriveVisibility map[string]bool // Applied when the move completes

	Routes map[Viewpoint]Route
}

// Route is a preset variant taken from one origin viewpoint.
type Route struct {
	Duration         time.Duration
	Transition       bool
	Visibility       map[string]bool // nil inherits the preset's
	ArriveVisibility map[string]bool // nil inherits the preset's
}

// From returns the preset as run from viewpoint v, with v's route applied.
func (p Preset) From(v Viewpoint) Preset {
	r, ok := p.Routes[v]
	if !ok {
		return p
	}
	p.Duration = r.Duration
	p.Transition = r.Transition
	if r.Visibility != nil {
		p.Visibility = r.Visibility
	}
	if r.ArriveVisibility != nil {
		p.ArriveVisibility = r.ArriveVisibility
	}
	return p
}

// Allows reports whether the preset may start from viewpoint from.
func (p Preset) Allows(from Viewpoint) bool {
	if len(p.Requires) == 0 {
		return true
	}
	for _, v := range p.Requires {
		if v == from {
			return true
		}
	}
	return false
}

// PresetsFromLayout converts layout preset entries.
func PresetsFromLayout(specs []scene.PresetSpec) []Preset {
	presets := make([]Preset, 0, len(specs))
	for _, s := range specs {
		p := Preset{
			Name:             Viewpoint(s.Name),
			Label:            s.Label,
			Position:         s.Position.Vec3(),
			Target:           s.Target.Vec3(),
			Duration:         s.Duration,
			Transition:       s.Transition,
			Visibility:       s.Visibility,
			ArriveVisibility: s.ArriveVisibility,
		}
		if p.Label == "" {
			p.Label = s.Name
		}
		for _, r := range s.Requires {
			p.Requires = append(p.Requires, Viewpoint(r))
		}
		if len(s.Routes) > 0 {
			p.Routes = make(map[Viewpoint]Route, len(s.Routes))
			for _, r := range s.Routes {
				p.Routes[Viewpoint(r.From)] = Route{
					Duration:         r.Duration,
					Transition:       r.Transition,
					Visibility:       r.Visibility,
					ArriveVisibility: r.ArriveVisibility,
				}
			}
		}
		presets = append(presets, p)
	}
	return presets
}
