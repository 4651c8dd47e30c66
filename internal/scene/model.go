package scene

import (
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Object is a named piece of building geometry.
type Object struct {
	Name     string
	Box      picking.AABB
	Visible  bool
	Pickable bool

	MinimapHidden bool

	tris [12][3]math.Vec3
}

// SetVisible shows or hides the object.
func (o *Object) SetVisible(visible bool) {
	o.Visible = visible
}

// Model is a loaded building. Geometry and regions never change after
// NewModel; only object visibility does.
type Model struct {
	Name     string
	Interior picking.AABB
	Minimap  picking.AABB

	objects []*Object
	byName  map[string]*Object
	presets []PresetSpec
}

// NewModel builds a model from a validated layout.
func NewModel(l *Layout) *Model {
	m := &Model{
		Name:     l.Name,
		Interior: l.Regions.Interior.AABB(),
		Minimap:  l.Regions.Minimap.AABB(),
		objects:  make([]*Object, 0, len(l.Objects)),
		byName:   make(map[string]*Object, len(l.Objects)),
		presets:  append([]PresetSpec(nil), l.Presets...),
	}

	for _, spec := range l.Objects {
		box := spec.AABB()
		obj := &Object{
			Name:          spec.Name,
			Box:           box,
			Visible:       !spec.Hidden,
			Pickable:      !spec.Unpickable,
			MinimapHidden: spec.MinimapHidden,
			tris:          box.Triangles(),
		}
		m.objects = append(m.objects, obj)
		m.byName[obj.Name] = obj
	}

	return m
}

// NamedObject looks up an object by name.
func (m *Model) NamedObject(name string) (*Object, bool) {
	obj, ok := m.byName[name]
	return obj, ok
}

// Objects returns all objects in layout order.
func (m *Model) Objects() []*Object {
	return m.objects
}

// Presets returns the preset viewpoints the model was loaded with.
func (m *Model) Presets() []PresetSpec {
	return m.presets
}

// Intersect casts r against every visible, pickable object and returns the
// hits nearest first. Each object contributes at most its nearest hit.
func (m *Model) Intersect(r picking.Ray) []picking.Hit {
	var hits []picking.Hit
	for _, obj := range m.objects {
		if !obj.Visible || !obj.Pickable {
			continue
		}
		// Cheap reject before the triangle pass
		if _, ok := r.IntersectAABB(obj.Box); !ok {
			continue
		}

		var best picking.Hit
		found := false
		for _, tri := range obj.tris {
			h, ok := r.IntersectTriangle(tri[0], tri[1], tri[2])
			if !ok {
				continue
			}
			if !found || h.Distance < best.Distance {
				best = h
				found = true
			}
		}
		if found {
			best.Object = obj.Name
			hits = append(hits, best)
		}
	}

	picking.SortHits(hits)
	return hits
}
