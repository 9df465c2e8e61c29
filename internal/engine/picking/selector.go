package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/boxpick/pkg/math"
)

// SceneObject is a pickable object: its index in the scene and its world-space bounds.
type SceneObject struct {
	Index int
	Box   AABB
}

// Selection is the result of a pick: either no object, or an object index and
// the distance along the picking ray at which its box was entered.
type Selection struct {
	index    int
	distance float32
	ok       bool
}

// NoSelection is the empty selection.
var NoSelection = Selection{index: -1}

// Selected returns a selection of the object with the given index.
func Selected(index int, distance float32) Selection {
	return Selection{index: index, distance: distance, ok: true}
}

// Index returns the selected object index and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.ok
}

// Distance returns the entry distance of the selected object (0 when empty).
func (s Selection) Distance() float32 {
	return s.distance
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return !s.ok
}

// SelectNearest returns the object whose box the ray enters first.
// Objects are visited in slice order and the running minimum is strict, so on
// equal entry distance the earlier object wins. Boxes entirely behind the
// origin (tFar <= 0) and entries beyond ray.TMax are ignored.
func SelectNearest(ray Ray, objects []SceneObject) Selection {
	if len(objects) == 0 || ray.Direction.IsZero() {
		return NoSelection
	}

	best := NoSelection
	bestT := math32.Inf(1)
	for _, obj := range objects {
		t := ray.IntersectBox(obj.Box)
		if t.X < t.Y && t.Y > 0 && t.X < ray.TMax && t.X < bestT {
			bestT = t.X
			best = Selected(obj.Index, t.X)
		}
	}
	return best
}

// NewSceneObjects creates one object per anchor, each a cube of the given
// half extent centered on its anchor. Indices follow anchor order.
func NewSceneObjects(anchors []math.Vec3, halfExtent float32) []SceneObject {
	objects := make([]SceneObject, len(anchors))
	for i, a := range anchors {
		objects[i] = SceneObject{Index: i, Box: AABBFromCenter(a, halfExtent)}
	}
	return objects
}
