// Package schema holds the declarative segment and composite spec tables
// of spec.md §4.6: compile-time-style descriptions of named fields and the
// delimiter coordinates they occupy inside a segment.
//
// This is a genuinely new package — the teacher has no coordinate-table
// schema layer, only per-struct `hl7:"PID.5.1"` string tags parsed at
// marshal time (marshal/tags.go). That file's location-string grammar
// (seg.field[rep].comp.subcomp) is reused here as the human-authoring
// syntax that compiles down to Coordinate tuples, per spec.md §9's
// redesign note: "schema defined by runtime macros → code generation or
// static tables" — plain Go package-level tables built once, not
// reflection over struct tags at every marshal call.
package schema

import (
	"fmt"
	"sort"

	"github.com/hl7bridge/hl7v2/value"
)

// Coordinate addresses a value inside a field: a 1-, 2-, or 3-tuple of
// 1-based indices (repetition, component, subcomponent). A zero
// Repetition means "unpinned" — the field spec applies across every
// repetition present rather than one fixed slot. A zero Component or
// SubComponent means the coordinate stops at that depth.
type Coordinate struct {
	Repetition   int
	Component    int
	SubComponent int
}

// Rep returns the coordinate's repetition index, defaulting to 1 when
// unpinned.
func (c Coordinate) Rep() int {
	if c.Repetition == 0 {
		return 1
	}
	return c.Repetition
}

// Depth returns the coordinate's arity: 1 (field-level), 2 (component) or
// 3 (subcomponent).
func (c Coordinate) Depth() int {
	switch {
	case c.SubComponent != 0:
		return 3
	case c.Component != 0:
		return 2
	default:
		return 1
	}
}

func coordLess(a, b Coordinate) bool {
	if a.Rep() != b.Rep() {
		return a.Rep() < b.Rep()
	}
	if a.Component != b.Component {
		return a.Component < b.Component
	}
	return a.SubComponent < b.SubComponent
}

// FieldSpec maps one named segment attribute to its coordinate, primitive
// kind and advisory maximum length.
type FieldSpec struct {
	Name       string
	Sequence   int
	Coordinate Coordinate
	Kind       value.Kind
	MaxLen     int
	Required   bool
}

// SegmentSpec is an addressable map from sequence number to the ordered
// field specs that occupy it. Multiple field specs may share a sequence
// to address different coordinates inside the same field.
type SegmentSpec struct {
	ID    string
	bySeq map[int][]FieldSpec
	order []int
}

// NewSegmentSpec builds a SegmentSpec, rejecting any repeated
// (sequence, coordinate) pair (spec.md §4.6's invariant, tested by §8's
// "coordinate uniqueness" property). Each sequence's field specs are
// stored in descending coordinate order, matching spec.md §9's note on
// how the source scans them; segir reverses that order to walk ascending.
func NewSegmentSpec(id string, specs ...FieldSpec) (*SegmentSpec, error) {
	bySeq := make(map[int][]FieldSpec)
	seen := make(map[string]bool, len(specs))

	for _, fs := range specs {
		key := fmt.Sprintf("%d/%d.%d.%d", fs.Sequence, fs.Coordinate.Rep(), fs.Coordinate.Component, fs.Coordinate.SubComponent)
		if seen[key] {
			return nil, fmt.Errorf("schema: %s sequence %d: duplicate coordinate %+v", id, fs.Sequence, fs.Coordinate)
		}
		seen[key] = true
		bySeq[fs.Sequence] = append(bySeq[fs.Sequence], fs)
	}

	order := make([]int, 0, len(bySeq))
	for seq := range bySeq {
		order = append(order, seq)
	}
	sort.Ints(order)

	for _, seq := range order {
		list := bySeq[seq]
		sort.SliceStable(list, func(i, j int) bool {
			return coordLess(list[j].Coordinate, list[i].Coordinate)
		})
		bySeq[seq] = list
	}

	return &SegmentSpec{ID: id, bySeq: bySeq, order: order}, nil
}

// Sequences returns every sequence number with field specs, ascending.
func (s *SegmentSpec) Sequences() []int { return s.order }

// FieldsAt returns the field specs for sequence, in descending coordinate
// order. Reverse the slice to walk ascending (write order).
func (s *SegmentSpec) FieldsAt(sequence int) []FieldSpec { return s.bySeq[sequence] }

// MaxSequence returns the highest sequence number this spec addresses, or
// 0 if the spec has no fields.
func (s *SegmentSpec) MaxSequence() int {
	if len(s.order) == 0 {
		return 0
	}
	return s.order[len(s.order)-1]
}

// FieldByName looks up a field spec by its attribute name.
func (s *SegmentSpec) FieldByName(name string) (FieldSpec, bool) {
	for _, seq := range s.order {
		for _, fs := range s.bySeq[seq] {
			if fs.Name == name {
				return fs, true
			}
		}
	}
	return FieldSpec{}, false
}

// CompositeComponent is one named slot of a CompositeSpec: either a
// primitive kind, or (depth <= 2) another CompositeSpec.
type CompositeComponent struct {
	Name      string
	Kind      value.Kind
	Composite *CompositeSpec
}

// CompositeSpec is an ordered list of named components, each a primitive
// kind or another composite, depth at most 2 (components containing
// subcomponents).
type CompositeSpec struct {
	Name       string
	Components []CompositeComponent
}

// Index resolves a component name to its 1-based index and kind.
func (c *CompositeSpec) Index(name string) (int, value.Kind, bool) {
	for i, comp := range c.Components {
		if comp.Name == name {
			return i + 1, comp.Kind, true
		}
	}
	return 0, 0, false
}

// SubIndex resolves a (component, subcomponent) name pair to the 1-based
// (component index, subcomponent index) pair and kind, per spec.md §4.6's
// composite_spec(comp, key, subkey) lookup.
func (c *CompositeSpec) SubIndex(name, subName string) (int, int, value.Kind, bool) {
	idx, _, ok := c.Index(name)
	if !ok {
		return 0, 0, 0, false
	}
	comp := c.Components[idx-1]
	if comp.Composite == nil {
		return 0, 0, 0, false
	}
	subIdx, kind, ok := comp.Composite.Index(subName)
	if !ok {
		return 0, 0, 0, false
	}
	return idx, subIdx, kind, true
}
