// Package segir bridges schema-typed named segment fields and the codec's
// field IR: Build walks named values outermost to innermost to produce the
// nested IR a writer can encode, and Parse walks decoded IR by coordinate
// to populate named values a reader can hand to a caller.
//
// Grounded on marshal/marshal.go's marshalStruct/marshalField walking
// order and marshal/unmarshal.go's mirror-image field extraction, but
// restructured around schema.FieldSpec/schema.Coordinate instead of
// reflect.StructField plus tag strings — per spec.md §9's note to replace
// the source's descending-order stateful scan with a depth cursor with the
// simpler two-step process: populate a sparse coordinate-indexed map, then
// render it by iterating every coordinate from 1 to max, filling gaps with
// empty values.
package segir

import (
	"fmt"

	"github.com/hl7bridge/hl7v2/ir"
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// Values holds a segment's named field values. Most names hold exactly one
// value; a name addressed by an unpinned (repetition-less) coordinate may
// hold one value per repetition, in repetition order.
type Values map[string][]value.Value

type cellKey struct{ rep, comp, sub int }

// Build renders the field IR for one sequence number from values and that
// sequence's field specs, honoring the write-order invariant of spec.md
// §4.6: repetition ascending, component ascending, subcomponent
// ascending, gaps filled with empty values.
func Build(specs []schema.FieldSpec, values Values) ir.Field {
	sparse := make(map[cellKey]value.Value)
	maxRep := 1

	for _, fs := range specs {
		vals := values[fs.Name]
		if len(vals) == 0 {
			continue
		}
		comp, sub := fs.Coordinate.Component, fs.Coordinate.SubComponent

		if fs.Coordinate.Repetition != 0 {
			sparse[cellKey{fs.Coordinate.Repetition, comp, sub}] = vals[0]
			if fs.Coordinate.Repetition > maxRep {
				maxRep = fs.Coordinate.Repetition
			}
			continue
		}

		for i, v := range vals {
			rep := i + 1
			sparse[cellKey{rep, comp, sub}] = v
			if rep > maxRep {
				maxRep = rep
			}
		}
	}

	if len(sparse) == 0 {
		return ir.Field{}
	}

	maxComp := make(map[int]int)
	maxSub := make(map[int]map[int]int)
	for k := range sparse {
		if k.comp > maxComp[k.rep] {
			maxComp[k.rep] = k.comp
		}
		if maxSub[k.rep] == nil {
			maxSub[k.rep] = make(map[int]int)
		}
		if k.sub > maxSub[k.rep][k.comp] {
			maxSub[k.rep][k.comp] = k.sub
		}
	}

	reps := make([]ir.Repetition, maxRep)
	for r := 1; r <= maxRep; r++ {
		reps[r-1] = buildRepetition(r, maxComp[r], maxSub[r], sparse)
	}

	if maxRep == 1 {
		return ir.Field{Single: reps[0]}
	}
	return ir.Field{Repeated: true, Repetitions: reps}
}

func buildRepetition(rep, maxComp int, maxSub map[int]int, sparse map[cellKey]value.Value) ir.Repetition {
	if maxComp == 0 {
		if v, ok := sparse[cellKey{rep, 0, 0}]; ok {
			return ir.Repetition{Value: v}
		}
		return ir.Repetition{Value: value.Empty()}
	}

	comps := make([]ir.Component, maxComp)
	for c := 1; c <= maxComp; c++ {
		subMax := maxSub[c]
		if subMax == 0 {
			v, ok := sparse[cellKey{rep, c, 0}]
			if !ok {
				v = value.Empty()
			}
			comps[c-1] = ir.Component{Single: v}
			continue
		}

		subs := make([]value.Value, subMax)
		for sc := 1; sc <= subMax; sc++ {
			v, ok := sparse[cellKey{rep, c, sc}]
			if !ok {
				v = value.Empty()
			}
			subs[sc-1] = v
		}
		comps[c-1] = ir.Component{Composite: true, SubComponents: subs}
	}
	return ir.Repetition{Composite: true, Components: comps}
}

// Parse navigates field by coordinate for each field spec and decodes the
// retrieved raw value against the spec's declared kind, returning the
// named values a segment should carry. A coordinate not present in field
// yields the empty value rather than an error; a value present but not
// matching its declared kind returns BadValue from the value package.
func Parse(specs []schema.FieldSpec, field ir.Field) (Values, error) {
	out := make(Values, len(specs))
	reps := field.Reps()

	for _, fs := range specs {
		coord := fs.Coordinate
		var raw []value.Value

		if coord.Repetition == 0 {
			raw = make([]value.Value, len(reps))
			for i, r := range reps {
				raw[i] = navigate(r, coord)
			}
		} else {
			idx := coord.Repetition - 1
			if idx >= 0 && idx < len(reps) {
				raw = []value.Value{navigate(reps[idx], coord)}
			} else {
				raw = []value.Value{value.Empty()}
			}
		}

		typed := make([]value.Value, len(raw))
		for i, v := range raw {
			tv, err := typeValue(v, fs.Kind)
			if err != nil {
				return nil, fmt.Errorf("segir: field %q: %w", fs.Name, err)
			}
			typed[i] = tv
		}
		out[fs.Name] = typed
	}

	return out, nil
}

func typeValue(v value.Value, kind value.Kind) (value.Value, error) {
	if v.Null || v.Raw == "" {
		return v, nil
	}
	return value.DecodeValue([]byte(v.Raw), kind)
}

// navigate retrieves the value at coord within one repetition, applying
// the degenerate-index rule of spec.md §4.7: indexing past a non-tuple
// level yields empty except at index 1, which yields the scalar itself.
func navigate(r ir.Repetition, coord schema.Coordinate) value.Value {
	if coord.Component == 0 {
		if r.Composite {
			return value.Empty()
		}
		return r.Value
	}

	if !r.Composite {
		if coord.Component == 1 {
			return r.Value
		}
		return value.Empty()
	}
	if coord.Component-1 >= len(r.Components) {
		return value.Empty()
	}
	comp := r.Components[coord.Component-1]

	if coord.SubComponent == 0 {
		if comp.Composite {
			return value.Empty()
		}
		return comp.Single
	}

	if !comp.Composite {
		if coord.SubComponent == 1 {
			return comp.Single
		}
		return value.Empty()
	}
	if coord.SubComponent-1 >= len(comp.SubComponents) {
		return value.Empty()
	}
	return comp.SubComponents[coord.SubComponent-1]
}
