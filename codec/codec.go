// Package codec implements the recursive decode/encode engine of spec.md
// §4.2: turning raw delimiter-separated bytes into the ir package's sum
// types and back, honoring the HL7 null marker and the trim-trailing-
// empties normalization at every nesting level.
//
// Grounded on hl7/field.go (ParseField), hl7/component.go (ParseComponent),
// hl7/repetition.go (ParseRepetition) and hl7/subcomponent.go's split-then-
// recurse shape, rewritten against ir's sum types and value's typed leaves
// instead of the teacher's []rune-backed interfaces.
package codec

import (
	"bytes"

	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/escape"
	"github.com/hl7bridge/hl7v2/ir"
	"github.com/hl7bridge/hl7v2/value"
)

var nullMarker = []byte(`""`)

func isNullMarker(raw []byte) bool { return bytes.Equal(raw, nullMarker) }

// decodeLeaf turns one delimiter-addressed slice into a value.Value: the
// two-byte null marker becomes Null, otherwise the bytes are unescaped.
func decodeLeaf(raw []byte, seps delim.Separators) value.Value {
	if isNullMarker(raw) {
		return value.NullValue()
	}
	return value.Value{Raw: escape.Unescape(string(raw), seps)}
}

// encodeLeaf is decodeLeaf's inverse.
func encodeLeaf(v value.Value, seps delim.Separators) []byte {
	if v.Null {
		return append([]byte(nil), nullMarker...)
	}
	if v.Raw == "" {
		return []byte{}
	}
	return []byte(escape.Escape(v.Raw, seps))
}

// trimTrailingEmpty drops zero-length trailing elements, leaving interior
// empties untouched — matching the "only trailing empties vanish" rule
// spec.md §3 and §4.2 describe for trim=true.
func trimTrailingEmpty(parts [][]byte) [][]byte {
	end := len(parts)
	for end > 0 && len(parts[end-1]) == 0 {
		end--
	}
	return parts[:end]
}

// DecodeSubComponents splits raw on the subcomponent separator and decodes
// each piece as a leaf value, wrapping the result in a tuple only when more
// than one subcomponent is present (spec.md §4.2).
func DecodeSubComponents(raw []byte, seps delim.Separators, trim bool) ir.Component {
	parts := bytes.Split(raw, []byte{seps.SubComponent})
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	if len(parts) <= 1 {
		v := value.Empty()
		if len(parts) == 1 {
			v = decodeLeaf(parts[0], seps)
		}
		return ir.Component{Single: v}
	}
	subs := make([]value.Value, len(parts))
	for i, p := range parts {
		subs[i] = decodeLeaf(p, seps)
	}
	return ir.Component{Composite: true, SubComponents: subs}
}

// DecodeComponents splits raw on the component separator and decodes each
// piece via DecodeSubComponents. A single component whose subcomponent
// decode produced a tuple is re-wrapped in a 1-tuple so the "this is a
// component, not a scalar" signal survives (spec.md §4.2, §8's "component
// wrap" property).
func DecodeComponents(raw []byte, seps delim.Separators, trim bool) ir.Repetition {
	parts := bytes.Split(raw, []byte{seps.Component})
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	if len(parts) <= 1 {
		var src []byte
		if len(parts) == 1 {
			src = parts[0]
		}
		comp := DecodeSubComponents(src, seps, trim)
		if comp.Composite {
			return ir.Repetition{Composite: true, Components: []ir.Component{comp}}
		}
		return ir.Repetition{Value: comp.Single}
	}
	comps := make([]ir.Component, len(parts))
	for i, p := range parts {
		comps[i] = DecodeSubComponents(p, seps, trim)
	}
	return ir.Repetition{Composite: true, Components: comps}
}

// DecodeField splits raw on the repetition separator and decodes each
// piece via DecodeComponents. A single repetition is unwrapped rather than
// held as a one-element list (spec.md §8's "IR repetition unwrap"
// property).
func DecodeField(raw []byte, seps delim.Separators, trim bool) ir.Field {
	parts := bytes.Split(raw, []byte{seps.Repetition})
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	if len(parts) <= 1 {
		var src []byte
		if len(parts) == 1 {
			src = parts[0]
		}
		return ir.Field{Single: DecodeComponents(src, seps, trim)}
	}
	reps := make([]ir.Repetition, len(parts))
	for i, p := range parts {
		reps[i] = DecodeComponents(p, seps, trim)
	}
	return ir.Field{Repeated: true, Repetitions: reps}
}

// EncodeSubComponents is DecodeSubComponents' inverse.
func EncodeSubComponents(c ir.Component, seps delim.Separators, trim bool) []byte {
	if !c.Composite {
		return encodeLeaf(c.Single, seps)
	}
	parts := make([][]byte, len(c.SubComponents))
	for i, sc := range c.SubComponents {
		parts[i] = encodeLeaf(sc, seps)
	}
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	return bytes.Join(parts, []byte{seps.SubComponent})
}

// EncodeComponents is DecodeComponents' inverse.
func EncodeComponents(r ir.Repetition, seps delim.Separators, trim bool) []byte {
	if !r.Composite {
		return encodeLeaf(r.Value, seps)
	}
	parts := make([][]byte, len(r.Components))
	for i, c := range r.Components {
		parts[i] = EncodeSubComponents(c, seps, trim)
	}
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	return bytes.Join(parts, []byte{seps.Component})
}

// EncodeField is DecodeField's inverse.
func EncodeField(f ir.Field, seps delim.Separators, trim bool) []byte {
	if !f.Repeated {
		return EncodeComponents(f.Single, seps, trim)
	}
	parts := make([][]byte, len(f.Repetitions))
	for i, r := range f.Repetitions {
		parts[i] = EncodeComponents(r, seps, trim)
	}
	if trim {
		parts = trimTrailingEmpty(parts)
	}
	return bytes.Join(parts, []byte{seps.Repetition})
}
