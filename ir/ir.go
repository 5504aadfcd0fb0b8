// Package ir implements the three-level intermediate representation that
// sits between the delimiter-based wire codec and the schema layer.
//
// spec.md §9 calls this out directly: "dynamic tagged tuples → sum types."
// Rather than disambiguate a scalar component from a component-of-
// subcomponents by arity (a 1-element slice means something different from
// a bare value), each level here carries an explicit Composite tag. Null
// and empty are tracked by value.Value itself, so the shapes below only
// need to describe structure.
package ir

import "github.com/hl7bridge/hl7v2/value"

// Component is either a single value or a tuple of subcomponents.
type Component struct {
	Composite     bool
	Single        value.Value
	SubComponents []value.Value
}

// Repetition is either a single value or a component tuple. It is the
// shape decode_components produces, and the shape a Field holds directly
// when exactly one repetition is present (the "repetition unwrap"
// invariant from spec.md §8).
type Repetition struct {
	Composite  bool
	Value      value.Value
	Components []Component
}

// Field is a single value, a component tuple, or a list of repetitions.
type Field struct {
	Repeated    bool
	Single      Repetition
	Repetitions []Repetition
}

// String builds a scalar Component from a plain string.
func String(s string) Component { return Component{Single: value.Value{Raw: s}} }

// StringRepetition builds a scalar Repetition from a plain string.
func StringRepetition(s string) Repetition { return Repetition{Value: value.Value{Raw: s}} }

// StringField builds a single-repetition, scalar Field from a plain string.
func StringField(s string) Field { return Field{Single: StringRepetition(s)} }

// Reps returns f's repetitions regardless of whether f is the unwrapped
// single-repetition form or an explicit list — callers that need to walk
// "every repetition" use this instead of branching on Repeated.
func (f Field) Reps() []Repetition {
	if f.Repeated {
		return f.Repetitions
	}
	return []Repetition{f.Single}
}
