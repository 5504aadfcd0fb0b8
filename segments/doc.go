// Package segments provides schema.SegmentSpec tables for the common
// HL7 v2.x segments: MSH, PID, PV1, OBR, OBX, ORC, plus the MSA and ERR
// segments used to build acknowledgment messages.
//
// spec.md §1 calls this "schema data, not engineering; an implementation
// ports them mechanically" — this package does exactly that, mechanically
// porting the teacher's hl7:"SEG.N"-tagged struct fields (segments/*.go) to
// schema.FieldSpec entries: same segment, same field names, same sequence
// numbers, restated as coordinate-table data instead of reflection-tag
// structs per schema's own redesign (§9's "runtime macros → static
// tables"). Fields the teacher names with an obvious date/datetime/integer/
// float shape (PID.DateOfBirth, OBR.ObservationDateTime, every segment's
// SetID, PV1's amounts and balances, OBX.Probability, …) are given the matching value.Kind instead of value.String, since the
// teacher's all-string struct fields predate this module's typed value
// system; every other field keeps value.String, matching the teacher's
// choice not to type them further.
package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

func mustSpec(id string, specs ...schema.FieldSpec) *schema.SegmentSpec {
	spec, err := schema.NewSegmentSpec(id, specs...)
	if err != nil {
		panic(err)
	}
	return spec
}

// compositeOf expands one composite field at sequence seq into one
// FieldSpec per named component, ascending component index — the same
// split MSH.9 uses for MessageCode/TriggerEvent, generalized so every
// composite field gets a coordinate per component instead of being
// addressed as a single depth-1 field. segir's navigate rule returns the
// empty value for a depth-1 coordinate on a composite repetition, so a
// whole-field spec over a composite value silently loses it; per-component
// specs are what let Build/Parse round-trip the value at all.
func compositeOf(seq int, kind value.Kind, names ...string) []schema.FieldSpec {
	specs := make([]schema.FieldSpec, len(names))
	for i, name := range names {
		specs[i] = schema.FieldSpec{
			Name:       name,
			Sequence:   seq,
			Coordinate: schema.Coordinate{Component: i + 1},
			Kind:       kind,
		}
	}
	return specs
}

// Registry returns every segment spec this package defines, keyed by
// segment id — hand this directly to reader.Registry/writer.Registry
// (both are map[string]*schema.SegmentSpec under the hood).
func Registry() map[string]*schema.SegmentSpec {
	return map[string]*schema.SegmentSpec{
		"MSH": MSH,
		"PID": PID,
		"PV1": PV1,
		"OBR": OBR,
		"OBX": OBX,
		"ORC": ORC,
		"MSA": MSA,
		"ERR": ERR,
	}
}
