package validate

import (
	"fmt"
	"strings"

	"github.com/hl7bridge/hl7v2/message"
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// ValidationError represents a structural validation failure.
type ValidationError struct {
	// Location is the segment id, or segment.field name, where validation failed.
	Location string
	// Rule names the structural check that failed.
	Rule string
	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error")
	if e.Location != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Location)
	}
	if e.Rule != "" {
		sb.WriteString(" [")
		sb.WriteString(e.Rule)
		sb.WriteString("]")
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// Result is the outcome of validating a message.
type Result struct {
	errors []ValidationError
}

// Valid returns true if no validation errors occurred.
func (r Result) Valid() bool { return len(r.errors) == 0 }

// Errors returns every validation error found, in message order.
func (r Result) Errors() []ValidationError {
	cp := make([]ValidationError, len(r.errors))
	copy(cp, r.errors)
	return cp
}

// Validator checks a message's structure against a segment registry:
// that MSH is present, that every segment's id resolves to a known spec,
// and that every field a spec marks Required carries a non-empty value.
//
// It deliberately does not check business-level correctness — code-table
// membership, conditional field usage, value patterns — which spec.md's
// Non-goals explicitly exclude.
type Validator struct {
	registry map[string]*schema.SegmentSpec
}

// New creates a Validator checking segments against registry.
func New(registry map[string]*schema.SegmentSpec) Validator {
	return Validator{registry: registry}
}

// Validate runs every structural check against msg.
func (v Validator) Validate(msg message.Message) Result {
	var errs []ValidationError

	if _, ok := msg.Segment("MSH", 0); !ok {
		errs = append(errs, ValidationError{
			Location: "MSH",
			Rule:     "msh-present",
			Message:  "message has no MSH segment",
		})
	}

	for _, seg := range msg.Segments() {
		spec, ok := v.registry[seg.ID]
		if !ok {
			errs = append(errs, ValidationError{
				Location: seg.ID,
				Rule:     "known-segment",
				Message:  fmt.Sprintf("segment id %q has no registered schema", seg.ID),
			})
			continue
		}
		errs = append(errs, v.validateRequiredFields(spec, seg)...)
	}

	return Result{errors: errs}
}

func (v Validator) validateRequiredFields(spec *schema.SegmentSpec, seg message.Segment) []ValidationError {
	var errs []ValidationError
	for _, seq := range spec.Sequences() {
		for _, fs := range spec.FieldsAt(seq) {
			if !fs.Required {
				continue
			}
			vals, ok := seg.Values[fs.Name]
			if !ok || len(vals) == 0 || allEmpty(vals) {
				errs = append(errs, ValidationError{
					Location: fmt.Sprintf("%s.%s", seg.ID, fs.Name),
					Rule:     "required-field",
					Message:  "required field is missing or empty",
				})
			}
		}
	}
	return errs
}

func allEmpty(vals []value.Value) bool {
	for _, v := range vals {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}
