// Package validate checks a parsed message.Message's structure against a
// segment registry.
//
// It checks exactly three things:
//   - MSH is present
//   - every segment's id resolves to a registered schema.SegmentSpec
//   - every field a spec marks Required carries a non-empty value
//
// It does not validate business-level correctness of HL7 content — code
// table membership, conditional field usage, value patterns — that is out
// of scope for this package.
//
// # Basic usage
//
//	v := validate.New(segments.Registry())
//	result := v.Validate(msg)
//	if !result.Valid() {
//	    for _, err := range result.Errors() {
//	        log.Println(err)
//	    }
//	}
package validate
