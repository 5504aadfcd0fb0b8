// Package herrors defines the HL7 v2.x error taxonomy: the kinds a read can
// fail with, and the context (segment id, sequence, raw value) each kind
// carries. The codec and lexer never retry; every failure surfaces to the
// reader, which annotates it with the segment id and sequence active when
// the failure occurred (spec.md §7).
package herrors

import (
	"errors"
	"fmt"

	"github.com/hl7bridge/hl7v2/value"
)

// Sentinel errors for each error kind in spec.md §7. Wrap with errors.Is
// against these, or type-switch on the carrying struct for context fields.
var (
	// ErrIncomplete is not a failure — it signals the reader needs more
	// input before it can produce the next token or segment.
	ErrIncomplete = errors.New("hl7: incomplete input")

	ErrBadSegmentID     = errors.New("hl7: bad segment id")
	ErrBadDelimiters    = errors.New("hl7: bad delimiters")
	ErrBadSeparator     = errors.New("hl7: bad separator")
	ErrBadField         = errors.New("hl7: bad field")
	ErrBadValue         = value.ErrBadValue
	ErrBadMLLPFraming   = errors.New("hl7: bad mllp framing")
	ErrUnknownSegmentID = errors.New("hl7: unknown segment id")
)

// BadSegmentID indicates the three bytes at a segment boundary did not
// match the segment-id grammar (MSH, or [A-Z][A-Z0-9]{2}).
type BadSegmentID struct {
	Got string
}

func (e BadSegmentID) Error() string { return fmt.Sprintf("hl7: bad segment id %q", e.Got) }
func (e BadSegmentID) Unwrap() error { return ErrBadSegmentID }

// BadDelimiters indicates the five MSH header bytes were not valid
// delimiter candidates (printable, non-alphanumeric ASCII).
type BadDelimiters struct {
	Got []byte
}

func (e BadDelimiters) Error() string {
	return fmt.Sprintf("hl7: bad MSH delimiter header %q", e.Got)
}
func (e BadDelimiters) Unwrap() error { return ErrBadDelimiters }

// BadSeparator indicates a byte following a field's end was neither the
// active field separator nor the segment terminator.
type BadSeparator struct {
	Got byte
}

func (e BadSeparator) Error() string {
	return fmt.Sprintf("hl7: bad separator byte 0x%02x", e.Got)
}
func (e BadSeparator) Unwrap() error { return ErrBadSeparator }

// BadField indicates a field's payload contained a byte outside the
// permitted printable range (ASCII 0x20-0x7E or Latin-1 0xA0-0xFF).
type BadField struct {
	Got byte
}

func (e BadField) Error() string {
	return fmt.Sprintf("hl7: bad field: non-printable byte 0x%02x", e.Got)
}
func (e BadField) Unwrap() error { return ErrBadField }

// BadValue indicates a value could not be decoded into its declared
// primitive kind.
type BadValue struct {
	Raw   string
	Cause error
}

func (e BadValue) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("hl7: bad value %q: %v", e.Raw, e.Cause)
	}
	return fmt.Sprintf("hl7: bad value %q", e.Raw)
}
func (e BadValue) Unwrap() error { return ErrBadValue }

// BadMLLPFraming indicates a malformed MLLP envelope.
type BadMLLPFraming struct {
	Reason string
}

func (e BadMLLPFraming) Error() string { return fmt.Sprintf("hl7: bad mllp framing: %s", e.Reason) }
func (e BadMLLPFraming) Unwrap() error { return ErrBadMLLPFraming }

// UnknownSegmentID indicates no schema is registered for a segment id
// encountered while reading. The reader stops; partial results prior to
// the failure are discarded.
type UnknownSegmentID struct {
	ID string
}

func (e UnknownSegmentID) Error() string { return fmt.Sprintf("hl7: unknown segment id %q", e.ID) }
func (e UnknownSegmentID) Unwrap() error { return ErrUnknownSegmentID }

// ReadError annotates any of the above with the segment id and 1-based
// field sequence number that were active in the reader when the failure
// occurred, per spec.md §7's propagation rule.
type ReadError struct {
	SegmentID string
	Sequence  int
	Cause     error
}

func (e *ReadError) Error() string {
	if e.SegmentID == "" {
		return fmt.Sprintf("hl7: %v", e.Cause)
	}
	if e.Sequence == 0 {
		return fmt.Sprintf("hl7: segment %s: %v", e.SegmentID, e.Cause)
	}
	return fmt.Sprintf("hl7: segment %s, field %d: %v", e.SegmentID, e.Sequence, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }
