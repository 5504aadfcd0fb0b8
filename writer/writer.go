// Package writer is the inverse of reader: it accumulates the wire bytes
// of a message from schema-typed segment values, honoring the MSH header's
// two-step literal mode and the trim-trailing-delimiters-before-terminator
// policy of spec.md §4.5.
//
// Grounded on encode/encoder.go's segment-join-plus-line-ending shape and
// encode/writer.go's buffered accumulator, restructured around the
// start_segment/put_field/end_segment primitives spec.md §4.5 names
// instead of the teacher's one-shot Encode(msg) []byte call — segir.Build
// produces one field's IR at a time, so the writer advances a field at a
// time to match.
package writer

import (
	"fmt"

	"github.com/hl7bridge/hl7v2/codec"
	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/herrors"
	"github.com/hl7bridge/hl7v2/ir"
	"github.com/hl7bridge/hl7v2/message"
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/segir"
)

// Registry resolves a segment id to the spec describing its fields, the
// same shape reader.Registry uses.
type Registry map[string]*schema.SegmentSpec

// Lookup returns the spec registered for id, if any.
func (r Registry) Lookup(id string) (*schema.SegmentSpec, bool) {
	spec, ok := r[id]
	return spec, ok
}

// Options configures a Writer.
type Options struct {
	Dialect    delim.Dialect
	Trim       bool
	Separators delim.Separators
	Registry   Registry
}

// Writer accumulates one message's wire bytes across start_message,
// start_segment/put_field/end_segment, and end_message calls.
type Writer struct {
	opts     Options
	buf      []byte
	segStart int
	curID    string
}

// New creates a Writer. Call StartMessage before the first segment.
func New(opts Options) *Writer {
	return &Writer{opts: opts}
}

// StartMessage resets the accumulator for a new message.
func (w *Writer) StartMessage() { w.buf = w.buf[:0] }

// EndMessage returns the accumulated bytes.
func (w *Writer) EndMessage() []byte { return w.buf }

// StartSegment writes id's three bytes. For MSH, it additionally writes
// the field-separator byte and the four encoding characters as literals,
// never through the field codec — their bytes are the delimiter alphabet
// itself, not values addressable by it.
func (w *Writer) StartSegment(id string) {
	w.curID = id
	w.segStart = len(w.buf)
	w.buf = append(w.buf, id...)
	if id == "MSH" {
		seps := w.opts.Separators
		w.buf = append(w.buf, seps.Field, seps.Component, seps.Repetition, seps.Escape, seps.SubComponent)
	}
}

// PutField writes one field separator followed by field's codec-encoded
// bytes.
func (w *Writer) PutField(field ir.Field) {
	w.buf = append(w.buf, w.opts.Separators.Field)
	w.buf = append(w.buf, codec.EncodeField(field, w.opts.Separators, w.opts.Trim)...)
}

// EndSegment strips a trailing run of delimiter bytes when trim is
// enabled, then writes the segment terminator.
func (w *Writer) EndSegment() {
	if w.opts.Trim {
		w.buf = trimTrailingDelimiters(w.buf, w.segStart, w.opts.Separators)
	}
	w.buf = append(w.buf, w.opts.Dialect.Terminator())
}

func trimTrailingDelimiters(buf []byte, start int, seps delim.Separators) []byte {
	end := len(buf)
	for end > start && seps.KindOf(buf[end-1]) != delim.NoMatch {
		end--
	}
	return buf[:end]
}

// Write renders a complete message to wire bytes, looking up each
// segment's spec in opts.Registry and driving Start/Put/End for every
// sequence the spec declares.
func Write(msg message.Message, opts Options) ([]byte, error) {
	w := New(opts)
	w.StartMessage()

	for _, seg := range msg.Segments() {
		spec, ok := opts.Registry.Lookup(seg.ID)
		if !ok {
			return nil, fmt.Errorf("writer: segment %q: %w", seg.ID, herrors.UnknownSegmentID{ID: seg.ID})
		}

		w.StartSegment(seg.ID)
		for seqNum := 1; seqNum <= spec.MaxSequence(); seqNum++ {
			if seg.ID == "MSH" && seqNum <= 2 {
				continue // already written by StartSegment's literal header
			}
			field := segir.Build(spec.FieldsAt(seqNum), seg.Values)
			w.PutField(field)
		}
		w.EndSegment()
	}

	return w.EndMessage(), nil
}
