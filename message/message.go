// Package message implements the purely functional message-level
// operations of spec.md §4.8: positional segment lookup, paired-segment
// scanning, reduce-over-groups, and the edit primitives (insert/replace/
// delete), all addressed by (segment id, repetition).
//
// Grounded on hl7/message.go's Segment/Segments/AllSegments/InsertSegment/
// RemoveSegment and hl7/segment.go, but the teacher's mutable in-place
// message struct is replaced with copy-on-write edit primitives per
// spec.md §3 ("a Message is an immutable value; edit primitives return new
// messages"). PairedSegments and ReducePairedSegments are new — spec.md
// §4.8 describes a state machine with no equivalent in the teacher, and
// this spec's Open Question (§9) resolves "strict vs gap-tolerant" in
// favor of the gap-tolerant variant.
package message

import "github.com/hl7bridge/hl7v2/segir"

// Segment is one segment instance: its three-character id and the typed
// values of its schema-mapped attributes.
type Segment struct {
	ID     string
	Values segir.Values
}

// Message is an ordered, immutable sequence of segments.
type Message struct {
	segments []Segment
}

// New builds a Message from segments, copying the slice so later mutation
// of the caller's slice cannot affect the Message.
func New(segments []Segment) Message {
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return Message{segments: cp}
}

// Segments returns every segment in the message, in order. The returned
// slice is a copy.
func (m Message) Segments() []Segment {
	cp := make([]Segment, len(m.segments))
	copy(cp, m.segments)
	return cp
}

// Len returns the number of segments in the message.
func (m Message) Len() int { return len(m.segments) }

// Segment returns the (rep+1)-th segment whose id equals id (rep is
// 0-based), or false if fewer than rep+1 such segments exist.
func (m Message) Segment(id string, rep int) (Segment, bool) {
	n := 0
	for _, seg := range m.segments {
		if seg.ID == id {
			if n == rep {
				return seg, true
			}
			n++
		}
	}
	return Segment{}, false
}

// SegmentCount returns how many segments in the message have the given id.
func (m Message) SegmentCount(id string) int {
	n := 0
	for _, seg := range m.segments {
		if seg.ID == id {
			n++
		}
	}
	return n
}

// PairedSegments locates the first occurrence of ids[0] at the given
// repetition, then walks forward: each subsequent segment either matches
// the next expected id (included, advance) or does not, in which case the
// expected id is treated as optional and dropped and the same segment is
// retried against the new head; no segment is skipped. The scan stops when the expected list is
// exhausted or the message runs out. Returns the accumulated group in
// original order, or nil if ids[0] has no occurrence at rep.
func (m Message) PairedSegments(ids []string, rep int) []Segment {
	if len(ids) == 0 {
		return nil
	}

	start := -1
	n := 0
	for i, seg := range m.segments {
		if seg.ID == ids[0] {
			if n == rep {
				start = i
				break
			}
			n++
		}
	}
	if start == -1 {
		return nil
	}

	group := []Segment{m.segments[start]}
	expected := ids[1:]

	for i := start + 1; i < len(m.segments) && len(expected) > 0; {
		seg := m.segments[i]
		if seg.ID == expected[0] {
			group = append(group, seg)
			expected = expected[1:]
			i++
			continue
		}
		// Optional middle element: drop it from the expectation and
		// retry the same segment against the new head.
		expected = expected[1:]
	}

	return group
}

// ReducePairedSegments calls PairedSegments repeatedly, starting at
// startRep and advancing by one group each time, folding fun(group, index,
// acc) until no further group starting with ids[0] exists.
func ReducePairedSegments[T any](m Message, ids []string, startRep int, acc T, fun func(group []Segment, index int, acc T) T) T {
	index := 0
	for rep := startRep; ; rep++ {
		group := m.PairedSegments(ids, rep)
		if group == nil {
			return acc
		}
		acc = fun(group, index, acc)
		index++
	}
}

// findIndex returns the slice index of the (rep+1)-th segment with id, or
// -1 if it does not exist.
func (m Message) findIndex(id string, rep int) int {
	n := 0
	for i, seg := range m.segments {
		if seg.ID == id {
			if n == rep {
				return i
			}
			n++
		}
	}
	return -1
}

// InsertBefore returns a new Message with seg(s) inserted immediately
// before the (rep+1)-th segment with id. If that repetition does not
// exist, the message is returned unchanged.
func (m Message) InsertBefore(id string, rep int, segs ...Segment) Message {
	idx := m.findIndex(id, rep)
	if idx == -1 {
		return m
	}
	return m.insertAt(idx, segs)
}

// InsertAfter returns a new Message with seg(s) inserted immediately after
// the (rep+1)-th segment with id. If that repetition does not exist, the
// message is returned unchanged.
func (m Message) InsertAfter(id string, rep int, segs ...Segment) Message {
	idx := m.findIndex(id, rep)
	if idx == -1 {
		return m
	}
	return m.insertAt(idx+1, segs)
}

func (m Message) insertAt(idx int, segs []Segment) Message {
	out := make([]Segment, 0, len(m.segments)+len(segs))
	out = append(out, m.segments[:idx]...)
	out = append(out, segs...)
	out = append(out, m.segments[idx:]...)
	return Message{segments: out}
}

// Replace returns a new Message with the (rep+1)-th segment with id
// replaced by seg(s). If that repetition does not exist, the message is
// returned unchanged.
func (m Message) Replace(id string, rep int, segs ...Segment) Message {
	idx := m.findIndex(id, rep)
	if idx == -1 {
		return m
	}
	out := make([]Segment, 0, len(m.segments)-1+len(segs))
	out = append(out, m.segments[:idx]...)
	out = append(out, segs...)
	out = append(out, m.segments[idx+1:]...)
	return Message{segments: out}
}

// Delete returns a new Message with the (rep+1)-th segment with id
// removed. If that repetition does not exist, the message is returned
// unchanged.
func (m Message) Delete(id string, rep int) Message {
	idx := m.findIndex(id, rep)
	if idx == -1 {
		return m
	}
	out := make([]Segment, 0, len(m.segments)-1)
	out = append(out, m.segments[:idx]...)
	out = append(out, m.segments[idx+1:]...)
	return Message{segments: out}
}
