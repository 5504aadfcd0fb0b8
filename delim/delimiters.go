// Package delim holds the HL7 v2.x delimiter quintuple and escape byte and
// classifies bytes into delimiter kinds.
package delim

import "fmt"

// SegmentTerminator dialects understood by the lexer and writer.
type Dialect int

const (
	// Wire terminates segments with a carriage return (0x0D).
	Wire Dialect = iota
	// Text terminates segments with a line feed (0x0A).
	Text
)

// Terminator returns the segment-terminator byte for the dialect.
func (d Dialect) Terminator() byte {
	if d == Text {
		return '\n'
	}
	return '\r'
}

// Default delimiter glyphs, used only when synthesizing new messages.
const (
	DefaultField        = '|'
	DefaultComponent    = '^'
	DefaultSubComponent = '&'
	DefaultRepetition   = '~'
	DefaultEscape       = '\\'
)

// Kind identifies which of the four delimiter roles a byte plays.
type Kind int

const (
	// NoMatch means the byte is not one of the active delimiters.
	NoMatch Kind = iota
	Field
	Component
	SubComponent
	Repetition
)

// Separators is the ordered quintuple of delimiter bytes plus the escape
// byte that governs one HL7 message.
type Separators struct {
	Field        byte
	Component    byte
	SubComponent byte
	Repetition   byte
	Escape       byte
}

// Default returns the standard HL7 v2.x delimiters.
func Default() Separators {
	return Separators{
		Field:        DefaultField,
		Component:    DefaultComponent,
		SubComponent: DefaultSubComponent,
		Repetition:   DefaultRepetition,
		Escape:       DefaultEscape,
	}
}

// KindOf classifies b against the active separators. The escape byte is
// independent of the four delimiter bytes and never matches a Kind.
func (s Separators) KindOf(b byte) Kind {
	switch b {
	case s.Field:
		return Field
	case s.Component:
		return Component
	case s.SubComponent:
		return SubComponent
	case s.Repetition:
		return Repetition
	default:
		return NoMatch
	}
}

// ByteOf returns the active delimiter byte for kind. Panics on NoMatch,
// which is never a valid argument — callers only ever look up one of the
// four concrete kinds.
func (s Separators) ByteOf(kind Kind) byte {
	switch kind {
	case Field:
		return s.Field
	case Component:
		return s.Component
	case SubComponent:
		return s.SubComponent
	case Repetition:
		return s.Repetition
	default:
		panic(fmt.Sprintf("delim: ByteOf called with %v", kind))
	}
}

// IsDelimiterCandidate reports whether b is an acceptable delimiter byte
// for the MSH-2 header: printable, non-alphanumeric ASCII. This matches
// the source's permissive rule (spec.md §9 Open Question) rather than a
// stricter HL7-profile allowlist.
func IsDelimiterCandidate(b byte) bool {
	if b < 0x21 || b > 0x7E {
		return false
	}
	if b >= '0' && b <= '9' {
		return false
	}
	if b >= 'A' && b <= 'Z' {
		return false
	}
	if b >= 'a' && b <= 'z' {
		return false
	}
	return true
}

// IsPrintable reports whether b is in the permitted value byte range:
// ASCII 0x20-0x7E or Latin-1 0xA0-0xFF.
func IsPrintable(b byte) bool {
	return (b >= 0x20 && b <= 0x7E) || b >= 0xA0
}
