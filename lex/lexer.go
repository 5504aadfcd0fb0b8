// Package lex implements the incremental, byte-level HL7 v2.x tokenizer of
// spec.md §4.3: a state machine over ReadSegmentId, ReadDelimiters,
// ReadSeparator and ReadCharacters that reports "need more input" and
// resumes from the same point.
//
// Grounded on parse/scanner.go's state fields (pending []byte, MSH start-
// byte detection), but restructured from the teacher's blocking
// io.Reader-based Scan() loop into a pure Lexer.Read([]byte) value
// function: spec.md §4.3 and §9 require resumption to be "a pure function
// of previously-seen state plus new bytes," not a buffered-reader closure.
package lex

import (
	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/herrors"
)

// TokenKind identifies the shape of a Token's payload.
type TokenKind int

const (
	// TokenLiteral carries bytes that must not be run through the field
	// codec: a segment id, or (only for MSH) the field-separator byte
	// and the four-byte encoding-characters literal.
	TokenLiteral TokenKind = iota
	// TokenValue carries one field's raw, codec-addressable bytes.
	TokenValue
	// TokenSeparator marks a delimiter the lexer consumed; Sep says which.
	TokenSeparator
)

// SepKind is the delimiter role a Separator token reports. It extends
// delim.Kind with Segment, which delim has no byte classification for.
type SepKind int

const (
	SepField SepKind = iota
	SepComponent
	SepSubComponent
	SepRepetition
	SepSegment
)

// Token is one unit the lexer emits.
type Token struct {
	Kind  TokenKind
	Bytes []byte
	Sep   SepKind
}

type state int

const (
	stateSegmentID state = iota
	stateDelimiters
	stateSeparator
	stateCharacters
)

// Lexer is an immutable snapshot of tokenizer state. Read takes a buffer
// and returns the next Lexer value plus an Outcome; there is no mutation
// and no hidden buffering beyond the small token queue MSH's header needs.
type Lexer struct {
	state   state
	seps    delim.Separators
	dialect delim.Dialect
	queue   []Token
}

// New creates a Lexer in its initial ReadSegmentId state, using the
// default delimiters until an MSH header is observed.
func New(dialect delim.Dialect) Lexer {
	return Lexer{state: stateSegmentID, seps: delim.Default(), dialect: dialect}
}

// Separators returns the delimiter set currently active — the defaults
// until an MSH header has been read, after which the header's bytes.
func (l Lexer) Separators() delim.Separators { return l.seps }

// AtSegmentBoundary reports whether the lexer is positioned to read a new
// segment id with no buffered tokens pending — the point at which an
// Incomplete result means a graceful end of message rather than a
// mid-segment truncation (spec.md §4.4).
func (l Lexer) AtSegmentBoundary() bool { return l.state == stateSegmentID && len(l.queue) == 0 }

// Outcome is the result of one Read call.
type Outcome struct {
	Token      Token
	Rest       []byte
	Incomplete bool
	Err        error
}

// Read consumes as much of buf as it can and returns the advanced Lexer
// plus one Outcome. When Incomplete is true, Rest holds the entirety of
// the unconsumed suffix; the caller must call Read again on rest
// concatenated with more bytes to resume — the lexer itself retains no
// buffer beyond its small token queue.
func (l Lexer) Read(buf []byte) (Lexer, Outcome) {
	if len(l.queue) > 0 {
		tok := l.queue[0]
		next := l
		next.queue = l.queue[1:]
		return next, Outcome{Token: tok, Rest: buf}
	}

	switch l.state {
	case stateSegmentID:
		return l.readSegmentID(buf)
	case stateDelimiters:
		return l.readDelimiters(buf)
	case stateSeparator:
		return l.readSeparator(buf)
	default:
		return l.readCharacters(buf)
	}
}

func (l Lexer) readSegmentID(buf []byte) (Lexer, Outcome) {
	if len(buf) < 3 {
		return l, Outcome{Rest: buf, Incomplete: true}
	}
	id := buf[:3]
	rest := buf[3:]

	if string(id) == "MSH" {
		next := l
		next.state = stateDelimiters
		return next, Outcome{Token: Token{Kind: TokenLiteral, Bytes: id}, Rest: rest}
	}

	if isUpperLetter(id[0]) && isUpperOrDigit(id[1]) && isUpperOrDigit(id[2]) {
		next := l
		next.state = stateSeparator
		return next, Outcome{Token: Token{Kind: TokenLiteral, Bytes: id}, Rest: rest}
	}

	return l, Outcome{Rest: buf, Err: herrors.BadSegmentID{Got: string(id)}}
}

// readDelimiters consumes the five bytes that follow "MSH": the field
// separator itself (MSH.1) and the four encoding characters, in
// component/repetition/escape/subcomponent order (spec.md §6). It queues
// the synthetic field separator and the MSH.2 literal so the caller
// observes three tokens for this one five-byte header.
func (l Lexer) readDelimiters(buf []byte) (Lexer, Outcome) {
	if len(buf) < 5 {
		return l, Outcome{Rest: buf, Incomplete: true}
	}
	hdr := buf[:5]
	rest := buf[5:]

	for _, b := range hdr {
		if !delim.IsDelimiterCandidate(b) {
			return l, Outcome{Rest: buf, Err: herrors.BadDelimiters{Got: append([]byte(nil), hdr...)}}
		}
	}

	seps := delim.Separators{
		Field:        hdr[0],
		Component:    hdr[1],
		Repetition:   hdr[2],
		Escape:       hdr[3],
		SubComponent: hdr[4],
	}

	next := l
	next.seps = seps
	next.state = stateSeparator
	next.queue = []Token{
		{Kind: TokenSeparator, Sep: SepField},
		{Kind: TokenLiteral, Bytes: append([]byte(nil), hdr[1:5]...)},
	}
	return next, Outcome{Token: Token{Kind: TokenLiteral, Bytes: append([]byte(nil), hdr[0:1]...)}, Rest: rest}
}

func (l Lexer) readSeparator(buf []byte) (Lexer, Outcome) {
	if len(buf) < 1 {
		return l, Outcome{Rest: buf, Incomplete: true}
	}
	b := buf[0]
	rest := buf[1:]

	switch {
	case b == l.seps.Field:
		next := l
		next.state = stateCharacters
		return next, Outcome{Token: Token{Kind: TokenSeparator, Sep: SepField}, Rest: rest}
	case b == l.dialect.Terminator():
		next := l
		next.state = stateSegmentID
		return next, Outcome{Token: Token{Kind: TokenSeparator, Sep: SepSegment}, Rest: rest}
	default:
		return l, Outcome{Rest: buf, Err: herrors.BadSeparator{Got: b}}
	}
}

// readCharacters scans for the next field separator or segment terminator,
// validating that every byte along the way is printable. It emits the
// scanned span as one Value token and leaves the boundary byte itself for
// the next Read call (handled by readSeparator).
func (l Lexer) readCharacters(buf []byte) (Lexer, Outcome) {
	term := l.dialect.Terminator()
	for i, b := range buf {
		if b == l.seps.Field || b == term {
			val := buf[:i]
			for _, vb := range val {
				if !delim.IsPrintable(vb) {
					return l, Outcome{Rest: buf, Err: herrors.BadField{Got: vb}}
				}
			}
			next := l
			next.state = stateSeparator
			return next, Outcome{Token: Token{Kind: TokenValue, Bytes: val}, Rest: buf[i:]}
		}
	}
	for _, vb := range buf {
		if !delim.IsPrintable(vb) {
			return l, Outcome{Rest: buf, Err: herrors.BadField{Got: vb}}
		}
	}
	return l, Outcome{Rest: buf, Incomplete: true}
}

func isUpperLetter(b byte) bool { return b >= 'A' && b <= 'Z' }

func isUpperOrDigit(b byte) bool { return isUpperLetter(b) || (b >= '0' && b <= '9') }
