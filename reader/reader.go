// Package reader layers sequence counting, trim mode, MSH-driven separator
// discovery, and schema-backed field typing on top of the lex package's
// byte-level tokens, producing message.Message values per spec.md §4.4.
//
// Grounded on parse/parser.go's Parser.Parse segment/field loop and its MSH
// delimiter bootstrapping, adapted to consume lex.Lexer tokens directly
// instead of bufio.Scanner lines, and restructured as a pure value type in
// the same style as lex.Lexer — Read(buf) returns the advanced Reader plus
// an Outcome — so resumption stays "a pure function of previously-seen
// state plus new bytes" (spec.md §4.3, §5) all the way up from the lexer.
package reader

import (
	"github.com/hl7bridge/hl7v2/codec"
	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/herrors"
	"github.com/hl7bridge/hl7v2/ir"
	"github.com/hl7bridge/hl7v2/lex"
	"github.com/hl7bridge/hl7v2/message"
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/segir"
	"github.com/hl7bridge/hl7v2/value"
)

// Registry resolves a three-character segment id to the spec describing
// its fields. message.Message only ever holds segment ids the registry
// recognizes; an id with no entry fails the read with UnknownSegmentID.
type Registry map[string]*schema.SegmentSpec

// Lookup returns the spec registered for id, if any.
func (r Registry) Lookup(id string) (*schema.SegmentSpec, bool) {
	spec, ok := r[id]
	return spec, ok
}

// Options configures a Reader.
type Options struct {
	Dialect  delim.Dialect
	Trim     bool
	Registry Registry
}

// Reader is an immutable snapshot of read progress: the underlying lexer
// state, the segment currently being assembled, and every segment
// completed so far. Read takes a buffer and returns the next Reader value
// plus an Outcome, mirroring lex.Lexer's Read contract one layer up.
type Reader struct {
	lexer    lex.Lexer
	opts     Options
	awaiting bool // true when the next Literal token is a segment id
	curID    string
	seq      int
	curField map[int]ir.Field
	segments []message.Segment
}

// New creates a Reader in its initial state, awaiting the first segment's
// id.
func New(opts Options) Reader {
	return Reader{lexer: lex.New(opts.Dialect), opts: opts, awaiting: true}
}

// Outcome is the result of one Read call.
type Outcome struct {
	// Rest holds the bytes not yet consumed; feed Rest plus more input to
	// the next Read call to resume.
	Rest []byte
	// Incomplete means more bytes are needed mid-segment; this is not
	// Done, since a segment boundary has not been reached.
	Incomplete bool
	// Done means the lexer reached Incomplete at a segment boundary — a
	// graceful end of message. Message() returns the completed message.
	Done bool
	Err  error
}

// Message returns every segment successfully assembled so far.
func (r Reader) Message() message.Message { return message.New(r.segments) }

// Read consumes one lexer token's worth of buf and returns the advanced
// Reader plus an Outcome. Call Read repeatedly, each time with Rest plus
// whatever new bytes have arrived, until Outcome.Done, Outcome.Err, or
// (if the stream is now known to be complete) Outcome.Incomplete with no
// further bytes forthcoming.
func (r Reader) Read(buf []byte) (Reader, Outcome) {
	nextLexer, lexOut := r.lexer.Read(buf)
	if lexOut.Err != nil {
		return r, Outcome{Rest: lexOut.Rest, Err: r.wrap(lexOut.Err)}
	}
	if lexOut.Incomplete {
		if nextLexer.AtSegmentBoundary() {
			return r, Outcome{Rest: lexOut.Rest, Done: true}
		}
		next := r
		next.lexer = nextLexer
		return next, Outcome{Rest: lexOut.Rest, Incomplete: true}
	}

	next := r
	next.lexer = nextLexer
	next, err := next.apply(lexOut.Token)
	if err != nil {
		return r, Outcome{Rest: lexOut.Rest, Err: err}
	}
	return next, Outcome{Rest: lexOut.Rest}
}

func (r Reader) apply(tok lex.Token) (Reader, error) {
	next := r

	switch tok.Kind {
	case lex.TokenLiteral:
		if next.awaiting {
			next.awaiting = false
			next.curID = string(tok.Bytes)
			next.seq = 0
			next.curField = make(map[int]ir.Field)
			return next, nil
		}
		// MSH.1 (the field separator byte) and MSH.2 (the four encoding
		// characters) arrive as literals: their bytes are the delimiter
		// alphabet itself, and running them back through decode_field
		// would re-split MSH.2 on the very separators it defines. They
		// are recorded as plain scalar values instead.
		next.curField = cloneFields(r.curField)
		next.curField[next.seq+1] = ir.Field{Single: ir.Repetition{Value: value.Value{Raw: string(tok.Bytes)}}}
		return next, nil

	case lex.TokenValue:
		field := codec.DecodeField(tok.Bytes, r.lexer.Separators(), r.opts.Trim)
		next.curField = cloneFields(r.curField)
		next.curField[next.seq+1] = field
		return next, nil

	case lex.TokenSeparator:
		switch tok.Sep {
		case lex.SepField:
			next.seq = r.seq + 1
			return next, nil
		case lex.SepSegment:
			seg, err := r.finalizeSegment()
			if err != nil {
				return r, err
			}
			segs := make([]message.Segment, len(r.segments)+1)
			copy(segs, r.segments)
			segs[len(r.segments)] = seg
			next.segments = segs
			next.awaiting = true
			next.curID = ""
			next.curField = nil
			next.seq = 0
			return next, nil
		}
	}
	return next, nil
}

func (r Reader) finalizeSegment() (message.Segment, error) {
	spec, ok := r.opts.Registry.Lookup(r.curID)
	if !ok {
		return message.Segment{}, r.wrap(herrors.UnknownSegmentID{ID: r.curID})
	}

	values := make(segir.Values)
	for _, seq := range spec.Sequences() {
		field := r.curField[seq]
		parsed, err := segir.Parse(spec.FieldsAt(seq), field)
		if err != nil {
			return message.Segment{}, r.wrap(err)
		}
		for name, v := range parsed {
			values[name] = v
		}
	}

	return message.Segment{ID: r.curID, Values: values}, nil
}

func (r Reader) wrap(cause error) error {
	return &herrors.ReadError{SegmentID: r.curID, Sequence: r.seq, Cause: cause}
}

func cloneFields(m map[int]ir.Field) map[int]ir.Field {
	out := make(map[int]ir.Field, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ReadAll runs a Reader over data to completion in one call, for callers
// that already hold the entire message in memory (the common case: the
// incremental Read contract exists for streaming MLLP input, not for
// one-shot in-memory parsing).
func ReadAll(data []byte, opts Options) (message.Message, error) {
	r := New(opts)
	buf := data
	for {
		next, out := r.Read(buf)
		if out.Err != nil {
			return message.Message{}, out.Err
		}
		if out.Done {
			return next.Message(), nil
		}
		if out.Incomplete {
			return message.Message{}, herrors.ErrIncomplete
		}
		r = next
		buf = out.Rest
	}
}
