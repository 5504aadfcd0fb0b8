// Package mllp implements the pure MLLP framing functions of spec.md §4.9:
// wrapping an encoded message in its start/end block bytes and the inverse,
// with an explicit incomplete-vs-malformed distinction so a caller reading
// off a growing buffer can tell "wait for more bytes" apart from "this
// framing is wrong."
//
// Grounded on mllp/mllp.go's Frame/Unframe functions, trimmed to the pure
// byte-slice contract spec.md §4.9 and §6 describe (to_mllp/from_mllp are
// functions over byte slices, not streaming types). The teacher's
// io.Reader/bufio-based Reader/Writer and its client.go, server.go,
// handler.go (TCP listener, dial, connection pool, retry, TLS) are
// transport above MLLP framing and out of spec.md §1's scope — deleted,
// not adapted.
package mllp

import "github.com/hl7bridge/hl7v2/herrors"

// MLLP framing bytes, as defined by the HL7 v2.x standard for message
// transmission over TCP/IP.
const (
	StartBlock     = 0x0B
	EndBlock       = 0x1C
	CarriageReturn = 0x0D
)

// ToMLLP wraps data in MLLP framing: StartBlock, data, EndBlock,
// CarriageReturn.
func ToMLLP(data []byte) []byte {
	out := make([]byte, 0, len(data)+3)
	out = append(out, StartBlock)
	out = append(out, data...)
	out = append(out, EndBlock, CarriageReturn)
	return out
}

// FromMLLP removes MLLP framing from data and returns the enclosed bytes.
// When data is a prefix of a valid frame — it starts with StartBlock but
// has not yet seen its closing EndBlock/CarriageReturn pair — incomplete
// is true and err is nil: the caller should retry FromMLLP once more bytes
// have arrived. Any other malformed framing is reported as
// herrors.BadMLLPFraming.
func FromMLLP(data []byte) (inner []byte, incomplete bool, err error) {
	if len(data) == 0 || data[0] != StartBlock {
		return nil, false, herrors.BadMLLPFraming{Reason: "missing start block"}
	}

	if len(data) < 3 {
		return nil, true, nil
	}

	if data[len(data)-2] != EndBlock || data[len(data)-1] != CarriageReturn {
		// No closing sequence at the end yet; this is a prefix of a valid
		// frame, not a malformed one — the payload itself may legally
		// contain EndBlock/CarriageReturn bytes, so only the trailer counts.
		return nil, true, nil
	}

	return data[1 : len(data)-2], false, nil
}
