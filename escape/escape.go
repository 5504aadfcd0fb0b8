// Package escape implements HL7 v2.x escape-sequence encoding and decoding
// over the five delimiter-class sequences (\F\ \S\ \T\ \R\ \E\). Escape
// operates only on primitive string values: delimiter bytes that appear
// literally inside a string value must be escaped before encoding and are
// unescaped after decoding.
package escape

import (
	"strings"

	"github.com/hl7bridge/hl7v2/delim"
)

// Escape replaces any of the four active delimiter bytes (and the escape
// byte itself) appearing in value with their HL7 escape sequence.
func Escape(value string, seps delim.Separators) string {
	if value == "" {
		return value
	}

	if !strings.ContainsAny(value, string([]byte{
		seps.Field, seps.Component, seps.SubComponent, seps.Repetition, seps.Escape,
	})) {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value) + 8)

	for i := 0; i < len(value); i++ {
		b := value[i]
		switch b {
		case seps.Escape:
			writeSeq(&sb, seps.Escape, 'E')
		case seps.Field:
			writeSeq(&sb, seps.Escape, 'F')
		case seps.Component:
			writeSeq(&sb, seps.Escape, 'S')
		case seps.SubComponent:
			writeSeq(&sb, seps.Escape, 'T')
		case seps.Repetition:
			writeSeq(&sb, seps.Escape, 'R')
		default:
			sb.WriteByte(b)
		}
	}

	return sb.String()
}

func writeSeq(sb *strings.Builder, esc byte, code byte) {
	sb.WriteByte(esc)
	sb.WriteByte(code)
	sb.WriteByte(esc)
}

// Unescape decodes the five HL7 escape sequences in value back to their
// literal delimiter bytes. Any other <esc>X<esc> pattern is passed through
// unchanged, per spec.md §9's Open Question on unrecognized sequences —
// the source's behavior, preserved here rather than rejected.
func Unescape(value string, seps delim.Separators) string {
	if value == "" || !strings.ContainsRune(value, rune(seps.Escape)) {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value))

	i := 0
	for i < len(value) {
		if value[i] != seps.Escape {
			sb.WriteByte(value[i])
			i++
			continue
		}

		// Look for the closing escape byte.
		closeIdx := -1
		for j := i + 1; j < len(value); j++ {
			if value[j] == seps.Escape {
				closeIdx = j
				break
			}
		}

		if closeIdx == -1 {
			// No closing escape byte: pass the lone escape byte through.
			sb.WriteByte(value[i])
			i++
			continue
		}

		content := value[i+1 : closeIdx]
		if lit, ok := decodeCode(content, seps); ok {
			sb.WriteByte(lit)
			i = closeIdx + 1
			continue
		}

		// Unrecognized sequence: pass through unchanged, including both
		// escape bytes.
		sb.WriteString(value[i : closeIdx+1])
		i = closeIdx + 1
	}

	return sb.String()
}

func decodeCode(content string, seps delim.Separators) (byte, bool) {
	if len(content) != 1 {
		return 0, false
	}
	switch content[0] {
	case 'F':
		return seps.Field, true
	case 'S':
		return seps.Component, true
	case 'T':
		return seps.SubComponent, true
	case 'R':
		return seps.Repetition, true
	case 'E':
		return seps.Escape, true
	default:
		return 0, false
	}
}
