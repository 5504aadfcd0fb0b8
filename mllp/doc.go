// Package mllp provides MLLP (Minimal Lower Layer Protocol) framing for
// HL7 v2.x messages.
//
// MLLP is the standard transport envelope for HL7 messages over TCP/IP. It
// defines a simple framing mechanism using control characters to delimit
// message boundaries; nothing about the socket, retry, or TLS layer above
// that envelope is this package's concern — callers own their own
// transport and call ToMLLP/FromMLLP on whatever bytes cross it.
//
// # MLLP Frame Format
//
// An MLLP frame consists of:
//   - Start Block: 0x0B (vertical tab, VT)
//   - HL7 Message Data
//   - End Block: 0x1C (file separator, FS)
//   - Carriage Return: 0x0D (CR)
//
// Frame structure:
//
//	<VT>...HL7 Message Data...<FS><CR>
//	 |                        |   |
//	 0x0B                   0x1C 0x0D
//
// # Usage
//
//	framed := mllp.ToMLLP(encoded)
//	conn.Write(framed)
//
//	buf = append(buf, readFromConn()...)
//	inner, incomplete, err := mllp.FromMLLP(buf)
//	if incomplete {
//	    continue // wait for more bytes, buf is still a valid prefix
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	msg, err := reader.ReadAll(inner, readerOpts)
package mllp
