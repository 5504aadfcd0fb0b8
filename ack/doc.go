// Package ack builds HL7 v2.x acknowledgment (ACK) messages in response
// to a parsed message.Message.
//
// An ACK message consists of:
//   - MSH: header, with sending/receiving application and facility
//     swapped from the original message
//   - MSA: acknowledgment code (AA/AE/AR/CA/CE/CR) and the original
//     message's control ID
//   - ERR: optional, present for error and reject acknowledgments that
//     carry error detail
//
// # Basic usage
//
//	b := ack.NewBuilder()
//	reply, err := b.Accept(original)
//	if err != nil {
//	    return err
//	}
//	out, err := writer.Write(reply, writerOpts)
//
// Reject and Error both take the original message plus descriptive text:
//
//	reply, err := b.Reject(original, "unsupported message type")
//	reply, err := b.Error(original, processingErr)
//
// Custom gives full control over the acknowledgment code and ERR detail:
//
//	reply, err := b.Custom(original, ack.ACK{
//	    Code:          ack.ApplicationError,
//	    ControlID:     controlID,
//	    ErrorCode:     "101",
//	    ErrorLocation: "PID-3",
//	    ErrorMessage:  "patient identifier is required",
//	    Severity:      "E",
//	})
package ack
