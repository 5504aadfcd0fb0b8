package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// MSA is the Message Acknowledgment segment spec.
var MSA = mustSpec("MSA",
	schema.FieldSpec{Name: "AcknowledgmentCode", Sequence: 1, Kind: value.String, MaxLen: 2},
	schema.FieldSpec{Name: "MessageControlID", Sequence: 2, Kind: value.String, MaxLen: 20},
	schema.FieldSpec{Name: "TextMessage", Sequence: 3, Kind: value.String},
	schema.FieldSpec{Name: "ExpectedSequenceNumber", Sequence: 4, Kind: value.Integer},
	schema.FieldSpec{Name: "ErrorCondition", Sequence: 6, Kind: value.String},
)
