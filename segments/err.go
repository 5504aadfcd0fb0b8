package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// ERR is the Error segment spec.
var ERR = mustSpec("ERR",
	schema.FieldSpec{Name: "ErrorCodeAndLocation", Sequence: 1, Kind: value.String},
	schema.FieldSpec{Name: "ErrorLocation", Sequence: 2, Kind: value.String},
	schema.FieldSpec{Name: "HL7ErrorCode", Sequence: 3, Kind: value.String},
	schema.FieldSpec{Name: "Severity", Sequence: 4, Kind: value.String, MaxLen: 1},
	schema.FieldSpec{Name: "ApplicationErrorCode", Sequence: 5, Kind: value.String},
	schema.FieldSpec{Name: "ApplicationErrorParameter", Sequence: 6, Kind: value.String},
	schema.FieldSpec{Name: "DiagnosticInformation", Sequence: 7, Kind: value.String},
	schema.FieldSpec{Name: "UserMessage", Sequence: 8, Kind: value.String},
	schema.FieldSpec{Name: "InformPersonIndicator", Sequence: 9, Kind: value.String},
	schema.FieldSpec{Name: "OverrideType", Sequence: 10, Kind: value.String},
	schema.FieldSpec{Name: "OverrideReasonCode", Sequence: 11, Kind: value.String},
	schema.FieldSpec{Name: "HelpDeskContactPoint", Sequence: 12, Kind: value.String},
)
