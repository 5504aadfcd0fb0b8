package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// MSH is the Message Header segment spec. MSH.1 and MSH.2 are scalar
// fields like any other here — the reader and writer special-case their
// literal bytes, not the schema describing them.
var MSH = mustSpec("MSH",
	schema.FieldSpec{Name: "FieldSeparator", Sequence: 1, Kind: value.String, MaxLen: 1},
	schema.FieldSpec{Name: "EncodingCharacters", Sequence: 2, Kind: value.String, MaxLen: 4},
	schema.FieldSpec{Name: "SendingApplication", Sequence: 3, Kind: value.String},
	schema.FieldSpec{Name: "SendingFacility", Sequence: 4, Kind: value.String},
	schema.FieldSpec{Name: "ReceivingApplication", Sequence: 5, Kind: value.String},
	schema.FieldSpec{Name: "ReceivingFacility", Sequence: 6, Kind: value.String},
	schema.FieldSpec{Name: "DateTime", Sequence: 7, Kind: value.DateTime},
	schema.FieldSpec{Name: "Security", Sequence: 8, Kind: value.String},
	schema.FieldSpec{Name: "MessageCode", Sequence: 9, Coordinate: schema.Coordinate{Component: 1}, Kind: value.String, MaxLen: 3, Required: true},
	schema.FieldSpec{Name: "TriggerEvent", Sequence: 9, Coordinate: schema.Coordinate{Component: 2}, Kind: value.String, MaxLen: 3, Required: true},
	schema.FieldSpec{Name: "MessageControlID", Sequence: 10, Kind: value.String, MaxLen: 20, Required: true},
	schema.FieldSpec{Name: "ProcessingID", Sequence: 11, Kind: value.String, MaxLen: 3, Required: true},
	schema.FieldSpec{Name: "VersionID", Sequence: 12, Kind: value.String, MaxLen: 60, Required: true},
	schema.FieldSpec{Name: "SequenceNumber", Sequence: 13, Kind: value.Integer},
	schema.FieldSpec{Name: "ContinuationPointer", Sequence: 14, Kind: value.String},
	schema.FieldSpec{Name: "AcceptAckType", Sequence: 15, Kind: value.String, MaxLen: 2},
	schema.FieldSpec{Name: "ApplicationAckType", Sequence: 16, Kind: value.String, MaxLen: 2},
	schema.FieldSpec{Name: "CountryCode", Sequence: 17, Kind: value.String, MaxLen: 3},
	schema.FieldSpec{Name: "CharacterSet", Sequence: 18, Kind: value.String},
	schema.FieldSpec{Name: "PrincipalLanguage", Sequence: 19, Kind: value.String},
	schema.FieldSpec{Name: "AlternateCharacterSetHandling", Sequence: 20, Kind: value.String},
	schema.FieldSpec{Name: "MessageProfileIdentifier", Sequence: 21, Kind: value.String},
)
