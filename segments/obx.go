package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// OBX is the Observation Result segment spec.
//
// ObservationIdentifier and PerformingOrganizationMedicalDirector are
// CE/XCN composites, expanded into one FieldSpec per named component via
// compositeOf — see its doc comment for why a whole-field coordinate
// would otherwise lose the value. ObservationValue is left a whole-field
// string: its actual shape varies with ValueType (NM, ST, CE, …), so no
// fixed composite spec can describe it.
var OBX = mustSpec("OBX", obxFields()...)

func obxFields() []schema.FieldSpec {
	specs := []schema.FieldSpec{
		{Name: "SetID", Sequence: 1, Kind: value.Integer},
		{Name: "ValueType", Sequence: 2, Kind: value.String, MaxLen: 2},
	}

	specs = append(specs, compositeOf(3, value.String,
		"ObservationIdentifier", "ObservationText", "ObservationCodingSystem",
		"ObservationAlternateIdentifier", "ObservationAlternateText", "ObservationAlternateCodingSystem")...)

	specs = append(specs,
		schema.FieldSpec{Name: "ObservationSubID", Sequence: 4, Kind: value.String},
		schema.FieldSpec{Name: "ObservationValue", Sequence: 5, Kind: value.String},
		schema.FieldSpec{Name: "Units", Sequence: 6, Kind: value.String},
		schema.FieldSpec{Name: "ReferencesRange", Sequence: 7, Kind: value.String},
		schema.FieldSpec{Name: "AbnormalFlags", Sequence: 8, Kind: value.String},
		schema.FieldSpec{Name: "Probability", Sequence: 9, Kind: value.Float},
		schema.FieldSpec{Name: "NatureOfAbnormalTest", Sequence: 10, Kind: value.String},
		schema.FieldSpec{Name: "ObservationResultStatus", Sequence: 11, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "EffectiveDateOfReferenceRange", Sequence: 12, Kind: value.DateTime},
		schema.FieldSpec{Name: "UserDefinedAccessChecks", Sequence: 13, Kind: value.String},
		schema.FieldSpec{Name: "DateTimeOfObservation", Sequence: 14, Kind: value.DateTime},
		schema.FieldSpec{Name: "ProducersID", Sequence: 15, Kind: value.String},
		schema.FieldSpec{Name: "ResponsibleObserver", Sequence: 16, Kind: value.String},
		schema.FieldSpec{Name: "ObservationMethod", Sequence: 17, Kind: value.String},
		schema.FieldSpec{Name: "EquipmentInstanceIdentifier", Sequence: 18, Kind: value.String},
		schema.FieldSpec{Name: "DateTimeOfAnalysis", Sequence: 19, Kind: value.DateTime},
		schema.FieldSpec{Name: "ObservationSite", Sequence: 20, Kind: value.String},
		schema.FieldSpec{Name: "ObservationInstanceIdentifier", Sequence: 21, Kind: value.String},
		schema.FieldSpec{Name: "MoodCode", Sequence: 22, Kind: value.String},
		schema.FieldSpec{Name: "PerformingOrganizationName", Sequence: 23, Kind: value.String},
		schema.FieldSpec{Name: "PerformingOrganizationAddress", Sequence: 24, Kind: value.String},
	)

	specs = append(specs, compositeOf(25, value.String,
		"PerformingOrganizationMedicalDirectorIDNumber",
		"PerformingOrganizationMedicalDirectorFamilyName",
		"PerformingOrganizationMedicalDirectorGivenName")...)

	return specs
}
