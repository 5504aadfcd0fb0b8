package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// OBR is the Observation Request segment spec.
//
// The service-identifier and result-interpreter fields are CE/XCN
// composites, expanded into one FieldSpec per named component via
// compositeOf — see its doc comment for why a whole-field coordinate
// would otherwise lose the value.
var OBR = mustSpec("OBR", obrFields()...)

func obrFields() []schema.FieldSpec {
	specs := []schema.FieldSpec{
		{Name: "SetID", Sequence: 1, Kind: value.Integer},
		{Name: "PlacerOrderNumber", Sequence: 2, Kind: value.String},
		{Name: "FillerOrderNumber", Sequence: 3, Kind: value.String},
	}

	specs = append(specs, compositeOf(4, value.String,
		"UniversalServiceIdentifier", "UniversalServiceText", "UniversalServiceCodingSystem",
		"UniversalServiceAlternateIdentifier", "UniversalServiceAlternateText", "UniversalServiceAlternateCodingSystem")...)

	specs = append(specs,
		schema.FieldSpec{Name: "Priority", Sequence: 5, Kind: value.String},
		schema.FieldSpec{Name: "RequestedDateTime", Sequence: 6, Kind: value.DateTime},
		schema.FieldSpec{Name: "ObservationDateTime", Sequence: 7, Kind: value.DateTime},
		schema.FieldSpec{Name: "ObservationEndDateTime", Sequence: 8, Kind: value.DateTime},
		schema.FieldSpec{Name: "CollectionVolume", Sequence: 9, Kind: value.String},
		schema.FieldSpec{Name: "CollectorIdentifier", Sequence: 10, Kind: value.String},
		schema.FieldSpec{Name: "SpecimenActionCode", Sequence: 11, Kind: value.String},
		schema.FieldSpec{Name: "DangerCode", Sequence: 12, Kind: value.String},
		schema.FieldSpec{Name: "RelevantClinicalInfo", Sequence: 13, Kind: value.String},
		schema.FieldSpec{Name: "SpecimenReceivedDateTime", Sequence: 14, Kind: value.DateTime},
		schema.FieldSpec{Name: "SpecimenSource", Sequence: 15, Kind: value.String},
	)

	specs = append(specs, compositeOf(16, value.String,
		"OrderingProviderIDNumber", "OrderingProviderFamilyName", "OrderingProviderGivenName",
		"OrderingProviderMiddleName", "OrderingProviderSuffix", "OrderingProviderPrefix", "OrderingProviderDegree")...)

	specs = append(specs,
		schema.FieldSpec{Name: "OrderCallbackPhoneNumber", Sequence: 17, Kind: value.String},
		schema.FieldSpec{Name: "PlacerField1", Sequence: 18, Kind: value.String},
		schema.FieldSpec{Name: "PlacerField2", Sequence: 19, Kind: value.String},
		schema.FieldSpec{Name: "FillerField1", Sequence: 20, Kind: value.String},
		schema.FieldSpec{Name: "FillerField2", Sequence: 21, Kind: value.String},
		schema.FieldSpec{Name: "ResultsRptStatusChngDateTime", Sequence: 22, Kind: value.DateTime},
		schema.FieldSpec{Name: "ChargeToPractice", Sequence: 23, Kind: value.String},
		schema.FieldSpec{Name: "DiagnosticServSectID", Sequence: 24, Kind: value.String},
		schema.FieldSpec{Name: "ResultStatus", Sequence: 25, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "ParentResult", Sequence: 26, Kind: value.String},
		schema.FieldSpec{Name: "QuantityTiming", Sequence: 27, Kind: value.String},
		schema.FieldSpec{Name: "ResultCopiesTo", Sequence: 28, Kind: value.String},
		schema.FieldSpec{Name: "Parent", Sequence: 29, Kind: value.String},
		schema.FieldSpec{Name: "TransportationMode", Sequence: 30, Kind: value.String},
		schema.FieldSpec{Name: "ReasonForStudy", Sequence: 31, Kind: value.String},
	)

	specs = append(specs, compositeOf(32, value.String,
		"PrincipalResultInterpreterIDNumber", "PrincipalResultInterpreterFamilyName", "PrincipalResultInterpreterGivenName")...)
	specs = append(specs, compositeOf(33, value.String,
		"AssistantResultInterpreterIDNumber", "AssistantResultInterpreterFamilyName", "AssistantResultInterpreterGivenName")...)
	specs = append(specs, compositeOf(34, value.String,
		"TechnicianIDNumber", "TechnicianFamilyName", "TechnicianGivenName")...)
	specs = append(specs, compositeOf(35, value.String,
		"TranscriptionistIDNumber", "TranscriptionistFamilyName", "TranscriptionistGivenName")...)

	specs = append(specs,
		schema.FieldSpec{Name: "ScheduledDateTime", Sequence: 36, Kind: value.DateTime},
		schema.FieldSpec{Name: "NumberOfSampleContainers", Sequence: 37, Kind: value.Integer},
		schema.FieldSpec{Name: "TransportLogisticsOfCollectedSample", Sequence: 38, Kind: value.String},
		schema.FieldSpec{Name: "CollectorComment", Sequence: 39, Kind: value.String},
		schema.FieldSpec{Name: "TransportArrangementResponsibility", Sequence: 40, Kind: value.String},
		schema.FieldSpec{Name: "TransportArranged", Sequence: 41, Kind: value.String},
		schema.FieldSpec{Name: "EscortRequired", Sequence: 42, Kind: value.String},
		schema.FieldSpec{Name: "PlannedPatientTransportComment", Sequence: 43, Kind: value.String},
		schema.FieldSpec{Name: "ProcedureCode", Sequence: 44, Kind: value.String},
		schema.FieldSpec{Name: "ProcedureCodeModifier", Sequence: 45, Kind: value.String},
		schema.FieldSpec{Name: "PlacerSupplementalServiceInformation", Sequence: 46, Kind: value.String},
		schema.FieldSpec{Name: "FillerSupplementalServiceInformation", Sequence: 47, Kind: value.String},
		schema.FieldSpec{Name: "MedicallyNecessaryDuplicateProcedureReason", Sequence: 48, Kind: value.String},
		schema.FieldSpec{Name: "ResultHandling", Sequence: 49, Kind: value.String},
		schema.FieldSpec{Name: "ParentUniversalServiceIdentifier", Sequence: 50, Kind: value.String},
	)

	return specs
}
