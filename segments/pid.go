package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// PID is the Patient Identification segment spec.
//
// Fields whose HL7 v2 data type is a composite (CX, XPN, XAD, CE) are
// expanded into one FieldSpec per named component via compositeOf instead
// of being addressed as a single whole-field string — see compositeOf's
// doc comment for why a depth-1 coordinate alone would lose the value.
var PID = mustSpec("PID", pidFields()...)

func pidFields() []schema.FieldSpec {
	specs := []schema.FieldSpec{
		{Name: "SetID", Sequence: 1, Kind: value.Integer},
	}

	patientID := compositeOf(2, value.String,
		"PatientIDNumber", "PatientIDCheckDigit", "PatientIDCheckDigitScheme",
		"PatientIDAssigningAuthority", "PatientIDTypeCode", "PatientIDAssigningFacility")
	specs = append(specs, patientID...)

	patientIDList := compositeOf(3, value.String,
		"PatientIDListNumber", "PatientIDListCheckDigit", "PatientIDListCheckDigitScheme",
		"PatientIDListAssigningAuthority", "PatientIDListTypeCode", "PatientIDListAssigningFacility")
	patientIDList[0].Required = true
	specs = append(specs, patientIDList...)

	alternatePatientID := compositeOf(4, value.String,
		"AlternatePatientIDNumber", "AlternatePatientIDCheckDigit", "AlternatePatientIDCheckDigitScheme",
		"AlternatePatientIDAssigningAuthority", "AlternatePatientIDTypeCode", "AlternatePatientIDAssigningFacility")
	specs = append(specs, alternatePatientID...)

	patientName := compositeOf(5, value.String,
		"PatientFamilyName", "PatientGivenName", "PatientMiddleName",
		"PatientNameSuffix", "PatientNamePrefix", "PatientNameDegree")
	patientName[0].Required = true
	specs = append(specs, patientName...)

	motherMaidenName := compositeOf(6, value.String,
		"MotherMaidenFamilyName", "MotherMaidenGivenName", "MotherMaidenMiddleName",
		"MotherMaidenNameSuffix", "MotherMaidenNamePrefix", "MotherMaidenNameDegree")
	specs = append(specs, motherMaidenName...)

	specs = append(specs,
		schema.FieldSpec{Name: "DateOfBirth", Sequence: 7, Kind: value.Date},
		schema.FieldSpec{Name: "Sex", Sequence: 8, Kind: value.String, MaxLen: 1},
	)

	patientAlias := compositeOf(9, value.String,
		"PatientAliasFamilyName", "PatientAliasGivenName", "PatientAliasMiddleName",
		"PatientAliasSuffix", "PatientAliasPrefix", "PatientAliasDegree")
	specs = append(specs, patientAlias...)

	race := compositeOf(10, value.String,
		"RaceIdentifier", "RaceText", "RaceCodingSystem",
		"RaceAlternateIdentifier", "RaceAlternateText", "RaceAlternateCodingSystem")
	specs = append(specs, race...)

	patientAddress := compositeOf(11, value.String,
		"PatientAddressStreet", "PatientAddressOtherDesignation", "PatientAddressCity",
		"PatientAddressState", "PatientAddressZip", "PatientAddressCountry", "PatientAddressType")
	specs = append(specs, patientAddress...)

	specs = append(specs,
		schema.FieldSpec{Name: "CountyCode", Sequence: 12, Kind: value.String},
		schema.FieldSpec{Name: "PhoneNumberHome", Sequence: 13, Kind: value.String},
		schema.FieldSpec{Name: "PhoneNumberBusiness", Sequence: 14, Kind: value.String},
		schema.FieldSpec{Name: "PrimaryLanguage", Sequence: 15, Kind: value.String},
		schema.FieldSpec{Name: "MaritalStatus", Sequence: 16, Kind: value.String},
		schema.FieldSpec{Name: "Religion", Sequence: 17, Kind: value.String},
		schema.FieldSpec{Name: "PatientAccountNumber", Sequence: 18, Kind: value.String},
		schema.FieldSpec{Name: "SSNNumber", Sequence: 19, Kind: value.String},
		schema.FieldSpec{Name: "DriversLicenseNumber", Sequence: 20, Kind: value.String},
		schema.FieldSpec{Name: "MothersIdentifier", Sequence: 21, Kind: value.String},
	)

	ethnicGroup := compositeOf(22, value.String,
		"EthnicGroupIdentifier", "EthnicGroupText", "EthnicGroupCodingSystem",
		"EthnicGroupAlternateIdentifier", "EthnicGroupAlternateText", "EthnicGroupAlternateCodingSystem")
	specs = append(specs, ethnicGroup...)

	specs = append(specs,
		schema.FieldSpec{Name: "BirthPlace", Sequence: 23, Kind: value.String},
		schema.FieldSpec{Name: "MultipleBirthIndicator", Sequence: 24, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "BirthOrder", Sequence: 25, Kind: value.Integer},
	)

	citizenship := compositeOf(26, value.String,
		"CitizenshipIdentifier", "CitizenshipText", "CitizenshipCodingSystem",
		"CitizenshipAlternateIdentifier", "CitizenshipAlternateText", "CitizenshipAlternateCodingSystem")
	specs = append(specs, citizenship...)

	veteransMilitaryStatus := compositeOf(27, value.String,
		"VeteransMilitaryStatusIdentifier", "VeteransMilitaryStatusText", "VeteransMilitaryStatusCodingSystem",
		"VeteransMilitaryStatusAlternateIdentifier", "VeteransMilitaryStatusAlternateText", "VeteransMilitaryStatusAlternateCodingSystem")
	specs = append(specs, veteransMilitaryStatus...)

	nationality := compositeOf(28, value.String,
		"NationalityIdentifier", "NationalityText", "NationalityCodingSystem",
		"NationalityAlternateIdentifier", "NationalityAlternateText", "NationalityAlternateCodingSystem")
	specs = append(specs, nationality...)

	specs = append(specs,
		schema.FieldSpec{Name: "PatientDeathDateTime", Sequence: 29, Kind: value.DateTime},
		schema.FieldSpec{Name: "PatientDeathIndicator", Sequence: 30, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "IdentityUnknownIndicator", Sequence: 31, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "IdentityReliabilityCode", Sequence: 32, Kind: value.String},
		schema.FieldSpec{Name: "LastUpdateDateTime", Sequence: 33, Kind: value.DateTime},
		schema.FieldSpec{Name: "LastUpdateFacility", Sequence: 34, Kind: value.String},
		schema.FieldSpec{Name: "SpeciesCode", Sequence: 35, Kind: value.String},
		schema.FieldSpec{Name: "BreedCode", Sequence: 36, Kind: value.String},
		schema.FieldSpec{Name: "Strain", Sequence: 37, Kind: value.String},
		schema.FieldSpec{Name: "ProductionClassCode", Sequence: 38, Kind: value.String},
		schema.FieldSpec{Name: "TribalCitizenship", Sequence: 39, Kind: value.String},
	)

	return specs
}
