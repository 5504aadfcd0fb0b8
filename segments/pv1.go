package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// PV1 is the Patient Visit segment spec.
//
// Location and provider-name fields are PL/XCN composites, expanded into
// one FieldSpec per named component via compositeOf — see its doc
// comment for why a whole-field coordinate would otherwise lose the value.
var PV1 = mustSpec("PV1", pv1Fields()...)

func pv1Fields() []schema.FieldSpec {
	specs := []schema.FieldSpec{
		{Name: "SetID", Sequence: 1, Kind: value.Integer},
		{Name: "PatientClass", Sequence: 2, Kind: value.String, MaxLen: 1},
	}

	specs = append(specs, compositeOf(3, value.String,
		"AssignedPointOfCare", "AssignedRoom", "AssignedBed", "AssignedFacility")...)

	specs = append(specs,
		schema.FieldSpec{Name: "AdmissionType", Sequence: 4, Kind: value.String},
		schema.FieldSpec{Name: "PreadmitNumber", Sequence: 5, Kind: value.String},
	)

	specs = append(specs, compositeOf(6, value.String,
		"PriorPointOfCare", "PriorRoom", "PriorBed", "PriorFacility")...)

	specs = append(specs, compositeOf(7, value.String,
		"AttendingDoctorIDNumber", "AttendingDoctorFamilyName", "AttendingDoctorGivenName",
		"AttendingDoctorMiddleName", "AttendingDoctorSuffix", "AttendingDoctorPrefix", "AttendingDoctorDegree")...)

	specs = append(specs, compositeOf(8, value.String,
		"ReferringDoctorIDNumber", "ReferringDoctorFamilyName", "ReferringDoctorGivenName",
		"ReferringDoctorMiddleName", "ReferringDoctorSuffix", "ReferringDoctorPrefix", "ReferringDoctorDegree")...)

	specs = append(specs, compositeOf(9, value.String,
		"ConsultingDoctorIDNumber", "ConsultingDoctorFamilyName", "ConsultingDoctorGivenName",
		"ConsultingDoctorMiddleName", "ConsultingDoctorSuffix", "ConsultingDoctorPrefix", "ConsultingDoctorDegree")...)

	specs = append(specs, schema.FieldSpec{Name: "HospitalService", Sequence: 10, Kind: value.String})

	specs = append(specs, compositeOf(11, value.String,
		"TemporaryPointOfCare", "TemporaryRoom", "TemporaryBed", "TemporaryFacility")...)

	specs = append(specs,
		schema.FieldSpec{Name: "PreadmitTestIndicator", Sequence: 12, Kind: value.String},
		schema.FieldSpec{Name: "ReadmissionIndicator", Sequence: 13, Kind: value.String},
		schema.FieldSpec{Name: "AdmitSource", Sequence: 14, Kind: value.String},
		schema.FieldSpec{Name: "AmbulatoryStatus", Sequence: 15, Kind: value.String},
		schema.FieldSpec{Name: "VIPIndicator", Sequence: 16, Kind: value.String},
	)

	specs = append(specs, compositeOf(17, value.String,
		"AdmittingDoctorIDNumber", "AdmittingDoctorFamilyName", "AdmittingDoctorGivenName",
		"AdmittingDoctorMiddleName", "AdmittingDoctorSuffix", "AdmittingDoctorPrefix", "AdmittingDoctorDegree")...)

	specs = append(specs,
		schema.FieldSpec{Name: "PatientType", Sequence: 18, Kind: value.String},
		schema.FieldSpec{Name: "VisitNumber", Sequence: 19, Kind: value.String},
		schema.FieldSpec{Name: "FinancialClass", Sequence: 20, Kind: value.String},
		schema.FieldSpec{Name: "ChargePriceIndicator", Sequence: 21, Kind: value.String},
		schema.FieldSpec{Name: "CourtesyCode", Sequence: 22, Kind: value.String},
		schema.FieldSpec{Name: "CreditRating", Sequence: 23, Kind: value.String},
		schema.FieldSpec{Name: "ContractCode", Sequence: 24, Kind: value.String},
		schema.FieldSpec{Name: "ContractEffectiveDate", Sequence: 25, Kind: value.Date},
		schema.FieldSpec{Name: "ContractAmount", Sequence: 26, Kind: value.Float},
		schema.FieldSpec{Name: "ContractPeriod", Sequence: 27, Kind: value.Integer},
		schema.FieldSpec{Name: "InterestCode", Sequence: 28, Kind: value.String},
		schema.FieldSpec{Name: "TransferToBadDebtCode", Sequence: 29, Kind: value.String},
		schema.FieldSpec{Name: "TransferToBadDebtDate", Sequence: 30, Kind: value.Date},
		schema.FieldSpec{Name: "BadDebtAgencyCode", Sequence: 31, Kind: value.String},
		schema.FieldSpec{Name: "BadDebtTransferAmount", Sequence: 32, Kind: value.Float},
		schema.FieldSpec{Name: "BadDebtRecoveryAmount", Sequence: 33, Kind: value.Float},
		schema.FieldSpec{Name: "DeleteAccountIndicator", Sequence: 34, Kind: value.String, MaxLen: 1},
		schema.FieldSpec{Name: "DeleteAccountDate", Sequence: 35, Kind: value.Date},
		schema.FieldSpec{Name: "DischargeDisposition", Sequence: 36, Kind: value.String},
	)

	specs = append(specs, compositeOf(37, value.String,
		"DischargedToPointOfCare", "DischargedToFacility")...)

	specs = append(specs,
		schema.FieldSpec{Name: "DietType", Sequence: 38, Kind: value.String},
		schema.FieldSpec{Name: "ServicingFacility", Sequence: 39, Kind: value.String},
		schema.FieldSpec{Name: "BedStatus", Sequence: 40, Kind: value.String},
		schema.FieldSpec{Name: "AccountStatus", Sequence: 41, Kind: value.String},
	)

	specs = append(specs, compositeOf(42, value.String,
		"PendingPointOfCare", "PendingRoom", "PendingBed", "PendingFacility")...)

	specs = append(specs, compositeOf(43, value.String,
		"PriorTemporaryPointOfCare", "PriorTemporaryRoom", "PriorTemporaryBed", "PriorTemporaryFacility")...)

	specs = append(specs,
		schema.FieldSpec{Name: "AdmitDateTime", Sequence: 44, Kind: value.DateTime},
		schema.FieldSpec{Name: "DischargeDateTime", Sequence: 45, Kind: value.DateTime},
		schema.FieldSpec{Name: "CurrentPatientBalance", Sequence: 46, Kind: value.Float},
		schema.FieldSpec{Name: "TotalCharges", Sequence: 47, Kind: value.Float},
		schema.FieldSpec{Name: "TotalAdjustments", Sequence: 48, Kind: value.Float},
		schema.FieldSpec{Name: "TotalPayments", Sequence: 49, Kind: value.Float},
		schema.FieldSpec{Name: "AlternateVisitID", Sequence: 50, Kind: value.String},
		schema.FieldSpec{Name: "VisitIndicator", Sequence: 51, Kind: value.String, MaxLen: 1},
	)

	specs = append(specs, compositeOf(52, value.String,
		"OtherHealthcareProviderIDNumber", "OtherHealthcareProviderFamilyName", "OtherHealthcareProviderGivenName")...)

	return specs
}
