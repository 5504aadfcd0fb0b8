package segments

import (
	"github.com/hl7bridge/hl7v2/schema"
	"github.com/hl7bridge/hl7v2/value"
)

// ORC is the Common Order segment spec.
//
// The personnel fields (EnteredBy, VerifiedBy, OrderingProvider, ActionBy)
// are XCN composites, expanded into one FieldSpec per named component via
// compositeOf — see its doc comment for why a whole-field coordinate
// would otherwise lose the value.
var ORC = mustSpec("ORC", orcFields()...)

func orcFields() []schema.FieldSpec {
	specs := []schema.FieldSpec{
		{Name: "OrderControl", Sequence: 1, Kind: value.String, MaxLen: 2},
		{Name: "PlacerOrderNumber", Sequence: 2, Kind: value.String},
		{Name: "FillerOrderNumber", Sequence: 3, Kind: value.String},
		{Name: "PlacerGroupNumber", Sequence: 4, Kind: value.String},
		{Name: "OrderStatus", Sequence: 5, Kind: value.String},
		{Name: "ResponseFlag", Sequence: 6, Kind: value.String, MaxLen: 1},
		{Name: "QuantityTiming", Sequence: 7, Kind: value.String},
		{Name: "Parent", Sequence: 8, Kind: value.String},
		{Name: "DateTimeOfTransaction", Sequence: 9, Kind: value.DateTime},
	}

	specs = append(specs, compositeOf(10, value.String,
		"EnteredByIDNumber", "EnteredByFamilyName", "EnteredByGivenName")...)
	specs = append(specs, compositeOf(11, value.String,
		"VerifiedByIDNumber", "VerifiedByFamilyName", "VerifiedByGivenName")...)
	specs = append(specs, compositeOf(12, value.String,
		"OrderingProviderIDNumber", "OrderingProviderFamilyName", "OrderingProviderGivenName",
		"OrderingProviderMiddleName", "OrderingProviderSuffix", "OrderingProviderPrefix", "OrderingProviderDegree")...)

	specs = append(specs,
		schema.FieldSpec{Name: "EntererLocation", Sequence: 13, Kind: value.String},
		schema.FieldSpec{Name: "CallBackPhoneNumber", Sequence: 14, Kind: value.String},
		schema.FieldSpec{Name: "OrderEffectiveDateTime", Sequence: 15, Kind: value.DateTime},
		schema.FieldSpec{Name: "OrderControlCodeReason", Sequence: 16, Kind: value.String},
		schema.FieldSpec{Name: "EnteringOrganization", Sequence: 17, Kind: value.String},
		schema.FieldSpec{Name: "EnteringDevice", Sequence: 18, Kind: value.String},
	)

	specs = append(specs, compositeOf(19, value.String,
		"ActionByIDNumber", "ActionByFamilyName", "ActionByGivenName")...)

	specs = append(specs,
		schema.FieldSpec{Name: "AdvancedBeneficiaryNoticeCode", Sequence: 20, Kind: value.String},
		schema.FieldSpec{Name: "OrderingFacilityName", Sequence: 21, Kind: value.String},
		schema.FieldSpec{Name: "OrderingFacilityAddress", Sequence: 22, Kind: value.String},
		schema.FieldSpec{Name: "OrderingFacilityPhoneNumber", Sequence: 23, Kind: value.String},
		schema.FieldSpec{Name: "OrderingProviderAddress", Sequence: 24, Kind: value.String},
		schema.FieldSpec{Name: "OrderStatusModifier", Sequence: 25, Kind: value.String},
		schema.FieldSpec{Name: "AdvancedBeneficiaryNoticeOverrideReason", Sequence: 26, Kind: value.String},
		schema.FieldSpec{Name: "FillerExpectedAvailabilityDateTime", Sequence: 27, Kind: value.DateTime},
		schema.FieldSpec{Name: "ConfidentialityCode", Sequence: 28, Kind: value.String},
		schema.FieldSpec{Name: "OrderType", Sequence: 29, Kind: value.String},
		schema.FieldSpec{Name: "EntererAuthorizationMode", Sequence: 30, Kind: value.String},
		schema.FieldSpec{Name: "ParentUniversalServiceIdentifier", Sequence: 31, Kind: value.String},
	)

	return specs
}
