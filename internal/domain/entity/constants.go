package entity

// SectionKind identifies an occupancy section of the booking form.
type SectionKind string

const (
	SectionPermanent SectionKind = "permanent"
	SectionTemporary SectionKind = "temporary"
)

// Sections lists both occupancy sections in submission order.
var Sections = []SectionKind{SectionPermanent, SectionTemporary}

// Prefix returns the field-key prefix for this section, e.g. "permanent_".
func (k SectionKind) Prefix() string {
	return string(k) + "_"
}

// IsValid returns true if the kind names a known section.
func (k SectionKind) IsValid() bool {
	return k == SectionPermanent || k == SectionTemporary
}

// Client field keys, shared by both submission and preview.
const (
	FieldDate           = "date"
	FieldSales          = "sales"
	FieldAccounts       = "accounts"
	FieldAskFor         = "askFor"
	FieldClientName     = "clientName"
	FieldClientWhatsapp = "clientWhatsapp"
	FieldClientCalling  = "clientCalling"
	FieldFatherName     = "fatherName"
	FieldFatherContact  = "fatherContact"
	FieldMotherName     = "motherName"
	FieldMotherContact  = "motherContact"
)

// ClientFieldKeys lists the unconditional fields of every booking record.
var ClientFieldKeys = []string{
	FieldDate,
	FieldSales,
	FieldAccounts,
	FieldAskFor,
	FieldClientName,
	FieldClientWhatsapp,
	FieldClientCalling,
	FieldFatherName,
	FieldFatherContact,
	FieldMotherName,
	FieldMotherContact,
}

// Per-section field keys. Each is stored under "{section}_{key}".
const (
	FieldPropertyCode   = "propertyCode"
	FieldBedNo          = "bedNo"
	FieldRoomNo         = "roomNo"
	FieldRoomACNonAC    = "roomAcNonAc"
	FieldMonthlyRent    = "bedMonthlyRent"
	FieldDepositAmount  = "bedDepositAmount"
	FieldRentStartDate  = "bedRentStartDate"
	FieldRentEndDate    = "bedRentEndDate"
	FieldRentAmount     = "bedRentAmount"
	FieldProcessingFees = "processingFees"
	FieldRevisionDate   = "revisionDate"
	FieldRevisionAmount = "revisionAmount"
	FieldComments       = "Comments"
)

// SectionFieldKeys lists every field an occupancy section owns. Disabling a
// section resets each of these to empty.
var SectionFieldKeys = []string{
	FieldPropertyCode,
	FieldBedNo,
	FieldRoomNo,
	FieldRoomACNonAC,
	FieldMonthlyRent,
	FieldDepositAmount,
	FieldRentStartDate,
	FieldRentEndDate,
	FieldRentAmount,
	FieldProcessingFees,
	FieldRevisionDate,
	FieldRevisionAmount,
	FieldComments,
}

// Ask-for payment policy values.
const (
	AskForBookingAmount = "BOOKING_AMOUNT"
	AskForFullAmount    = "FULL_AMOUNT"
)
