package entity

import (
	"strconv"
	"strings"
)

// Employee is one row of the sales staff list.
type Employee struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// OptionValue returns the value stored in the sales field when this
// employee is selected.
func (e Employee) OptionValue() string {
	return e.Name + " (" + e.ID + ")"
}

// PropertyOption identifies a selectable property. SheetID is the key used
// to fetch that property's bed sheet from the register workbook.
type PropertyOption struct {
	PropertyCode string `json:"property_code"`
	SheetID      string `json:"sheet_id"`
	BedCount     int    `json:"bed_count"`
}

// CompositeValue returns the raw select value for this property:
// "{sheetID},{bedCount},{propertyCode}".
func (p PropertyOption) CompositeValue() string {
	return p.SheetID + "," + strconv.Itoa(p.BedCount) + "," + p.PropertyCode
}

// PropertyCodeFromValue extracts the human-readable property code (the third
// comma-separated part) from a composite select value. A value that does not
// carry all three parts is returned as-is.
func PropertyCodeFromValue(raw string) string {
	parts := strings.SplitN(raw, ",", 3)
	if len(parts) < 3 {
		return raw
	}
	return parts[2]
}

// SheetIDFromValue extracts the bed sheet key (the first comma-separated
// part) from a composite select value.
func SheetIDFromValue(raw string) string {
	return strings.SplitN(raw, ",", 2)[0]
}

// BedRow is one row of a property's bed sheet.
type BedRow struct {
	BedNo            string `json:"bed_no"`
	ACRoom           string `json:"ac_room"`
	MonthlyFixedRent string `json:"monthly_fixed_rent"`
	DepositAmount    string `json:"deposit_amount"`
	RevisionDate     string `json:"revision_date"`
	RevisionAmount   string `json:"revision_amount"`
	RoomNo           string `json:"room_no"`
}

// ResolvedBed holds the dependent field values derived from a bed selection.
// When no bed sheet row matched, every field except BedNo is empty: the raw
// selection is kept so the user can see what they chose while the dependent
// fields are blanked out.
type ResolvedBed struct {
	BedNo          string `json:"bed_no"`
	ACRoom         string `json:"ac_room"`
	MonthlyRent    string `json:"monthly_rent"`
	DepositAmount  string `json:"deposit_amount"`
	RevisionDate   string `json:"revision_date"`
	RevisionAmount string `json:"revision_amount"`
	RoomNo         string `json:"room_no"`
}
