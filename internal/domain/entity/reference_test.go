package entity

import "testing"

func TestEmployeeOptionValue(t *testing.T) {
	e := Employee{Name: "Priya Sharma", ID: "E101"}
	if got := e.OptionValue(); got != "Priya Sharma (E101)" {
		t.Errorf("OptionValue() = %q", got)
	}
}

func TestPropertyCompositeValue(t *testing.T) {
	p := PropertyOption{PropertyCode: "PGX-01", SheetID: "SHEET123", BedCount: 4}
	if got := p.CompositeValue(); got != "SHEET123,4,PGX-01" {
		t.Errorf("CompositeValue() = %q", got)
	}
}

func TestPropertyCodeFromValue(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"SHEET123,4,PGX-01", "PGX-01"},
		// A code containing commas survives because only the first two
		// separators split.
		{"SHEET123,4,PGX,EastWing", "PGX,EastWing"},
		// Malformed values pass through untouched.
		{"PGX-01", "PGX-01"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PropertyCodeFromValue(tt.raw); got != tt.want {
			t.Errorf("PropertyCodeFromValue(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSheetIDFromValue(t *testing.T) {
	if got := SheetIDFromValue("SHEET123,4,PGX-01"); got != "SHEET123" {
		t.Errorf("SheetIDFromValue() = %q", got)
	}
	if got := SheetIDFromValue("bare"); got != "bare" {
		t.Errorf("SheetIDFromValue(bare) = %q", got)
	}
}

func TestBookingRecordSections(t *testing.T) {
	r := BookingRecord{Fields: map[string]string{
		"clientName":             "Ravi Kumar",
		"permanent_propertyCode": "PGX-01",
		"permanent_bedNo":        "2",
	}}

	if !r.HasSection(SectionPermanent) {
		t.Error("HasSection(permanent) = false")
	}
	if r.HasSection(SectionTemporary) {
		t.Error("HasSection(temporary) = true")
	}

	section := r.SectionFields(SectionPermanent)
	if section["propertyCode"] != "PGX-01" || section["bedNo"] != "2" {
		t.Errorf("SectionFields() = %v", section)
	}

	client := r.ClientFields()
	if client["clientName"] != "Ravi Kumar" {
		t.Errorf("ClientFields() = %v", client)
	}
	if _, ok := client["permanent_propertyCode"]; ok {
		t.Error("ClientFields() leaked a section field")
	}
}
