package service

import (
	"testing"

	"github.com/pgstay/booking/internal/domain/entity"
)

func TestHumanizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"clientName", "Client Name"},
		{"permanent_bedRentAmount", "Permanent Bed Rent Amount"},
		{"temporary_roomAcNonAc", "Temporary Room Ac Non Ac"},
		{"permanent_Comments", "Permanent Comments"},
		{"date", "Date"},
	}

	for _, tt := range tests {
		if got := humanizeKey(tt.key); got != tt.want {
			t.Errorf("humanizeKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestBuildPreview(t *testing.T) {
	record := entity.BookingRecord{Fields: map[string]string{
		"clientName":              "Ravi Kumar",
		"date":                    "2025-02-10",
		"temporary_bedNo":         "4",
		"temporary_bedRentAmount": "1000",
	}}

	sections := BuildPreview(&record)

	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}
	if sections[0].Title != "Client Details" {
		t.Errorf("first section = %q", sections[0].Title)
	}
	// Canonical order puts date before clientName.
	if sections[0].Items[0].Key != "date" {
		t.Errorf("first client item = %q, want date", sections[0].Items[0].Key)
	}
	if sections[1].Title != "Temporary Property Details" {
		t.Errorf("second section = %q", sections[1].Title)
	}
	if sections[1].Items[0].Key != "temporary_bedNo" {
		t.Errorf("first temporary item = %q", sections[1].Items[0].Key)
	}
}
