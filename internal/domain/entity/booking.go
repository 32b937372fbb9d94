package entity

import (
	"strings"
	"time"
)

// BookingRecord is the assembled submission payload: the client fields plus,
// for each enabled occupancy section, that section's fields keyed by
// "{section}_{field}". A record never carries fields for a disabled section.
type BookingRecord struct {
	ID        string            `json:"id,omitempty"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

// Field returns the value stored under key, or "" when absent.
func (r *BookingRecord) Field(key string) string {
	return r.Fields[key]
}

// HasSection reports whether the record carries any field of the given
// occupancy section.
func (r *BookingRecord) HasSection(kind SectionKind) bool {
	prefix := kind.Prefix()
	for key := range r.Fields {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// SectionFields returns the section's fields with the prefix stripped,
// preserving only keys actually present on the record.
func (r *BookingRecord) SectionFields(kind SectionKind) map[string]string {
	prefix := kind.Prefix()
	out := make(map[string]string)
	for key, value := range r.Fields {
		if strings.HasPrefix(key, prefix) {
			out[strings.TrimPrefix(key, prefix)] = value
		}
	}
	return out
}

// ClientFields returns the unprefixed client fields present on the record.
func (r *BookingRecord) ClientFields() map[string]string {
	out := make(map[string]string)
	for _, key := range ClientFieldKeys {
		if value, ok := r.Fields[key]; ok {
			out[key] = value
		}
	}
	return out
}
