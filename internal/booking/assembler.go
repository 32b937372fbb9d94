package booking

import (
	"strings"

	"github.com/pgstay/booking/internal/domain/entity"
	"github.com/pgstay/booking/internal/domain/tabs"
)

// Assemble filters the raw form values down to the canonical booking record:
// the client fields plus, for each enabled section, every field carrying
// that section's prefix.
//
// Filtering keys off the tab state, not off which values happen to be
// present — stale values left in form state for a disabled section never
// reach the record. The one rewritten field is the property code: the form
// stores the composite "{sheetId},{bedCount},{propertyCode}" select value,
// the record keeps only the human-readable code.
func Assemble(values map[string]string, state tabs.State) entity.BookingRecord {
	fields := make(map[string]string)

	for _, key := range entity.ClientFieldKeys {
		if value, ok := values[key]; ok {
			fields[key] = value
		}
	}

	for _, kind := range entity.Sections {
		if !state.Enabled(kind) {
			continue
		}
		prefix := kind.Prefix()
		for key, value := range values {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if key == prefix+entity.FieldPropertyCode {
				fields[key] = entity.PropertyCodeFromValue(value)
				continue
			}
			fields[key] = value
		}
	}

	return entity.BookingRecord{Fields: fields}
}
