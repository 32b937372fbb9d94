package booking

import (
	"strings"

	"github.com/pgstay/booking/internal/domain/entity"
)

// ResolveBed matches a selected bed number against the property's bed sheet
// and derives the dependent field values.
//
// Bed numbers are compared after trimming whitespace on both sides; the
// first matching row wins. When no row matches — including an empty or
// absent sheet — every dependent field comes back empty while the selected
// bed number itself is preserved, so the caller can show the raw selection
// alongside blanked dependents.
func ResolveBed(rows []entity.BedRow, selectedBedNo string) entity.ResolvedBed {
	want := strings.TrimSpace(selectedBedNo)
	for _, row := range rows {
		if strings.TrimSpace(row.BedNo) != want {
			continue
		}
		return entity.ResolvedBed{
			BedNo:          selectedBedNo,
			ACRoom:         strings.TrimSpace(row.ACRoom),
			MonthlyRent:    strings.TrimSpace(row.MonthlyFixedRent),
			DepositAmount:  strings.TrimSpace(row.DepositAmount),
			RevisionDate:   strings.TrimSpace(row.RevisionDate),
			RevisionAmount: strings.TrimSpace(row.RevisionAmount),
			RoomNo:         strings.TrimSpace(row.RoomNo),
		}
	}
	return entity.ResolvedBed{BedNo: selectedBedNo}
}
