// Package booking implements the derivation core of the booking form:
// bed selection resolution, rent pro-ration, the per-session form state,
// and assembly of the submission payload.
package booking

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgstay/booking/internal/domain/entity"
)

// DateLayout is the wire format of every form date field.
const DateLayout = "2006-01-02"

// Rent is pro-rated against a fixed 30-day month, not calendar days-in-month.
const daysPerMonth = 30

// ProRatedRent computes the rent owed for a partial occupancy period.
//
// All inputs arrive as raw form strings and are parsed here. When the start
// date or the monthly rent is missing or unparseable the result is "" — the
// amount field is cleared, never zeroed and never an error.
//
// For a temporary occupancy with a valid end date the charge covers the
// inclusive day span from start to end. In every other case, including a
// temporary occupancy whose end date is absent or invalid, the charge runs
// from the start date to the last day of its calendar month. The temporary
// fallback mirrors the established form behaviour and is part of the
// contract.
func ProRatedRent(kind entity.SectionKind, startDate, endDate, monthlyRent string) string {
	start, ok := parseDate(startDate)
	if !ok {
		return ""
	}
	monthly, err := decimal.NewFromString(strings.TrimSpace(monthlyRent))
	if err != nil {
		return ""
	}

	daily := monthly.Div(decimal.NewFromInt(daysPerMonth))

	if kind == entity.SectionTemporary {
		if end, ok := parseDate(endDate); ok {
			return roundRent(daily, inclusiveDays(start, end))
		}
	}

	monthEnd := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return roundRent(daily, inclusiveDays(start, monthEnd))
}

// inclusiveDays counts the days from start to end with both endpoints
// included.
func inclusiveDays(start, end time.Time) int64 {
	return int64(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// roundRent rounds half-up to the nearest whole currency unit.
func roundRent(daily decimal.Decimal, days int64) string {
	return daily.Mul(decimal.NewFromInt(days)).Round(0).String()
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
