package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgstay/booking/internal/domain/entity"
)

func sampleSheet() []entity.BedRow {
	return []entity.BedRow{
		{BedNo: "1", ACRoom: "AC", MonthlyFixedRent: "9000", DepositAmount: "5000", RevisionDate: "2025-06-01", RevisionAmount: "9500", RoomNo: "101"},
		{BedNo: " 2 ", ACRoom: " Non AC ", MonthlyFixedRent: " 7000 ", DepositAmount: "4000", RoomNo: " 102 "},
		{BedNo: "3", RoomNo: "103"},
	}
}

func TestResolveBed_Match(t *testing.T) {
	got := ResolveBed(sampleSheet(), "1")

	assert.Equal(t, "1", got.BedNo)
	assert.Equal(t, "AC", got.ACRoom)
	assert.Equal(t, "9000", got.MonthlyRent)
	assert.Equal(t, "5000", got.DepositAmount)
	assert.Equal(t, "2025-06-01", got.RevisionDate)
	assert.Equal(t, "9500", got.RevisionAmount)
	assert.Equal(t, "101", got.RoomNo)
}

func TestResolveBed_TrimsBothSides(t *testing.T) {
	got := ResolveBed(sampleSheet(), "  2  ")

	assert.Equal(t, "  2  ", got.BedNo, "raw selection is preserved")
	assert.Equal(t, "Non AC", got.ACRoom)
	assert.Equal(t, "7000", got.MonthlyRent)
	assert.Equal(t, "102", got.RoomNo)
}

func TestResolveBed_AbsentRowFieldsDefaultEmpty(t *testing.T) {
	got := ResolveBed(sampleSheet(), "3")

	assert.Equal(t, "3", got.BedNo)
	assert.Empty(t, got.ACRoom)
	assert.Empty(t, got.MonthlyRent)
	assert.Empty(t, got.DepositAmount)
	assert.Equal(t, "103", got.RoomNo)
}

func TestResolveBed_NoMatchClearsDependents(t *testing.T) {
	got := ResolveBed(sampleSheet(), "9")

	assert.Equal(t, "9", got.BedNo, "selection kept even without a match")
	assert.Empty(t, got.ACRoom)
	assert.Empty(t, got.MonthlyRent)
	assert.Empty(t, got.DepositAmount)
	assert.Empty(t, got.RevisionDate)
	assert.Empty(t, got.RevisionAmount)
	assert.Empty(t, got.RoomNo)
}

func TestResolveBed_EmptySheet(t *testing.T) {
	got := ResolveBed(nil, "1")

	assert.Equal(t, "1", got.BedNo)
	assert.Empty(t, got.RoomNo)
}

func TestResolveBed_FirstMatchWins(t *testing.T) {
	rows := []entity.BedRow{
		{BedNo: "5", RoomNo: "201"},
		{BedNo: "5", RoomNo: "202"},
	}

	got := ResolveBed(rows, "5")
	assert.Equal(t, "201", got.RoomNo)
}
