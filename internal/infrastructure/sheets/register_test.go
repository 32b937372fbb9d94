package sheets

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pgstay/booking/internal/domain/entity"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheets := map[string][][]interface{}{
		"Employees": {
			{"Name", "ID"},
			{"Asha", "EMP-12"},
			{"Vikram", "EMP-07"},
		},
		"Properties": {
			{"Property Code", "PG Main Sheet ID", "Bed Count"},
			{"PGX-01", "SHEET123", "4"},
			{"PGY-02", "SHEET999", "6"},
		},
		"SHEET123": {
			{"BedNo", "ACRoom", "MFR", "DA", "URHD", "URHA", "RoomNo"},
			{"1", "AC", "9000", "5000", "2025-06-01", "9500", "101"},
			{"2", "Non AC", "7000", "4000", "", "", "102"},
		},
	}

	for name, rows := range sheets {
		_, err := file.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, file.SetSheetRow(name, cellRef, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "register.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func newTestRegister(t *testing.T) *Register {
	t.Helper()
	reg, err := NewRegister(writeTestWorkbook(t), zap.NewNop())
	require.NoError(t, err)
	return reg
}

func TestNewRegister_MissingWorkbook(t *testing.T) {
	_, err := NewRegister(filepath.Join(t.TempDir(), "absent.xlsx"), zap.NewNop())
	assert.Error(t, err)
}

func TestRegister_Employees(t *testing.T) {
	reg := newTestRegister(t)

	employees, err := reg.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Asha", employees[0].Name)
	assert.Equal(t, "Asha (EMP-12)", employees[0].OptionValue())
}

func TestRegister_Properties(t *testing.T) {
	reg := newTestRegister(t)

	properties, err := reg.Properties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, "PGX-01", properties[0].PropertyCode)
	assert.Equal(t, 4, properties[0].BedCount)
	assert.Equal(t, "SHEET123,4,PGX-01", properties[0].CompositeValue())
}

func TestRegister_BedSheet(t *testing.T) {
	reg := newTestRegister(t)

	beds, err := reg.BedSheet(context.Background(), "SHEET123")
	require.NoError(t, err)
	require.Len(t, beds, 2)
	assert.Equal(t, "9000", beds[0].MonthlyFixedRent)
	assert.Equal(t, "102", beds[1].RoomNo)
}

func TestRegister_BedSheetMissingSheet(t *testing.T) {
	reg := newTestRegister(t)

	beds, err := reg.BedSheet(context.Background(), "NO_SUCH_SHEET")
	require.NoError(t, err, "a missing bed sheet is absence, not a fault")
	assert.Empty(t, beds)
}

func TestRegister_AppendBooking(t *testing.T) {
	reg := newTestRegister(t)
	ctx := context.Background()

	record := &entity.BookingRecord{
		ID:        "bk-1",
		CreatedAt: time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC),
		Fields: map[string]string{
			"clientName":             "Ravi Kumar",
			"permanent_propertyCode": "PGX-01",
			"permanent_bedNo":        "2",
		},
	}

	require.NoError(t, reg.AppendBooking(ctx, record))
	record2 := &entity.BookingRecord{ID: "bk-2", CreatedAt: record.CreatedAt, Fields: map[string]string{"clientName": "Meera"}}
	require.NoError(t, reg.AppendBooking(ctx, record2))

	file, err := excelize.OpenFile(reg.path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two bookings")

	idx := headerIndex(rows[0])
	assert.Equal(t, "bk-1", cell(rows[1], idx, "bookingId"))
	assert.Equal(t, "Ravi Kumar", cell(rows[1], idx, "clientName"))
	assert.Equal(t, "PGX-01", cell(rows[1], idx, "permanent_propertyCode"))
	assert.Equal(t, "bk-2", cell(rows[2], idx, "bookingId"))
}
