// Package sheets reads and writes the property register workbook: the
// spreadsheet that holds the staff list, the property list, one bed sheet
// per property, and the appended booking rows.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pgstay/booking/internal/domain/entity"
	"github.com/pgstay/booking/pkg/utils"
)

// Well-known sheet names in the register workbook. Bed sheets are named by
// their property's sheet ID.
const (
	employeesSheet  = "Employees"
	propertiesSheet = "Properties"
	bookingsSheet   = "Bookings"
)

// Column headers as they appear in the workbook.
const (
	colEmployeeName = "Name"
	colEmployeeID   = "ID"

	colPropertyCode = "Property Code"
	colMainSheetID  = "PG Main Sheet ID"
	colBedCount     = "Bed Count"

	colBedNo  = "BedNo"
	colACRoom = "ACRoom"
	colMFR    = "MFR"
	colDA     = "DA"
	colURHD   = "URHD"
	colURHA   = "URHA"
	colRoomNo = "RoomNo"
)

// Register provides reference data from the workbook and appends confirmed
// bookings to it. Every call opens the file fresh so out-of-band edits to
// the workbook are picked up without a restart; the mutex keeps appends
// from racing each other.
type Register struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewRegister creates a Register over the workbook at path.
func NewRegister(path string, logger *zap.Logger) (*Register, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("register workbook not found: %s", path)
	}
	return &Register{
		path:   path,
		logger: logger,
	}, nil
}

// Employees returns the staff list from the Employees sheet.
func (r *Register) Employees(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.sheetRows(employeesSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	employees := make([]entity.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := entity.Employee{
			Name: cell(row, idx, colEmployeeName),
			ID:   cell(row, idx, colEmployeeID),
		}
		if e.Name == "" && e.ID == "" {
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// Properties returns the selectable properties from the Properties sheet.
func (r *Register) Properties(ctx context.Context) ([]entity.PropertyOption, error) {
	rows, err := r.sheetRows(propertiesSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	properties := make([]entity.PropertyOption, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := entity.PropertyOption{
			PropertyCode: cell(row, idx, colPropertyCode),
			SheetID:      cell(row, idx, colMainSheetID),
		}
		if p.PropertyCode == "" && p.SheetID == "" {
			continue
		}
		if n, err := strconv.Atoi(cell(row, idx, colBedCount)); err == nil {
			p.BedCount = n
		}
		properties = append(properties, p)
	}
	return properties, nil
}

// BedSheet returns the bed rows of the sheet named by sheetID. A missing
// sheet is not an error: it yields an empty list, which downstream treats
// as "no beds available".
func (r *Register) BedSheet(ctx context.Context, sheetID string) ([]entity.BedRow, error) {
	file, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open register workbook: %w", err)
	}
	defer file.Close()

	if idx, err := file.GetSheetIndex(sheetID); err != nil || idx < 0 {
		r.logger.Warn("Bed sheet not present in register workbook",
			zap.String("sheet_id", sheetID))
		return nil, nil
	}

	rows, err := file.GetRows(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to read bed sheet %s: %w", sheetID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	beds := make([]entity.BedRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		b := entity.BedRow{
			BedNo:            cell(row, idx, colBedNo),
			ACRoom:           cell(row, idx, colACRoom),
			MonthlyFixedRent: cell(row, idx, colMFR),
			DepositAmount:    cell(row, idx, colDA),
			RevisionDate:     cell(row, idx, colURHD),
			RevisionAmount:   cell(row, idx, colURHA),
			RoomNo:           cell(row, idx, colRoomNo),
		}
		if b.BedNo == "" {
			continue
		}
		beds = append(beds, b)
	}
	return beds, nil
}

// AppendBooking writes one confirmed booking to the Bookings sheet,
// creating the sheet with its header row on first use.
func (r *Register) AppendBooking(ctx context.Context, record *entity.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("failed to open register workbook: %w", err)
	}
	defer file.Close()

	columns := bookingColumns()
	idx, err := file.GetSheetIndex(bookingsSheet)
	if err != nil {
		return fmt.Errorf("failed to locate bookings sheet: %w", err)
	}
	if idx < 0 {
		if _, err := file.NewSheet(bookingsSheet); err != nil {
			return fmt.Errorf("failed to create bookings sheet: %w", err)
		}
		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = column
		}
		if err := file.SetSheetRow(bookingsSheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write bookings header: %w", err)
		}
	}

	rows, err := file.GetRows(bookingsSheet)
	if err != nil {
		return fmt.Errorf("failed to read bookings sheet: %w", err)
	}

	values := make([]interface{}, len(columns))
	for i, column := range columns {
		switch column {
		case "bookingId":
			values[i] = record.ID
		case "createdAt":
			values[i] = record.CreatedAt.Format(time.RFC3339)
		default:
			values[i] = utils.SanitizeString(record.Field(column))
		}
	}

	target, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("failed to compute append position: %w", err)
	}
	if err := file.SetSheetRow(bookingsSheet, target, &values); err != nil {
		return fmt.Errorf("failed to append booking row: %w", err)
	}

	if err := file.Save(); err != nil {
		return fmt.Errorf("failed to save register workbook: %w", err)
	}

	r.logger.Info("Booking appended to register workbook",
		zap.String("booking_id", record.ID),
		zap.Int("row", len(rows)+1))
	return nil
}

// bookingColumns returns the fixed column order of the Bookings sheet:
// identity, client fields, then both sections' fields fully expanded.
// Fields a record does not carry come out as empty cells.
func bookingColumns() []string {
	columns := []string{"bookingId", "createdAt"}
	for _, key := range entity.ClientFieldKeys {
		columns = append(columns, key)
	}
	for _, kind := range entity.Sections {
		for _, field := range entity.SectionFieldKeys {
			columns = append(columns, kind.Prefix()+field)
		}
	}
	return columns
}

func (r *Register) sheetRows(sheet string) ([][]string, error) {
	file, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open register workbook: %w", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// headerIndex maps trimmed header names to their column positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// cell returns the trimmed value under the named column, or "" when the
// column is absent or the row is shorter than the header.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
