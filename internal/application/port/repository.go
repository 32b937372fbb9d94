package port

import (
	"context"

	"github.com/pgstay/booking/internal/domain/entity"
)

// ReferenceSource provides the read-only reference data the form depends
// on: the staff list, the property list, and each property's bed sheet.
// An empty result is not an error; absence is modelled as "no match".
type ReferenceSource interface {
	Employees(ctx context.Context) ([]entity.Employee, error)
	Properties(ctx context.Context) ([]entity.PropertyOption, error)
	BedSheet(ctx context.Context, sheetID string) ([]entity.BedRow, error)
}

// BookingRepository defines persistence operations for BookingRecord
type BookingRepository interface {
	Create(ctx context.Context, record *entity.BookingRecord) error
	GetByID(ctx context.Context, id string) (*entity.BookingRecord, error)
	List(ctx context.Context, limit, offset int) ([]*entity.BookingRecord, error)
}

// BookingSheet appends confirmed bookings to the register workbook
type BookingSheet interface {
	AppendBooking(ctx context.Context, record *entity.BookingRecord) error
}
