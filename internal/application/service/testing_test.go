package service

import (
	"context"
	"errors"

	"github.com/pgstay/booking/internal/domain/entity"
)

// testLogger satisfies Logger and swallows output.
type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}

// mockReferenceSource implements port.ReferenceSource for testing
type mockReferenceSource struct {
	employees  []entity.Employee
	properties []entity.PropertyOption
	sheets     map[string][]entity.BedRow
	err        error
	sheetCalls []string
}

func (m *mockReferenceSource) Employees(ctx context.Context) ([]entity.Employee, error) {
	return m.employees, m.err
}

func (m *mockReferenceSource) Properties(ctx context.Context) ([]entity.PropertyOption, error) {
	return m.properties, m.err
}

func (m *mockReferenceSource) BedSheet(ctx context.Context, sheetID string) ([]entity.BedRow, error) {
	m.sheetCalls = append(m.sheetCalls, sheetID)
	if m.err != nil {
		return nil, m.err
	}
	return m.sheets[sheetID], nil
}

// mockBookingRepo implements port.BookingRepository for testing
type mockBookingRepo struct {
	createFunc func(ctx context.Context, record *entity.BookingRecord) error
	stored     map[string]*entity.BookingRecord
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{stored: make(map[string]*entity.BookingRecord)}
}

func (m *mockBookingRepo) Create(ctx context.Context, record *entity.BookingRecord) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, record)
	}
	m.stored[record.ID] = record
	return nil
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*entity.BookingRecord, error) {
	return m.stored[id], nil
}

func (m *mockBookingRepo) List(ctx context.Context, limit, offset int) ([]*entity.BookingRecord, error) {
	return nil, nil
}

// mockBookingSheet implements port.BookingSheet for testing
type mockBookingSheet struct {
	appended []*entity.BookingRecord
	err      error
}

func (m *mockBookingSheet) AppendBooking(ctx context.Context, record *entity.BookingRecord) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, record)
	return nil
}

var errSourceDown = errors.New("reference source unavailable")
