package service

import (
	"context"

	"github.com/pgstay/booking/internal/application/port"
	"github.com/pgstay/booking/internal/domain/entity"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// EmployeeOption is a sales-person choice as the form presents it. Value is
// what gets stored in the sales field when the option is picked.
type EmployeeOption struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Value string `json:"value"`
}

// PropertyChoice is a property choice as the form presents it. Value is the
// composite "{sheetId},{bedCount},{propertyCode}" select value.
type PropertyChoice struct {
	PropertyCode string `json:"property_code"`
	SheetID      string `json:"sheet_id"`
	BedCount     int    `json:"bed_count"`
	Value        string `json:"value"`
}

// ReferenceService serves the form's reference data
type ReferenceService interface {
	EmployeeOptions(ctx context.Context) ([]EmployeeOption, error)
	PropertyChoices(ctx context.Context) ([]PropertyChoice, error)
	BedSheet(ctx context.Context, sheetID string) ([]entity.BedRow, error)
}

type referenceServiceImpl struct {
	source port.ReferenceSource
	logger Logger
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(source port.ReferenceSource, logger Logger) ReferenceService {
	return &referenceServiceImpl{
		source: source,
		logger: logger,
	}
}

// EmployeeOptions returns the staff list with derived option values. An
// empty staff list is returned as an empty slice, not an error.
func (s *referenceServiceImpl) EmployeeOptions(ctx context.Context) ([]EmployeeOption, error) {
	employees, err := s.source.Employees(ctx)
	if err != nil {
		s.logger.Error("Failed to load employee list", "error", err)
		return nil, err
	}

	options := make([]EmployeeOption, 0, len(employees))
	for _, e := range employees {
		options = append(options, EmployeeOption{
			Name:  e.Name,
			ID:    e.ID,
			Value: e.OptionValue(),
		})
	}
	return options, nil
}

// PropertyChoices returns the selectable properties with composite values.
func (s *referenceServiceImpl) PropertyChoices(ctx context.Context) ([]PropertyChoice, error) {
	properties, err := s.source.Properties(ctx)
	if err != nil {
		s.logger.Error("Failed to load property list", "error", err)
		return nil, err
	}

	choices := make([]PropertyChoice, 0, len(properties))
	for _, p := range properties {
		choices = append(choices, PropertyChoice{
			PropertyCode: p.PropertyCode,
			SheetID:      p.SheetID,
			BedCount:     p.BedCount,
			Value:        p.CompositeValue(),
		})
	}
	return choices, nil
}

// BedSheet returns the bed rows for one property's sheet.
func (s *referenceServiceImpl) BedSheet(ctx context.Context, sheetID string) ([]entity.BedRow, error) {
	rows, err := s.source.BedSheet(ctx, sheetID)
	if err != nil {
		s.logger.Error("Failed to load bed sheet", "error", err, "sheet_id", sheetID)
		return nil, err
	}
	return rows, nil
}
