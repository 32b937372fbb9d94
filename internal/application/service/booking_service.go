package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pgstay/booking/internal/application/port"
	"github.com/pgstay/booking/internal/booking"
	"github.com/pgstay/booking/internal/domain/entity"
	"github.com/pgstay/booking/pkg/utils"
)

// ValidationError carries per-field validation messages for a rejected
// submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// SubmissionResult is what the confirmation step shows: the assembled
// record plus its grouped, human-readable preview. The record is editable
// client-side until Confirm persists it.
type SubmissionResult struct {
	Record  entity.BookingRecord `json:"record"`
	Preview []PreviewSection     `json:"preview"`
}

// BookingService validates, assembles and persists bookings
type BookingService interface {
	Submit(ctx context.Context, snap booking.Snapshot) (*SubmissionResult, error)
	Confirm(ctx context.Context, record entity.BookingRecord) (*entity.BookingRecord, error)
	Get(ctx context.Context, id string) (*entity.BookingRecord, error)
}

type bookingServiceImpl struct {
	repo     port.BookingRepository
	sheet    port.BookingSheet
	validate *validator.Validate
	logger   Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(repo port.BookingRepository, sheet port.BookingSheet, logger Logger) BookingService {
	return &bookingServiceImpl{
		repo:     repo,
		sheet:    sheet,
		validate: validator.New(),
		logger:   logger,
	}
}

// clientInput mirrors the form's unconditional validation rules.
type clientInput struct {
	Date           string `validate:"required"`
	Sales          string `validate:"required"`
	ClientName     string `validate:"required"`
	ClientWhatsapp string `validate:"required,numeric,len=10"`
	ClientCalling  string `validate:"required,numeric,len=10"`
	FatherName     string `validate:"required"`
	FatherContact  string `validate:"omitempty,numeric,len=10"`
	MotherName     string `validate:"required"`
	MotherContact  string `validate:"omitempty,numeric,len=10"`
}

// field keys required in every enabled section, plus per-kind extras.
var sectionRequired = []string{
	entity.FieldPropertyCode,
	entity.FieldBedNo,
	entity.FieldRentStartDate,
	entity.FieldRentAmount,
}

var sectionRequiredExtra = map[entity.SectionKind][]string{
	entity.SectionPermanent: {entity.FieldProcessingFees, entity.FieldRevisionDate},
	entity.SectionTemporary: {entity.FieldRoomNo},
}

// date fields validated for format when present.
var sectionDateFields = []string{
	entity.FieldRentStartDate,
	entity.FieldRentEndDate,
	entity.FieldRevisionDate,
}

// Submit validates the form state and assembles the booking record with its
// confirmation preview. Nothing is persisted until Confirm.
func (s *bookingServiceImpl) Submit(ctx context.Context, snap booking.Snapshot) (*SubmissionResult, error) {
	if verr := s.validateForm(snap); verr != nil {
		s.logger.Info("Booking submission rejected",
			"session_id", snap.ID, "invalid_fields", len(verr.Fields))
		return nil, verr
	}

	record := booking.Assemble(snap.Values, snap.Tabs)
	return &SubmissionResult{
		Record:  record,
		Preview: BuildPreview(&record),
	}, nil
}

// Confirm persists a confirmed booking and appends it to the register
// workbook. Failure is reported as-is; the caller keeps the record and may
// retry.
func (s *bookingServiceImpl) Confirm(ctx context.Context, record entity.BookingRecord) (*entity.BookingRecord, error) {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, &record); err != nil {
		s.logger.Error("Failed to persist booking", "error", err, "booking_id", record.ID)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.sheet.AppendBooking(ctx, &record); err != nil {
		s.logger.Error("Failed to append booking to register sheet",
			"error", err, "booking_id", record.ID)
		return nil, fmt.Errorf("failed to append booking to register sheet: %w", err)
	}

	s.logger.Info("Booking confirmed",
		"booking_id", record.ID, "client", record.Field(entity.FieldClientName))
	return &record, nil
}

// Get retrieves a stored booking by ID.
func (s *bookingServiceImpl) Get(ctx context.Context, id string) (*entity.BookingRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get booking", "error", err, "booking_id", id)
		return nil, err
	}
	return record, nil
}

func (s *bookingServiceImpl) validateForm(snap booking.Snapshot) *ValidationError {
	fields := make(map[string]string)

	input := clientInput{
		Date:           snap.Values[entity.FieldDate],
		Sales:          snap.Values[entity.FieldSales],
		ClientName:     snap.Values[entity.FieldClientName],
		ClientWhatsapp: snap.Values[entity.FieldClientWhatsapp],
		ClientCalling:  snap.Values[entity.FieldClientCalling],
		FatherName:     snap.Values[entity.FieldFatherName],
		FatherContact:  snap.Values[entity.FieldFatherContact],
		MotherName:     snap.Values[entity.FieldMotherName],
		MotherContact:  snap.Values[entity.FieldMotherContact],
	}
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[clientFieldKey(fe.Field())] = messageFor(fe)
			}
		} else {
			fields["form"] = err.Error()
		}
	}

	for _, kind := range entity.Sections {
		if !snap.Tabs.Enabled(kind) {
			continue
		}
		prefix := kind.Prefix()
		required := append(append([]string{}, sectionRequired...), sectionRequiredExtra[kind]...)
		for _, field := range required {
			if strings.TrimSpace(snap.Values[prefix+field]) == "" {
				fields[prefix+field] = "is required"
			}
		}
		for _, field := range sectionDateFields {
			value := strings.TrimSpace(snap.Values[prefix+field])
			if value == "" {
				continue
			}
			if _, err := utils.ParseFormDate(value); err != nil {
				fields[prefix+field] = "must be a valid date (YYYY-MM-DD)"
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// clientFieldKey maps a validator struct-field name back to its form key.
func clientFieldKey(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric", "len":
		return "must be a 10-digit number"
	}
	return "is invalid"
}
