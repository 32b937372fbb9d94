package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pgstay/booking/internal/application/port"
	"github.com/pgstay/booking/internal/domain/entity"
)

// BookingRepository implements port.BookingRepository over SQLite
type BookingRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB, logger *zap.Logger) port.BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a confirmed booking record
func (r *BookingRepository) Create(ctx context.Context, record *entity.BookingRecord) error {
	payload, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode booking payload: %w", err)
	}

	query := `
		INSERT INTO bookings (
			id, client_name, client_whatsapp, payload, created_at
		) VALUES (?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.Field(entity.FieldClientName),
		record.Field(entity.FieldClientWhatsapp),
		string(payload),
		record.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create booking", zap.Error(err))
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by its ID
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.BookingRecord, error) {
	query := `
		SELECT id, payload, created_at
		FROM bookings
		WHERE id = ?
	`

	var record entity.BookingRecord
	var payload string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&payload,
		&record.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get booking", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &record.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode booking payload: %w", err)
	}

	return &record, nil
}

// List retrieves bookings ordered by creation time, newest first
func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]*entity.BookingRecord, error) {
	query := `
		SELECT id, payload, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var records []*entity.BookingRecord
	for rows.Next() {
		var record entity.BookingRecord
		var payload string
		if err := rows.Scan(&record.ID, &payload, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &record.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode booking payload: %w", err)
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}
