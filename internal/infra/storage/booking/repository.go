package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/psqlbuilder"
)

// Repository reservation records storage
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create persists a new reservation record
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"meal_type",
			"start_time",
			"guests",
			"notes",
			"privacy_consent",
			"marketing_consent",
		).
		Values(
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.BookingDate,
			b.MealType,
			b.StartTime,
			b.Guests,
			b.Notes,
			b.PrivacyConsent,
			b.MarketingConsent,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// List returns all reservation records, newest first
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_email",
		"customer_phone",
		"booking_date",
		"meal_type",
		"start_time",
		"guests",
		"notes",
		"privacy_consent",
		"marketing_consent",
		"created_at",
	).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CustomerName,
			&b.CustomerEmail,
			&b.CustomerPhone,
			&b.BookingDate,
			&b.MealType,
			&b.StartTime,
			&b.Guests,
			&b.Notes,
			&b.PrivacyConsent,
			&b.MarketingConsent,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetByID returns a single reservation record
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"customer_name",
		"customer_email",
		"customer_phone",
		"booking_date",
		"meal_type",
		"start_time",
		"guests",
		"notes",
		"privacy_consent",
		"marketing_consent",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.BookingDate,
		&b.MealType,
		&b.StartTime,
		&b.Guests,
		&b.Notes,
		&b.PrivacyConsent,
		&b.MarketingConsent,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// Delete removes a reservation record
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
