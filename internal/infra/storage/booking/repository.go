package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	"github.com/m04kA/SMC-CabinReservationService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"cabin_id",
	"user_id",
	"start_date",
	"end_date",
	"num_nights",
	"num_guests",
	"cabin_price",
	"extras_price",
	"total_price",
	"has_breakfast",
	"is_paid",
	"payment_method",
	"payment_id",
	"status",
	"observations",
	"form_snapshot",
	"created_at",
}

// Repository репозиторий для работы с бронированиями домиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// Уникальный индекс по payment_id не дает записать две брони на один платеж
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	snapshot, err := encodeSnapshot(booking.FormSnapshot)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"cabin_id",
			"user_id",
			"start_date",
			"end_date",
			"num_nights",
			"num_guests",
			"cabin_price",
			"extras_price",
			"total_price",
			"has_breakfast",
			"is_paid",
			"payment_method",
			"payment_id",
			"status",
			"observations",
			"form_snapshot",
		).
		Values(
			booking.CabinID,
			booking.UserID,
			booking.StartDate,
			booking.EndDate,
			booking.NumNights,
			booking.NumGuests,
			int64(booking.CabinPrice),
			int64(booking.ExtrasPrice),
			int64(booking.TotalPrice),
			booking.HasBreakfast,
			booking.IsPaid,
			booking.PaymentMethod,
			booking.PaymentID,
			booking.Status,
			booking.Observations,
			snapshot,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicatePayment
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByPaymentID получает бронирование по идентификатору платежа
// Используется, чтобы отдать уже созданную бронь при повторном колбэке оплаты
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var (
		booking                   domain.Booking
		cabinPrice, extras, total int64
		paymentID, observations   sql.NullString
		snapshot                  []byte
		createdAt                 sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.CabinID,
		&booking.UserID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.NumNights,
		&booking.NumGuests,
		&cabinPrice,
		&extras,
		&total,
		&booking.HasBreakfast,
		&booking.IsPaid,
		&booking.PaymentMethod,
		&paymentID,
		&booking.Status,
		&observations,
		&snapshot,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CabinPrice = domain.Money(cabinPrice)
	booking.ExtrasPrice = domain.Money(extras)
	booking.TotalPrice = domain.Money(total)
	if paymentID.Valid {
		booking.PaymentID = &paymentID.String
	}
	if observations.Valid {
		booking.Observations = &observations.String
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &booking.FormSnapshot); err != nil {
			return nil, err
		}
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// encodeSnapshot сериализует снимок формы в JSON (NULL для пустого)
func encodeSnapshot(snapshot map[string]string) ([]byte, error) {
	if len(snapshot) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}
	return data, nil
}
