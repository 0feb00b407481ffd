package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func onlineBooking() *domain.Booking {
	paymentID := "pay_1"
	return &domain.Booking{
		CabinID:       7,
		UserID:        42,
		StartDate:     time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.November, 4, 0, 0, 0, 0, time.UTC),
		NumNights:     3,
		NumGuests:     2,
		CabinPrice:    domain.MoneyFromMajor(240),
		TotalPrice:    domain.MoneyFromMajor(240),
		IsPaid:        true,
		PaymentMethod: domain.PaymentOnline,
		PaymentID:     &paymentID,
		Status:        domain.StatusUnconfirmed,
		FormSnapshot:  map[string]string{"numGuests": "2"},
	}
}

var insertQuery = regexp.QuoteMeta("INSERT INTO bookings")

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(15), createdAt))

	booking, err := repo.Create(context.Background(), onlineBooking())

	require.NoError(t, err)
	assert.Equal(t, int64(15), booking.ID)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicatePayment(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: "bookings_payment_id_key"})

	_, err := repo.Create(context.Background(), onlineBooking())

	assert.ErrorIs(t, err, ErrDuplicatePayment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "other constraint", err: &pq.Error{Code: "23514"}},
		{name: "connection", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			mock.ExpectQuery(insertQuery).WillReturnError(tt.err)

			_, err := repo.Create(context.Background(), onlineBooking())

			assert.ErrorIs(t, err, ErrExecQuery)
			assert.NotErrorIs(t, err, ErrDuplicatePayment)
		})
	}
}

func TestRepository_GetByPaymentID(t *testing.T) {
	repo, mock := newMockRepository(t)
	b := onlineBooking()
	createdAt := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		int64(15), b.CabinID, b.UserID, b.StartDate, b.EndDate, b.NumNights, b.NumGuests,
		int64(b.CabinPrice), int64(0), int64(b.TotalPrice), false, true,
		string(domain.PaymentOnline), "pay_1", string(domain.StatusUnconfirmed), nil,
		[]byte(`{"numGuests":"2"}`), createdAt,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE payment_id = $1")).
		WithArgs("pay_1").
		WillReturnRows(rows)

	got, err := repo.GetByPaymentID(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.Equal(t, int64(15), got.ID)
	assert.Equal(t, domain.MoneyFromMajor(240), got.CabinPrice)
	assert.Equal(t, domain.PaymentOnline, got.PaymentMethod)
	require.NotNil(t, got.PaymentID)
	assert.Equal(t, "pay_1", *got.PaymentID)
	assert.Nil(t, got.Observations)
	assert.Equal(t, map[string]string{"numGuests": "2"}, got.FormSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodeSnapshot(t *testing.T) {
	data, err := encodeSnapshot(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = encodeSnapshot(map[string]string{"numGuests": "2", "observations": "late arrival"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"numGuests":"2","observations":"late arrival"}`, string(data))
}
