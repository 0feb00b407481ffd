package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
	"github.com/m04kA/SMC-CabinReservationService/pkg/ptr"
)

type fakeRepo struct {
	created   []*domain.Booking
	byID      map[int64]*domain.Booking
	byPayment map[string]*domain.Booking
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:      make(map[int64]*domain.Booking),
		byPayment: make(map[string]*domain.Booking),
	}
}

func (r *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if b.PaymentID != nil {
		if _, ok := r.byPayment[*b.PaymentID]; ok {
			return nil, bookingRepo.ErrDuplicatePayment
		}
	}
	b.ID = int64(len(r.created) + 1)
	b.CreatedAt = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	r.created = append(r.created, b)
	r.byID[b.ID] = b
	if b.PaymentID != nil {
		r.byPayment[*b.PaymentID] = b
	}
	return b, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetByPaymentID(_ context.Context, paymentID string) (*domain.Booking, error) {
	b, ok := r.byPayment[paymentID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func validDraft() *domain.BookingDraft {
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 3),
		NumNights:    3,
		CabinPrice:   domain.MoneyFromMajor(240),
		CabinID:      7,
		UserID:       42,
		NumGuests:    2,
		Observations: "  arriving late  ",
	}
}

func TestService_CreateBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	booking, err := svc.CreateBooking(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, domain.PaymentOffline, booking.PaymentMethod)
	assert.False(t, booking.IsPaid)
	assert.Nil(t, booking.PaymentID)
	assert.Equal(t, domain.StatusUnconfirmed, booking.Status)
	assert.Equal(t, domain.MoneyFromMajor(240), booking.TotalPrice)
	assert.Equal(t, domain.Money(0), booking.ExtrasPrice)
	assert.False(t, booking.HasBreakfast)
	require.NotNil(t, booking.Observations)
	assert.Equal(t, "arriving late", *booking.Observations)
}

func TestService_CreateBooking_EmptyObservations(t *testing.T) {
	draft := validDraft()
	draft.Observations = ""

	booking, err := NewService(newFakeRepo(), logger.NewNop()).CreateBooking(context.Background(), draft)
	require.NoError(t, err)
	assert.Nil(t, booking.Observations)
}

func TestService_CreateBooking_InvalidDraft(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *domain.BookingDraft)
	}{
		{name: "no cabin", mutate: func(d *domain.BookingDraft) { d.CabinID = 0 }},
		{name: "no user", mutate: func(d *domain.BookingDraft) { d.UserID = 0 }},
		{name: "zero nights", mutate: func(d *domain.BookingDraft) { d.NumNights = 0 }},
		{name: "zero guests", mutate: func(d *domain.BookingDraft) { d.NumGuests = 0 }},
		{name: "inverted dates", mutate: func(d *domain.BookingDraft) { d.EndDate = d.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			draft := validDraft()
			tt.mutate(draft)

			_, err := NewService(repo, logger.NewNop()).CreateBooking(context.Background(), draft)
			assert.ErrorIs(t, err, ErrInvalidDraft)
			assert.Empty(t, repo.created)
		})
	}
}

func TestService_CreateBooking_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")

	_, err := NewService(repo, logger.NewNop()).CreateBooking(context.Background(), validDraft())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_CreateBookingOnline(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	draft := validDraft()
	draft.PaymentID = ptr.Ptr("pay_123")
	form := map[string]string{"numGuests": "2", "observations": "arriving late"}

	booking, err := svc.CreateBookingOnline(context.Background(), draft, form)
	require.NoError(t, err)

	assert.True(t, booking.IsPaid)
	assert.Equal(t, domain.PaymentOnline, booking.PaymentMethod)
	require.NotNil(t, booking.PaymentID)
	assert.Equal(t, "pay_123", *booking.PaymentID)
	assert.Equal(t, form, booking.FormSnapshot)

	form["numGuests"] = "3"
	assert.Equal(t, "2", booking.FormSnapshot["numGuests"])
}

func TestService_CreateBookingOnline_RequiresPayment(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	_, err := svc.CreateBookingOnline(context.Background(), validDraft(), nil)
	assert.ErrorIs(t, err, ErrPaymentIDRequired)

	draft := validDraft()
	draft.PaymentID = ptr.Ptr("")
	_, err = svc.CreateBookingOnline(context.Background(), draft, nil)
	assert.ErrorIs(t, err, ErrPaymentIDRequired)

	assert.Empty(t, repo.created)
}

func TestService_CreateBookingOnline_ReplayedPayment(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	draft := validDraft()
	draft.PaymentID = ptr.Ptr("pay_123")

	first, err := svc.CreateBookingOnline(context.Background(), draft, nil)
	require.NoError(t, err)

	replay := validDraft()
	replay.PaymentID = ptr.Ptr("pay_123")
	second, err := svc.CreateBookingOnline(context.Background(), replay, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.created, 1)

	foreign := validDraft()
	foreign.UserID = 99
	foreign.PaymentID = ptr.Ptr("pay_123")
	_, err = svc.CreateBookingOnline(context.Background(), foreign, nil)
	assert.ErrorIs(t, err, ErrDuplicatePayment)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	created, err := svc.CreateBooking(context.Background(), validDraft())
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", resp.StartDate)
	assert.Equal(t, "2025-05-04", resp.EndDate)
	assert.Equal(t, 240.0, resp.TotalPrice)
	assert.Equal(t, "offline", resp.PaymentMethod)

	_, err = svc.GetByID(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 999, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
