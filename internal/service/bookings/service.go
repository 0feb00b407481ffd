package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CabinReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CabinReservationService/pkg/ptr"
)

// Service сервис для работы с бронированиями домиков
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CreateBooking создает бронирование с оплатой при заезде
func (s *Service) CreateBooking(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error) {
	s.logger.Info("CreateBooking: cabin=%d, user=%d, nights=%d, guests=%d",
		draft.CabinID, draft.UserID, draft.NumNights, draft.NumGuests)

	if err := validateDraft(draft); err != nil {
		s.logger.Warn("CreateBooking: invalid draft: %v", err)
		return nil, err
	}

	booking := newBooking(draft, domain.PaymentOffline)

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("CreateBooking: repository error for cabin=%d, user=%d: %v", draft.CabinID, draft.UserID, err)
		return nil, fmt.Errorf("%w: CreateBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)
	return created, nil
}

// CreateBookingOnline создает оплаченное бронирование после успешной оплаты
// rawForm сохраняется как снимок отправленной формы для службы поддержки
func (s *Service) CreateBookingOnline(ctx context.Context, draft *domain.BookingDraft, rawForm map[string]string) (*domain.Booking, error) {
	s.logger.Info("CreateBookingOnline: cabin=%d, user=%d, nights=%d, guests=%d",
		draft.CabinID, draft.UserID, draft.NumNights, draft.NumGuests)

	if !draft.HasPayment() {
		s.logger.Warn("CreateBookingOnline: payment id missing for cabin=%d, user=%d", draft.CabinID, draft.UserID)
		return nil, ErrPaymentIDRequired
	}

	if err := validateDraft(draft); err != nil {
		s.logger.Warn("CreateBookingOnline: invalid draft: %v", err)
		return nil, err
	}

	booking := newBooking(draft, domain.PaymentOnline)
	booking.IsPaid = true
	booking.FormSnapshot = copyForm(rawForm)

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicatePayment) {
			return s.resolveDuplicate(ctx, draft)
		}
		s.logger.Error("CreateBookingOnline: repository error for payment=%s: %v", *draft.PaymentID, err)
		return nil, fmt.Errorf("%w: CreateBookingOnline - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBookingOnline: successfully created booking id=%d for payment=%s", created.ID, *draft.PaymentID)
	return created, nil
}

// GetByID получает бронирование по ID; пользователь видит только свои брони
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// resolveDuplicate обрабатывает повторную запись по тому же платежу:
// если бронь по платежу уже принадлежит этому же пользователю и домику, возвращаем её
func (s *Service) resolveDuplicate(ctx context.Context, draft *domain.BookingDraft) (*domain.Booking, error) {
	existing, err := s.bookingRepo.GetByPaymentID(ctx, *draft.PaymentID)
	if err != nil {
		s.logger.Error("CreateBookingOnline: failed to load booking for payment=%s: %v", *draft.PaymentID, err)
		return nil, fmt.Errorf("%w: CreateBookingOnline - repository error: %v", ErrInternal, err)
	}

	if existing.UserID != draft.UserID || existing.CabinID != draft.CabinID {
		s.logger.Warn("CreateBookingOnline: payment=%s already used by booking id=%d", *draft.PaymentID, existing.ID)
		return nil, ErrDuplicatePayment
	}

	s.logger.Info("CreateBookingOnline: payment=%s already booked as id=%d", *draft.PaymentID, existing.ID)
	return existing, nil
}

// newBooking строит запись брони из черновика (без завтрака и доп. услуг)
func newBooking(draft *domain.BookingDraft, method domain.PaymentMethod) *domain.Booking {
	booking := &domain.Booking{
		CabinID:       draft.CabinID,
		UserID:        draft.UserID,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		NumNights:     draft.NumNights,
		NumGuests:     draft.NumGuests,
		CabinPrice:    draft.CabinPrice,
		ExtrasPrice:   0,
		TotalPrice:    draft.CabinPrice,
		HasBreakfast:  false,
		IsPaid:        false,
		PaymentMethod: method,
		PaymentID:     draft.PaymentID,
		Status:        domain.StatusUnconfirmed,
	}

	if obs := strings.TrimSpace(draft.Observations); obs != "" {
		booking.Observations = ptr.Ptr(obs)
	}

	return booking
}

// validateDraft проверяет инварианты черновика
func validateDraft(draft *domain.BookingDraft) error {
	if draft.CabinID <= 0 {
		return fmt.Errorf("%w: cabinID must be positive", ErrInvalidDraft)
	}
	if draft.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidDraft)
	}
	if draft.NumNights < 1 {
		return fmt.Errorf("%w: numNights must be at least 1", ErrInvalidDraft)
	}
	if draft.NumGuests < domain.MinGuests {
		return fmt.Errorf("%w: numGuests must be at least %d", ErrInvalidDraft, domain.MinGuests)
	}
	if !draft.EndDate.After(draft.StartDate) {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidDraft)
	}
	if draft.CabinPrice < 0 {
		return fmt.Errorf("%w: cabinPrice must not be negative", ErrInvalidDraft)
	}
	return nil
}

func copyForm(form map[string]string) map[string]string {
	if len(form) == 0 {
		return nil
	}
	out := make(map[string]string, len(form))
	for k, v := range form {
		out[k] = v
	}
	return out
}
