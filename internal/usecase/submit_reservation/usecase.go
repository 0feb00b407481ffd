package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	cabinRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/cabin"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
	"github.com/m04kA/SMC-CabinReservationService/pkg/ptr"
)

// UseCase use case отправки формы бронирования домика
type UseCase struct {
	cabinRepo CabinRepository
	ranges    RangeSelection
	bookings  BookingService
	payments  PaymentClient
	notifier  Notifier
	metrics   MetricsRecorder
	settings  Settings
	logger    Logger

	mu       sync.Mutex
	inflight map[int64]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cabinRepo CabinRepository,
	ranges RangeSelection,
	bookings BookingService,
	payments PaymentClient,
	notifier Notifier,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Currency == "" {
		settings.Currency = domain.DefaultCurrency
	}
	if settings.DisplayName == "" {
		settings.DisplayName = domain.DefaultDisplayName
	}
	if settings.ConfirmationPath == "" {
		settings.ConfirmationPath = domain.DefaultConfirmationPath
	}

	return &UseCase{
		cabinRepo: cabinRepo,
		ranges:    ranges,
		bookings:  bookings,
		payments:  payments,
		notifier:  notifier,
		metrics:   metrics,
		settings:  settings,
		logger:    logger,
		inflight:  make(map[int64]struct{}),
	}
}

// Submission подготовленная отправка: черновик собран, пользователь
// захвачен до вызова Complete
type Submission struct {
	uc    *UseCase
	req   *Request
	draft *domain.BookingDraft
	once  sync.Once
}

// Draft черновик бронирования этой отправки
func (s *Submission) Draft() domain.BookingDraft {
	return *s.draft
}

// Action действие, выбранное пользователем
func (s *Submission) Action() domain.SubmitAction {
	return s.req.Action
}

// Execute выполняет отправку формы целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sub, err := uc.Begin(ctx, req)
	if err != nil {
		return nil, err
	}
	return sub.Complete(ctx)
}

// Begin проверяет форму, считает цену и собирает черновик.
// Пока отправка не завершена, повторная отправка того же пользователя
// отклоняется с ErrSubmissionInProgress.
func (uc *UseCase) Begin(ctx context.Context, req *Request) (*Submission, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitReservation: user=%d, cabin=%d, action=%s, guests=%d",
		req.User.ID, req.CabinID, req.Action, req.NumGuests)

	if !uc.acquire(req.User.ID) {
		uc.logger.Warn("SubmitReservation: user=%d already has a submission in progress", req.User.ID)
		return nil, ErrSubmissionInProgress
	}

	draft, err := uc.prepare(ctx, req)
	if err != nil {
		uc.release(req.User.ID)
		return nil, err
	}

	return &Submission{uc: uc, req: req, draft: draft}, nil
}

// Complete выполняет выбранный путь оплаты. Вызывается один раз;
// снимает блокировку пользователя по завершении.
func (s *Submission) Complete(ctx context.Context) (*Response, error) {
	var (
		resp *Response
		err  = fmt.Errorf("%w: submission already completed", ErrInternal)
	)

	s.once.Do(func() {
		defer s.uc.release(s.req.User.ID)

		switch s.req.Action {
		case domain.ActionPayOffline:
			resp, err = s.uc.payOffline(ctx, s.req, s.draft)
		case domain.ActionPayOnline:
			resp, err = s.uc.payOnline(ctx, s.req, s.draft)
		default:
			resp, err = nil, ErrUnknownAction
		}
	})

	return resp, err
}

// prepare загружает домик и выбранные даты и собирает черновик
func (uc *UseCase) prepare(ctx context.Context, req *Request) (*domain.BookingDraft, error) {
	cabin, err := uc.cabinRepo.GetByID(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			uc.logger.Warn("SubmitReservation: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("SubmitReservation: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	if err := validateGuests(cabin, req.NumGuests); err != nil {
		uc.logger.Warn("SubmitReservation: %v", err)
		return nil, err
	}

	rng, err := uc.ranges.Get(ctx, req.User.ID)
	if err != nil {
		uc.logger.Error("SubmitReservation: failed to get date range for user=%d: %v", req.User.ID, err)
		return nil, fmt.Errorf("%w: failed to get date range: %v", ErrInternal, err)
	}

	quote, err := domain.QuoteFor(cabin, rng)
	if err != nil {
		uc.logger.Warn("SubmitReservation: user=%d has no usable date range: %v", req.User.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrRangeIncomplete, err)
	}

	return &domain.BookingDraft{
		StartDate:    quote.StartDate,
		EndDate:      quote.EndDate,
		NumNights:    quote.NumNights,
		CabinPrice:   quote.CabinPrice,
		CabinID:      cabin.ID,
		UserID:       req.User.ID,
		NumGuests:    req.NumGuests,
		Observations: req.Observations,
	}, nil
}

// payOffline бронь с оплатой при заезде
func (uc *UseCase) payOffline(ctx context.Context, req *Request, draft *domain.BookingDraft) (*Response, error) {
	userID := req.User.ID

	booking, err := uc.bookings.CreateBooking(ctx, draft)
	if err != nil {
		// Даты не сбрасываются, пользователь может повторить
		uc.logger.Error("SubmitReservation: failed to create offline booking for user=%d: %v", userID, err)
		uc.notifier.Failure(ctx, userID, MsgBookingFailed)
		uc.metrics.ObserveSubmission(string(req.Action), resultBookingFailed)
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	uc.resetRange(ctx, userID)
	uc.metrics.ObserveSubmission(string(req.Action), resultBooked)
	uc.logger.Info("SubmitReservation: booking id=%d created for user=%d, %d nights, price=%s",
		booking.ID, userID, draft.NumNights, draft.CabinPrice)

	return &Response{
		Action:     req.Action,
		BookingID:  booking.ID,
		NumNights:  draft.NumNights,
		CabinPrice: draft.CabinPrice,
		Status:     StatusBooked,
	}, nil
}

// payOnline открывает оплату и создает бронь с ID платежа
func (uc *UseCase) payOnline(ctx context.Context, req *Request, draft *domain.BookingDraft) (*Response, error) {
	userID := req.User.ID

	result, err := uc.payments.OpenCheckout(ctx, uc.checkoutConfig(req, draft))
	if err != nil {
		uc.logger.Error("SubmitReservation: checkout for user=%d failed: %v", userID, err)
		uc.notifier.Failure(ctx, userID, MsgCheckoutFailed)
		uc.metrics.ObserveSubmission(string(req.Action), resultCheckoutFailed)
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	if result.Failed {
		uc.logger.Warn("SubmitReservation: payment for user=%d, order=%s failed: %s", userID, result.OrderID, result.Description)
		uc.notifier.Failure(ctx, userID, MsgPaymentFailed+result.Description)
		uc.metrics.ObserveSubmission(string(req.Action), resultPaymentFailed)
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, result.Description)
	}

	if result.PaymentID == "" {
		uc.logger.Error("SubmitReservation: checkout order=%s for user=%d finished without payment id", result.OrderID, userID)
		uc.notifier.Failure(ctx, userID, MsgPostPaymentFailed)
		uc.metrics.ObserveSubmission(string(req.Action), resultMissingPaymentID)
		return nil, ErrMissingPaymentID
	}

	paymentID := result.PaymentID
	draft.PaymentID = ptr.Ptr(paymentID)

	booking, err := uc.bookings.CreateBookingOnline(ctx, draft, req.RawForm)
	if err != nil {
		// Оплата прошла, брони нет: пользователь обращается в поддержку
		uc.logger.Error("SubmitReservation: payment=%s captured but booking for user=%d failed: %v", paymentID, userID, err)
		uc.notifier.Failure(ctx, userID, MsgPostPaymentFailed)
		uc.metrics.ObserveSubmission(string(req.Action), resultBookingFailed)
		return nil, fmt.Errorf("%w: payment=%s: %v", ErrBookingFailed, paymentID, err)
	}

	uc.notifier.Success(ctx, userID, MsgPaymentSucceeded)
	uc.resetRange(ctx, userID)
	uc.notifier.Navigate(ctx, userID, uc.settings.ConfirmationPath)
	uc.metrics.ObserveSubmission(string(req.Action), resultBooked)
	uc.logger.Info("SubmitReservation: booking id=%d paid by payment=%s for user=%d", booking.ID, paymentID, userID)

	return &Response{
		Action:     req.Action,
		BookingID:  booking.ID,
		NumNights:  draft.NumNights,
		CabinPrice: draft.CabinPrice,
		PaymentID:  ptr.Ptr(paymentID),
		Redirect:   uc.settings.ConfirmationPath,
		Status:     StatusPaid,
	}, nil
}

func (uc *UseCase) checkoutConfig(req *Request, draft *domain.BookingDraft) *checkout.Config {
	name := strings.TrimSpace(req.User.Name)
	if name == "" {
		name = domain.DefaultGuestName
	}

	return &checkout.Config{
		UserID:      req.User.ID,
		Key:         uc.settings.MerchantKey,
		AmountMinor: draft.CabinPrice.MinorUnits(),
		Currency:    uc.settings.Currency,
		Name:        uc.settings.DisplayName,
		Description: fmt.Sprintf("Booking for %d nights", draft.NumNights),
		Prefill: checkout.Prefill{
			Name:  name,
			Email: req.User.Email,
		},
		Notes: map[string]string{
			"cabinId":   strconv.FormatInt(draft.CabinID, 10),
			"userId":    strconv.FormatInt(draft.UserID, 10),
			"startDate": draft.StartDate.Format(domain.DateFormat),
			"endDate":   draft.EndDate.Format(domain.DateFormat),
		},
	}
}

// resetRange сбрасывает даты после успешной брони; ошибка только логируется
func (uc *UseCase) resetRange(ctx context.Context, userID int64) {
	if err := uc.ranges.Reset(ctx, userID); err != nil {
		uc.logger.Warn("SubmitReservation: failed to reset date range for user=%d: %v", userID, err)
	}
}

func (uc *UseCase) acquire(userID int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inflight[userID]; busy {
		return false
	}
	uc.inflight[userID] = struct{}{}
	return true
}

func (uc *UseCase) release(userID int64) {
	uc.mu.Lock()
	delete(uc.inflight, userID)
	uc.mu.Unlock()
}
