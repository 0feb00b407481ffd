package get_reservation_form

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	cabinRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/cabin"
)

// UseCase use case получения формы бронирования домика
type UseCase struct {
	cabinRepo CabinRepository
	ranges    RangeSelection
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cabinRepo CabinRepository, ranges RangeSelection, logger Logger) *UseCase {
	return &UseCase{
		cabinRepo: cabinRepo,
		ranges:    ranges,
		logger:    logger,
	}
}

// Execute собирает форму: домик, выбранные даты, число ночей, цену
// и доступные действия отправки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.User.ID <= 0 || req.CabinID <= 0 {
		return nil, fmt.Errorf("%w: userID and cabinID must be positive", ErrInvalidInput)
	}

	cabin, err := uc.cabinRepo.GetByID(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, cabinRepo.ErrCabinNotFound) {
			uc.logger.Warn("GetReservationForm: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("GetReservationForm: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	rng, err := uc.ranges.Get(ctx, req.User.ID)
	if err != nil {
		uc.logger.Error("GetReservationForm: failed to get date range for user=%d: %v", req.User.ID, err)
		return nil, fmt.Errorf("%w: failed to get date range: %v", ErrInternal, err)
	}

	resp := &Response{
		Cabin:        *cabin,
		User:         req.User,
		Range:        rng,
		GuestOptions: cabin.GuestOptions(),
		Actions:      []domain.SubmitAction{},
	}

	quote, err := domain.QuoteFor(cabin, rng)
	if err != nil {
		resp.Hint = HintSelectDates
		return resp, nil
	}

	resp.NumNights = quote.NumNights
	resp.CabinPrice = quote.CabinPrice
	resp.CanSubmit = true
	resp.Actions = []domain.SubmitAction{domain.ActionPayOffline, domain.ActionPayOnline}

	return resp, nil
}
