package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
	selectionStore "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/selection"
)

// Service общий для формы выбор дат бронирования, по одному диапазону на пользователя
type Service struct {
	store  RangeStore
	ttl    time.Duration
	logger Logger
}

// NewService создает сервис выбора дат
// ttl = 0 - диапазон хранится без ограничения по времени
func NewService(store RangeStore, ttl time.Duration, logger Logger) *Service {
	return &Service{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает текущий диапазон пользователя
// Если ничего не выбрано, возвращает пустой диапазон {nil, nil}
func (s *Service) Get(ctx context.Context, userID int64) (domain.DateRange, error) {
	rng, err := s.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, selectionStore.ErrRangeNotFound) {
			return domain.DateRange{}, nil
		}
		s.logger.Error("Selection.Get: failed to load range for user=%d: %v", userID, err)
		return domain.DateRange{}, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}
	return *rng, nil
}

// Set сохраняет диапазон (любой из концов может быть не выбран)
func (s *Service) Set(ctx context.Context, userID int64, from, to *time.Time) (domain.DateRange, error) {
	if userID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	rng, err := domain.NewDateRange(from, to)
	if err != nil {
		s.logger.Warn("Selection.Set: invalid range for user=%d: %v", userID, err)
		return domain.DateRange{}, ErrInvalidRange
	}

	if rng.IsEmpty() {
		return rng, s.Reset(ctx, userID)
	}

	if err := s.store.Save(ctx, userID, rng, s.ttl); err != nil {
		s.logger.Error("Selection.Set: failed to save range for user=%d: %v", userID, err)
		return domain.DateRange{}, fmt.Errorf("%w: Set - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Selection.Set: user=%d range=%s..%s", userID, formatDate(rng.From), formatDate(rng.To))
	return rng, nil
}

// Reset очищает выбор пользователя
func (s *Service) Reset(ctx context.Context, userID int64) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.Error("Selection.Reset: failed to reset range for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Reset - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Selection.Reset: range cleared for user=%d", userID)
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
