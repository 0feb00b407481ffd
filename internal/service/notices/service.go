package notices

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

const (
	// DefaultLimit сколько непрочитанных уведомлений хранится на пользователя
	DefaultLimit = 50

	// feedRetention сколько хранится лента пользователя, который ее не забирает
	feedRetention = time.Hour
)

type feed struct {
	notices []domain.Notice
	updated time.Time
}

// Service лента уведомлений пользователя: сообщения об успехе/ошибке,
// переходы на страницу подтверждения и открытие виджета оплаты.
// Браузер забирает ленту через Drain.
type Service struct {
	mu        sync.Mutex
	feeds     map[int64]*feed
	limit     int
	lastSweep time.Time
	now       func() time.Time
	logger    Logger
}

// NewService создает ленту уведомлений; limit <= 0 означает DefaultLimit
func NewService(limit int, logger Logger) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		feeds:  make(map[int64]*feed),
		limit:  limit,
		now:    time.Now,
		logger: logger,
	}
}

// Success показывает пользователю сообщение об успехе
func (s *Service) Success(_ context.Context, userID int64, message string) {
	s.push(userID, domain.Notice{Kind: domain.NoticeSuccess, Message: message})
}

// Failure показывает пользователю сообщение об ошибке
func (s *Service) Failure(_ context.Context, userID int64, message string) {
	s.push(userID, domain.Notice{Kind: domain.NoticeFailure, Message: message})
}

// Navigate отправляет пользователя на указанную страницу
func (s *Service) Navigate(_ context.Context, userID int64, destination string) {
	s.push(userID, domain.Notice{Kind: domain.NoticeNavigate, Destination: destination})
}

// Checkout просит браузер открыть виджет оплаты для созданного заказа
func (s *Service) Checkout(_ context.Context, userID int64, session *domain.CheckoutSession) error {
	s.push(userID, domain.Notice{Kind: domain.NoticeCheckout, Checkout: session})
	return nil
}

// Drain возвращает и удаляет накопленные уведомления пользователя
func (s *Service) Drain(_ context.Context, userID int64) []domain.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feeds[userID]
	delete(s.feeds, userID)

	if !ok {
		return []domain.Notice{}
	}
	return f.notices
}

func (s *Service) push(userID int64, notice domain.Notice) {
	now := s.now()
	notice.ID = uuid.NewString()
	notice.CreatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	f, ok := s.feeds[userID]
	if !ok {
		f = &feed{}
		s.feeds[userID] = f
	}
	f.notices = append(f.notices, notice)
	f.updated = now
	if len(f.notices) > s.limit {
		dropped := len(f.notices) - s.limit
		s.logger.Warn("Notices: feed of user=%d is full, dropping %d oldest", userID, dropped)
		f.notices = f.notices[dropped:]
	}
}

// sweep удаляет ленты, которые не забирали дольше feedRetention
func (s *Service) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < feedRetention {
		return
	}
	s.lastSweep = now
	for id, f := range s.feeds {
		if now.Sub(f.updated) >= feedRetention {
			s.logger.Warn("Notices: dropping %d unread notices of idle user=%d", len(f.notices), id)
			delete(s.feeds, id)
		}
	}
}
