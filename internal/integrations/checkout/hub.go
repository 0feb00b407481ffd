package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

const (
	defaultFailureDescription = "Payment was not completed"

	// MsgPaymentNotRecorded уведомление о подтвержденном платеже, для которого бронь не создана
	MsgPaymentNotRecorded = "There was an issue creating your booking after payment. Please contact support."

	// сколько хранится прерванная сессия для опоздавшего результата виджета
	expiredRetention = 30 * time.Minute
)

type session struct {
	userID   int64
	result   chan *Result
	resolved bool
	// не nil, пока идет проверка платежа у провайдера; закрывается по завершении
	verifying chan struct{}
	expiredAt time.Time
}

// Hub открывает оплату у провайдера и ждет результат виджета,
// который браузер присылает через Resolve
type Hub struct {
	provider  Provider
	publisher Publisher
	pending   PendingGauge
	timeout   time.Duration
	logger    Logger

	mu       sync.Mutex
	sessions map[string]*session
	expired  map[string]*session
}

// NewHub создает хаб оплаты; gauge может быть nil
func NewHub(provider Provider, publisher Publisher, gauge PendingGauge, timeout time.Duration, logger Logger) *Hub {
	if gauge == nil {
		gauge = nopGauge{}
	}
	return &Hub{
		provider:  provider,
		publisher: publisher,
		pending:   gauge,
		timeout:   timeout,
		logger:    logger,
		sessions:  make(map[string]*session),
		expired:   make(map[string]*session),
	}
}

// OpenCheckout создает заказ, публикует конфигурацию виджета и блокируется
// до результата оплаты, отмены контекста или таймаута
func (h *Hub) OpenCheckout(ctx context.Context, cfg *Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	order, err := h.provider.CreateOrder(ctx, &OrderRequest{
		AmountMinor: cfg.AmountMinor,
		Currency:    cfg.Currency,
		Receipt:     uuid.NewString(),
		Description: cfg.Description,
		Notes:       cfg.Notes,
	})
	if err != nil {
		h.logger.Error("OpenCheckout: %s failed to create order for user=%d: %v", h.provider.Name(), cfg.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrCreateOrder, err)
	}

	s := &session{userID: cfg.UserID, result: make(chan *Result, 1)}
	h.register(order.ID, s)
	defer h.unregister(order.ID)

	err = h.publisher.Checkout(ctx, cfg.UserID, &domain.CheckoutSession{
		Provider:     h.provider.Name(),
		OrderID:      order.ID,
		Key:          cfg.Key,
		AmountMinor:  order.AmountMinor,
		Currency:     order.Currency,
		Name:         cfg.Name,
		Description:  cfg.Description,
		ClientSecret: order.ClientSecret,
		Prefill: domain.CheckoutPrefill{
			Name:  cfg.Prefill.Name,
			Email: cfg.Prefill.Email,
		},
		Notes: cfg.Notes,
	})
	if err != nil {
		h.logger.Error("OpenCheckout: failed to publish order=%s for user=%d: %v", order.ID, cfg.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrPublish, err)
	}

	h.logger.Info("OpenCheckout: order=%s opened for user=%d, amount=%d %s",
		order.ID, cfg.UserID, order.AmountMinor, order.Currency)

	waitCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	select {
	case res := <-s.result:
		return res, nil
	case <-waitCtx.Done():
		if res, ok := h.settle(order.ID, s); ok {
			return res, nil
		}
		h.logger.Warn("OpenCheckout: order=%s for user=%d aborted: %v", order.ID, cfg.UserID, waitCtx.Err())
		return nil, fmt.Errorf("%w: order=%s: %v", ErrAborted, order.ID, waitCtx.Err())
	}
}

// Resolve принимает результат виджета для заказа пользователя.
// Каждая сессия разрешается не более одного раза. Для сессии, прерванной
// по таймауту, платеж все равно проверяется: подтвержденный платеж без брони
// сообщается пользователю, а вызов возвращает ErrSessionExpired.
func (h *Hub) Resolve(ctx context.Context, userID int64, orderID string, outcome *Outcome) (*Result, error) {
	s, expired, err := h.begin(userID, orderID)
	if err != nil {
		return nil, err
	}

	result, err := h.verify(ctx, orderID, outcome)
	h.finish(s, result, expired)
	if err != nil {
		return nil, err
	}

	if expired {
		if result.PaymentID != "" {
			h.logger.Error("Resolve: payment=%s for expired order=%s of user=%d has no booking",
				result.PaymentID, orderID, userID)
			h.publisher.Failure(ctx, userID, MsgPaymentNotRecorded)
		}
		return result, fmt.Errorf("%w: order=%s", ErrSessionExpired, orderID)
	}

	return result, nil
}

// Pending количество ожидающих сессий
func (h *Hub) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) verify(ctx context.Context, orderID string, outcome *Outcome) (*Result, error) {
	result := &Result{OrderID: orderID}

	if outcome.Failed {
		result.Failed = true
		result.Description = outcome.ErrorDescription
		if result.Description == "" {
			result.Description = defaultFailureDescription
		}
		h.logger.Warn("Resolve: payment failed for order=%s, code=%s: %s", orderID, outcome.ErrorCode, result.Description)
		return result, nil
	}

	paymentID, err := h.provider.VerifyPayment(ctx, orderID, outcome)
	switch {
	case err == nil:
		result.PaymentID = paymentID
	case errors.Is(err, ErrVerificationFailed):
		// Платеж без подтвержденного ID: бронь не создается
		h.logger.Warn("Resolve: payment for order=%s not verified: %v", orderID, err)
	default:
		h.logger.Error("Resolve: failed to verify payment for order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: %v", ErrVerify, err)
	}
	return result, nil
}

// begin помечает сессию как проверяемую
func (h *Hub) begin(userID int64, orderID string) (*session, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	expired := false
	s, ok := h.sessions[orderID]
	if !ok {
		s, ok = h.expired[orderID]
		expired = ok
	}
	if !ok || s.userID != userID {
		return nil, false, ErrSessionNotFound
	}
	if s.resolved {
		return nil, false, ErrAlreadyResolved
	}
	if s.verifying != nil {
		return nil, false, fmt.Errorf("%w: verification in progress", ErrAlreadyResolved)
	}
	s.verifying = make(chan struct{})
	return s, expired, nil
}

// finish снимает отметку проверки; result == nil оставляет сессию открытой
func (h *Hub) finish(s *session, result *Result, expired bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	close(s.verifying)
	s.verifying = nil
	if result == nil {
		return
	}
	s.resolved = true
	if !expired {
		s.result <- result
	}
}

// settle вызывается по таймауту: дожидается идущей проверки платежа,
// иначе переносит сессию в прерванные
func (h *Hub) settle(orderID string, s *session) (*Result, bool) {
	h.mu.Lock()
	for s.verifying != nil {
		wait := s.verifying
		h.mu.Unlock()
		<-wait
		h.mu.Lock()
	}
	defer h.mu.Unlock()

	if s.resolved {
		return <-s.result, true
	}

	now := time.Now()
	delete(h.sessions, orderID)
	s.expiredAt = now
	h.expired[orderID] = s
	for id, old := range h.expired {
		if now.Sub(old.expiredAt) > expiredRetention {
			delete(h.expired, id)
		}
	}
	return nil, false
}

func (h *Hub) register(orderID string, s *session) {
	h.mu.Lock()
	h.sessions[orderID] = s
	h.mu.Unlock()
	h.pending.Inc()
}

func (h *Hub) unregister(orderID string) {
	h.mu.Lock()
	delete(h.sessions, orderID)
	h.mu.Unlock()
	h.pending.Dec()
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}
	if cfg.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidConfig)
	}
	if cfg.AmountMinor <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidConfig)
	}
	if cfg.Currency == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidConfig)
	}
	return nil
}

type nopGauge struct{}

func (nopGauge) Inc() {}
func (nopGauge) Dec() {}
