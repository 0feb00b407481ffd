package selection

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

type memoryEntry struct {
	rng       domain.DateRange
	expiresAt time.Time // нулевое значение - без истечения
}

// MemoryStore хранит диапазоны дат в памяти процесса
// Подходит для одного инстанса сервиса и для тестов
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]memoryEntry
	now     func() time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[int64]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, userID int64) (*domain.DateRange, error) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrRangeNotFound
	}

	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, userID)
		s.mu.Unlock()
		return nil, ErrRangeNotFound
	}

	rng := entry.rng
	return &rng, nil
}

func (s *MemoryStore) Save(_ context.Context, userID int64, rng domain.DateRange, ttl time.Duration) error {
	entry := memoryEntry{rng: rng}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[userID] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
	return nil
}
