package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// MemoryStore хранит коллекцию в памяти процесса в сериализованном виде,
// поэтому Load всегда возвращает независимую копию
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithData создает хранилище с готовым содержимым (в том числе испорченным)
func NewMemoryStoreWithData(data []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), data...)}
}

func (s *MemoryStore) Save(_ context.Context, bookings []domain.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	if data == nil {
		return []domain.Booking{}, nil
	}
	return decodeBookings(data)
}

// Raw сериализованное содержимое
func (s *MemoryStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.data...)
}
