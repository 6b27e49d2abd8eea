package bookings

import "github.com/google/uuid"

// Option настройка Manager
type Option func(*Manager)

// WithTimeProvider подменяет часы (используется в тестах)
func WithTimeProvider(tp TimeProvider) Option {
	return func(m *Manager) {
		m.timeProvider = tp
	}
}

// WithMetrics подключает счётчики
func WithMetrics(metrics Metrics) Option {
	return func(m *Manager) {
		if metrics != nil {
			m.metrics = metrics
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		m.newID = gen
	}
}

func defaultID() string {
	return uuid.NewString()
}
