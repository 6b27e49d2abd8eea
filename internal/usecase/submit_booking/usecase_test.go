package submit_booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingStore "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingSink struct {
	name string
	err  error

	mu       sync.Mutex
	payloads []*domain.DeliveryPayload
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) SendBooking(_ context.Context, payload *domain.DeliveryPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	users []*domain.TelegramUser
	ids   []string
}

func (n *recordingNotifier) NotifySuccess(_ context.Context, user *domain.TelegramUser, b *domain.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, user)
	n.ids = append(n.ids, b.ID)
	return nil
}

type deliveryMetrics struct {
	mu      sync.Mutex
	results map[string][]bool
}

func (m *deliveryMetrics) Delivery(sink string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = map[string][]bool{}
	}
	m.results[sink] = append(m.results[sink], ok)
}

type fixture struct {
	uc       *UseCase
	manager  *bookings.Manager
	store    *bookingStore.MemoryStore
	webhook  *recordingSink
	queue    *recordingSink
	notifier *recordingNotifier
	metrics  *deliveryMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	clock := fixedClock{now: time.Date(2025, 3, 3, 12, 0, 0, 0, loc)}

	cat, err := catalog.Default(clock.now)
	require.NoError(t, err)
	engine, err := availability.NewEngine(cat.Schedule(), cat.Seeds())
	require.NoError(t, err)

	store := bookingStore.NewMemoryStore()
	manager := bookings.NewManager(store, cat, engine, logger.Nop(), bookings.WithTimeProvider(clock))

	f := &fixture{
		manager:  manager,
		store:    store,
		webhook:  &recordingSink{name: "crm_webhook"},
		queue:    &recordingSink{name: "amqp", err: errors.New("connection refused")},
		notifier: &recordingNotifier{},
		metrics:  &deliveryMetrics{},
	}
	f.uc = NewUseCase(manager, []DeliverySink{f.webhook, f.queue}, f.notifier, f.metrics, logger.Nop())
	f.uc.timeProvider = clock
	return f
}

// draft готовит черновик: маникюр у master-2 на 5 марта в 12:00
func (f *fixture) draft(t *testing.T) {
	t.Helper()
	_, err := f.manager.StartBooking("manicure-gel")
	require.NoError(t, err)
	_, err = f.manager.SelectMaster("master-2")
	require.NoError(t, err)
	_, err = f.manager.SelectDate("2025-03-05")
	require.NoError(t, err)
	_, err = f.manager.SelectTime("12:00")
	require.NoError(t, err)
}

func TestSubmitBooking(t *testing.T) {
	f := newFixture(t)
	f.draft(t)

	user := &domain.TelegramUser{ID: 42, FirstName: "Мария"}
	resp, err := f.uc.Execute(context.Background(), &Request{
		Name:    "  Мария  ",
		Phone:   " +7 (999) 123-45-67 ",
		Comment: " без опозданий ",
		User:    user,
	})
	require.NoError(t, err)
	f.uc.Wait()

	b := resp.Booking
	require.NotNil(t, b)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, "Мария", b.CustomerName)
	assert.Equal(t, "+7 (999) 123-45-67", b.CustomerPhone)
	assert.Equal(t, "без опозданий", b.CustomerComment)
	assert.Equal(t, 1, resp.UpcomingCount)

	assert.Nil(t, f.manager.CurrentBooking())
	assert.NotEmpty(t, f.store.Raw())

	// доставка в оба получателя, неудача одного не влияет на результат
	require.Len(t, f.webhook.payloads, 1)
	p := f.webhook.payloads[0]
	assert.Equal(t, domain.DeliveryTypeBooking, p.Type)
	assert.Equal(t, b.ID, p.Booking.ID)
	require.NotNil(t, p.Telegram)
	assert.Equal(t, int64(42), p.Telegram.UserID)
	assert.Len(t, f.queue.payloads, 1)

	assert.Equal(t, []bool{true}, f.metrics.results["crm_webhook"])
	assert.Equal(t, []bool{false}, f.metrics.results["amqp"])

	assert.Equal(t, []string{b.ID}, f.notifier.ids)
	assert.Equal(t, user, f.notifier.users[0])
}

func TestSubmitBookingAnonymous(t *testing.T) {
	f := newFixture(t)
	f.draft(t)

	_, err := f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "89991234567"})
	require.NoError(t, err)
	f.uc.Wait()

	require.Len(t, f.webhook.payloads, 1)
	assert.Nil(t, f.webhook.payloads[0].Telegram)
	assert.Nil(t, f.notifier.users[0])
}

func TestSubmitBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		field   string
		message string
	}{
		{
			name:    "empty name",
			req:     Request{Name: "   ", Phone: "+79991234567"},
			field:   "Name",
			message: "Пожалуйста, введите имя",
		},
		{
			name:    "empty phone",
			req:     Request{Name: "Мария", Phone: " "},
			field:   "Phone",
			message: "Пожалуйста, введите корректный номер телефона",
		},
		{
			name:    "short phone",
			req:     Request{Name: "Мария", Phone: "+7 (999) 123-45-6"},
			field:   "Phone",
			message: "Пожалуйста, введите корректный номер телефона",
		},
		{
			name:    "name before phone",
			req:     Request{Name: "", Phone: "123"},
			field:   "Name",
			message: "Пожалуйста, введите имя",
		},
		{
			name:    "long name",
			req:     Request{Name: strings.Repeat("я", domain.MaxCustomerNameLen+1), Phone: "+79991234567"},
			field:   "Name",
			message: "Имя слишком длинное",
		},
		{
			name:    "long comment",
			req:     Request{Name: "Мария", Phone: "+79991234567", Comment: strings.Repeat("ж", domain.MaxCustomerCommentLen+1)},
			field:   "Comment",
			message: "Комментарий слишком длинный",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.draft(t)

			_, err := f.uc.Execute(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidContact)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, verr.Message)
			}

			// черновик не тронут, ничего не отправлено
			current := f.manager.CurrentBooking()
			require.NotNil(t, current)
			assert.Empty(t, current.CustomerName)
			assert.Empty(t, f.manager.AllBookings())
			f.uc.Wait()
			assert.Empty(t, f.webhook.payloads)
		})
	}
}

func TestSubmitBookingContactLimitsCountRunes(t *testing.T) {
	f := newFixture(t)
	f.draft(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Name:    strings.Repeat("я", domain.MaxCustomerNameLen),
		Phone:   "+79991234567",
		Comment: strings.Repeat("ж", domain.MaxCustomerCommentLen),
	})
	require.NoError(t, err)
	assert.Len(t, []rune(resp.Booking.CustomerComment), domain.MaxCustomerCommentLen)
	f.uc.Wait()
}

func TestSubmitBookingManagerErrors(t *testing.T) {
	t.Run("no draft", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "+79991234567"})
		assert.ErrorIs(t, err, ErrNoDraft)
	})

	t.Run("not ready", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.manager.StartBooking("manicure-gel")
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "+79991234567"})
		assert.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("slot taken", func(t *testing.T) {
		f := newFixture(t)
		f.draft(t)
		_, err := f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "+79991234567"})
		require.NoError(t, err)
		f.uc.Wait()

		// тот же мастер, пересечение с 12:00-13:30
		f.draft(t)
		_, err = f.manager.SelectTime("13:00")
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), &Request{Name: "Ольга", Phone: "+79997654321"})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Len(t, f.manager.AllBookings(), 1)
		assert.NotNil(t, f.manager.CurrentBooking())
	})

	t.Run("master not eligible", func(t *testing.T) {
		f := newFixture(t)
		f.draft(t)
		// массажист не делает маникюр
		_, err := f.manager.SelectMaster("master-3")
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "+79991234567"})
		assert.ErrorIs(t, err, ErrMasterNotEligible)
		assert.Empty(t, f.manager.AllBookings())
		f.uc.Wait()
		assert.Empty(t, f.webhook.payloads)
	})

	t.Run("day off", func(t *testing.T) {
		f := newFixture(t)
		f.draft(t)
		_, err := f.manager.SelectDate("2025-03-09")
		require.NoError(t, err)
		_, err = f.manager.SelectTime("12:00")
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), &Request{Name: "Мария", Phone: "+79991234567"})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, f.manager.AllBookings())
	})
}
