package bookings

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingStore "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
)

// Manager владеет единственным черновиком записи и коллекцией подтверждённых записей.
// Все операции выполняются под мьютексом целиком, как в однопоточной сессии
type Manager struct {
	mu       sync.Mutex
	draft    *domain.Booking
	bookings []domain.Booking

	store        BookingStore
	catalog      Catalog
	engine       AvailabilityEngine
	timeProvider TimeProvider
	metrics      Metrics
	newID        func() string
	logger       Logger
}

// NewManager создает новый экземпляр менеджера записей с пустой коллекцией.
// Для восстановления сохранённых записей нужно вызвать Load
func NewManager(
	store BookingStore,
	catalog Catalog,
	engine AvailabilityEngine,
	logger Logger,
	opts ...Option,
) *Manager {
	m := &Manager{
		bookings:     []domain.Booking{},
		store:        store,
		catalog:      catalog,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		metrics:      nopMetrics{},
		newID:        defaultID,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartBooking начинает новый черновик с выбранной услугой.
// Предыдущий неподтверждённый черновик отбрасывается
func (m *Manager) StartBooking(serviceID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	service := m.catalog.ServiceByID(serviceID)
	if service == nil {
		m.logger.Warn("StartBooking: service id=%s not found", serviceID)
		return nil, ErrServiceNotFound
	}

	m.draft = &domain.Booking{
		ID:        m.newID(),
		ServiceID: service.ID,
		Service:   service,
		Status:    domain.StatusPending,
		CreatedAt: m.timeProvider.Now(),
	}

	m.logger.Info("StartBooking: draft id=%s for service=%s", m.draft.ID, serviceID)
	return m.draft.Clone(), nil
}

// SelectMaster выбирает мастера в черновике
func (m *Manager) SelectMaster(masterID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, ErrNoDraft
	}

	master := m.catalog.MasterByID(masterID)
	if master == nil {
		m.logger.Warn("SelectMaster: master id=%s not found", masterID)
		return nil, ErrMasterNotFound
	}

	m.draft.MasterID = master.ID
	m.draft.Master = master
	return m.draft.Clone(), nil
}

// SelectDate выбирает дату и сбрасывает выбранное время
func (m *Manager) SelectDate(date string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, ErrNoDraft
	}

	m.draft.Date = date
	m.draft.Time = ""
	return m.draft.Clone(), nil
}

// SelectTime выбирает время начала. Доступность проверяется при подтверждении
func (m *Manager) SelectTime(slot string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, ErrNoDraft
	}

	m.draft.Time = slot
	return m.draft.Clone(), nil
}

// SetCustomerInfo сохраняет контакты клиента как есть
func (m *Manager) SetCustomerInfo(name, phone, comment string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, ErrNoDraft
	}

	m.draft.CustomerName = name
	m.draft.CustomerPhone = phone
	m.draft.CustomerComment = comment
	return m.draft.Clone(), nil
}

// CurrentBooking копия черновика или nil
func (m *Manager) CurrentBooking() *domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.draft.Clone()
}

// ResetCurrentBooking отбрасывает черновик
func (m *Manager) ResetCurrentBooking() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = nil
}

// IsBookingReady true, если в черновике выбраны услуга, мастер, дата и время.
// Контакты не проверяются
func (m *Manager) IsBookingReady() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.draft != nil && m.draft.IsReady()
}

// ConfirmBooking подтверждает черновик: проверяет мастера и дату по каталогу,
// повторно проверяет доступность слота,
// добавляет запись в коллекцию, сохраняет коллекцию и очищает черновик.
// Ошибка сохранения логируется, подтверждение при этом не откатывается
func (m *Manager) ConfirmBooking(ctx context.Context) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft == nil {
		return nil, ErrNoDraft
	}
	if !m.draft.IsReady() {
		m.logger.Warn("ConfirmBooking: draft id=%s is not ready", m.draft.ID)
		return nil, ErrNotReady
	}

	d := m.draft
	if !m.catalog.IsMasterEligible(d.MasterID, d.ServiceID) {
		m.logger.Warn("ConfirmBooking: master=%s does not perform service=%s", d.MasterID, d.ServiceID)
		return nil, ErrMasterNotEligible
	}

	now := m.timeProvider.Now()
	if !m.isBookableDate(d.Date, now) {
		m.logger.Warn("ConfirmBooking: date %s is not bookable", d.Date)
		return nil, ErrSlotNotAvailable
	}
	if !m.engine.IsSlotAvailable(d.MasterID, d.Date, d.Time, d.DurationMinutes(), m.bookings, now) {
		m.logger.Warn("ConfirmBooking: slot %s %s of master=%s is not available", d.Date, d.Time, d.MasterID)
		return nil, ErrSlotNotAvailable
	}

	confirmed := d.Clone()
	confirmed.Status = domain.StatusConfirmed
	confirmed.ConfirmedAt = &now

	m.bookings = append(m.bookings, *confirmed)
	m.draft = nil
	m.persist(ctx)

	m.metrics.BookingTransition(string(domain.StatusConfirmed))
	m.logger.Info("ConfirmBooking: booking id=%s confirmed for master=%s at %s %s",
		confirmed.ID, confirmed.MasterID, confirmed.Date, confirmed.Time)
	return confirmed.Clone(), nil
}

// CancelBooking отменяет подтверждённую запись.
// Повторная отмена успешна и ничего не меняет, исходное время отмены сохраняется
func (m *Manager) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(bookingID)
	if i < 0 {
		m.logger.Warn("CancelBooking: booking id=%s not found", bookingID)
		return nil, ErrBookingNotFound
	}

	b := &m.bookings[i]
	if b.IsCancelled() {
		m.logger.Info("CancelBooking: booking id=%s already cancelled", bookingID)
		return b.Clone(), nil
	}

	now := m.timeProvider.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	m.persist(ctx)

	m.metrics.BookingTransition(string(domain.StatusCancelled))
	m.logger.Info("CancelBooking: booking id=%s cancelled", bookingID)
	return b.Clone(), nil
}

// GetBookingByID возвращает подтверждённую или отменённую запись
func (m *Manager) GetBookingByID(bookingID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(bookingID)
	if i < 0 {
		return nil, ErrBookingNotFound
	}
	return m.bookings[i].Clone(), nil
}

// AllBookings копия коллекции в порядке подтверждения
func (m *Manager) AllBookings() []domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshot()
}

// UpcomingBookings неотменённые записи, которые начинаются не раньше now, по возрастанию
func (m *Manager) UpcomingBookings(now time.Time) []domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	upcoming, _ := m.partition(now)
	return upcoming
}

// PastBookings отменённые и прошедшие записи, самые свежие первыми
func (m *Manager) PastBookings(now time.Time) []domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, past := m.partition(now)
	return past
}

// UpcomingCount количество предстоящих записей для бейджа
func (m *Manager) UpcomingCount(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	upcoming, _ := m.partition(now)
	return len(upcoming)
}

// isBookableDate дата рабочая и попадает в окно записи относительно now
func (m *Manager) isBookableDate(date string, now time.Time) bool {
	day, err := time.ParseInLocation(domain.DateFormat, date, m.engine.Location())
	if err != nil {
		return false
	}

	schedule := m.catalog.Schedule()
	if len(availability.DaySlotsFor(schedule, day)) == 0 {
		return false
	}

	for _, d := range availability.GenerateBookableDates(schedule, now) {
		if d.Date == date {
			return true
		}
	}
	return false
}

// OccupiedSlots занятые метки мастера на дату с учётом коллекции
func (m *Manager) OccupiedSlots(masterID, date string) map[string]struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.engine.OccupiedSlots(masterID, date, m.bookings)
}

// AvailableSlots свободные метки начала услуги с учётом коллекции
func (m *Manager) AvailableSlots(masterID, date string, duration int, now time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.engine.AvailableSlots(masterID, date, duration, m.bookings, now)
}

// Load восстанавливает коллекцию из хранилища и обновляет снимки услуг и мастеров
// по текущему каталогу. Нечитаемые или недоступные данные дают пустую коллекцию
func (m *Manager) Load(ctx context.Context) {
	loaded, err := m.store.Load(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.metrics.StorageFailure("load")
		if errors.Is(err, bookingStore.ErrCorruptedData) {
			m.logger.Warn("Load: stored bookings are corrupted, starting empty: %v", err)
		} else {
			m.logger.Error("Load: failed to load bookings, starting empty: %v", err)
		}
		m.bookings = []domain.Booking{}
		return
	}

	m.bookings = make([]domain.Booking, 0, len(loaded))
	for i := range loaded {
		m.bookings = append(m.bookings, *m.reconcile(&loaded[i]))
	}

	m.logger.Info("Load: restored %d bookings", len(m.bookings))
}

// reconcile обновляет снимки по каталогу; если сущность пропала, остаётся старый снимок
func (m *Manager) reconcile(b *domain.Booking) *domain.Booking {
	out := b.Clone()

	if service := m.catalog.ServiceByID(b.ServiceID); service != nil {
		out.Service = service
	} else {
		m.logger.Warn("Load: service id=%s of booking id=%s is no longer in catalog", b.ServiceID, b.ID)
	}

	if b.MasterID == "" {
		return out
	}
	if master := m.catalog.MasterByID(b.MasterID); master != nil {
		out.Master = master
	} else {
		m.logger.Warn("Load: master id=%s of booking id=%s is no longer in catalog", b.MasterID, b.ID)
	}

	return out
}

// persist сохраняет коллекцию; ошибка не прерывает операцию
func (m *Manager) persist(ctx context.Context) {
	if err := m.store.Save(ctx, m.snapshot()); err != nil {
		m.metrics.StorageFailure("save")
		m.logger.Error("persist: failed to save %d bookings: %v", len(m.bookings), err)
	}
}

func (m *Manager) snapshot() []domain.Booking {
	out := make([]domain.Booking, 0, len(m.bookings))
	for i := range m.bookings {
		out = append(out, *m.bookings[i].Clone())
	}
	return out
}

func (m *Manager) indexOf(bookingID string) int {
	for i := range m.bookings {
		if m.bookings[i].ID == bookingID {
			return i
		}
	}
	return -1
}

type dated struct {
	booking domain.Booking
	at      time.Time
}

// partition делит коллекцию на предстоящие и прошедшие.
// Отменённые записи всегда попадают в прошедшие
func (m *Manager) partition(now time.Time) (upcoming, past []domain.Booking) {
	loc := m.engine.Location()

	var up, gone []dated
	for i := range m.bookings {
		b := m.bookings[i].Clone()
		at, err := b.Instant(loc)
		if err == nil && b.IsActive() && !at.Before(now) {
			up = append(up, dated{booking: *b, at: at})
			continue
		}
		gone = append(gone, dated{booking: *b, at: at})
	}

	sort.SliceStable(up, func(i, j int) bool { return up[i].at.Before(up[j].at) })
	sort.SliceStable(gone, func(i, j int) bool { return gone[i].at.After(gone[j].at) })

	upcoming = make([]domain.Booking, 0, len(up))
	for _, d := range up {
		upcoming = append(upcoming, d.booking)
	}
	past = make([]domain.Booking, 0, len(gone))
	for _, d := range gone {
		past = append(past, d.booking)
	}
	return upcoming, past
}
