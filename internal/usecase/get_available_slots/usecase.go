package get_available_slots

import (
	"context"
	"sort"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	catalog      Catalog
	manager      BookingManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, manager BookingManager, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		manager:      manager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, master=%s, date=%s", req.ServiceID, req.MasterID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга и мастер
	service := uc.catalog.ServiceByID(req.ServiceID)
	if service == nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	master := uc.catalog.MasterByID(req.MasterID)
	if master == nil {
		uc.logger.Warn("GetAvailableSlots: master id=%s not found", req.MasterID)
		return nil, ErrMasterNotFound
	}

	if !master.CanPerform(service) {
		uc.logger.Warn("GetAvailableSlots: master id=%s does not perform category %s", master.ID, service.Category)
		return nil, ErrMasterNotEligible
	}

	// 3. Дата должна попадать в окно записи
	now := uc.timeProvider.Now()
	day, err := findBookableDate(uc.catalog.Schedule(), req.Date, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s rejected: %v", req.Date, err)
		return nil, err
	}

	resp := &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		MasterID:        master.ID,
		DurationMinutes: service.Duration,
		IsWorkDay:       day.IsWorkDay,
		Slots:           []string{},
		BusySlots:       []string{},
	}

	if !day.IsWorkDay {
		uc.logger.Info("GetAvailableSlots: studio is closed on %s", req.Date)
		return resp, nil
	}

	// 4. Свободные слоты с учётом длительности услуги
	resp.Slots = uc.manager.AvailableSlots(master.ID, req.Date, service.Duration, now)
	resp.BusySlots = busySlots(uc.manager.OccupiedSlots(master.ID, req.Date))

	uc.logger.Info("GetAvailableSlots: %d slots for master=%s, service=%s, date=%s",
		len(resp.Slots), master.ID, service.ID, req.Date)
	return resp, nil
}

// busySlots метки "HH:MM" с нулями впереди, поэтому строковая сортировка совпадает с порядком сетки
func busySlots(occupied map[string]struct{}) []string {
	result := make([]string, 0, len(occupied))
	for slot := range occupied {
		result = append(result, slot)
	}
	sort.Strings(result)
	return result
}
