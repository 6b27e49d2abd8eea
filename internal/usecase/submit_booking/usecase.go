package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
)

// DefaultDeliveryTimeout таймаут одной доставки во внешний получатель
const DefaultDeliveryTimeout = 10 * time.Second

// UseCase use case для подтверждения записи
type UseCase struct {
	manager         BookingManager
	sinks           []DeliverySink
	notifier        HapticNotifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	deliveryTimeout time.Duration

	wg sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case. notifier и metrics могут быть nil
func NewUseCase(
	manager BookingManager,
	sinks []DeliverySink,
	notifier HapticNotifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		manager:         manager,
		sinks:           sinks,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		deliveryTimeout: DefaultDeliveryTimeout,
	}
}

// WithDeliveryTimeout задаёт таймаут доставки
func (uc *UseCase) WithDeliveryTimeout(timeout time.Duration) *UseCase {
	if timeout > 0 {
		uc.deliveryTimeout = timeout
	}
	return uc
}

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: confirming current booking")

	// 1. Валидация контактных данных
	form := normalizeRequest(req)
	if err := validateContact(form); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Контакты в черновик
	if _, err := uc.manager.SetCustomerInfo(form.Name, form.Phone, form.Comment); err != nil {
		return nil, uc.mapManagerError(err)
	}

	// 3. Подтверждение
	booking, err := uc.manager.ConfirmBooking(ctx)
	if err != nil {
		return nil, uc.mapManagerError(err)
	}

	// 4. Доставка и уведомление не влияют на результат
	uc.deliver(booking, req.User)
	uc.notify(booking, req.User)

	now := uc.timeProvider.Now()
	resp := &Response{
		Booking:       booking,
		UpcomingCount: uc.manager.UpcomingCount(now),
	}

	uc.logger.Info("SubmitBooking: booking id=%s confirmed, upcoming=%d", booking.ID, resp.UpcomingCount)
	return resp, nil
}

// Wait дожидается завершения фоновых доставок (graceful shutdown, тесты)
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

// deliver отправляет запись во все получатели в фоне
func (uc *UseCase) deliver(booking *domain.Booking, user *domain.TelegramUser) {
	if len(uc.sinks) == 0 {
		return
	}

	payload := domain.NewDeliveryPayload(booking, user)
	for _, sink := range uc.sinks {
		uc.wg.Add(1)
		go func(sink DeliverySink) {
			defer uc.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), uc.deliveryTimeout)
			defer cancel()

			if err := sink.SendBooking(ctx, payload); err != nil {
				uc.logger.Error("SubmitBooking: delivery of booking id=%s to %s failed: %v", booking.ID, sink.Name(), err)
				uc.metrics.Delivery(sink.Name(), false)
				return
			}
			uc.logger.Info("SubmitBooking: booking id=%s delivered to %s", booking.ID, sink.Name())
			uc.metrics.Delivery(sink.Name(), true)
		}(sink)
	}
}

// notify подтверждение пользователю в фоне
func (uc *UseCase) notify(booking *domain.Booking, user *domain.TelegramUser) {
	if uc.notifier == nil {
		return
	}

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.deliveryTimeout)
		defer cancel()

		if err := uc.notifier.NotifySuccess(ctx, user, booking); err != nil {
			uc.logger.Warn("SubmitBooking: notification for booking id=%s failed: %v", booking.ID, err)
		}
	}()
}

func (uc *UseCase) mapManagerError(err error) error {
	switch {
	case errors.Is(err, bookings.ErrNoDraft):
		uc.logger.Warn("SubmitBooking: no booking in progress")
		return ErrNoDraft
	case errors.Is(err, bookings.ErrNotReady):
		uc.logger.Warn("SubmitBooking: booking is not ready")
		return ErrNotReady
	case errors.Is(err, bookings.ErrSlotNotAvailable):
		uc.logger.Warn("SubmitBooking: slot is taken: %v", err)
		return ErrSlotNotAvailable
	case errors.Is(err, bookings.ErrMasterNotEligible):
		uc.logger.Warn("SubmitBooking: master is not eligible: %v", err)
		return ErrMasterNotEligible
	default:
		uc.logger.Error("SubmitBooking: failed to confirm booking: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
