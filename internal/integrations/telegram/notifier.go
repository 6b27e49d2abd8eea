package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

const sendAttempts = 3

// Sender часть *tgbotapi.BotAPI
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BotNotifier подтверждает запись сообщением от бота в чат пользователя
type BotNotifier struct {
	sender     Sender
	retryDelay time.Duration
	log        Logger
}

func NewBotNotifier(sender Sender, retryDelay time.Duration, log Logger) *BotNotifier {
	return &BotNotifier{sender: sender, retryDelay: retryDelay, log: log}
}

// NotifySuccess отправляет подтверждение; без пользователя ничего не делает
func (n *BotNotifier) NotifySuccess(ctx context.Context, user *domain.TelegramUser, b *domain.Booking) error {
	if user == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(user.ID, ConfirmationText(b))

	var err error
	for i := 0; i < sendAttempts; i++ {
		if _, err = n.sender.Send(msg); err == nil {
			n.log.Info("Telegram: confirmation for booking id=%s sent to user=%d", b.ID, user.ID)
			return nil
		}
		n.log.Warn("Telegram: send to user=%d failed, attempt %d: %v", user.ID, i+1, err)

		if i == sendAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrSend, ctx.Err())
		case <-time.After(n.retryDelay << i):
		}
	}

	return fmt.Errorf("%w: %v", ErrSend, err)
}

// LocalNotifier заглушка вне Telegram: только пишет в лог
type LocalNotifier struct {
	log Logger
}

func NewLocalNotifier(log Logger) *LocalNotifier {
	return &LocalNotifier{log: log}
}

func (n *LocalNotifier) NotifySuccess(_ context.Context, _ *domain.TelegramUser, b *domain.Booking) error {
	n.log.Info("Telegram (local): booking id=%s confirmed", b.ID)
	return nil
}

// ConfirmationText текст подтверждения записи
func ConfirmationText(b *domain.Booking) string {
	service, master := b.ServiceID, b.MasterID
	if b.Service != nil {
		service = b.Service.Name
	}
	if b.Master != nil {
		master = b.Master.Name
	}

	when := b.Date
	if day, err := time.Parse(domain.DateFormat, b.Date); err == nil {
		when = fmt.Sprintf("%s, %d %s", domain.DayNames[day.Weekday()], day.Day(), domain.MonthNames[day.Month()-1])
	}

	return fmt.Sprintf("✅ Вы записаны!\n\n%s\nМастер: %s\n%s в %s", service, master, when, b.Time)
}
