// Package amqpsink публикует подтверждённые записи в очередь RabbitMQ
package amqpsink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

const (
	// SinkName имя приёмника в метриках и логах
	SinkName = "amqp"

	// DefaultQueue очередь подтверждённых записей
	DefaultQueue = "booking.confirmed"
)

var (
	// ErrDial возвращается, когда не удалось подключиться к брокеру
	ErrDial = errors.New("amqpsink: dial failed")

	// ErrPublish возвращается при ошибке объявления очереди или публикации
	ErrPublish = errors.New("amqpsink: publish failed")
)

// Channel часть *amqp.Channel, нужная для публикации
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// DialFunc открывает соединение и канал; closer закрывает соединение
type DialFunc func(url string) (Channel, io.Closer, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher открывает короткое соединение на каждую публикацию,
// поэтому недоступность брокера при старте сервиса ни на что не влияет
type Publisher struct {
	url   string
	queue string
	dial  DialFunc
	log   Logger
}

// NewPublisher создает издателя; пустая очередь заменяется на DefaultQueue
func NewPublisher(url, queue string, log Logger) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{url: url, queue: queue, dial: dialAMQP, log: log}
}

// WithDialer подменяет подключение к брокеру (используется в тестах)
func (p *Publisher) WithDialer(dial DialFunc) *Publisher {
	p.dial = dial
	return p
}

func (p *Publisher) Name() string {
	return SinkName
}

// SendBooking публикует запись как persistent сообщение в durable очередь
func (p *Publisher) SendBooking(ctx context.Context, payload *domain.DeliveryPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	ch, conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDial, err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("%w: queue declare %s: %v", ErrPublish, p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    payload.Booking.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: publish to %s: %v", ErrPublish, p.queue, err)
	}

	p.log.Info("AMQP: booking id=%s published to %s", payload.Booking.ID, p.queue)
	return nil
}

func dialAMQP(url string) (Channel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return ch, conn, nil
}
