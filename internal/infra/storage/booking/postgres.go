package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"service_id",
	"master_id",
	"booking_date",
	"start_time",
	"customer_name",
	"customer_phone",
	"customer_comment",
	"status",
	"service_snapshot",
	"master_snapshot",
	"created_at",
	"confirmed_at",
	"cancelled_at",
}

// Schema таблица коллекции записей. position хранит порядок подтверждения
const Schema = `CREATE TABLE IF NOT EXISTS bookings (
	namespace        TEXT        NOT NULL,
	position         INTEGER     NOT NULL,
	id               TEXT        NOT NULL,
	service_id       TEXT        NOT NULL,
	master_id        TEXT        NOT NULL,
	booking_date     TEXT        NOT NULL,
	start_time       TEXT        NOT NULL,
	customer_name    TEXT        NOT NULL DEFAULT '',
	customer_phone   TEXT        NOT NULL DEFAULT '',
	customer_comment TEXT        NOT NULL DEFAULT '',
	status           TEXT        NOT NULL,
	service_snapshot JSONB,
	master_snapshot  JSONB,
	created_at       TIMESTAMPTZ NOT NULL,
	confirmed_at     TIMESTAMPTZ,
	cancelled_at     TIMESTAMPTZ,
	PRIMARY KEY (namespace, id)
)`

// PostgresStore хранит коллекцию строками таблицы bookings в пределах namespace
type PostgresStore struct {
	db        DB
	namespace string
}

// NewPostgresStore создает хранилище; пустой namespace заменяется на domain.StorageNamespace
func NewPostgresStore(db DB, namespace string) *PostgresStore {
	if namespace == "" {
		namespace = domain.StorageNamespace
	}
	return &PostgresStore{db: db, namespace: namespace}
}

// Migrate создает таблицу, если её нет
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Save заменяет всю коллекцию namespace одной транзакцией
func (s *PostgresStore) Save(ctx context.Context, bookings []domain.Booking) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := psqlbuilder.Delete(bookingsTable).
		Where(squirrel.Eq{"namespace": s.namespace}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute delete: %v", ErrExecQuery, err)
	}

	if len(bookings) > 0 {
		insert := psqlbuilder.Insert(bookingsTable).
			Columns(append([]string{"namespace", "position"}, bookingColumns...)...)

		for i := range bookings {
			values, verr := s.rowValues(i, &bookings[i])
			if verr != nil {
				return verr
			}
			insert = insert.Values(values...)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}
	return nil
}

// Load читает коллекцию namespace в порядке подтверждения
func (s *PostgresStore) Load(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"namespace": s.namespace}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return s.scanBookings(rows)
}

func (s *PostgresStore) rowValues(position int, b *domain.Booking) ([]interface{}, error) {
	serviceJSON, err := marshalSnapshot(b.Service)
	if err != nil {
		return nil, err
	}
	masterJSON, err := marshalSnapshot(b.Master)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		s.namespace,
		position,
		b.ID,
		b.ServiceID,
		b.MasterID,
		b.Date,
		b.Time,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerComment,
		string(b.Status),
		serviceJSON,
		masterJSON,
		b.CreatedAt,
		b.ConfirmedAt,
		b.CancelledAt,
	}, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (s *PostgresStore) scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var (
			b                        domain.Booking
			status                   string
			serviceJSON, masterJSON  []byte
			confirmedAt, cancelledAt sql.NullTime
		)

		err := rows.Scan(
			&b.ID,
			&b.ServiceID,
			&b.MasterID,
			&b.Date,
			&b.Time,
			&b.CustomerName,
			&b.CustomerPhone,
			&b.CustomerComment,
			&status,
			&serviceJSON,
			&masterJSON,
			&b.CreatedAt,
			&confirmedAt,
			&cancelledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Status = domain.BookingStatus(status)
		if confirmedAt.Valid {
			t := confirmedAt.Time
			b.ConfirmedAt = &t
		}
		if cancelledAt.Valid {
			t := cancelledAt.Time
			b.CancelledAt = &t
		}

		if len(serviceJSON) > 0 {
			b.Service = &domain.Service{}
			if err := json.Unmarshal(serviceJSON, b.Service); err != nil {
				return nil, fmt.Errorf("%w: booking id=%s service snapshot: %v", ErrCorruptedData, b.ID, err)
			}
		}
		if len(masterJSON) > 0 {
			b.Master = &domain.Master{}
			if err := json.Unmarshal(masterJSON, b.Master); err != nil {
				return nil, fmt.Errorf("%w: booking id=%s master snapshot: %v", ErrCorruptedData, b.ID, err)
			}
		}

		if err := validateStored(&b); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// marshalSnapshot кодирует снимок для JSONB колонки; отсутствующий снимок даёт NULL
func marshalSnapshot(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case *domain.Service:
		if s == nil {
			return nil, nil
		}
	case *domain.Master:
		if s == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot: %v", ErrEncode, err)
	}
	return string(data), nil
}
