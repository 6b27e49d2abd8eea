package booking

import "errors"

var (
	// ErrCorruptedData возвращается, когда сохранённая коллекция не читается
	ErrCorruptedData = errors.New("booking.storage: corrupted data")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("booking.storage: failed to encode bookings")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.storage: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.storage: failed to scan row")

	// ErrRedis возвращается при ошибках Redis
	ErrRedis = errors.New("booking.storage: redis error")
)
