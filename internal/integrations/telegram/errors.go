package telegram

import "errors"

var (
	// ErrInvalidInitData возвращается, когда подпись init data не сходится или строка не разбирается
	ErrInvalidInitData = errors.New("telegram: invalid init data")

	// ErrExpiredInitData возвращается, когда auth_date старше допустимого
	ErrExpiredInitData = errors.New("telegram: init data expired")

	// ErrNoUser возвращается, когда в init data нет пользователя
	ErrNoUser = errors.New("telegram: init data has no user")

	// ErrSend возвращается, когда бот не смог отправить сообщение
	ErrSend = errors.New("telegram: send failed")
)
