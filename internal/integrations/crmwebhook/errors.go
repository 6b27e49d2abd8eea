package crmwebhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("crmwebhook client: internal error")

	// ErrTransport возвращается, когда запрос до CRM не дошёл
	ErrTransport = errors.New("crmwebhook client: transport error")

	// ErrUnexpectedStatus возвращается, когда CRM ответила не 2xx
	ErrUnexpectedStatus = errors.New("crmwebhook client: unexpected status")
)
