package webhook_proxy

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/crmwebhook"
)

// Forwarder пересылает тело запроса во входящий вебхук CRM
type Forwarder interface {
	Forward(ctx context.Context, body []byte) (*crmwebhook.ForwardResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
