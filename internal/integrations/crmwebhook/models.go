package crmwebhook

// ForwardResult ответ CRM, пересылаемый клиенту как есть
type ForwardResult struct {
	StatusCode int
	Body       string
}

// OK true для статусов 2xx
func (r *ForwardResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
