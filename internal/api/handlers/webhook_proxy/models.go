package webhook_proxy

// ProxyResponse ответ CRM, обёрнутый признаком успеха
type ProxyResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Data    string `json:"data"`
}

// ProxyErrorResponse ответ при недоступности CRM
type ProxyErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
