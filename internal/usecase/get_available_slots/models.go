package get_available_slots

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string // ID услуги
	MasterID  string // ID мастера
	Date      string // Дата "YYYY-MM-DD"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string   // Дата, на которую запрашивались слоты
	ServiceID       string   // ID услуги
	MasterID        string   // ID мастера
	DurationMinutes int      // Длительность услуги
	IsWorkDay       bool     // false - студия в этот день не работает
	Slots           []string // Метки начала, по возрастанию
	BusySlots       []string // Занятые метки мастера, по возрастанию
}
