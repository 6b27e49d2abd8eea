package get_bookings

// Scope раздел списка "Мои записи"
type Scope string

const (
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
	ScopeAll      Scope = "all"
)

// ParseScope пустое значение - предстоящие записи
func ParseScope(s string) (Scope, bool) {
	switch Scope(s) {
	case "", ScopeUpcoming:
		return ScopeUpcoming, true
	case ScopePast:
		return ScopePast, true
	case ScopeAll:
		return ScopeAll, true
	}
	return "", false
}

// UpcomingCountResponse бейдж с количеством предстоящих записей
type UpcomingCountResponse struct {
	Count int `json:"count"`
}
