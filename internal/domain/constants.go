package domain

// Default schedule values
const (
	DefaultWorkHoursStart       = 9
	DefaultWorkHoursEnd         = 20
	DefaultSlotDuration         = 30 // minutes
	DefaultBookingDaysAhead     = 14
	DefaultMinBookingHoursAhead = 2
	DefaultTimezone             = "Europe/Moscow"
)

// DefaultWorkDays Monday through Saturday
var DefaultWorkDays = []int{1, 2, 3, 4, 5, 6}

// Format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CategoryAll pseudo category that matches every service and master
const CategoryAll = "all"

// StorageNamespace fixed key of the persisted booking collection
const StorageNamespace = "beautyStudioBookings"

// Contact validation
const (
	MinPhoneDigits        = 11
	MaxCustomerNameLen    = 100
	MaxCustomerCommentLen = 500
)

// DayNames short weekday names indexed by time.Weekday
var DayNames = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// MonthNames short month names indexed by time.Month-1
var MonthNames = [12]string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"}
