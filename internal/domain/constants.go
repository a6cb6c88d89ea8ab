package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestNameLength   = 200
	MaxNotesLength       = 500
	MinReservationGuests = 1
)

// UpcomingArrivalsWindowDays размер окна ближайших заездов на дашборде,
// включительно с обеих сторон: [today, today+7]
const UpcomingArrivalsWindowDays = 7

// MonthlyTrendMonths количество месяцев в помесячной сводке дашборда
const MonthlyTrendMonths = 6
