package domain

// Default booking configuration values
const (
	DefaultSlotDurationMinutes = 15
	DefaultSlotCapacity        = 2
	DefaultVisibleDays         = 3
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240
	MinSlotCapacity        = 1
	MaxSlotCapacity        = 100
	MaxVisibleDays         = 14

	MinLanguages = 1
	MaxLanguages = 2
)

// Time format constants
const (
	TimeFormat        = "15:04"           // HH:MM
	DateFormat        = "2006-01-02"      // YYYY-MM-DD
	DisplayDateFormat = "02 January 2006" // confirmation screen
)
