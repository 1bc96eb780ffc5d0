package domain

// Canonical slot granularity
// Every external representation is normalized to this grid at the boundary
const (
	SlotsPerDay         = 48
	SlotDurationMinutes = 30
	DaysPerWeek         = 7
)

// Default search parameters
const (
	DefaultPageSize        = 20
	MaxSearchTermLength    = 200
	DefaultFetchTimeoutSec = 10
)

// Price bounds of the unconstrained range
// Диапазон по умолчанию, при котором фильтр цены считается выключенным
const (
	MinPriceBound = 0
	MaxPriceBound = 1_000_000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
