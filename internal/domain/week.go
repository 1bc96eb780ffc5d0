package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek represents a day of week with Monday-first ordinals 0-6
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayNames канонические английские названия дней (Monday-first)
var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// dayLabels таблица пользовательских меток дня недели
// Закрытый словарь: полные и сокращенные метки, английские и русские
var dayLabels = map[string]DayOfWeek{
	"monday": Monday, "mon": Monday,
	"tuesday": Tuesday, "tue": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday,
	"thursday": Thursday, "thu": Thursday,
	"friday": Friday, "fri": Friday,
	"saturday": Saturday, "sat": Saturday,
	"sunday": Sunday, "sun": Sunday,

	"понедельник": Monday, "пн": Monday,
	"вторник": Tuesday, "вт": Tuesday,
	"среда": Wednesday, "ср": Wednesday,
	"четверг": Thursday, "чт": Thursday,
	"пятница": Friday, "пт": Friday,
	"суббота": Saturday, "сб": Saturday,
	"воскресенье": Sunday, "вс": Sunday,
}

// IsValid returns true if the ordinal is within [0, DaysPerWeek)
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the canonical English day name
func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDayLabel maps a user-facing weekday label to its Monday-first ordinal
// Используется на границе HTTP API; внутри ядра метки не встречаются
func ParseDayLabel(label string) (DayOfWeek, error) {
	day, ok := dayLabels[normalizeLabel(label)]
	if !ok {
		return 0, fmt.Errorf("domain: unknown weekday label %q", label)
	}
	return day, nil
}

// MustParseDayLabel is ParseDayLabel that panics on an unknown label
// Метки дней - закрытый словарь, незнакомая метка это ошибка программиста
func MustParseDayLabel(label string) DayOfWeek {
	day, err := ParseDayLabel(label)
	if err != nil {
		panic(err.Error())
	}
	return day
}

// CurrentWeekMonday returns midnight of the Monday on or before now, local time
// Вычисляется заново на каждый запрос расписания: переход через границу
// недели во время сессии подхватывается при следующем запросе
func CurrentWeekMonday(now time.Time) time.Time {
	// time.Weekday: Sunday=0, нам нужен Monday-first ординал
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}

// DateForDay returns the concrete calendar date of the given day within the week
func DateForDay(weekStart time.Time, day DayOfWeek) time.Time {
	return weekStart.AddDate(0, 0, int(day))
}

// SameDate returns true if both timestamps fall on the same calendar date
// Время суток игнорируется намеренно: даты расписания сравниваются по дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
