package domain

import "time"

// IsAvailable decides whether a tutor's week schedule satisfies the
// day/time selection. Pure function, no side effects.
//
// Семантика экзистенциальная: репетитор проходит фильтр, если у него есть
// хотя бы один свободный слот в ЛЮБОЙ из выбранных комбинаций день x блок.
// Пустая ось выбора означает отсутствие ограничения по этой оси.
// День без записи в расписании (или без свободных слотов) считается
// недоступным, а не ошибкой.
func IsAvailable(record *ScheduleRecord, selection DayTimeSelection, weekStart time.Time) bool {
	// Пустой фильтр - без ограничений, любой репетитор проходит
	if selection.IsEmpty() {
		return true
	}

	if record == nil {
		return false
	}

	for _, day := range selection.EffectiveDays() {
		date := DateForDay(weekStart, day)

		scheduleDay, ok := record.DayFor(date)
		if !ok || !scheduleDay.HasAvailableSlots() {
			// День не дает совпадения, идем к следующему
			continue
		}

		for _, block := range selection.EffectiveBlocks() {
			if scheduleDay.HasSlotInBlock(block) {
				return true
			}
		}
	}

	return false
}

// BlockAvailability describes one time block of one day of the grid
type BlockAvailability struct {
	Block     TimeBlock
	Available bool
	FreeSlots []Slot
}

// DayAvailability describes one day of the week availability grid
type DayAvailability struct {
	Day    DayOfWeek
	Date   time.Time
	Blocks []BlockAvailability
}

// BuildAvailabilityGrid computes the per-day/per-block availability grid
// for one tutor's week, used by hover and detail views
// Всегда возвращает ровно 7 дней по 3 блока; дни без данных - пустые
func BuildAvailabilityGrid(record *ScheduleRecord, weekStart time.Time) []DayAvailability {
	grid := make([]DayAvailability, 0, DaysPerWeek)

	for ordinal := 0; ordinal < DaysPerWeek; ordinal++ {
		day := DayOfWeek(ordinal)
		date := DateForDay(weekStart, day)

		blocks := make([]BlockAvailability, 0, len(AllTimeBlocks()))
		for _, block := range AllTimeBlocks() {
			var free []Slot
			if record != nil {
				if scheduleDay, ok := record.DayFor(date); ok {
					free = scheduleDay.SlotsInBlock(block)
				}
			}
			blocks = append(blocks, BlockAvailability{
				Block:     block,
				Available: len(free) > 0,
				FreeSlots: free,
			})
		}

		grid = append(grid, DayAvailability{
			Day:    day,
			Date:   date,
			Blocks: blocks,
		})
	}

	return grid
}
