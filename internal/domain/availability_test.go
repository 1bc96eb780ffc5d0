package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2024-06-03 - понедельник
var testWeekStart = time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

func scheduleWithDay(date time.Time, slots ...Slot) *ScheduleRecord {
	return &ScheduleRecord{
		TutorID:   1,
		WeekStart: testWeekStart,
		Days: []ScheduleDay{
			{Date: date, AvailableSlots: slots},
		},
	}
}

func TestIsAvailableEmptySelectionAlwaysPasses(t *testing.T) {
	empty := NewDayTimeSelection(nil, nil)

	require.True(t, IsAvailable(nil, empty, testWeekStart))
	require.True(t, IsAvailable(EmptyScheduleRecord(1, testWeekStart), empty, testWeekStart))
	require.True(t, IsAvailable(scheduleWithDay(testWeekStart, 10), empty, testWeekStart))
}

func TestIsAvailableEmptyScheduleNeverPasses(t *testing.T) {
	record := EmptyScheduleRecord(1, testWeekStart)

	cases := []DayTimeSelection{
		NewDayTimeSelection([]DayOfWeek{Monday}, nil),
		NewDayTimeSelection(nil, []TimeBlock{BlockEvening}),
		NewDayTimeSelection([]DayOfWeek{Friday}, []TimeBlock{BlockMorning}),
	}

	for _, selection := range cases {
		require.False(t, IsAvailable(record, selection, testWeekStart))
	}
}

// Сценарий из спецификации: среда 2024-06-05, слот 10 - утро
func TestIsAvailableWednesdayMorningSlot(t *testing.T) {
	wednesday := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	selection := NewDayTimeSelection([]DayOfWeek{Wednesday}, []TimeBlock{BlockMorning})

	record := scheduleWithDay(wednesday, 10)
	require.True(t, IsAvailable(record, selection, testWeekStart))

	// Тот же день, но свободен только вечерний слот 40
	record = scheduleWithDay(wednesday, 40)
	require.False(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableMatchIsExistential(t *testing.T) {
	wednesday := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)

	// Несколько выбранных дней и блоков: достаточно одного пересечения
	selection := NewDayTimeSelection(
		[]DayOfWeek{Monday, Wednesday, Friday},
		[]TimeBlock{BlockMorning, BlockEvening},
	)

	record := scheduleWithDay(wednesday, 40) // вечер среды
	require.True(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableDayWithoutScheduleEntry(t *testing.T) {
	// Расписание содержит только понедельник, фильтр - по четвергу
	record := scheduleWithDay(testWeekStart, 10)
	selection := NewDayTimeSelection([]DayOfWeek{Thursday}, nil)

	require.False(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableDateMatchIgnoresTimeOfDay(t *testing.T) {
	// Дата дня расписания с ненулевым временем суток
	wednesdayNoon := time.Date(2024, 6, 5, 12, 30, 0, 0, time.Local)
	record := scheduleWithDay(wednesdayNoon, 5)

	selection := NewDayTimeSelection([]DayOfWeek{Wednesday}, []TimeBlock{BlockMorning})
	require.True(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableOnlyDaysSelected(t *testing.T) {
	wednesday := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	record := scheduleWithDay(wednesday, 40)

	// Без ограничения по блокам любой свободный слот дня подходит
	selection := NewDayTimeSelection([]DayOfWeek{Wednesday}, nil)
	require.True(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableOnlyBlocksSelected(t *testing.T) {
	saturday := time.Date(2024, 6, 8, 0, 0, 0, 0, time.Local)
	record := scheduleWithDay(saturday, 25)

	// Без ограничения по дням подходит любой день недели
	selection := NewDayTimeSelection(nil, []TimeBlock{BlockAfternoon})
	require.True(t, IsAvailable(record, selection, testWeekStart))

	selection = NewDayTimeSelection(nil, []TimeBlock{BlockEvening})
	require.False(t, IsAvailable(record, selection, testWeekStart))
}

func TestIsAvailableNilRecordWithConstraint(t *testing.T) {
	selection := NewDayTimeSelection([]DayOfWeek{Monday}, nil)
	require.False(t, IsAvailable(nil, selection, testWeekStart))
}

func TestBuildAvailabilityGrid(t *testing.T) {
	wednesday := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	record := scheduleWithDay(wednesday, 10, 11, 40)

	grid := BuildAvailabilityGrid(record, testWeekStart)

	require.Len(t, grid, DaysPerWeek)
	for i, day := range grid {
		require.Equal(t, DayOfWeek(i), day.Day)
		require.Len(t, day.Blocks, 3)
	}

	wed := grid[int(Wednesday)]
	require.True(t, SameDate(wed.Date, wednesday))
	require.True(t, wed.Blocks[0].Available) // morning
	require.Equal(t, []Slot{10, 11}, wed.Blocks[0].FreeSlots)
	require.False(t, wed.Blocks[1].Available) // afternoon
	require.True(t, wed.Blocks[2].Available)  // evening
	require.Equal(t, []Slot{40}, wed.Blocks[2].FreeSlots)

	// Остальные дни полностью пусты
	for _, block := range grid[int(Monday)].Blocks {
		require.False(t, block.Available)
	}
}

func TestBuildAvailabilityGridNilRecord(t *testing.T) {
	grid := BuildAvailabilityGrid(nil, testWeekStart)

	require.Len(t, grid, DaysPerWeek)
	for _, day := range grid {
		for _, block := range day.Blocks {
			require.False(t, block.Available)
			require.Empty(t, block.FreeSlots)
		}
	}
}
