package domain

import "time"

// ScheduleDay represents one tutor's availability for one concrete date
// Immutable once constructed; replaced wholesale on refetch
type ScheduleDay struct {
	Date           time.Time
	AvailableSlots []Slot
}

// HasAvailableSlots returns true if the day has at least one free slot
func (d *ScheduleDay) HasAvailableSlots() bool {
	return len(d.AvailableSlots) > 0
}

// HasSlotInBlock returns true if any free slot of the day falls into the block
func (d *ScheduleDay) HasSlotInBlock(block TimeBlock) bool {
	if len(d.AvailableSlots) == 0 {
		return false
	}

	for _, slot := range d.AvailableSlots {
		b, err := BlockForSlot(slot)
		if err != nil {
			// Слот вне канонической сетки - пропускаем
			continue
		}
		if b == block {
			return true
		}
	}
	return false
}

// SlotsInBlock returns the day's free slots falling into the block, in order
func (d *ScheduleDay) SlotsInBlock(block TimeBlock) []Slot {
	slots := make([]Slot, 0)
	for _, slot := range d.AvailableSlots {
		b, err := BlockForSlot(slot)
		if err != nil {
			continue
		}
		if b == block {
			slots = append(slots, slot)
		}
	}
	return slots
}

// ScheduleRecord represents a tutor's availability for the seven days
// of one calendar week starting at WeekStart (a Monday)
// Immutable once constructed; concurrent reads are safe without locking
type ScheduleRecord struct {
	TutorID   int64
	WeekStart time.Time
	Days      []ScheduleDay
}

// DayFor returns the schedule day for the given calendar date
// Сравнение по календарной дате, время суток игнорируется
func (r *ScheduleRecord) DayFor(date time.Time) (*ScheduleDay, bool) {
	for i := range r.Days {
		if SameDate(r.Days[i].Date, date) {
			return &r.Days[i], true
		}
	}
	return nil, false
}

// IsEmpty returns true if the record has no days with free slots
func (r *ScheduleRecord) IsEmpty() bool {
	for i := range r.Days {
		if r.Days[i].HasAvailableSlots() {
			return false
		}
	}
	return true
}

// EmptyScheduleRecord returns a record with no availability for the week
// Подставляется при ошибке загрузки расписания (graceful degradation)
func EmptyScheduleRecord(tutorID int64, weekStart time.Time) *ScheduleRecord {
	return &ScheduleRecord{
		TutorID:   tutorID,
		WeekStart: weekStart,
		Days:      []ScheduleDay{},
	}
}
