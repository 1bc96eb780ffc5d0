package scheduleservice

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// WeekScheduleResponse модель недельного расписания из ScheduleService
// Сервис отдает до 7 дней начиная с weekStart; дни без данных опускаются
type WeekScheduleResponse struct {
	TutorID     int64        `json:"tutorId"`
	WeekStart   string       `json:"weekStart"`   // YYYY-MM-DD, понедельник
	SlotsPerDay int          `json:"slotsPerDay"` // гранулярность сетки источника
	Days        []DayPayload `json:"days"`
}

// DayPayload доступность репетитора на одну дату
type DayPayload struct {
	Date           string `json:"date"` // YYYY-MM-DD
	AvailableSlots []int  `json:"availableSlots"`
}

// ErrorResponse модель ошибки от ScheduleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует ответ в доменную модель, нормализуя гранулярность
// Исторически источник отдает сетки в 24 или 48 юнитов на день; здесь обе
// приводятся к канонической 48-слотовой, другие значения отвергаются
func (r *WeekScheduleResponse) ToDomain(weekStart time.Time) (*domain.ScheduleRecord, error) {
	factor, err := granularityFactor(r.SlotsPerDay)
	if err != nil {
		return nil, err
	}

	days := make([]domain.ScheduleDay, 0, len(r.Days))
	for _, payload := range r.Days {
		date, err := time.ParseInLocation(domain.DateFormat, payload.Date, weekStart.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid day date %q: %v", ErrInvalidResponse, payload.Date, err)
		}

		days = append(days, domain.ScheduleDay{
			Date:           date,
			AvailableSlots: normalizeSlots(payload.AvailableSlots, factor),
		})
	}

	return &domain.ScheduleRecord{
		TutorID:   r.TutorID,
		WeekStart: weekStart,
		Days:      days,
	}, nil
}

// granularityFactor возвращает множитель перевода юнита источника в слоты
func granularityFactor(slotsPerDay int) (int, error) {
	if slotsPerDay == 0 {
		// Старые инсталляции не присылают поле - считаем каноническую сетку
		return 1, nil
	}
	if domain.SlotsPerDay%slotsPerDay != 0 {
		return 0, fmt.Errorf("%w: %d slots per day", ErrUnsupportedGranularity, slotsPerDay)
	}
	return domain.SlotsPerDay / slotsPerDay, nil
}

// normalizeSlots переводит индексы источника в каноническую сетку
// Один юнит более грубой сетки раскрывается в factor канонических слотов
func normalizeSlots(raw []int, factor int) []domain.Slot {
	seen := make(map[domain.Slot]struct{}, len(raw)*factor)
	slots := make([]domain.Slot, 0, len(raw)*factor)

	for _, unit := range raw {
		for i := 0; i < factor; i++ {
			slot := domain.Slot(unit*factor + i)
			if !slot.IsValid() {
				continue
			}
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			slots = append(slots, slot)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
