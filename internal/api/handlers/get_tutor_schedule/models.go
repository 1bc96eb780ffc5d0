package get_tutor_schedule

import (
	"github.com/m04kA/TMP-SearchService/internal/domain"
	getWeekAvailability "github.com/m04kA/TMP-SearchService/internal/usecase/get_week_availability"
	"github.com/m04kA/TMP-SearchService/pkg/types"
)

// WeekScheduleResponse HTTP response model
type WeekScheduleResponse struct {
	TutorID       int64             `json:"tutorId"`
	WeekStart     string            `json:"weekStart"`
	ScheduleKnown bool              `json:"scheduleKnown"`
	Days          []DayAvailability `json:"days"`
}

// DayAvailability модель доступности одного дня недели
type DayAvailability struct {
	Day    string              `json:"day"`
	Date   string              `json:"date"`
	Blocks []BlockAvailability `json:"blocks"`
}

// BlockAvailability модель доступности одного блока времени
type BlockAvailability struct {
	Block     string     `json:"block"`
	Available bool       `json:"available"`
	Slots     []FreeSlot `json:"slots"`
}

// FreeSlot свободный слот с временем начала
type FreeSlot struct {
	Index     int    `json:"index"`
	StartTime string `json:"startTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekAvailability.Response) *WeekScheduleResponse {
	days := make([]DayAvailability, len(resp.Grid))
	for i, day := range resp.Grid {
		blocks := make([]BlockAvailability, len(day.Blocks))
		for j, block := range day.Blocks {
			slots := make([]FreeSlot, 0, len(block.FreeSlots))
			for _, slot := range block.FreeSlots {
				startTime, err := types.NewTimeStringFromSlot(int(slot), domain.SlotDurationMinutes)
				if err != nil {
					// Слот вне суточной сетки сюда не попадает, нормализация
					// отбрасывает такие на границе интеграции
					continue
				}
				slots = append(slots, FreeSlot{
					Index:     int(slot),
					StartTime: startTime.String(),
				})
			}
			blocks[j] = BlockAvailability{
				Block:     string(block.Block),
				Available: block.Available,
				Slots:     slots,
			}
		}
		days[i] = DayAvailability{
			Day:    day.Day.String(),
			Date:   day.Date.Format(domain.DateFormat),
			Blocks: blocks,
		}
	}

	return &WeekScheduleResponse{
		TutorID:       resp.TutorID,
		WeekStart:     resp.WeekStart.Format(domain.DateFormat),
		ScheduleKnown: resp.ScheduleKnown,
		Days:          days,
	}
}
