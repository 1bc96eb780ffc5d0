package domain

import "fmt"

// Slot represents one discrete 30-minute unit of a day, index in [0, SlotsPerDay)
type Slot int

// IsValid returns true if the slot index is within the canonical day grid
func (s Slot) IsValid() bool {
	return s >= 0 && s < SlotsPerDay
}

// TimeBlock represents a named fixed group of slots used for coarse filtering
type TimeBlock string

const (
	BlockMorning   TimeBlock = "morning"
	BlockAfternoon TimeBlock = "afternoon"
	BlockEvening   TimeBlock = "evening"
)

// Границы блоков в канонической 48-слотовой сетке
// Morning 00:00-12:00, Afternoon 12:00-18:00, Evening 18:00-24:00
const (
	morningStart   Slot = 0
	afternoonStart Slot = 24
	eveningStart   Slot = 36
)

// blockSlots статическая таблица блок -> слоты
// Три блока попарно не пересекаются и вместе покрывают весь день
var blockSlots = map[TimeBlock][]Slot{
	BlockMorning:   slotRange(morningStart, afternoonStart),
	BlockAfternoon: slotRange(afternoonStart, eveningStart),
	BlockEvening:   slotRange(eveningStart, SlotsPerDay),
}

// blockLabels таблица пользовательских меток блока
// Закрытый словарь: английские и русские метки из UI
var blockLabels = map[string]TimeBlock{
	"morning":   BlockMorning,
	"afternoon": BlockAfternoon,
	"evening":   BlockEvening,
	"утро":      BlockMorning,
	"день":      BlockAfternoon,
	"вечер":     BlockEvening,
}

func slotRange(from, to Slot) []Slot {
	slots := make([]Slot, 0, to-from)
	for s := from; s < to; s++ {
		slots = append(slots, s)
	}
	return slots
}

// AllTimeBlocks returns the three blocks in day order
func AllTimeBlocks() []TimeBlock {
	return []TimeBlock{BlockMorning, BlockAfternoon, BlockEvening}
}

// SlotsForBlock returns a copy of the slot indices covered by the block
// Panics on an unknown block: the block vocabulary is closed
func SlotsForBlock(block TimeBlock) []Slot {
	slots, ok := blockSlots[block]
	if !ok {
		panic(fmt.Sprintf("domain: unknown time block %q", block))
	}

	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// BlockForSlot returns the block containing the given slot
func BlockForSlot(slot Slot) (TimeBlock, error) {
	switch {
	case slot < morningStart || slot >= SlotsPerDay:
		return "", fmt.Errorf("domain: slot %d is out of range [0, %d)", slot, SlotsPerDay)
	case slot < afternoonStart:
		return BlockMorning, nil
	case slot < eveningStart:
		return BlockAfternoon, nil
	default:
		return BlockEvening, nil
	}
}

// ParseTimeBlock maps a user-facing block label to a TimeBlock
// Используется на границе HTTP API; внутри ядра метки не встречаются
func ParseTimeBlock(label string) (TimeBlock, error) {
	block, ok := blockLabels[normalizeLabel(label)]
	if !ok {
		return "", fmt.Errorf("domain: unknown time block label %q", label)
	}
	return block, nil
}

// MustParseTimeBlock is ParseTimeBlock that panics on an unknown label
// Метки блоков - закрытый словарь, незнакомая метка это ошибка программиста
func MustParseTimeBlock(label string) TimeBlock {
	block, err := ParseTimeBlock(label)
	if err != nil {
		panic(err.Error())
	}
	return block
}
