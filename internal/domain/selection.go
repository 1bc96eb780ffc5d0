package domain

import "sort"

// DayTimeSelection represents the user's day/time filter state:
// a set of selected weekdays and a set of selected time blocks.
// An empty set on either axis means "no constraint on that axis".
// Value semantics: mutations return a new selection (reducer style),
// существующие значения никогда не меняются на месте
type DayTimeSelection struct {
	days   []DayOfWeek
	blocks []TimeBlock
}

// NewDayTimeSelection builds a normalized selection (sorted, deduplicated)
func NewDayTimeSelection(days []DayOfWeek, blocks []TimeBlock) DayTimeSelection {
	return DayTimeSelection{
		days:   normalizeDays(days),
		blocks: normalizeBlocks(blocks),
	}
}

// WithDays returns a copy of the selection with the day set replaced
func (s DayTimeSelection) WithDays(days []DayOfWeek) DayTimeSelection {
	return DayTimeSelection{
		days:   normalizeDays(days),
		blocks: s.blocks,
	}
}

// WithBlocks returns a copy of the selection with the block set replaced
func (s DayTimeSelection) WithBlocks(blocks []TimeBlock) DayTimeSelection {
	return DayTimeSelection{
		days:   s.days,
		blocks: normalizeBlocks(blocks),
	}
}

// Days returns the selected weekdays in ordinal order
func (s DayTimeSelection) Days() []DayOfWeek {
	out := make([]DayOfWeek, len(s.days))
	copy(out, s.days)
	return out
}

// Blocks returns the selected time blocks in day order
func (s DayTimeSelection) Blocks() []TimeBlock {
	out := make([]TimeBlock, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// HasDayConstraint returns true if at least one weekday is selected
func (s DayTimeSelection) HasDayConstraint() bool {
	return len(s.days) > 0
}

// HasBlockConstraint returns true if at least one time block is selected
func (s DayTimeSelection) HasBlockConstraint() bool {
	return len(s.blocks) > 0
}

// IsEmpty returns true if neither axis constrains anything
// Пустой фильтр пропускает любого репетитора
func (s DayTimeSelection) IsEmpty() bool {
	return !s.HasDayConstraint() && !s.HasBlockConstraint()
}

// EffectiveDays returns the selected days, or all seven when unconstrained
func (s DayTimeSelection) EffectiveDays() []DayOfWeek {
	if s.HasDayConstraint() {
		return s.Days()
	}

	days := make([]DayOfWeek, DaysPerWeek)
	for i := range days {
		days[i] = DayOfWeek(i)
	}
	return days
}

// EffectiveBlocks returns the selected blocks, or all three when unconstrained
func (s DayTimeSelection) EffectiveBlocks() []TimeBlock {
	if s.HasBlockConstraint() {
		return s.Blocks()
	}
	return AllTimeBlocks()
}

// Equal returns true if both selections constrain the same days and blocks
func (s DayTimeSelection) Equal(other DayTimeSelection) bool {
	if len(s.days) != len(other.days) || len(s.blocks) != len(other.blocks) {
		return false
	}
	for i := range s.days {
		if s.days[i] != other.days[i] {
			return false
		}
	}
	for i := range s.blocks {
		if s.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

func normalizeDays(days []DayOfWeek) []DayOfWeek {
	seen := make(map[DayOfWeek]struct{}, len(days))
	out := make([]DayOfWeek, 0, len(days))
	for _, d := range days {
		if !d.IsValid() {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func normalizeBlocks(blocks []TimeBlock) []TimeBlock {
	out := make([]TimeBlock, 0, len(blocks))
	// Сохраняем дневной порядок блоков независимо от порядка на входе
	for _, b := range AllTimeBlocks() {
		for _, in := range blocks {
			if in == b {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
