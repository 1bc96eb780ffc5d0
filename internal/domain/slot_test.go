package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Три блока должны попарно не пересекаться и вместе покрывать [0, SlotsPerDay)
func TestBlockSlotsPartitionInvariant(t *testing.T) {
	covered := make(map[Slot]TimeBlock)

	for _, block := range AllTimeBlocks() {
		for _, slot := range SlotsForBlock(block) {
			require.True(t, slot.IsValid(), "slot %d of block %s is out of range", slot, block)

			owner, seen := covered[slot]
			require.False(t, seen, "slot %d belongs to both %s and %s", slot, owner, block)
			covered[slot] = block
		}
	}

	require.Len(t, covered, SlotsPerDay, "blocks must cover the whole day")
}

func TestBlockForSlotMatchesTable(t *testing.T) {
	for _, block := range AllTimeBlocks() {
		for _, slot := range SlotsForBlock(block) {
			got, err := BlockForSlot(slot)
			require.NoError(t, err)
			require.Equal(t, block, got)
		}
	}
}

func TestBlockForSlotOutOfRange(t *testing.T) {
	_, err := BlockForSlot(-1)
	require.Error(t, err)

	_, err = BlockForSlot(SlotsPerDay)
	require.Error(t, err)
}

func TestSlotsForBlockReturnsCopy(t *testing.T) {
	first := SlotsForBlock(BlockMorning)
	first[0] = 99

	second := SlotsForBlock(BlockMorning)
	require.Equal(t, Slot(0), second[0])
}

func TestParseTimeBlock(t *testing.T) {
	cases := []struct {
		label string
		want  TimeBlock
	}{
		{"morning", BlockMorning},
		{"Morning", BlockMorning},
		{" afternoon ", BlockAfternoon},
		{"evening", BlockEvening},
		{"утро", BlockMorning},
		{"День", BlockAfternoon},
		{"вечер", BlockEvening},
	}

	for _, tc := range cases {
		got, err := ParseTimeBlock(tc.label)
		require.NoError(t, err, "label %q", tc.label)
		require.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestParseTimeBlockUnknownLabel(t *testing.T) {
	_, err := ParseTimeBlock("night")
	require.Error(t, err)
}

func TestMustParseTimeBlockPanicsOnUnknownLabel(t *testing.T) {
	require.Panics(t, func() {
		MustParseTimeBlock("midnight")
	})
}
