package associations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v uint) *uint {
	return &v
}

func TestResolveOne_SinglePopulatedSlot(t *testing.T) {
	// Every position in the slot set must be returned when it is the only
	// one populated.
	names := []string{SlotMessage, SlotBookInteraction, SlotReview, SlotQuote}

	for i, name := range names {
		slots := []Slot{
			{Name: SlotMessage},
			{Name: SlotBookInteraction},
			{Name: SlotReview},
			{Name: SlotQuote},
		}
		slots[i].ID = id(42)

		got, err := ResolveOne(slots)
		require.NoError(t, err, "slot %s", name)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, uint(42), *got.ID)
	}
}

func TestResolveOne_NoPopulatedSlot(t *testing.T) {
	slots := []Slot{
		{Name: SlotMessage},
		{Name: SlotBookInteraction},
		{Name: SlotReview},
		{Name: SlotQuote},
	}

	_, err := ResolveOne(slots)
	assert.ErrorIs(t, err, ErrNoTargetSpecified)
}

func TestResolveOne_TwoPopulatedSlots(t *testing.T) {
	slots := []Slot{
		{Name: SlotMessage},
		{Name: SlotBookInteraction, ID: id(5)},
		{Name: SlotReview, ID: id(7)},
		{Name: SlotQuote},
	}

	_, err := ResolveOne(slots)

	var ambiguous *AmbiguousTargetError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, []string{SlotBookInteraction, SlotReview}, ambiguous.Slots)
}

func TestResolveOne_AllPopulatedSlots(t *testing.T) {
	slots := []Slot{
		{Name: SlotMessage, ID: id(1)},
		{Name: SlotBookInteraction, ID: id(2)},
		{Name: SlotReview, ID: id(3)},
		{Name: SlotQuote, ID: id(4)},
	}

	_, err := ResolveOne(slots)

	var ambiguous *AmbiguousTargetError
	require.True(t, errors.As(err, &ambiguous))
	assert.Len(t, ambiguous.Slots, 4)
}

func TestResolveOne_ExhaustivePartition(t *testing.T) {
	// For every subset of a 3-slot set: exactly one populated succeeds,
	// zero or two-plus fail with the matching error.
	names := []string{SlotBookInteraction, SlotReview, SlotQuote}

	for mask := 0; mask < 8; mask++ {
		slots := make([]Slot, len(names))
		populated := 0
		for i, name := range names {
			slots[i] = Slot{Name: name}
			if mask&(1<<i) != 0 {
				slots[i].ID = id(uint(i + 1))
				populated++
			}
		}

		got, err := ResolveOne(slots)
		switch populated {
		case 0:
			assert.ErrorIs(t, err, ErrNoTargetSpecified, "mask %b", mask)
		case 1:
			require.NoError(t, err, "mask %b", mask)
			assert.NotNil(t, got.ID)
		default:
			var ambiguous *AmbiguousTargetError
			require.True(t, errors.As(err, &ambiguous), "mask %b", mask)
			assert.Len(t, ambiguous.Slots, populated)
		}
	}
}

func TestResolveOne_DoesNotMutateInput(t *testing.T) {
	slots := []Slot{
		{Name: SlotReview, ID: id(3)},
		{Name: SlotQuote},
	}

	_, err := ResolveOne(slots)
	require.NoError(t, err)
	assert.Equal(t, uint(3), *slots[0].ID)
	assert.Nil(t, slots[1].ID)
}
