package tlb

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMissOnEmptyTLB(t *testing.T) {
	tl := New(4)
	_, _, ok := tl.Lookup(0)
	assert.False(t, ok)
}

func TestInstallThenLookupHits(t *testing.T) {
	tl := New(4)
	slot := tl.Install(10, 3)
	tl.Touch(slot)

	gotSlot, gotFrame, ok := tl.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, slot, gotSlot)
	assert.Equal(t, 3, gotFrame)
}

func TestInstallReusesLRUTailSlot(t *testing.T) {
	tl := New(2)
	s0 := tl.Install(0, 0)
	tl.Touch(s0)
	s1 := tl.Install(1, 1)
	tl.Touch(s1)

	// both slots now used; s0 is the LRU tail
	s2 := tl.Install(2, 2)
	assert.Equal(t, s0, s2)
}

func TestTouchProtectsSlotFromReuse(t *testing.T) {
	tl := New(2)
	s0 := tl.Install(0, 0)
	tl.Touch(s0)
	s1 := tl.Install(1, 1)
	tl.Touch(s1)

	// re-touch s0 so s1 becomes the tail instead
	tl.Touch(s0)
	s2 := tl.Install(2, 2)
	assert.Equal(t, s1, s2)
}

func TestUntouchedSlotsNeverFalseHit(t *testing.T) {
	tl := New(4)
	for page := 0; page < 256; page++ {
		_, _, ok := tl.Lookup(page)
		assert.False(t, ok, "page %d should not hit an untouched TLB", page)
	}
}

func TestLRUMembersCoversAllSlots(t *testing.T) {
	tl := New(4)
	members := tl.LRUMembers()
	sort.Ints(members)
	assert.Equal(t, []int{0, 1, 2, 3}, members)
}
