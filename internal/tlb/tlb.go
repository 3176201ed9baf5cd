// Package tlb implements the translation cache: a small, bounded,
// fully-associative cache of recently used page→frame mappings, with its
// own LRU queue over slot indices.
package tlb

import "github.com/awh44/MemoryManager/internal/lruqueue"

// InvalidPage is one above the maximum legal page number, guaranteeing an
// untouched slot can never match a real lookup.
const InvalidPage = 256

// TLB is the fixed-size associative translation cache.
type TLB struct {
	slotPage  []int
	slotFrame []int
	lru       *lruqueue.Queue
}

// New returns a TLB with slots slots, all initially empty.
func New(slots int) *TLB {
	t := &TLB{
		slotPage:  make([]int, slots),
		slotFrame: make([]int, slots),
		lru:       lruqueue.New(slots),
	}
	for i := range t.slotPage {
		t.slotPage[i] = InvalidPage
	}
	// See frame.New: insertion order here only needs to establish the
	// membership invariant over slot indices 0..slots-1; it has no
	// bearing on which slot is chosen as the first victim, since every
	// slot is touched on its first install.
	for i := 0; i < slots; i++ {
		t.lru.InsertNew(i)
	}
	return t
}

// Lookup scans the TLB for page. On a hit it returns the slot and mapped
// frame; on a miss, ok is false.
func (t *TLB) Lookup(page int) (slot, frame int, ok bool) {
	for i, p := range t.slotPage {
		if p == page {
			return i, t.slotFrame[i], true
		}
	}
	return 0, 0, false
}

// Install overwrites the current LRU-tail slot with (page, frame) and
// returns the slot used. It does not reposition the slot in the LRU queue
// — the caller is expected to call Touch afterward.
func (t *TLB) Install(page, frame int) int {
	slot := t.lru.PeekTail()
	t.slotPage[slot] = page
	t.slotFrame[slot] = frame
	return slot
}

// Touch moves slot to the most-recently-used end of the LRU queue.
func (t *TLB) Touch(slot int) {
	t.lru.MoveToFront(slot)
}

// Slots returns the number of TLB slots.
func (t *TLB) Slots() int {
	return len(t.slotPage)
}

// SlotPage returns the page currently occupying slot (InvalidPage if
// empty). Exposed for invariant checks and the debug dump.
func (t *TLB) SlotPage(slot int) int {
	return t.slotPage[slot]
}

// SlotFrame returns the frame currently recorded in slot.
func (t *TLB) SlotFrame(slot int) int {
	return t.slotFrame[slot]
}

// LRUMembers returns the slot indices currently tracked by the LRU queue.
// Exposed only for invariant checks.
func (t *TLB) LRUMembers() []int {
	return t.lru.Members()
}
