// Package pagetable holds the per-page residency metadata: which frame (if
// any) a page currently occupies, and whether that frame has been written
// to since it was loaded. It owns no LRU state of its own — recency of a
// page is derived entirely from recency of its frame.
package pagetable

// Entry is the per-page metadata record. While !Valid, Dirty has no
// meaning and must be treated as clean the next time the page is
// installed.
type Entry struct {
	Frame int
	Valid bool
	Dirty bool
}

// Table is a bare array of entries indexed by page number.
type Table struct {
	entries []Entry
}

// New returns a table sized for pageCount pages, all initially
// invalid/clean.
func New(pageCount int) *Table {
	return &Table{entries: make([]Entry, pageCount)}
}

// Get returns the entry for page.
func (t *Table) Get(page int) Entry {
	return t.entries[page]
}

// Install records that page now resides in frame, clean.
func (t *Table) Install(page, frame int) {
	t.entries[page] = Entry{Frame: frame, Valid: true, Dirty: false}
}

// Invalidate marks page as no longer resident. Called when the frame it
// occupied is evicted.
func (t *Table) Invalidate(page int) {
	t.entries[page] = Entry{}
}

// MarkDirty records that page has been written to since it was loaded.
// Precondition: the page is currently valid.
func (t *Table) MarkDirty(page int) {
	t.entries[page].Dirty = true
}

// Len returns the number of pages the table tracks.
func (t *Table) Len() int {
	return len(t.entries)
}
