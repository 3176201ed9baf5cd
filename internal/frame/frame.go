// Package frame implements the physical frame pool: a fixed-size array of
// page-sized frames, the inverse page map, and the LRU queue used to pick
// an eviction victim once the pool is full.
package frame

import (
	"github.com/awh44/MemoryManager/internal/lruqueue"
	"github.com/awh44/MemoryManager/internal/pagetable"
	"github.com/awh44/MemoryManager/internal/stats"
)

// PageSize is the number of bytes held by one frame.
const PageSize = 256

// notResident is the sentinel residentPage value for a frame that has
// never been filled.
const notResident = -1

// Pool is the fixed-size array of physical frames plus the page↔frame
// inverse mapping. It owns an LRU queue over frame numbers 0..count-1.
type Pool struct {
	buf          []int8 // flat FrameCount*PageSize buffer, indexed by physical address
	residentPage []int
	used         int
	count        int
	lru          *lruqueue.Queue
	pageTable    *pagetable.Table
	counters     *stats.Counters
}

// New returns a frame pool with room for count frames. pt is the page
// table it invalidates entries in on eviction; counters is where evictions
// of dirty pages are tallied as write-backs.
func New(count int, pt *pagetable.Table, counters *stats.Counters) *Pool {
	p := &Pool{
		buf:          make([]int8, count*PageSize),
		residentPage: make([]int, count),
		count:        count,
		lru:          lruqueue.New(count),
		pageTable:    pt,
		counters:     counters,
	}
	for i := range p.residentPage {
		p.residentPage[i] = notResident
	}
	// Seed the LRU queue over every frame index so the structural
	// invariant (queue contains exactly 0..count-1) holds before any
	// frame is ever touched. Every frame is touched on its first use
	// (the translator calls Touch after every translation), which happens well before
	// the pool can be full enough to need an eviction, so the seed order
	// itself never influences which frame is chosen as a victim.
	for i := 0; i < count; i++ {
		p.lru.InsertNew(i)
	}
	return p
}

// AllocateOrEvict returns a frame to install newPage into. If the pool is
// not yet full, it hands out the next never-used frame. Otherwise it
// evicts the LRU tail: the victim page's table entry is invalidated, and
// if it was dirty, counters.WriteBacks is incremented (no bytes are
// actually written back — the backing store is read-only).
func (p *Pool) AllocateOrEvict(newPage int) (frame int) {
	if p.used < p.count {
		frame = p.used
		p.used++
	} else {
		frame = p.lru.PeekTail()
		victimPage := p.residentPage[frame]
		entry := p.pageTable.Get(victimPage)
		if entry.Dirty {
			p.counters.WriteBacks++
		}
		p.pageTable.Invalidate(victimPage)
	}
	p.residentPage[frame] = newPage
	return frame
}

// ReadByte returns the signed byte at the given physical address.
func (p *Pool) ReadByte(physAddr int) int8 {
	return p.buf[physAddr]
}

// LoadPage copies a freshly read page's bytes into frame.
func (p *Pool) LoadPage(frame int, data []byte) {
	base := frame * PageSize
	for i, b := range data {
		p.buf[base+i] = int8(b)
	}
}

// Touch moves frame to the most-recently-used end of the LRU queue. Called
// on every successful translation, hit or miss, so the most recent user of
// a frame is never the eviction victim.
func (p *Pool) Touch(frame int) {
	p.lru.MoveToFront(frame)
}

// Count returns the total number of frames in the pool.
func (p *Pool) Count() int {
	return p.count
}

// ResidentPage returns the page number currently occupying frame, or
// notResident if the frame has never been filled. Exposed for invariant
// checks and the debug dump.
func (p *Pool) ResidentPage(frame int) (page int, ok bool) {
	rp := p.residentPage[frame]
	return rp, rp != notResident
}

// LRUMembers returns the frame indices currently tracked by the LRU queue.
// Exposed only for invariant checks.
func (p *Pool) LRUMembers() []int {
	return p.lru.Members()
}
