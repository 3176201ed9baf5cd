// Package translator implements the per-reference translation pipeline:
// TLB lookup, page-table lookup, page-fault handling, physical-address
// formation, value read, dirty-bit update, and statistics bookkeeping.
package translator

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/awh44/MemoryManager/internal/backing"
	"github.com/awh44/MemoryManager/internal/frame"
	"github.com/awh44/MemoryManager/internal/pagetable"
	"github.com/awh44/MemoryManager/internal/stats"
	"github.com/awh44/MemoryManager/internal/tlb"
)

// OffsetBits and OffsetMask fix the address decomposition from spec.md §3:
// an 8-bit offset, with the remaining high bits of the 16-bit address
// forming the page number.
const (
	OffsetBits = 8
	OffsetMask = 1<<OffsetBits - 1
)

// Record is the per-reference output: the decoded virtual address, its
// translated physical address, and the byte value stored there.
type Record struct {
	VirtualAddress  uint16
	PhysicalAddress uint16
	Value           int8
}

// Translator wires the page table, frame pool, TLB, backing store, and
// statistics counters into the ten-step pipeline from spec.md §4.F.
type Translator struct {
	pageTable *pagetable.Table
	frames    *frame.Pool
	tlb       *tlb.TLB
	store     backing.Store
	counters  *stats.Counters
	log       zerolog.Logger
}

// New returns a Translator over the given collaborators. log may be the
// zero value (zerolog.Logger{}), in which case debug events are simply
// discarded.
func New(pt *pagetable.Table, frames *frame.Pool, t *tlb.TLB, store backing.Store, counters *stats.Counters, log zerolog.Logger) *Translator {
	return &Translator{
		pageTable: pt,
		frames:    frames,
		tlb:       t,
		store:     store,
		counters:  counters,
		log:       log,
	}
}

// Decompose splits a virtual address into its page number and offset.
func Decompose(addr uint16) (page, offset int) {
	return int(addr >> OffsetBits), int(addr & OffsetMask)
}

// Translate runs one reference through the pipeline, returning the
// decoded record. The only errors it can return originate from the
// backing store on a page fault.
func (t *Translator) Translate(addr uint16, isWrite bool) (Record, error) {
	page, offset := Decompose(addr)

	var frameNum, slot int
	if s, f, hit := t.tlb.Lookup(page); hit {
		slot, frameNum = s, f
		t.counters.TLBHits++
		t.log.Debug().Uint16("addr", addr).Int("page", page).Msg("tlb hit")
	} else {
		entry := t.pageTable.Get(page)
		if !entry.Valid {
			t.counters.PageFaults++
			data, err := t.store.ReadPage(page)
			if err != nil {
				return Record{}, errors.Wrapf(err, "page fault on page %d", page)
			}
			frameNum = t.frames.AllocateOrEvict(page)
			t.frames.LoadPage(frameNum, data)
			t.pageTable.Install(page, frameNum)
			t.log.Debug().Uint16("addr", addr).Int("page", page).Int("frame", frameNum).Msg("page fault")
		} else {
			frameNum = entry.Frame
			t.log.Debug().Uint16("addr", addr).Int("page", page).Int("frame", frameNum).Msg("page table hit")
		}
		slot = t.tlb.Install(page, frameNum)
	}

	physAddr := frameNum*frame.PageSize + offset
	value := t.frames.ReadByte(physAddr)

	if isWrite {
		t.pageTable.MarkDirty(page)
	}

	t.tlb.Touch(slot)
	t.frames.Touch(frameNum)
	t.counters.Translated++

	return Record{
		VirtualAddress:  addr,
		PhysicalAddress: uint16(physAddr),
		Value:           value,
	}, nil
}
