package frame

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awh44/MemoryManager/internal/pagetable"
	"github.com/awh44/MemoryManager/internal/stats"
)

func newHarness(count int) (*Pool, *pagetable.Table, *stats.Counters) {
	pt := pagetable.New(256)
	counters := &stats.Counters{}
	return New(count, pt, counters), pt, counters
}

func TestAllocateSequentiallyWhileNotFull(t *testing.T) {
	pool, _, _ := newHarness(4)
	for page := 0; page < 4; page++ {
		frame := pool.AllocateOrEvict(page)
		assert.Equal(t, page, frame)
		pool.Touch(frame)
	}
}

func TestAllocateOrEvictEvictsCleanVictimWithoutWriteBack(t *testing.T) {
	pool, pt, counters := newHarness(2)
	f0 := pool.AllocateOrEvict(0)
	pool.Touch(f0)
	f1 := pool.AllocateOrEvict(1)
	pool.Touch(f1)
	pt.Install(0, f0)
	pt.Install(1, f1)

	// 0 is now the LRU tail (touched first, not since)
	victimFrame := pool.AllocateOrEvict(2)
	assert.Equal(t, f0, victimFrame)
	assert.Equal(t, uint64(0), counters.WriteBacks)
	assert.False(t, pt.Get(0).Valid)
}

func TestAllocateOrEvictCountsWriteBackForDirtyVictim(t *testing.T) {
	pool, pt, counters := newHarness(2)
	f0 := pool.AllocateOrEvict(0)
	pool.Touch(f0)
	pt.Install(0, f0)
	pt.MarkDirty(0)

	f1 := pool.AllocateOrEvict(1)
	pool.Touch(f1)
	pt.Install(1, f1)

	pool.AllocateOrEvict(2)
	assert.Equal(t, uint64(1), counters.WriteBacks)
}

func TestTouchProtectsFromEviction(t *testing.T) {
	pool, pt, _ := newHarness(2)
	f0 := pool.AllocateOrEvict(0)
	pool.Touch(f0)
	pt.Install(0, f0)
	f1 := pool.AllocateOrEvict(1)
	pool.Touch(f1)
	pt.Install(1, f1)

	// re-touch page 0's frame so page 1's frame becomes the LRU tail
	pool.Touch(f0)

	victim := pool.AllocateOrEvict(2)
	assert.Equal(t, f1, victim)
}

func TestLoadPageAndReadByte(t *testing.T) {
	pool, _, _ := newHarness(2)
	f := pool.AllocateOrEvict(0)
	data := make([]byte, PageSize)
	data[10] = 0xFF // -1 as int8
	pool.LoadPage(f, data)
	assert.Equal(t, int8(-1), pool.ReadByte(f*PageSize+10))
}

func TestLRUMembersCoversAllFrames(t *testing.T) {
	pool, _, _ := newHarness(4)
	members := pool.LRUMembers()
	sort.Ints(members)
	assert.Equal(t, []int{0, 1, 2, 3}, members)
}
