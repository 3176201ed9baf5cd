package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotZeroWhenNoTranslations(t *testing.T) {
	c := &Counters{}
	s := c.Snapshot()
	assert.Equal(t, uint64(0), s.Translated)
	assert.Zero(t, s.PageFaultRate)
	assert.Zero(t, s.TLBHitRatio)
}

func TestSnapshotComputesRates(t *testing.T) {
	c := &Counters{Translated: 4, PageFaults: 1, TLBHits: 2, WriteBacks: 1}
	s := c.Snapshot()
	assert.Equal(t, 0.25, s.PageFaultRate)
	assert.Equal(t, 0.5, s.TLBHitRatio)
	assert.Equal(t, uint64(1), s.WriteBacks)
}
