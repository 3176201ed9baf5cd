// Package stats holds the four aggregate counters the translator maintains
// across a reference stream, plus the derived rates reported at
// end-of-stream.
package stats

// Counters are the raw, monotonically non-decreasing tallies.
type Counters struct {
	Translated uint64
	PageFaults uint64
	TLBHits    uint64
	WriteBacks uint64
}

// Snapshot is the point-in-time view of Counters plus derived rates,
// suitable for formatting into the end-of-stream summary.
type Snapshot struct {
	Translated    uint64
	PageFaults    uint64
	PageFaultRate float64
	TLBHits       uint64
	TLBHitRatio   float64
	WriteBacks    uint64
}

// Snapshot computes the derived rates, reporting zero for both when no
// translations have occurred yet rather than dividing by zero.
func (c *Counters) Snapshot() Snapshot {
	s := Snapshot{
		Translated: c.Translated,
		PageFaults: c.PageFaults,
		TLBHits:    c.TLBHits,
		WriteBacks: c.WriteBacks,
	}
	if c.Translated > 0 {
		s.PageFaultRate = float64(c.PageFaults) / float64(c.Translated)
		s.TLBHitRatio = float64(c.TLBHits) / float64(c.Translated)
	}
	return s
}
