package gc

import (
	"sync/atomic"
	"time"
)

// stats holds the collector's diagnostic counters. Every field is
// updated synchronously during collect(), on the mutator goroutine
// (bytesEvacuated at each evacuation, the rest at the end of the
// cycle), but read through sync/atomic so a separate monitoring
// goroutine may call Heap.Stats() without racing the mutator — the same
// division of labor the teacher kernel's GC monitor used (a goroutine
// that only reads runtime.MemStats, never drives collection itself).
type stats struct {
	cycles          atomic.Uint64
	pagesReclaimed  atomic.Uint64
	bytesEvacuated  atomic.Uint64
	lastPagesLive   atomic.Uint64
	lastReclaimed   atomic.Uint64
	lastDurationNS  atomic.Uint64
}

func (s *stats) recordEvacuation(bytes int) {
	s.bytesEvacuated.Add(uint64(bytes))
}

func (s *stats) record(pagesLive, reclaimed int, elapsed time.Duration) {
	s.cycles.Add(1)
	s.pagesReclaimed.Add(uint64(reclaimed))
	s.lastPagesLive.Store(uint64(pagesLive))
	s.lastReclaimed.Store(uint64(reclaimed))
	s.lastDurationNS.Store(uint64(elapsed.Nanoseconds()))
}

// Stats is a point-in-time snapshot of a Heap's collection diagnostics.
type Stats struct {
	Cycles              uint64
	TotalPagesReclaimed uint64
	TotalBytesEvacuated uint64
	LastCyclePagesLive  uint64
	LastCycleReclaimed  uint64
	LastCycleDuration   time.Duration
}

// Stats returns a snapshot of h's diagnostic counters. Safe to call
// concurrently with Allocate/Collect on the mutator goroutine, since it
// only reads atomics the mutator writes.
func (h *Heap) Stats() Stats {
	return Stats{
		Cycles:              h.stats.cycles.Load(),
		TotalPagesReclaimed: h.stats.pagesReclaimed.Load(),
		TotalBytesEvacuated: h.stats.bytesEvacuated.Load(),
		LastCyclePagesLive:  h.stats.lastPagesLive.Load(),
		LastCycleReclaimed:  h.stats.lastReclaimed.Load(),
		LastCycleDuration:   time.Duration(h.stats.lastDurationNS.Load()),
	}
}
