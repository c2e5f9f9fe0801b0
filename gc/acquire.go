package gc

import "github.com/iansmith/mazgc/bitfield"

// acquire finds `pages` contiguous free pages and installs them as the
// current allocation run. Outside a collection, if taking them would
// cross the half-heap threshold, it first runs a collection cycle and
// then searches. If no run is found it panics via raiseExhaustion;
// otherwise Allocate's loop retests free space once acquire returns.
func (h *Heap) acquire(pages int) {
	// The half-heap threshold enforces the two-space discipline: a
	// collection must always have room to evacuate everything it
	// reaches into the other half. currentSpace == nextSpace is this
	// heap's "not mid-collection" state (Collect restores it on exit);
	// acquire can be re-entered with that equality broken when move()
	// allocates evacuation targets during a collection already in
	// progress, and triggering a second collection from in there would
	// be the recursive-collect fault Collect itself guards against.
	// Falling through to the scan below after collecting, rather than
	// returning immediately, matters: a single request whose own page
	// count is at or past the threshold would otherwise retrigger this
	// branch forever on every Allocate retry without ever reaching the
	// scan-or-exhaust decision.
	if h.currentSpace == h.nextSpace && h.allocatedPages+pages >= h.numPages/2 {
		h.Collect()
	}

	run := 0
	var runStart pageIndex
	p := h.freePageCursor

	for scanned := 0; scanned < h.numPages+pages-1; scanned++ {
		if h.spaceOf(p) != h.currentSpace && h.spaceOf(p) != h.nextSpace {
			if run == 0 {
				runStart = p
			}
			run++
			if run == pages {
				h.installRun(runStart, pages)
				return
			}
		} else {
			run = 0
		}

		next := h.nextPage(p)
		if next == h.firstPage {
			// The run must never wrap across the lastPage -> firstPage
			// seam, so the contiguous-run counter resets here. The scan
			// runs one full lap plus pages-1 further pages, so a run
			// that straddles the cursor's starting page is also found
			// (SPEC_FULL.md §3).
			run = 0
		}
		p = next
	}

	h.raiseExhaustion(pages, h.numPages)
}

// installRun stamps a found run of `pages` pages starting at runStart as
// the new current allocation page(s), advances bookkeeping, and — if a
// collection is in progress — enqueues the run's first page for the
// promotion sweep.
func (h *Heap) installRun(runStart pageIndex, pages int) {
	h.setClass(runStart, bitfield.KindObject)
	h.setSpace(runStart, h.nextSpace)
	p := runStart
	for i := 1; i < pages; i++ {
		p = h.nextPage(p)
		h.setClass(p, bitfield.KindContinued)
		h.setSpace(p, h.nextSpace)
	}

	h.freeWord = int(h.pageBase(runStart))
	h.freeWords = pages * wordsPerPage
	h.allocatedPages += pages
	h.freePageCursor = h.nextPage(p)

	if h.currentSpace != h.nextSpace {
		h.enqueue(runStart)
	}
}
