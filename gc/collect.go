package gc

import "time"

// Collect runs one full collection cycle: seal the bump page, flip
// spaces, conservatively scan the stack and registers, evacuate the
// declared globals, then drain the promotion queue through the
// evacuator. It is safe to call explicitly; it is also invoked
// implicitly by acquire when the live set would otherwise exceed half
// the heap. Calling Collect while a cycle is already running (i.e. from
// inside a collection) is a bug and is fatal.
func (h *Heap) Collect() {
	if h.currentSpace != h.nextSpace {
		h.raiseRecursiveCollect()
	}

	start := time.Now()
	pagesBefore := h.allocatedPages

	if h.freeWords != 0 {
		h.setWord(uintptr(h.freeWord), uintptr(makeHeader(h.freeWords, 0)))
		h.freeWords = 0
	}

	h.nextSpace = nextSpaceNum(h.currentSpace)
	h.allocatedPages = 0
	h.queueHead = 0

	h.scanRoots()
	h.drainPromotionQueue()

	h.currentSpace = h.nextSpace
	h.recordCycle(pagesBefore, time.Since(start))
}

// drainPromotionQueue implements spec.md §4.6 step 5: walk every pinned
// page's objects, evacuating each of their pointer slots. The queue can
// grow while draining, because move() allocates into nextSpace pages,
// which acquire() enqueues in turn — the loop only terminates once the
// queue is empty and the sweep cursor has caught up with the bump
// pointer on the page it is currently examining.
func (h *Heap) drainPromotionQueue() {
	for h.queueHead != 0 {
		page := h.queueHead
		cp := h.pageBase(page)

		for h.pageOf(cp) == page && cp != uintptr(h.freeWord) {
			hdr := header(h.word(cp))
			ptrs := hdr.pointers()
			slot := cp + wordSize
			for i := 0; i < ptrs; i++ {
				old := Addr(h.word(slot))
				h.setWord(slot, uintptr(h.move(old)))
				slot += wordSize
			}
			cp += uintptr(hdr.words()) * wordSize
		}

		h.queueHead = h.link[h.slot(page)]
	}
}

// recordCycle folds one cycle's outcome into the diagnostics counters.
func (h *Heap) recordCycle(pagesBefore int, elapsed time.Duration) {
	reclaimed := pagesBefore - h.allocatedPages
	if reclaimed < 0 {
		reclaimed = 0
	}
	h.stats.record(h.allocatedPages, reclaimed, elapsed)
}
