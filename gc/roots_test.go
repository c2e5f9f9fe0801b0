package gc

import "testing"

func TestPromoteIgnoresOutOfRangeAddresses(t *testing.T) {
	h := newTestHeap(t, 8)

	before := h.allocatedPages
	h.promote(h.firstPage - 1)
	h.promote(h.lastPage + 1)
	if h.allocatedPages != before {
		t.Errorf("promote pinned an out-of-range page: allocatedPages %d -> %d", before, h.allocatedPages)
	}
}

func TestPromotePinsObjectPage(t *testing.T) {
	h := newTestHeap(t, 8)
	a := h.Allocate(int(wordSize), 0)
	p := h.pageOf(uintptr(a))

	// promote only acts during a cycle, where spaceOf(p) == currentSpace
	// and nextSpace has already diverged from it.
	h.nextSpace = nextSpaceNum(h.currentSpace)
	h.queueHead = 0

	h.promote(p)

	if h.spaceOf(p) != h.nextSpace {
		t.Errorf("promote did not stamp the page with nextSpace")
	}
	if h.queueHead != p {
		t.Errorf("promote did not enqueue the pinned page")
	}
}

func TestPromoteWalksContinuationPagesBackToHead(t *testing.T) {
	h := newTestHeap(t, 16)

	bytes := (wordsPerPage + 5) * int(wordSize)
	a := h.Allocate(bytes, 0)
	headPage := h.pageOf(uintptr(a) - wordSize)
	tailPage := h.pageOf(uintptr(a) + uintptr(wordsPerPage)*wordSize)
	if tailPage == headPage {
		t.Fatalf("test object did not actually span two pages")
	}

	h.nextSpace = nextSpaceNum(h.currentSpace)
	h.queueHead = 0

	h.promote(tailPage)

	if h.spaceOf(headPage) != h.nextSpace {
		t.Errorf("promote via a continuation page did not stamp the head page")
	}
	if h.queueHead != headPage {
		t.Errorf("promote enqueued %d, want the head page %d", h.queueHead, headPage)
	}
}

func TestScanRootsEvacuatesDeclaredGlobal(t *testing.T) {
	var root Addr
	h := newTestHeap(t, 8, &root)
	root = h.Allocate(int(wordSize), 0)
	h.setWord(uintptr(root), 99)

	h.nextSpace = nextSpaceNum(h.currentSpace)
	h.queueHead = 0
	h.scanRoots()
	h.currentSpace = h.nextSpace

	if root == 0 {
		t.Fatalf("scanRoots cleared the global instead of relocating it")
	}
	if got := h.word(uintptr(root)); got != 99 {
		t.Errorf("payload after scanRoots = %d, want 99", got)
	}
}

func TestStackBaseIsStable(t *testing.T) {
	a := StackBase()
	b := StackBase()
	// Both calls take the address of a local in adjacent stack frames at
	// the same call depth; they should land within a few words of one
	// another, not at wildly different addresses.
	diff := int64(a) - int64(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > 4096 {
		t.Errorf("two StackBase calls at the same depth differ by %d bytes", diff)
	}
}
