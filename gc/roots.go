package gc

import (
	"unsafe"

	"github.com/iansmith/mazgc/bitfield"
	"github.com/iansmith/mazgc/internal/spill"
)

// StackBase returns the address of a local variable in the caller's own
// frame, suitable as the stackBase argument to New. A host should call
// this once, early — at or near the top of the goroutine that will act
// as the mutator — so the recorded bound covers the whole window a
// later Collect might need to scan.
//
// Because the Go runtime can move and resize a growing goroutine stack,
// a host that wants the conservative scan to stay sound across many
// collections should give the mutator goroutine a stack large enough
// that it never needs to grow past the point StackBase was recorded
// (e.g. by touching deep recursion once upfront, or via
// runtime/debug.SetMaxStack combined with a pre-grown stack). This
// mirrors the "exact pointer identification within stack frames" and
// "objects relocating under undeclared external pointers" Non-goals:
// the collector is conservative by design, not a defense against a
// moving native stack.
func StackBase() uintptr {
	var probe int
	return uintptr(unsafe.Pointer(&probe))
}

// scanRoots implements spec.md §4.4: it spills registers, walks the
// stack window from the scanner's own frame up to the recorded
// stackBase treating every word as a tentative pointer, and evacuates
// the declared globals precisely.
func (h *Heap) scanRoots() {
	for _, r := range spill.Registers() {
		h.promote(h.pageOf(r))
	}

	var probe int
	sp := uintptr(unsafe.Pointer(&probe))
	lo, hi := sp, h.stackBase
	if lo > hi {
		lo, hi = hi, lo
	}

	for addr := lo; addr+uintptr(wordSize) <= hi; addr += uintptr(wordSize) {
		h.promote(h.pageOf(h.word(addr)))
	}

	for _, g := range h.globals {
		*g = h.move(*g)
	}
}

// promote conservatively pins page p in place for this cycle: p and (if
// p is a continuation page) every page back to its object's head page
// are stamped with nextSpace, and the head page is enqueued for the
// promotion sweep, without copying anything. Continuation pages that
// follow p are not stamped here. False positives (a word that merely looks
// like a heap address) waste a page; false negatives would be unsound,
// so every tentative pointer is honored.
func (h *Heap) promote(p pageIndex) {
	if !h.inRange(p) {
		return
	}
	if h.spaceOf(p) != h.currentSpace {
		return
	}

	for h.kindOf(p) == bitfield.KindContinued {
		h.setSpace(p, h.nextSpace)
		h.allocatedPages++
		p--
	}
	h.setSpace(p, h.nextSpace)
	h.allocatedPages++
	h.enqueue(p)
}
