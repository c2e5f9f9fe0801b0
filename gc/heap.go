// Package gc implements a variant of Bartlett's mostly-copying garbage
// collector: a page-based, two-space, conservative-stack / precise-heap
// collector for clients that have no native memory reclamation of their
// own. Roots whose precise type is unknown (the mutator's stack and
// registers) are handled conservatively — the pages they appear to
// reference are pinned in place, never copied. Roots whose type is known
// precisely (declared globals, and anything already reached through a
// typed object header) are evacuated by copying into the new space.
package gc

import (
	"log"
	"unsafe"
)

// wordSize is the machine's natural word size in bytes. Every heap word,
// including the object header word, is this wide.
const wordSize = unsafe.Sizeof(uintptr(0))

// PageSize is the number of bytes per heap page. 512 is the reference
// value named in the collector's specification; it is a build-time
// constant rather than a per-Heap option because the page-class and
// header bit widths are chosen around it.
const PageSize = 512

// wordsPerPage is the number of words that fit in one page.
const wordsPerPage = PageSize / int(wordSize)

// Addr is a handle to the first user word of a heap object, or to a
// global root cell holding such a handle. The zero Addr is the null
// handle. Addr is an absolute address into the Heap's backing buffer,
// not an offset, so that ordinary Go pointer arithmetic idioms
// (subtracting 1 word to reach the header) apply directly.
type Addr uintptr

// pageIndex is an index into the heap's page arrays, numbered starting
// at firstPage (not zero) — see pagemap.go.
type pageIndex int

// spaceNum is a generation tag stamped on pages. Zero means "never
// allocated"; the live range is [1, spaceMax].
type spaceNum uint16

const spaceMax spaceNum = 0x7FFF // 15-bit domain named in the spec

// nextSpaceNum advances a space number, skipping the zero sentinel so a
// wrapped generation counter can never collide with "never allocated".
func nextSpaceNum(s spaceNum) spaceNum {
	if s >= spaceMax {
		return 1
	}
	return s + 1
}

// Heap is an instance of the collector. All of a Heap's state — the
// backing buffer, the three page arrays, the space counters, and the
// declared globals — is owned by the Heap; nothing outside this package
// may mutate it. A Heap is not safe for concurrent use: spec.md and
// SPEC_FULL.md both specify a single-threaded, stop-the-world mutator.
type Heap struct {
	mem  []byte  // the raw heap buffer, one page longer than the heap
	base uintptr // page-aligned address inside mem where the first page starts

	firstPage pageIndex
	lastPage  pageIndex
	numPages  int

	space []spaceNum       // per-page space number, offset-indexed from firstPage
	link  []pageIndex      // per-page promotion-queue link, 0 sentinel = end
	class []uint32         // per-page packed bitfield.PageClass

	freePageCursor pageIndex
	allocatedPages int

	currentSpace spaceNum
	nextSpace    spaceNum

	bumpPage  pageIndex // not written by the allocator; stays zero
	freeWords int       // words left in the current allocation run
	freeWord  int       // address of the next free word in the current allocation run

	queueHead pageIndex
	queueTail pageIndex

	stackBase uintptr
	globals   []*Addr

	stats stats

	// Logger receives the one-line diagnostic that precedes an
	// exhaustion or recursive-collect panic. Header-overflow diagnostics
	// go to the standard log package instead. Defaults to log.Default();
	// tests may substitute their own to keep output quiet.
	Logger *log.Logger
}

// New constructs a heap of heapBytes bytes, rounded up to a whole number
// of pages, and records stackBase as the upper bound of the conservative
// stack scan window. globals is the list of addresses at which the
// client stores root pointers; the collector may read and overwrite the
// words at those addresses. New must be called exactly once before any
// call to Allocate.
func New(heapBytes int, stackBase uintptr, globals ...*Addr) *Heap {
	if heapBytes <= 0 {
		raiseHeaderOverflow("heap size must be positive, got %d bytes", heapBytes)
	}

	numPages := (heapBytes + PageSize - 1) / PageSize
	// Over-allocate by one page so we can page-align the backing slice
	// without depending on the allocator's own alignment guarantees —
	// the byte-buffer-with-explicit-unsafe-boundaries idiom the redesign
	// notes call for in place of the original's raw pointer arithmetic.
	raw := make([]byte, numPages*PageSize+PageSize)
	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + uintptr(PageSize) - 1) &^ (uintptr(PageSize) - 1)
	offset := aligned - base

	h := &Heap{
		mem:       raw,
		base:      aligned,
		firstPage: pageIndex(aligned / uintptr(PageSize)),
		numPages:  numPages,
		space:     make([]spaceNum, numPages),
		link:      make([]pageIndex, numPages),
		class:     make([]uint32, numPages),
		stackBase: stackBase,
		Logger:    log.Default(),
	}
	h.lastPage = h.firstPage + pageIndex(numPages) - 1
	h.freePageCursor = h.firstPage
	h.currentSpace = 1
	h.nextSpace = 1
	_ = offset // retained for documentation: aligned = &raw[offset]

	for _, g := range globals {
		h.globals = append(h.globals, g)
		*g = 0
	}

	return h
}

// pageBase returns the address of the first byte of page p.
func (h *Heap) pageBase(p pageIndex) uintptr {
	return uintptr(p) * uintptr(PageSize)
}

// pageOf returns the page index containing the given address.
func (h *Heap) pageOf(addr uintptr) pageIndex {
	return pageIndex(addr / uintptr(PageSize))
}

// slot returns the array offset for page p's per-page metadata.
func (h *Heap) slot(p pageIndex) int {
	return int(p - h.firstPage)
}

// inRange reports whether p is a page that belongs to this heap.
func (h *Heap) inRange(p pageIndex) bool {
	return p >= h.firstPage && p <= h.lastPage
}

// word reads the heap word whose address is addr.
func (h *Heap) word(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

// setWord writes v to the heap word whose address is addr.
func (h *Heap) setWord(addr uintptr, v uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = v
}
