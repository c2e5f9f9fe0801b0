package gc

import "github.com/iansmith/mazgc/bitfield"

// classOf unpacks the PageClass stored for page p.
func (h *Heap) classOf(p pageIndex) bitfield.PageClass {
	return bitfield.UnpackPageClass(h.class[h.slot(p)])
}

// setClass packs and stores kind as page p's PageClass. Reserved bits are
// always written as zero; nothing in this collector uses them yet, but
// the field exists so a host can stash auxiliary per-page state (as the
// teacher kernel's PageFlags.Reserved did) without a format change.
func (h *Heap) setClass(p pageIndex, kind bitfield.Kind) {
	packed, err := bitfield.PackPageClass(bitfield.PageClass{Kind: uint8(kind)})
	if err != nil {
		// Packing a single 2-bit Kind constant can never overflow; a
		// failure here means the bitfield package itself is broken.
		panic("gc: unexpected page class packing failure: " + err.Error())
	}
	h.class[h.slot(p)] = packed
}

// kindOf is shorthand for classOf(p).Kind as a bitfield.Kind.
func (h *Heap) kindOf(p pageIndex) bitfield.Kind {
	return bitfield.Kind(h.classOf(p).Kind)
}

// spaceOf returns the space number stamped on page p.
func (h *Heap) spaceOf(p pageIndex) spaceNum {
	return h.space[h.slot(p)]
}

// setSpace stamps page p with space number s.
func (h *Heap) setSpace(p pageIndex, s spaceNum) {
	h.space[h.slot(p)] = s
}

// enqueue appends page p to the promotion queue.
func (h *Heap) enqueue(p pageIndex) {
	if h.queueHead == 0 {
		h.queueHead = p
	} else {
		h.link[h.slot(h.queueTail)] = p
	}
	h.link[h.slot(p)] = 0
	h.queueTail = p
}

// nextPage advances a page index, wrapping lastPage back to firstPage.
func (h *Heap) nextPage(p pageIndex) pageIndex {
	if p == h.lastPage {
		return h.firstPage
	}
	return p + 1
}
