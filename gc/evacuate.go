package gc

// move copies a precisely-known object to the new space and installs a
// forwarding pointer in its old header, or returns the existing
// forwarding/new-space handle if that has already happened. It is the
// only place objects are relocated; the conservative scan in roots.go
// never calls it directly (it pins pages instead), but the promotion
// sweep in collect.go calls it on every pointer slot of a pinned page's
// objects, and scanRoots calls it directly on each declared global.
func (h *Heap) move(addr Addr) Addr {
	if addr == 0 {
		return 0
	}

	p := h.pageOf(uintptr(addr))
	if h.spaceOf(p) == h.nextSpace {
		// Already in the new half, whether because it was promoted
		// (pinned) or because it is itself a fresh evacuation target.
		return addr
	}

	headerAddr := uintptr(addr) - wordSize
	hdr := header(h.word(headerAddr))
	if hdr.forwarded() {
		return hdr.forwardAddr()
	}

	words := hdr.words()
	newAddr := h.Allocate((words-1)*int(wordSize), 0)
	newHeaderAddr := uintptr(newAddr) - wordSize

	for i := 0; i < words; i++ {
		off := uintptr(i) * wordSize
		h.setWord(newHeaderAddr+off, h.word(headerAddr+off))
	}

	h.setWord(headerAddr, uintptr(newAddr))
	h.stats.recordEvacuation(words * int(wordSize))
	return newAddr
}
