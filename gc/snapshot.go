package gc

import "github.com/iansmith/mazgc/bitfield"

// PageSnapshot reports one page's role and generation tag at the moment
// Snapshot was taken. It exists purely for external diagnostics (see
// cmd/heapviz); nothing in the collector itself consumes it.
type PageSnapshot struct {
	Kind  bitfield.Kind
	Space uint16
}

// Snapshot returns a point-in-time copy of every page's class and space
// number, in page order starting at the heap's first page. It is safe
// to call between mutator operations but not concurrently with them —
// this collector has no internal locking, matching its single-threaded,
// stop-the-world design.
func (h *Heap) Snapshot() []PageSnapshot {
	out := make([]PageSnapshot, h.numPages)
	for i := 0; i < h.numPages; i++ {
		p := h.firstPage + pageIndex(i)
		out[i] = PageSnapshot{
			Kind:  h.kindOf(p),
			Space: uint16(h.spaceOf(p)),
		}
	}
	return out
}
