package gc

import "testing"

func TestLoadStoreRoundTrip(t *testing.T) {
	h := newTestHeap(t, 4)
	a := h.Allocate(3*int(wordSize), 1)

	h.Store(a, 1, 0xabc)
	if got := h.Load(a, 1); got != 0xabc {
		t.Errorf("Load(a, 1) = %#x, want 0xabc", got)
	}

	child := h.Allocate(int(wordSize), 0)
	h.StorePointer(a, 0, child)
	if got := h.LoadPointer(a, 0); got != child {
		t.Errorf("LoadPointer(a, 0) = %#x, want %#x", got, child)
	}
}
