package gc

import (
	"testing"

	"github.com/iansmith/mazgc/bitfield"
)

func TestClassRoundTrip(t *testing.T) {
	h := newTestHeap(t, 4)
	p := h.firstPage

	h.setClass(p, bitfield.KindObject)
	if got := h.kindOf(p); got != bitfield.KindObject {
		t.Errorf("kindOf = %v, want KindObject", got)
	}

	h.setClass(p, bitfield.KindContinued)
	if got := h.kindOf(p); got != bitfield.KindContinued {
		t.Errorf("kindOf = %v, want KindContinued", got)
	}
}

func TestSpaceRoundTrip(t *testing.T) {
	h := newTestHeap(t, 4)
	p := h.firstPage + 1

	h.setSpace(p, 7)
	if got := h.spaceOf(p); got != 7 {
		t.Errorf("spaceOf = %d, want 7", got)
	}
}

func TestEnqueueFIFOOrder(t *testing.T) {
	h := newTestHeap(t, 4)

	a, b, c := h.firstPage, h.firstPage+1, h.firstPage+2
	h.queueHead, h.queueTail = 0, 0
	h.enqueue(a)
	h.enqueue(b)
	h.enqueue(c)

	order := []pageIndex{}
	for p := h.queueHead; p != 0; p = h.link[h.slot(p)] {
		order = append(order, p)
	}

	want := []pageIndex{a, b, c}
	if len(order) != len(want) {
		t.Fatalf("queue length = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("queue[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestNextPageWrapsAtLastPage(t *testing.T) {
	h := newTestHeap(t, 4)

	if got := h.nextPage(h.lastPage); got != h.firstPage {
		t.Errorf("nextPage(lastPage) = %d, want firstPage %d", got, h.firstPage)
	}
	if got := h.nextPage(h.firstPage); got != h.firstPage+1 {
		t.Errorf("nextPage(firstPage) = %d, want firstPage+1", got)
	}
}
