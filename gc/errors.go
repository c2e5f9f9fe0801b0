package gc

import (
	"fmt"
	"log"
)

// FatalError reports one of the collector's three unrecoverable
// conditions: heap exhaustion, recursive collection, or a header field
// overflow. All of the collector's errors are fatal by design — there is
// no partially-corrupted-heap recovery path — so these are raised with
// panic rather than returned, after a one-line diagnostic is logged.
// Callers that recover a *FatalError are explicitly opting out of that
// guarantee and must not continue to use the Heap that raised it.
type FatalError struct {
	Kind    string // "exhaustion", "recursive-collect", or "header-overflow"
	Message string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("gc: %s: %s", e.Kind, e.Message)
}

func (h *Heap) logf(format string, args ...any) {
	if h != nil && h.Logger != nil {
		h.Logger.Printf(format, args...)
		return
	}
}

// raiseExhaustion reports failure to find N contiguous free pages.
func (h *Heap) raiseExhaustion(pages, heapPages int) {
	err := &FatalError{
		Kind:    "exhaustion",
		Message: fmt.Sprintf("unable to allocate %d pages in a %d page heap", pages, heapPages),
	}
	h.logf("%s", err.Error())
	panic(err)
}

// raiseRecursiveCollect reports collect() entered while a cycle is
// already running.
func (h *Heap) raiseRecursiveCollect() {
	err := &FatalError{
		Kind:    "recursive-collect",
		Message: "collect called while a collection is already in progress",
	}
	h.logf("%s", err.Error())
	panic(err)
}

// raiseHeaderOverflow reports an object size or pointer count that does
// not fit in the header's encoding capacity. It has no Heap receiver
// because it fires before or independent of any particular heap's
// lifetime (e.g. while validating a New() argument).
func raiseHeaderOverflow(format string, args ...any) {
	err := &FatalError{
		Kind:    "header-overflow",
		Message: fmt.Sprintf(format, args...),
	}
	log.Printf("%s", err.Error())
	panic(err)
}
