//go:build amd64

package spill

// count is the number of general-purpose registers spill_amd64.s
// flushes: AX, BX, CX, DX, SI, DI, BP, and R8-R15.
const count = 15

// spill is implemented in spill_amd64.s.
func spill(buf *[maxRegs]uintptr)
