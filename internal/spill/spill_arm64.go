//go:build arm64

package spill

// count is the number of general-purpose registers spill_arm64.s
// flushes: R0-R17 and R19-R26.
const count = 26

// spill is implemented in spill_arm64.s.
func spill(buf *[maxRegs]uintptr)
