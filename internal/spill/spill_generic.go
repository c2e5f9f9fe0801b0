//go:build !amd64 && !arm64

package spill

// count is zero on architectures without a spill routine: there are no
// meaningful slots in buf for Registers to return.
const count = 0

// spill is a documented no-op on unsupported architectures. A mutator
// reference living only in a register and never spilled to the stack
// is invisible to the conservative scan on these platforms; spec.md's
// Non-goals already exclude exact pointer identification and guaranteed
// relocation, but this goes further and means register-only roots can
// be missed entirely. Add a spill_<GOARCH>.s file to close the gap for
// a given architecture.
func spill(buf *[maxRegs]uintptr) {}
