package cudart

import (
	"errors"
	"unsafe"
)

// ErrUnavailable is returned by operations that need libcudart in a build
// without the cuda tag.
var ErrUnavailable = errors.New("cuda runtime is not available in this build")

// Runtime is the subset of the CUDA runtime API the check set depends on.
type Runtime interface {
	ErrorString(st Status) string
	Free(ptr unsafe.Pointer) Status
	FreeHost(ptr unsafe.Pointer) Status
}

// tableRuntime answers ErrorString from the static table and has nothing to
// release against.
type tableRuntime struct{}

// Table returns a Runtime that needs no native library.
func Table() Runtime {
	return tableRuntime{}
}

func (tableRuntime) ErrorString(st Status) string {
	return Describe(st)
}

func (tableRuntime) Free(unsafe.Pointer) Status {
	return NoDevice
}

func (tableRuntime) FreeHost(unsafe.Pointer) Status {
	return NoDevice
}
