//go:build !cuda

package cudart

import "unsafe"

// Native returns the table-backed Runtime; this build does not link libcudart.
func Native() Runtime {
	return tableRuntime{}
}

// Available reports whether this build links libcudart.
func Available() bool {
	return false
}

// DeviceCount stores the number of visible devices in out. Without libcudart
// it is always 0 and the status is NoDevice.
func DeviceCount(out *int) Status {
	*out = 0
	return NoDevice
}

// AllocDevice allocates bytes of device memory and stores the pointer in out.
// Without libcudart it reports NoDevice and leaves out unchanged.
func AllocDevice(out *unsafe.Pointer, bytes int64) Status {
	return NoDevice
}

// AllocHost allocates bytes of pinned host memory and stores the pointer in out.
// Without libcudart it reports NoDevice and leaves out unchanged.
func AllocHost(out *unsafe.Pointer, bytes int64) Status {
	return NoDevice
}
