//go:build cuda

package cudart

/*
#cgo LDFLAGS: -lcudart

// Forward declarations so the CUDA headers are not required at compile time.
// The linker still needs libcudart when building with the cuda tag.
typedef int cudaError_t;

extern const char* cudaGetErrorString(cudaError_t err);
extern cudaError_t cudaGetDeviceCount(int* count);
extern cudaError_t cudaMalloc(void** ptr, unsigned long long size);
extern cudaError_t cudaFree(void* ptr);
extern cudaError_t cudaMallocHost(void** ptr, unsigned long long size);
extern cudaError_t cudaFreeHost(void* ptr);

static const char* gpucheckErrorString(int err) {
	return cudaGetErrorString((cudaError_t)err);
}

static int gpucheckDeviceCount(int* out) {
	return (int)cudaGetDeviceCount(out);
}

static int gpucheckMalloc(void** ptr, unsigned long long size) {
	return (int)cudaMalloc(ptr, size);
}

static int gpucheckFree(void* ptr) {
	return (int)cudaFree(ptr);
}

static int gpucheckMallocHost(void** ptr, unsigned long long size) {
	return (int)cudaMallocHost(ptr, size);
}

static int gpucheckFreeHost(void* ptr) {
	return (int)cudaFreeHost(ptr);
}
*/
import "C"

import "unsafe"

type nativeRuntime struct{}

// Native returns the libcudart-backed Runtime.
func Native() Runtime {
	return nativeRuntime{}
}

// Available reports whether this build links libcudart.
func Available() bool {
	return true
}

func (nativeRuntime) ErrorString(st Status) string {
	return C.GoString(C.gpucheckErrorString(C.int(st)))
}

func (nativeRuntime) Free(ptr unsafe.Pointer) Status {
	return Status(C.gpucheckFree(ptr))
}

func (nativeRuntime) FreeHost(ptr unsafe.Pointer) Status {
	return Status(C.gpucheckFreeHost(ptr))
}

// DeviceCount stores the number of visible devices in out.
func DeviceCount(out *int) Status {
	var count C.int
	st := Status(C.gpucheckDeviceCount(&count))
	if st.OK() {
		*out = int(count)
	}
	return st
}

// AllocDevice allocates bytes of device memory and stores the pointer in out.
func AllocDevice(out *unsafe.Pointer, bytes int64) Status {
	if bytes <= 0 {
		return InvalidValue
	}
	return Status(C.gpucheckMalloc(out, C.ulonglong(bytes)))
}

// AllocHost allocates bytes of pinned host memory and stores the pointer in out.
func AllocHost(out *unsafe.Pointer, bytes int64) Status {
	if bytes <= 0 {
		return InvalidValue
	}
	return Status(C.gpucheckMallocHost(out, C.ulonglong(bytes)))
}
