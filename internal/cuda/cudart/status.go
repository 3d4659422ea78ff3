package cudart

import "strconv"

// Status is a cudaError_t value returned by a runtime call.
type Status int

// Success is the only status that does not indicate a failure.
const Success Status = 0

const (
	InvalidValue           Status = 1
	MemoryAllocation       Status = 2
	InitializationError    Status = 3
	CudartUnloading        Status = 4
	InsufficientDriver     Status = 35
	NoDevice               Status = 100
	InvalidDevice          Status = 101
	InvalidKernelImage     Status = 200
	NoKernelImageForDevice Status = 209
	InvalidResourceHandle  Status = 400
	NotFound               Status = 500
	NotReady               Status = 600
	IllegalAddress         Status = 700
	LaunchOutOfResources   Status = 701
	LaunchTimeout          Status = 702
	LaunchFailure          Status = 719
	Unknown                Status = 999
)

// unrecognized matches what cudaGetErrorString returns for codes it does not know.
const unrecognized = "unrecognized error code"

type statusInfo struct {
	name    string
	message string
}

var statusTable = map[Status]statusInfo{
	Success:                {"cudaSuccess", "no error"},
	InvalidValue:           {"cudaErrorInvalidValue", "invalid argument"},
	MemoryAllocation:       {"cudaErrorMemoryAllocation", "out of memory"},
	InitializationError:    {"cudaErrorInitializationError", "initialization error"},
	CudartUnloading:        {"cudaErrorCudartUnloading", "driver shutting down"},
	InsufficientDriver:     {"cudaErrorInsufficientDriver", "CUDA driver version is insufficient for CUDA runtime version"},
	NoDevice:               {"cudaErrorNoDevice", "no CUDA-capable device is detected"},
	InvalidDevice:          {"cudaErrorInvalidDevice", "invalid device ordinal"},
	InvalidKernelImage:     {"cudaErrorInvalidKernelImage", "device kernel image is invalid"},
	NoKernelImageForDevice: {"cudaErrorNoKernelImageForDevice", "no kernel image is available for execution on the device"},
	InvalidResourceHandle:  {"cudaErrorInvalidResourceHandle", "invalid resource handle"},
	NotFound:               {"cudaErrorNotFound", "named symbol not found"},
	NotReady:               {"cudaErrorNotReady", "device not ready"},
	IllegalAddress:         {"cudaErrorIllegalAddress", "an illegal memory access was encountered"},
	LaunchOutOfResources:   {"cudaErrorLaunchOutOfResources", "too many resources requested for launch"},
	LaunchTimeout:          {"cudaErrorLaunchTimeout", "the launch timed out and was terminated"},
	LaunchFailure:          {"cudaErrorLaunchFailure", "unspecified launch failure"},
	Unknown:                {"cudaErrorUnknown", "unknown error"},
}

// OK reports whether s is Success.
func (s Status) OK() bool {
	return s == Success
}

// Name returns the runtime's identifier for s, or "cudaError(<n>)" when s is
// not one of the named codes.
func (s Status) Name() string {
	if info, ok := statusTable[s]; ok {
		return info.name
	}
	return "cudaError(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) String() string {
	return s.Name()
}

// Describe returns the human-readable message libcudart reports for s without
// calling into the runtime.
func Describe(s Status) string {
	if info, ok := statusTable[s]; ok {
		return info.message
	}
	return unrecognized
}

// Known reports whether s is one of the named codes.
func Known(s Status) bool {
	_, ok := statusTable[s]
	return ok
}
