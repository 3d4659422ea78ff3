package check

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
)

func block() unsafe.Pointer {
	return unsafe.Pointer(new([16]byte))
}

func TestReleaseNilPointerIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness()
	var p unsafe.Pointer

	h.chk.MustFreeDevice(&p)
	h.chk.MustFreeHost(&p)
	h.chk.RaiseFreeDevice(&p)
	h.chk.RaiseFreeHost(&p)
	if err := h.chk.FreeDevice(&p); err != nil {
		t.Fatalf("FreeDevice: %v", err)
	}
	if err := h.chk.FreeHost(&p); err != nil {
		t.Fatalf("FreeHost: %v", err)
	}
	if err := h.chk.FreeDevice(nil); err != nil {
		t.Fatalf("FreeDevice(nil): %v", err)
	}

	if len(h.rt.freed) != 0 || len(h.rt.freedHost) != 0 {
		t.Fatalf("runtime was called: freed=%d freedHost=%d", len(h.rt.freed), len(h.rt.freedHost))
	}
	if h.buf.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", h.buf.String())
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    bool
		release func(c *Checker, p *unsafe.Pointer)
	}{
		{"MustFreeDevice", false, func(c *Checker, p *unsafe.Pointer) { c.MustFreeDevice(p) }},
		{"MustFreeHost", true, func(c *Checker, p *unsafe.Pointer) { c.MustFreeHost(p) }},
		{"FreeDevice", false, func(c *Checker, p *unsafe.Pointer) { _ = c.FreeDevice(p) }},
		{"FreeHost", true, func(c *Checker, p *unsafe.Pointer) { _ = c.FreeHost(p) }},
		{"RaiseFreeDevice", false, func(c *Checker, p *unsafe.Pointer) { c.RaiseFreeDevice(p) }},
		{"RaiseFreeHost", true, func(c *Checker, p *unsafe.Pointer) { c.RaiseFreeHost(p) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness()
			ptr := block()
			p := ptr
			tc.release(h.chk, &p)
			if p != nil {
				t.Fatal("pointer should be nil after release")
			}
			tc.release(h.chk, &p)

			calls := h.rt.freed
			other := h.rt.freedHost
			if tc.host {
				calls, other = other, calls
			}
			if len(calls) != 1 || calls[0] != ptr {
				t.Fatalf("expected exactly one release of the pointer, got %v", calls)
			}
			if len(other) != 0 {
				t.Fatalf("wrong release call used: %v", other)
			}
		})
	}
}

func TestMustFreeDeviceFailureExits(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.rt.freeStatus = cudart.IllegalAddress
	p := block()
	expectExit(t, ExitCode, func() { h.chk.MustFreeDevice(&p) })
	if p == nil {
		t.Fatal("pointer should not be cleared when the process is terminating")
	}
	h.expectOneDiagnostic(t, cudart.IllegalAddress, "cudaFree")
}

func TestFreeHostFailureKeepsPointer(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.rt.freeHostStatus = cudart.InvalidValue
	p := block()
	err := h.chk.FreeHost(&p)
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("expected runtime error, got %v", err)
	}
	if p == nil {
		t.Fatal("pointer should be kept after a failed release")
	}
	h.expectOneDiagnostic(t, cudart.InvalidValue, "cudaFreeHost")

	h.rt.freeHostStatus = cudart.Success
	if err := h.chk.FreeHost(&p); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if p != nil {
		t.Fatal("pointer should be nil after a successful retry")
	}
}

func TestRaiseFreeDeviceClearsPointerOnFailure(t *testing.T) {
	t.Parallel()

	h := newHarness()
	h.rt.freeStatus = cudart.InvalidResourceHandle
	p := block()
	err := func() (err error) {
		defer Recover(&err)
		h.chk.RaiseFreeDevice(&p)
		return nil
	}()
	if err == nil {
		t.Fatal("expected raise")
	}
	if got, want := err.Error(), h.rt.ErrorString(cudart.InvalidResourceHandle); got != want {
		t.Fatalf("raised message: got %q want %q", got, want)
	}
	if p != nil {
		t.Fatal("pointer should be nil after a raised release")
	}
	h.expectOneDiagnostic(t, cudart.InvalidResourceHandle, "cudaFree")

	h.chk.RaiseFreeDevice(&p)
	if len(h.rt.freed) != 1 {
		t.Fatalf("second release should be a no-op, got %d calls", len(h.rt.freed))
	}
}
