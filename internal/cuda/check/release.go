package check

import "unsafe"

// Release helpers take the address of the pointer being released. A nil
// pointer makes no runtime call, and a released pointer is set to nil, so
// releasing twice is always safe.

// MustFreeDevice releases device memory, exiting on failure.
func (c *Checker) MustFreeDevice(p *unsafe.Pointer) {
	if p == nil || *p == nil {
		return
	}
	c.must(c.rt.Free(*p), "cudaFree", 2)
	*p = nil
}

// MustFreeHost releases pinned host memory, exiting on failure.
func (c *Checker) MustFreeHost(p *unsafe.Pointer) {
	if p == nil || *p == nil {
		return
	}
	c.must(c.rt.FreeHost(*p), "cudaFreeHost", 2)
	*p = nil
}

// FreeDevice releases device memory. *p keeps its value when the release fails.
func (c *Checker) FreeDevice(p *unsafe.Pointer) error {
	if p == nil || *p == nil {
		return nil
	}
	if err := c.check(c.rt.Free(*p), "cudaFree", 2); err != nil {
		return err
	}
	*p = nil
	return nil
}

// FreeHost releases pinned host memory. *p keeps its value when the release fails.
func (c *Checker) FreeHost(p *unsafe.Pointer) error {
	if p == nil || *p == nil {
		return nil
	}
	if err := c.check(c.rt.FreeHost(*p), "cudaFreeHost", 2); err != nil {
		return err
	}
	*p = nil
	return nil
}

// RaiseFreeDevice releases device memory, panicking with an *Error on
// failure. *p is nil afterwards either way.
func (c *Checker) RaiseFreeDevice(p *unsafe.Pointer) {
	if p == nil || *p == nil {
		return
	}
	defer func() { *p = nil }()
	c.raise(c.rt.Free(*p), "cudaFree", 2)
}

// RaiseFreeHost releases pinned host memory, panicking with an *Error on
// failure. *p is nil afterwards either way.
func (c *Checker) RaiseFreeHost(p *unsafe.Pointer) {
	if p == nil || *p == nil {
		return
	}
	defer func() { *p = nil }()
	c.raise(c.rt.FreeHost(*p), "cudaFreeHost", 2)
}
