package policy

import "sync/atomic"

// Runtime holds the latest policy that passed validation. The watch command
// swaps it on every successful reload; readers get lock-free access to the
// most recent valid policy even while an invalid edit sits on disk.
type Runtime struct {
	ptr atomic.Pointer[Config]
}

// NewRuntime creates a new Runtime with the given initial policy.
func NewRuntime(initial *Config) *Runtime {
	r := &Runtime{}
	r.ptr.Store(initial)
	return r
}

// Get returns the current policy atomically.
func (r *Runtime) Get() *Config {
	return r.ptr.Load()
}

// Store atomically replaces the policy. Readers holding the previous pointer
// keep a consistent snapshot; new readers see the replacement.
func (r *Runtime) Store(cfg *Config) {
	r.ptr.Store(cfg)
}
