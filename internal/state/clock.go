package state

import "sync/atomic"

// Revision is a monotonically increasing edit counter. Readers on other
// goroutines may poll it; only the owner of the list advances it.
type Revision struct {
	n atomic.Uint64
}

// Tick advances the counter and returns the new value.
func (r *Revision) Tick() uint64 {
	return r.n.Add(1)
}

// Load returns the current value.
func (r *Revision) Load() uint64 {
	return r.n.Load()
}
