// Package registry provides the implementation registry for float64 block kernels.
//
// Several kernel sets (pure Go, algo-vecmath backed) can coexist. The best set
// for the current CPU is selected at runtime. Kernel packages register
// themselves from init() functions; the kernel package performs the lookup.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered float64 kernel set.
//
// All function fields must be populated: the vector layer relies on every
// operation being available once an entry is selected.
type OpEntry struct {
	// Name is a human-readable identifier for this kernel set (e.g., "generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Accelerated marks entries that are skipped when Features.ForceGeneric is set.
	Accelerated bool

	// Priority determines selection order when multiple compatible entries exist.
	// Higher priority entries are preferred.
	Priority int

	// AddBlock performs dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []float64)

	// SubBlock performs dst[i] = a[i] + (-b[i]).
	SubBlock func(dst, a, b []float64)

	// NegBlock performs dst[i] = -src[i].
	NegBlock func(dst, src []float64)

	// MulBlock performs dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []float64)

	// ScaleBlock performs dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// Dot returns sum(a[i] * b[i]).
	Dot func(a, b []float64) float64

	// Sum returns sum(x[i]).
	Sum func(x []float64) float64
}

// OpRegistry stores the available kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry used by the kernel package.
var Global = &OpRegistry{}

// Register adds a kernel set to the registry.
//
// Safe to call concurrently, but all registrations should complete before
// the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// when nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if features.ForceGeneric && entry.Accelerated {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort keeps equal priorities in registration order.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries in registration or
// priority order, depending on whether Lookup has run.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// Intended for tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
