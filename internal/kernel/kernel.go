// Package kernel exposes the float64 block kernels used by the vector layer.
//
// The kernel set is selected once, on first use, from the registry according
// to the detected CPU features. Setting cpu.Features.ForceGeneric (through
// cpu.SetForcedFeatures) before first use pins the pure Go kernels.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-linalg/internal/kernel/accel"   // registers "vecmath"
	_ "github.com/cwbudde/algo-linalg/internal/kernel/generic" // registers "generic"
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

var (
	selected     *registry.OpEntry
	selectedOnce sync.Once
)

func impl() *registry.OpEntry {
	selectedOnce.Do(func() {
		entry := registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("kernel: no float64 kernel registered (missing generic fallback?)")
		}
		selected = entry
	})
	return selected
}

// Name reports the selected kernel set.
func Name() string {
	return impl().Name
}

// Entries lists every registered kernel set.
func Entries() []registry.OpEntry {
	return registry.Global.ListEntries()
}

// AddBlock performs dst[i] = a[i] + b[i]. Panics if lengths differ.
func AddBlock(dst, a, b []float64) { impl().AddBlock(dst, a, b) }

// SubBlock performs dst[i] = a[i] + (-b[i]). Panics if lengths differ.
func SubBlock(dst, a, b []float64) { impl().SubBlock(dst, a, b) }

// NegBlock performs dst[i] = -src[i]. Panics if lengths differ.
func NegBlock(dst, src []float64) { impl().NegBlock(dst, src) }

// MulBlock performs dst[i] = a[i] * b[i]. Panics if lengths differ.
func MulBlock(dst, a, b []float64) { impl().MulBlock(dst, a, b) }

// ScaleBlock performs dst[i] = src[i] * s. Panics if lengths differ.
func ScaleBlock(dst, src []float64, s float64) { impl().ScaleBlock(dst, src, s) }

// Dot returns sum(a[i] * b[i]). Panics if lengths differ.
func Dot(a, b []float64) float64 { return impl().Dot(a, b) }

// Sum returns sum(x[i]).
func Sum(x []float64) float64 { return impl().Sum(x) }
