package generic

import (
	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		AddBlock:   AddBlock,
		SubBlock:   SubBlock,
		NegBlock:   NegBlock,
		MulBlock:   MulBlock,
		ScaleBlock: ScaleBlock,
		Dot:        Dot,
		Sum:        Sum,
	})
}
