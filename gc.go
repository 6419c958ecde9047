package plume

import (
	"runtime"

	"go.uber.org/zap"
)

// GCModuleName is the import name of the collector module.
const GCModuleName = "gc"

// Collect runs the Go collector Config.CollectCycles times and returns the
// number of cycles run.
//
// Objects with no remaining strong handles are reclaimed by then, and weak
// references to them report None.
func (i *Interp) Collect() int {
	n := i.cfg.CollectCycles
	for c := 0; c < n; c++ {
		runtime.GC()
	}
	Logger().Debug("collection finished", zap.Int("cycles", n))
	return n
}

func gcModule(i *Interp) *Obj {
	return i.NewModule(GCModuleName, map[string]*Obj{
		"collect": i.NewFunc("collect", i.Collect),
	})
}
