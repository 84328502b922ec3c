package vector

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-s16/dsp/core"
	"github.com/cwbudde/algo-s16/internal/cpu"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

var (
	defaultEntry    *registry.OpEntry
	defaultInitOnce sync.Once
)

func initDefaultEntry() {
	entry, err := resolve(core.ImplementationAuto)
	if err != nil {
		panic(err)
	}
	defaultEntry = entry
}

func kernels() *registry.OpEntry {
	defaultInitOnce.Do(initDefaultEntry)
	return defaultEntry
}

// resolve finds the registry entry for name, or the best entry for the host
// when name is core.ImplementationAuto.
func resolve(name string) (*registry.OpEntry, error) {
	var entry *registry.OpEntry
	if name == core.ImplementationAuto {
		entry = registry.Global.Lookup(cpu.DetectFeatures())
		if entry == nil {
			panic("vector: no kernel implementation registered (missing generic fallback?)")
		}
	} else {
		entry = registry.Global.LookupName(name)
		if entry == nil {
			return nil, fmt.Errorf("vector: %q: %w", name, core.ErrUnknownImplementation)
		}
	}

	if !entry.Complete() {
		panic("vector: selected implementation " + entry.Name + " is missing operations")
	}
	return entry, nil
}

// Implementation returns the registry name of the kernels used by the
// package-level functions.
func Implementation() string {
	return kernels().Name
}
