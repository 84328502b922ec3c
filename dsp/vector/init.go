package vector

// This file imports kernel implementation packages to trigger their init()
// functions, which register implementations with the global registry.

import (
	// Scalar implementations (always available)
	_ "github.com/cwbudde/algo-s16/internal/kernels/generic"

	// Packed implementations (registered unless built with purego)
	_ "github.com/cwbudde/algo-s16/internal/kernels/packed"
)
