package ga

// White-box bridge: private kernels exposed to package ga_test only.
var (
	ExportedRandomUnvisited = randomUnvisited
	ExportedSwapTwo         = swapTwo[int]
	ExportedForChunks       = forChunks
	ExportedDeriveSeed      = deriveSeed
)
