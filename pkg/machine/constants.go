package machine

// DefaultMaxSteps is the step bound applied when a definition or caller does
// not provide one. A run that applies this many transitions without halting
// is abandoned with VerdictStepLimitExceeded.
const DefaultMaxSteps = 500
