// Package lite runs result-returning steps over channels of results with a
// fixed number of worker lines. It is the concurrent counterpart of solo:
// every step here is a solo operator lifted to take a context.
//
// Common usage:
// - Run/Turnout: execute a step over an input channel with N lines
// - Bind/Map/Try/Validate: build steps from plain functions
// - Then: compose two steps into one
// - Finally: reduce each result to a plain value
//
// Lines come from the argument, or from core.WithWorkerOptions when it is
// not positive. A rate limit set with core.WithRateLimit is shared by all
// lines.
package lite
