// Package chain provides a fluent wrapper around rop.Result for writing
// left-to-right pipelines.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Chain.Then/Chain.Map/Chain.MapError: same-typed steps
// - Then/Map: steps that change the success type
// - Chain.Ensure: run side effects without changing the result
// - Chain.Or: fall back to alternatives
// - Finally: collapse the chain into a final value via handlers
package chain
