// Package core contains pipeline plumbing: channel helpers, worker and rate
// options carried in a context, cancellation handlers, and the locomotive that
// drives a step over a channel of results. It holds no business logic; package
// lite builds on it.
package core
