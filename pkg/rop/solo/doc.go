// Package solo contains the single-value operators over rop.Result. They are
// pure and synchronous; none of them blocks or keeps state.
//
// Highlights:
// - Pure/Map/Bind/Flatten: functor and monad operations
// - MapError/Bimap: act on the failure branch
// - Apply/Lift2/Combine: combine several results
// - Kleisli/Compose: build pipelines out of result-returning steps
// - Attempt/AttemptWith/Try/FromPair: adapt error-returning or panicking code
// - Predicate/Should: adapt boolean checks
// - Fold/FoldR/Tee/DoubleTee: consume a result or observe it
// - Partition/Sequence/Traverse: work over slices of results
package solo
