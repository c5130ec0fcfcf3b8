// Package rop defines Result[S, F], a value that is either a success carrying
// S or a failure carrying F.
//
// A Result is immutable: nothing in this module mutates one after it has been
// built, so values can be shared between goroutines freely. The operators that
// compose results live in package solo; package perhaps specialises F to Unit
// for the payload-less variant.
package rop
