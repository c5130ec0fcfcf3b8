// Package perhaps is the minimal variant of rop.Result: a failure carries no
// payload, so every failure is the same value. Operators from package solo
// apply to Perhaps unchanged.
package perhaps
