// Package chain provides a lazy composition chain over a fixed
// starting value.
//
// Each With call extends the accumulated function by left-to-right
// composition without evaluating anything; the terminal Calculate call
// applies the composed function to the starting value. Dropping a step
// means not chaining its With call, there is no remove operation.
//
// Key operations:
// - From: begin a chain from a value (nil fails with fluent.ErrInvalidArgument)
// - With/WithTry: compose a pure or error-returning step
// - Tee: compose a deferred side effect without changing the value
// - Calculate: apply the accumulated function and return the result
// - Compose/ComposeTry: fold an ordered step list into one step
package chain
