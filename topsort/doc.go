// Package topsort orders observed equations for sequential
// evaluation.
//
// After elimination, every observed equation defines exactly one
// variable in terms of others. Sort builds the dependency graph —
// equation i depends on equation j when i's right-hand side references
// the variable j defines — and runs Kahn's algorithm over it:
// repeatedly emit an equation with no unmet dependencies and release
// its dependents.
//
// References to variables no equation defines are ignored; they are
// external inputs and impose no ordering.
//
// The queue is strictly FIFO and seeded in original equation order, so
// the result is deterministic and ties resolve to the input order.
// With checking enabled (the default), a residual dependency after the
// queue drains means the definitions are mutually recursive and Sort
// fails with ErrCycleDetected; WithCheck(false) instead yields the
// best-effort partial order, which is unsafe for evaluation and meant
// for diagnostic tooling only.
package topsort
