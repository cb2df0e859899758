// Package engine implements the bidirectional best-first search core.
//
// The engine traces minimum-cost paths (or bounded cost-limited fills)
// through a discretized 3D scalar cost field. It is an A*/Dijkstra hybrid:
// with a defined goal and a non-zero heuristic it behaves as A*, with a zero
// heuristic it degenerates to Dijkstra, and without any goal it performs a
// uniform-cost flood fill bounded by a cost ceiling.
//
// # Architecture
//
//   - One or two Frontiers (start-side and, if bidirectional, goal-side),
//     each backed by an addressable pairing heap and a memory-sparse
//     per-slice spatial index.
//   - Search nodes live in a slab arena and are addressed by index;
//     predecessor links are arena indices, so path reconstruction never
//     follows a dangling reference.
//   - The cost model is injected as a cost.Strategy, which keeps the engine
//     testable against synthetic deterministic fields without any image
//     dependency.
//
// # Execution Model
//
// A search runs to completion on the calling goroutine; callers that want a
// dedicated worker run Run in their own goroutine. The engine is not
// internally parallelized: neighbor expansion is sequential per popped node,
// which keeps queue and index state consistent without locking. Multiple
// independent engines may run concurrently; they share only the read-only
// cost strategy.
//
// Cancellation is cooperative through context.Context and observed once per
// loop iteration. Timeouts and progress reports are checked on a coarse
// loop stride. All outcomes are reported as a typed ExitReason; no panic
// crosses the engine boundary under normal operation.
package engine
