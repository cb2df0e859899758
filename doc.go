// Package tracego provides best-first path tracing through 3D scalar cost
// fields.
//
// A search walks a discretized volume along its 26-connected voxel graph,
// accumulating spacing-scaled traversal costs, and either traces the
// cheapest path between start and goal coordinates or floods the region
// reachable within a cost ceiling.
//
// # Quick Start
//
// Goal-directed tracing:
//
//	ctx := context.Background()
//	strategy, _ := cost.NewReciprocal(field, 255)
//	path, _ := tracego.Trace(ctx, tracego.Config{
//	    Width: 512, Height: 512, Depth: 64,
//	    Start: []tracego.Point{{X: 10, Y: 20, Z: 5}},
//	    Goal:  []tracego.Point{{X: 400, Y: 310, Z: 40}},
//	}, strategy)
//
// Cost-bounded flood fill:
//
//	fill, _ := tracego.FloodFill(ctx, tracego.Config{
//	    Width: 512, Height: 512, Depth: 64,
//	    Start:       []tracego.Point{{X: 10, Y: 20, Z: 5}},
//	    CostCeiling: 40,
//	}, strategy)
//
// # Search Modes
//
//	// 1. UNIDIRECTIONAL — A* from the start points.
//	//    Dijkstra when the strategy has no heuristic.
//	path, _ := tracego.Trace(ctx, cfg, strategy)
//
//	// 2. BIDIRECTIONAL — two frontiers, meeting in the middle.
//	//    Expands the smaller frontier each iteration.
//	cfg.Bidirectional = true
//	path, _ := tracego.Trace(ctx, cfg, strategy)
//
//	// 3. FLOOD FILL — no goal, bounded by Config.CostCeiling.
//	fill, _ := tracego.FloodFill(ctx, cfg, strategy)
//
// # Persistence
//
// Fill results can be snapshotted to any blob store:
//
//	store, _ := blobstore.NewLocalStore("./fills")
//	fill, _ := tracego.FloodFill(ctx, cfg, strategy,
//	    tracego.WithSnapshotStore(store, "run-42"))
//
// # Key Features
//
//   - A*/Dijkstra hybrid over anisotropic voxel grids
//   - Optional bidirectional search with frontier balancing
//   - Cost-bounded flood fill with compressed region snapshots
//   - Typed termination outcomes (timeout, cancellation, budget)
//   - Cloud-native snapshot storage (S3/MinIO via blobstore)
package tracego
