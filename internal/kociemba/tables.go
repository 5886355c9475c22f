package kociemba

import "sync"

// tablesOnce guards lazy, one-shot construction of every move and pruning
// table (§5, concurrency model: process-wide immutable tables built once
// on first use and shared read-only by every subsequent Solve call,
// regardless of how many goroutines call it concurrently).
var tablesOnce sync.Once

func ensureTables() {
	tablesOnce.Do(func() {
		buildMoveEffects()
		buildTwistMove()
		buildFlipMove()
		buildSliceMove()
		buildCornerPermMove()
		buildUDEdgePermMove()
		buildSlicePermMove()
		buildPhase1PruneTables()
		buildPhase2PruneTables()
	})
}

// WarmTables forces construction of the move and pruning tables if they
// haven't been built yet. Solve calls ensureTables itself; this is for
// callers (the HTTP health check) that want to report readiness without
// running a solve.
func WarmTables() {
	ensureTables()
}
