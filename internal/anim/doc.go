// Package anim owns the animation state of the table and turns it into
// per-cell view records.
//
// A [Controller] holds the dataset, the expanded grid and the [State]
// (tick counter, colour mode, series visibility). Callers advance it with
// [Controller.Step] from a single loop, either a Bubble Tea tick or
// [Controller.Run], and hand the resulting [CellView] slice to a renderer.
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. All mutation happens from the
// one loop that drives it.
package anim
