// Package sim orchestrates wave simulation runs.
//
//   - [Driver]: owns the field buffers and runs the per-step pipeline
//   - [Snapshot]: read-only field copy published after each step
//   - [Observer], [Metric]: per-step consumers attached to a driver
//   - [FramePublisher]: bounded async frame queue that drops when slow
//
// # Thread Safety
//
// A Driver is not thread-safe; exactly one goroutine steps it. Renderers
// receive immutable snapshot copies, so a slow or concurrent consumer can
// never perturb the numerics.
package sim
