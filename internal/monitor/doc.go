// Package monitor implements the liveness monitor: a poll loop that checks
// one endpoint on a coarse cadence and a render loop that repaints an
// animated status line on a fine cadence.
//
// # Architecture
//
// Both loops run as goroutines and meet only in State, a single record
// guarded by one mutex:
//
//	Poller    - 1s tick; runs a check once enough elapsed time has built up,
//	            records the result, resets the animation, notifies on up->down
//	Renderer  - 300ms tick; adds its period to the elapsed time, lights one
//	            more slot per 30s, repaints the line in place
//	Monitor   - startup check, goroutine lifecycle, shutdown join
//
// There is no channel between the loops. The poller never signals the
// renderer; it resets the fields the renderer derives its frame from, so the
// animation restarts in step with each poll.
//
// # Status Line
//
//	[2026-10-19 14:03:11] OK ┌─└─3 └┐┌┘
//
// The bar holds min(10, elapsed/30s) slots. Each slot steps through a
// four-symbol cycle, sometimes shows its own index instead, and gets a fresh
// pastel color on every frame.
package monitor
