// Package viz renders runs in the terminal.
//
//   - [Canvas]: Braille pixel canvas for phase-space traces
//   - [PlotSeries]: line charts of recorded components via asciigraph
//   - [Summary]: lipgloss table of run metrics
//   - [Live]: Bubble Tea view that steps a run on demand
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial state
//	+/-   - More or fewer steps per frame
//	Tab   - Cycle the projected components
//	T     - Cycle color themes
//	Q     - Quit
package viz
