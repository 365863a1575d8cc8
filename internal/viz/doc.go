// Package viz renders animation frames to the terminal.
//
// The package draws scene snapshots onto a Braille sub-pixel canvas and
// composes them with a sidebar legend using Lip Gloss:
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Renderer]: frames a scene into the canvas with a sidebar and time label
//   - [TrajectoryPlot]: ASCII trajectory plots of single atoms
//   - Theme selection with built-in color schemes for the player chrome
//
// Frame rendering is stateless with respect to time: the caller samples the
// animation and passes the resulting scene state.
package viz
