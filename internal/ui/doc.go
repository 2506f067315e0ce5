// Package ui provides the terminal interface for dtexplorer.
//
// The interface is a Bubble Tea program. The left pane is a form with one
// row per input: the locale, its -u-nu/-u-ca/-u-hc extension keywords,
// every formatter option, and the date and time of the moment being
// formatted. The right pane shows the formatted string (or the error the
// formatter raised), the resolved options and the JavaScript snippet that
// reproduces the result.
//
// Every edit is a state.Action dispatched to the state.Store. After each
// dispatch the model takes a fresh snapshot and asks its derive.Pipeline
// for output, so a frame never shows text from older inputs.
//
// # Key Bindings
//
//   - j/k, g/G: Move between rows
//   - enter: Pick a value (or edit the date and time)
//   - x: Clear the row
//   - +/-: Next/previous value, or move the moment by a day or an hour
//   - r, u, n: Reset, undo, set the moment to now
//   - c: Copy the snippet to the clipboard
//   - s, T: Toggle the snippet pane, cycle the theme
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
