// Package dashboard implements the terminal monitoring UI.
//
// Monitor is a bubbletea model that polls a project's unresolved issues on
// a fixed interval and renders the ten busiest as a selectable table.
// Opening an issue swaps in a Viewer, a scrollable detail pane backed by a
// bubbles viewport. Both models keep their Update logic free of terminal
// I/O so they can be driven directly in tests.
//
// The dashboard only reads: it never mutates the local store while
// running. Project resolution and caching happen in the command layer
// before the monitor starts.
package dashboard
