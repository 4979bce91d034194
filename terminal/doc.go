// Package terminal drives a viewer.State from a raw terminal.
//
// Run is a single-threaded loop: it samples the terminal size, redraws the
// whole screen, then blocks on the next key. Two backends implement the
// Driver and KeySource boundary: ANSI writes escape sequences to a raw-mode
// tty, Tcell renders through a tcell screen.
package terminal
