// Package viewer provides the navigation core of skim and a Bubble Tea
// component on top of it.
//
// The package owns cursor and viewport state for a read-only
// buffer.Document, maps abstract key events onto navigation, and plans the
// content of every visible screen row. Terminal I/O lives elsewhere; hosts
// either embed Model in a Bubble Tea program or drive State from their own
// loop.
package viewer
