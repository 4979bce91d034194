// Package buffer implements the read-only document model for skim.
//
// Coordinates are 0-based (X, Y): X is a grapheme column within a line and Y
// is a line index. Arithmetic on positions saturates at zero.
package buffer
