package buffer

import "fmt"

// Pos points into the document by (column, line). Both are 0-based and never
// negative.
type Pos struct {
	X int
	Y int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Sub returns p - o component-wise, saturating at zero.
func (p Pos) Sub(o Pos) Pos {
	return Pos{X: SatSub(p.X, o.X), Y: SatSub(p.Y, o.Y)}
}

// SatSub returns a-b, or 0 when b >= a.
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// SatAdd returns a+b, clamped to the int range and never below zero.
func SatAdd(a, b int) int {
	s := a + b
	if b > 0 && s < a {
		return maxInt
	}
	if s < 0 {
		return 0
	}
	return s
}

const maxInt = int(^uint(0) >> 1)

// Clamp limits v to [lo, hi]. An empty range yields lo.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
