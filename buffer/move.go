package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MovePage
	MoveHalfPage
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move applies m to cur and returns the new cursor. page is the number of
// visible text rows and sizes page and half-page jumps.
//
// The cursor may rest one line past the last row (end of document). The
// result always satisfies X <= RowLen(Y) and Y <= Len().
func (d *Document) Move(cur Pos, m Move, page int) Pos {
	page = max(page, 0)
	next := d.moveCursor(cur, m, page)

	next.Y = Clamp(next.Y, 0, d.Len())
	if w := d.RowLen(next.Y); next.X > w {
		next.X = w
	}
	if next.X < 0 {
		next.X = 0
	}
	return next
}

func (d *Document) moveCursor(p Pos, m Move, page int) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return d.moveGrapheme(p, m.Dir)
	case MoveLine:
		return d.moveLine(p, m.Dir)
	case MovePage:
		return d.movePage(p, m.Dir, page)
	case MoveHalfPage:
		return d.movePage(p, m.Dir, page/2)
	default:
		return p
	}
}

func (d *Document) moveGrapheme(p Pos, dir MoveDir) Pos {
	x, y := p.X, p.Y
	switch dir {
	case DirLeft:
		if x > 0 {
			return Pos{X: x - 1, Y: y}
		}
		if y > 0 {
			return Pos{X: d.RowLen(y - 1), Y: y - 1}
		}
		return p
	case DirRight:
		if x < d.RowLen(y) {
			return Pos{X: x + 1, Y: y}
		}
		if y < d.Len() {
			return Pos{X: 0, Y: y + 1}
		}
		return p
	default:
		return d.moveLine(p, dir)
	}
}

func (d *Document) moveLine(p Pos, dir MoveDir) Pos {
	x, y := p.X, p.Y
	switch dir {
	case DirUp:
		return Pos{X: x, Y: SatSub(y, 1)}
	case DirDown:
		return Pos{X: x, Y: min(SatAdd(y, 1), d.Len())}
	case DirHome:
		return Pos{X: 0, Y: y}
	case DirEnd:
		return Pos{X: d.RowLen(y), Y: y}
	default:
		return p
	}
}

func (d *Document) movePage(p Pos, dir MoveDir, rows int) Pos {
	switch dir {
	case DirUp:
		return Pos{X: p.X, Y: SatSub(p.Y, rows)}
	case DirDown:
		return Pos{X: p.X, Y: min(SatAdd(p.Y, rows), d.Len())}
	default:
		return p
	}
}
