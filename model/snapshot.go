package model

import "strings"

const (
	snapshotAlive = '#'
	snapshotDead  = '.'
)

// Snapshot is an immutable copy of a grid's full cell state. The simulator
// compares consecutive snapshots to detect a stable board, and the renderer
// draws them.
type Snapshot struct {
	width  int
	height int
	cells  string // row-major, one byte per cell
}

// Snapshot captures the current grid state.
func (g *Grid) Snapshot() Snapshot {
	var b strings.Builder
	b.Grow(g.width * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				b.WriteByte(snapshotAlive)
			} else {
				b.WriteByte(snapshotDead)
			}
		}
	}
	return Snapshot{width: g.width, height: g.height, cells: b.String()}
}

// GetWidth returns the width of the captured grid
func (s Snapshot) GetWidth() int {
	return s.width
}

// GetHeight returns the height of the captured grid
func (s Snapshot) GetHeight() int {
	return s.height
}

// Alive reports whether the cell at (x, y) was alive when the snapshot was
// taken. Out-of-range coordinates report dead.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y*s.width+x] == snapshotAlive
}

// Equal reports whether two snapshots agree at every coordinate. Snapshots
// of differently sized grids are never equal.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.width == other.width && s.height == other.height && s.cells == other.cells
}

// String renders the snapshot one row per line, '#' for live cells.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.width + 1) * s.height)
	for y := 0; y < s.height; y++ {
		b.WriteString(s.cells[y*s.width : (y+1)*s.width])
		b.WriteByte('\n')
	}
	return b.String()
}
