package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Sentinel errors returned by grid construction and access.
var (
	ErrInvalidDimension   = errors.New("grid dimensions cannot be negative")
	ErrOutOfBounds        = errors.New("coordinate outside grid bounds")
	ErrInvalidProbability = errors.New("probability outside [0, 1]")
)

// Grid represents the game board
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead.
// Zero-sized grids are valid and produce an empty board.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d", width, height)
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid in place for pool reuse, clearing every cell.
// Dimensions must come from an already validated grid.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear sets every cell dead
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = false
		}
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets the cell at (x, y) to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// Get returns the state of the cell at (x, y)
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// LivingNeighborCount counts the living cells in the Moore neighborhood of
// (x, y), clipped at the grid boundary. The cell itself is never counted, so
// the result is in [0, 8] and lower at edges and corners.
func (g *Grid) LivingNeighborCount(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[LivingNeighborCount] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}

	// Calculate bounds once using efficient integer min/max
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count, nil
}

// PopulateRandom sets every cell alive with the given probability, dead
// otherwise. A nil rng falls back to the shared global source; tests inject
// a seeded one for determinism.
func (g *Grid) PopulateRandom(probability float64, rng *rand.Rand) error {
	if probability < 0 || probability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[PopulateRandom] %v", probability)
	}

	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = random() < probability
		}
	}
	return nil
}

// Swap exchanges cell storage with another grid of identical dimensions.
// The simulator uses it to promote a finished next-generation buffer.
func (g *Grid) Swap(other *Grid) error {
	if g.width != other.width || g.height != other.height {
		return errors.Wrapf(ErrInvalidDimension, "[Swap] %dx%d vs %dx%d", g.width, g.height, other.width, other.height)
	}
	g.cells, other.cells = other.cells, g.cells
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// AddGlider stamps the glider pattern with its top-left corner at (x, y)
func (g *Grid) AddGlider(x, y int) error {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dy, row := range pattern {
		for dx, alive := range row {
			if err := g.Set(x+dx, y+dy, alive); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddBlinker stamps a horizontal three-cell blinker starting at (x, y)
func (g *Grid) AddBlinker(x, y int) error {
	for dx := 0; dx < 3; dx++ {
		if err := g.Set(x+dx, y, true); err != nil {
			return err
		}
	}
	return nil
}
