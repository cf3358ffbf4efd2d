// Package tilemap holds the occupancy grid the raycaster walks. A Grid is
// built once from static level data and stays read-only afterwards, so it
// can be shared freely between the renderer and the minimap.
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// ErrEmptyGrid is returned when constructing a grid with no cells.
var ErrEmptyGrid = errors.New("tilemap: empty grid")

// Grid is an immutable rectangular tile grid. A cell with a nonzero value
// blocks movement and rays. Derived metrics like the world extents and the
// maximum ray distance are computed once at construction.
type Grid struct {
	cells   [][]int
	size    float64 // world units per tile edge
	rows    int
	cols    int
	width   float64 // cols * size
	height  float64 // rows * size
	maxDist float64 // ray travel limit, the grid diagonal
}

// NewGrid copies cells into a new grid with the given tile edge length.
// The grid must be rectangular and non-empty, and size must be positive;
// these are configuration errors and fail here rather than per frame.
func NewGrid(cells [][]int, size float64) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if size <= 0 {
		return nil, fmt.Errorf("tilemap: tile size must be positive, got %v", size)
	}

	rows, cols := len(cells), len(cells[0])
	copied := make([][]int, rows)
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("tilemap: row %d has %d cells, want %d", y, len(row), cols)
		}
		copied[y] = append([]int(nil), row...)
	}

	g := &Grid{
		cells:  copied,
		size:   size,
		rows:   rows,
		cols:   cols,
		width:  float64(cols) * size,
		height: float64(rows) * size,
	}
	g.maxDist = math.Hypot(g.width, g.height)
	return g, nil
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Size() float64 { return g.size }

// Width returns the grid extent in world units along x.
func (g *Grid) Width() float64 { return g.width }

// Height returns the grid extent in world units along y.
func (g *Grid) Height() float64 { return g.height }

// MaxDist is how far a ray may travel before it is treated as a miss.
func (g *Grid) MaxDist() float64 { return g.maxDist }

// TileCoord converts a world position to tile column/row indices.
func (g *Grid) TileCoord(x, y float64) (col, row int) {
	return int(math.Floor(x / g.size)), int(math.Floor(y / g.size))
}

// Inside reports whether the tile indices fall within the grid.
func (g *Grid) Inside(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the cell value at the tile, or 0 for out-of-bounds tiles.
func (g *Grid) At(col, row int) int {
	if !g.Inside(col, row) {
		return 0
	}
	return g.cells[row][col]
}

// BlockedAt reports whether the tile itself is a wall. Out-of-bounds tiles
// are passable here; ray traversal handles the map edge separately so it
// terminates instead of walking off the grid.
func (g *Grid) BlockedAt(col, row int) bool {
	return g.At(col, row) != 0
}

// IsObstacle reports whether the tile containing the world point is a wall.
func (g *Grid) IsObstacle(x, y float64) bool {
	col, row := g.TileCoord(x, y)
	return g.BlockedAt(col, row)
}

// Collides approximates a circle-vs-grid test by sampling four points
// offset by radius along the cardinal axes. Diagonal approaches to a tile
// corner can slip through the gaps between samples.
func (g *Grid) Collides(p geom.Vector2, radius float64) bool {
	return g.IsObstacle(p.X+radius, p.Y) ||
		g.IsObstacle(p.X-radius, p.Y) ||
		g.IsObstacle(p.X, p.Y+radius) ||
		g.IsObstacle(p.X, p.Y-radius)
}

// Point returns the world position at the given fractions of the grid
// extents, e.g. Point(0.5, 0.5) is the grid center. Handy for spawns.
func (g *Grid) Point(nx, ny float64) geom.Vector2 {
	return geom.Vector2{X: g.width * nx, Y: g.height * ny}
}
