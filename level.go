// level.go
package main

import "fmt"

// defaultLevel is the built-in map: a bordered arena with an opening on the
// west edge. One string per row, '#' walls, '.' open floor.
var defaultLevel = []string{
	"##########",
	"#.#......#",
	"#.#..##..#",
	"#.#..##..#",
	"#........#",
	".......#.#",
	"#...#....#",
	"#######.##",
}

// parseLevel turns the row-of-strings layout from the settings into the
// occupancy cells the tilemap constructor expects. Shape problems (empty,
// ragged) are left to the constructor; only unknown runes are rejected here.
func parseLevel(rows []string) ([][]int, error) {
	cells := make([][]int, len(rows))
	for y, row := range rows {
		cells[y] = make([]int, 0, len(row))
		for x, r := range row {
			switch r {
			case '#', '1':
				cells[y] = append(cells[y], 1)
			case '.', ' ', '0':
				cells[y] = append(cells[y], 0)
			default:
				return nil, fmt.Errorf("level: unknown rune %q at row %d col %d", r, y, x)
			}
		}
	}
	return cells, nil
}
