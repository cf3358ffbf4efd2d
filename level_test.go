package main

import "testing"

func TestParseDefaultLevel(t *testing.T) {
	cells, err := parseLevel(defaultLevel)
	if err != nil {
		t.Fatalf("parseLevel(defaultLevel) = %v", err)
	}
	if len(cells) != 8 {
		t.Fatalf("got %d rows, want 8", len(cells))
	}
	for y, row := range cells {
		if len(row) != 10 {
			t.Fatalf("row %d has %d cells, want 10", y, len(row))
		}
	}

	// corners and the two openings in the border
	if cells[0][0] != 1 {
		t.Error("north-west corner should be a wall")
	}
	if cells[5][0] != 0 {
		t.Error("west edge opening at row 5 should be floor")
	}
	if cells[7][7] != 0 {
		t.Error("south edge opening at col 7 should be floor")
	}
	if cells[2][5] != 1 || cells[3][6] != 1 {
		t.Error("center block should be walls")
	}
}

func TestParseLevelRunes(t *testing.T) {
	cells, err := parseLevel([]string{"#1", ". ", "00"})
	if err != nil {
		t.Fatalf("parseLevel = %v", err)
	}
	want := [][]int{{1, 1}, {0, 0}, {0, 0}}
	for y := range want {
		for x := range want[y] {
			if cells[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, cells[y][x], want[y][x])
			}
		}
	}
}

func TestParseLevelRejectsUnknownRune(t *testing.T) {
	if _, err := parseLevel([]string{"##", "#x"}); err == nil {
		t.Error("expected an error for an unknown rune")
	}
}
