package chargedup

import "fmt"

// Item is a game piece occupying a grid cell. The empty string is an empty cell.
type Item string

const (
	ItemNone Item = ""
	ItemCone Item = "cone"
	ItemCube Item = "cube"
)

// ParseItem converts a config string into an Item.
func ParseItem(s string) (Item, bool) {
	switch Item(s) {
	case ItemCone, ItemCube:
		return Item(s), true
	case "block": // the field diagrams call cubes blocks
		return ItemCube, true
	default:
		return ItemNone, false
	}
}

// Row is a scoring row whose outer cells take cones and middle cell takes a cube.
type Row struct {
	A, B, C Item
}

// HybridRow is a scoring row whose cells take any piece.
type HybridRow struct {
	A, B, C Item
}

// Accepts reports whether item may be placed in column col of a Row.
func (r Row) Accepts(col byte, item Item) bool {
	switch col {
	case 'a', 'c':
		return item == ItemCone
	case 'b':
		return item == ItemCube
	default:
		return false
	}
}

// Cells returns the occupancy of a, b and c in order.
func (r Row) Cells() [3]bool {
	return [3]bool{r.A != ItemNone, r.B != ItemNone, r.C != ItemNone}
}

// Cells returns the occupancy of a, b and c in order.
func (r HybridRow) Cells() [3]bool {
	return [3]bool{r.A != ItemNone, r.B != ItemNone, r.C != ItemNone}
}

// Grid is one 3x3 scoring node.
type Grid struct {
	Top Row
	Mid Row
	Low HybridRow
}

// Place puts item into the named row and column.
func (g *Grid) Place(row string, col byte, item Item) error {
	if item == ItemNone {
		return fmt.Errorf("chargedup: cannot place an empty item")
	}

	var cell *Item
	switch row {
	case "top", "mid":
		r := &g.Top
		if row == "mid" {
			r = &g.Mid
		}
		if !r.Accepts(col, item) {
			return fmt.Errorf("chargedup: %s row column %c does not take a %s", row, col, item)
		}
		cell = r.cell(col)
	case "low":
		cell = g.Low.cell(col)
	default:
		return fmt.Errorf("chargedup: unknown row %q", row)
	}

	if cell == nil {
		return fmt.Errorf("chargedup: unknown column %c", col)
	}
	if *cell != ItemNone {
		return fmt.Errorf("chargedup: %s row column %c is already occupied", row, col)
	}
	*cell = item
	return nil
}

func (r *Row) cell(col byte) *Item {
	switch col {
	case 'a':
		return &r.A
	case 'b':
		return &r.B
	case 'c':
		return &r.C
	}
	return nil
}

func (r *HybridRow) cell(col byte) *Item {
	switch col {
	case 'a':
		return &r.A
	case 'b':
		return &r.B
	case 'c':
		return &r.C
	}
	return nil
}

// Station is an alliance's charge station.
type Station struct {
	Docked  int
	Engaged int
}

// FieldState is the ChargedUp scoring state. It holds only arrays and
// scalars, so copies are independent.
type FieldState struct {
	Elapsed       float64
	BlueGrids     [3]Grid
	BlueStation   Station
	RedGrids      [3]Grid
	RedStation    Station
	EndAutoScored bool
	EndGameScored bool
}

// ElapsedSeconds returns the simulated time of the run so far.
func (fs FieldState) ElapsedSeconds() float64 {
	return fs.Elapsed
}

// Grids returns the grids of the given alliance.
func (fs *FieldState) Grids(alliance string) *[3]Grid {
	if alliance == "red" {
		return &fs.RedGrids
	}
	return &fs.BlueGrids
}

// Station returns the charge station of the given alliance.
func (fs *FieldState) Station(alliance string) *Station {
	if alliance == "red" {
		return &fs.RedStation
	}
	return &fs.BlueStation
}
