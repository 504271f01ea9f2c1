package chargedup

// rowSequence lists the occupancy of one row kind across the three grids,
// cells a, b, c of grid 0 first.
func rowSequence(grids *[3]Grid, row func(Grid) [3]bool) [9]bool {
	var seq [9]bool
	for i, g := range grids {
		cells := row(g)
		copy(seq[i*3:], cells[:])
	}
	return seq
}

func topCells(g Grid) [3]bool { return g.Top.Cells() }
func midCells(g Grid) [3]bool { return g.Mid.Cells() }
func lowCells(g Grid) [3]bool { return g.Low.Cells() }

// ScoreLinks counts links in a row sequence. A run of occupied cells scores a
// link each time it reaches three, then starts over; an empty cell ends the run.
func ScoreLinks(cells [9]bool) int {
	links, run := 0, 0
	for _, occupied := range cells {
		if !occupied {
			run = 0
			continue
		}
		run++
		if run == 3 {
			links++
			run = 0
		}
	}
	return links
}

// linkScore sums the links of the top, mid and low row kinds. In legacy mode
// every row kind is read from the top row.
func linkScore(grids *[3]Grid, legacy bool) int {
	mid, low := midCells, lowCells
	if legacy {
		mid, low = topCells, topCells
	}
	return ScoreLinks(rowSequence(grids, topCells)) +
		ScoreLinks(rowSequence(grids, mid)) +
		ScoreLinks(rowSequence(grids, low))
}
