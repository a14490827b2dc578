package grid

// Statistics summarises the carved structure of a maze.
type Statistics struct {
	Cells            int // lattice cells in the shape
	CarvedCells      int // lattice cells in Passage state
	CarvedConnectors int // connector slots in Passage state
	DeadEnds         int // carved cells with exactly one open connector
	Junctions        int // carved cells with three or more open connectors
}

// Stats walks v once and counts carved cells, connectors, dead ends and junctions.
// Complexity: O(rows×cols).
func Stats(v View) Statistics {
	s := v.Shape()
	st := Statistics{Cells: s.CellCount()}
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			p := Point{Row: r, Col: c}
			if v.At(p) != Passage {
				continue
			}
			switch {
			case p.IsCell():
				st.CarvedCells++
				switch d := Degree(v, p); {
				case d == 1:
					st.DeadEnds++
				case d >= 3:
					st.Junctions++
				}
			case p.IsConnector():
				st.CarvedConnectors++
			}
		}
	}
	return st
}

// Degree counts the open connectors around cell p.
// Complexity: O(1).
func Degree(v View, p Point) int {
	n := 0
	for _, d := range cellOffsets {
		m := p.Add(d[0]/2, d[1]/2)
		if v.InBounds(m) && v.At(m) == Passage {
			n++
		}
	}
	return n
}

// OpenNeighbors returns the cells reachable from p through one open connector,
// in N, E, S, W order.
func OpenNeighbors(v View, p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range cellOffsets {
		m := p.Add(d[0]/2, d[1]/2)
		q := p.Add(d[0], d[1])
		if v.InBounds(q) && v.At(m) == Passage && v.At(q) == Passage {
			out = append(out, q)
		}
	}
	return out
}

// Reachable returns every cell reachable from `from` through carved passages,
// in BFS discovery order. The start is included when it is a carved cell;
// otherwise the result is empty.
// Complexity: O(cells) time, O(cells) memory.
func Reachable(v View, from Point) []Point {
	s := v.Shape()
	if !from.IsCell() || !s.InBounds(from) || v.At(from) != Passage {
		return nil
	}
	seen := make([]bool, s.CellCount())
	seen[s.cellIndex(from)] = true
	queue := []Point{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range OpenNeighbors(v, queue[qi]) {
			i := s.cellIndex(q)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return queue
}
