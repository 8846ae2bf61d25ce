package grid

// Level represents cells at a specific move distance from a start cell
type Level struct {
	Depth int
	Cells []Cell
}

// Levels performs a breadth-first sweep from start and groups every
// reachable free cell by its move distance. Returns nil if start is not free.
func (g *Grid) Levels(start Cell) []Level {
	if !g.Free(start) {
		return nil
	}

	visited := map[Cell]bool{start: true}
	levels := make([]Level, 0)
	queue := []Cell{start}
	currentDepth := 0

	for len(queue) > 0 {
		levelSize := len(queue)
		level := Level{
			Depth: currentDepth,
			Cells: make([]Cell, 0, levelSize),
		}

		for i := 0; i < levelSize; i++ {
			cell := queue[0]
			queue = queue[1:]
			level.Cells = append(level.Cells, cell)

			for _, n := range g.Neighbors(cell) {
				if !visited[n.Cell] {
					visited[n.Cell] = true
					queue = append(queue, n.Cell)
				}
			}
		}

		levels = append(levels, level)
		currentDepth++
	}

	return levels
}

// Distance returns the fewest moves from a to b, or -1 if b is unreachable
func (g *Grid) Distance(a, b Cell) int {
	for _, level := range g.Levels(a) {
		for _, c := range level.Cells {
			if c == b {
				return level.Depth
			}
		}
	}
	return -1
}
