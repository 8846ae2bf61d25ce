package grid

import "math/rand"

// RandomOptions tunes the clustered wall generator
type RandomOptions struct {
	Clusters int     // number of random walks
	Steps    int     // steps per walk
	Density  float64 // chance a visited cell becomes a wall
	Seed     int64
}

// Random fills a size x size grid with clustered walls grown by random walks.
// The same options always produce the same grid. Cells listed in keep stay free.
func Random(size int, opts RandomOptions, keep ...Cell) *Grid {
	g := New(size)
	size = g.size
	if opts.Clusters <= 0 {
		opts.Clusters = max(1, size/3)
	}
	if opts.Steps <= 0 {
		opts.Steps = size * 2
	}
	if opts.Density < 0 {
		opts.Density = 0
	}
	if opts.Density > 1 {
		opts.Density = 1
	}

	r := rand.New(rand.NewSource(opts.Seed))
	for c := 0; c < opts.Clusters; c++ {
		p := Cell{Row: r.Intn(size), Col: r.Intn(size)}
		for s := 0; s < opts.Steps; s++ {
			if r.Float64() < opts.Density {
				g.blocked[p.Row*size+p.Col] = true
			}
			d := Directions[2*r.Intn(4)] // orthogonal moves only
			np := Cell{Row: p.Row + d.DR, Col: p.Col + d.DC}
			if g.InBounds(np) {
				p = np
			}
		}
	}

	for _, c := range keep {
		g.SetBlocked(c, false)
	}
	return g
}
