/*
Copyright © 2026 the flood authors.
This file is part of flood.

flood is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

flood is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with flood.  If not, see <http://www.gnu.org/licenses/>.
*/

package flood

import "math"

// cellCelerities fills buf (which must be len(buf) == rows*cols) with
// the per-cell CFL bound min(dx,dy)/sqrt(h) for cells with h > hmin,
// and +Inf for cells at or below hmin (so they never win the minimum).
// The shared factor 1/sqrt(g) is left out here and applied once by
// nextTimeStep. Returning a flat, row-major slice lets the caller reduce
// it with a fixed pairwise-tree order independent of how rows were
// scheduled across goroutines (spec section 5, "Numerical
// determinism"); a plain left-to-right fold over a concurrently
// filled slice would still be deterministic in value, but the tree
// shape is kept explicit here. The sums in mass.go use floats.Sum, a
// left-to-right fold over the same row-major order.
func cellCelerities(g *Grid, hmin float64, buf []float64) []float64 {
	minSpacing := math.Min(g.Dx, g.Dy)
	forEachRow(g.Rows, func(r int) {
		for c := 0; c < g.Cols; c++ {
			i := r*g.Cols + c
			h := g.H.At(r, c)
			if h > hmin {
				buf[i] = minSpacing / math.Sqrt(h)
			} else {
				buf[i] = math.Inf(1)
			}
		}
	})
	return buf
}

// nextTimeStep implements the CFL controller of spec section 4.6:
//
//	dt_next = min(dtmax, cfl * min_{h>hmin}[ min(dx,dy) / sqrt(g*h) ])
//
// The min over sqrt(g*h) is folded into the per-cell celerity (which
// already omits the shared factor sqrt(g)) and applied once here, so
// the reduction itself only ever compares the grid-spacing term.
func nextTimeStep(g *Grid, cfg Config, buf []float64) float64 {
	celerities := cellCelerities(g, cfg.Hmin, buf)
	minCelerity := treeMin(celerities)
	if math.IsInf(minCelerity, 1) {
		return cfg.DtMax
	}
	dt := cfg.CFL * minCelerity / math.Sqrt(cfg.G)
	return math.Min(cfg.DtMax, dt)
}

// treeMin performs a deterministic pairwise-tree minimum reduction
// over vals, rather than a simple left-to-right fold, so that the
// result is identical regardless of how the grid was decomposed
// across goroutines upstream (spec section 5).
func treeMin(vals []float64) float64 {
	if len(vals) == 0 {
		return math.Inf(1)
	}
	level := make([]float64, len(vals))
	copy(level, vals)
	for len(level) > 1 {
		next := make([]float64, (len(level)+1)/2)
		for i := range next {
			a := level[2*i]
			if 2*i+1 < len(level) {
				b := level[2*i+1]
				if b < a {
					a = b
				}
			}
			next[i] = a
		}
		level = next
	}
	return level[0]
}
