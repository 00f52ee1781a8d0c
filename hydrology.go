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

// hydrologySource computes the effective precipitation rate for every
// interior cell (spec section 4.1):
//
//	eff_precip = max(-h/dt, rain - inf - losses_capped)
//
// The floor -h/dt guarantees that in a single step the combination of
// infiltration and user losses cannot remove more water than is
// present in the cell. The kernel is element-wise and is split across
// rows the same way the teacher's Calculations fan-out is (run rows
// [1,R-1) in parallel, one goroutine per GOMAXPROCS slice).
func hydrologySource(g *Grid, dt float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			h := g.H.At(r, c)
			floor := -h / dt
			rate := g.Rain.At(r, c) - g.Inf.At(r, c) - g.LossesCapped.At(r, c)
			g.EffPrecip.Set(r, c, math.Max(floor, rate))
		}
	})
}
