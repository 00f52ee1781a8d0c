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

// Rate implements the user-fixed infiltration variant (spec section
// 4.2): inf_out = min(h/dt, inf_in). The nominal rate inf_in is the
// value already stored in g.Inf, set by the caller via SetField
// before the first call (or between calls, to vary it over time);
// the kernel overwrites it in place with the capped rate.
func (FixedInfiltration) Rate(g *Grid, dt float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			cap := g.H.At(r, c) / dt
			g.Inf.Set(r, c, math.Min(cap, g.Inf.At(r, c)))
		}
	})
}
