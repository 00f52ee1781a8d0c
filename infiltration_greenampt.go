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

// Rate implements the Green-Ampt infiltration variant (spec section
// 4.2):
//
//	avail_por = max(eff_por - water_soil_content, 0)
//	rate      = conduct * (1 + avail_por*(pressure+h)/F)
//	inf_out   = min(h/dt, rate)
//	F        += inf_out*dt
//
// F (InfAmount) must be strictly positive on first use; NewGrid seeds
// it with a small positive depth to avoid the division singularity.
func (GreenAmptInfiltration) Rate(g *Grid, dt float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			h := g.H.At(r, c)
			availPor := math.Max(g.EffPor.At(r, c)-g.WaterSoilContent.At(r, c), 0)
			f := g.InfAmount.At(r, c)
			rate := g.Conduct.At(r, c) * (1 + availPor*(g.Pressure.At(r, c)+h)/f)
			infOut := math.Min(h/dt, rate)
			g.Inf.Set(r, c, infOut)
			g.InfAmount.Set(r, c, f+infOut*dt)
		}
	})
}
