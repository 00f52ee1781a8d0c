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

// faceVelocityEps is the denominator floor in the branchless
// divide-by-hf used to derive face velocities (spec section 4.5);
// it keeps the division finite at dry faces without a branch.
const faceVelocityEps = 1e-12

// faceVelocity implements v_face = q_face / max(hf_face, eps) *
// [hf_face > 0], expressed without a branch on the quotient itself:
// the indicator zeroes the result at a dry or negative-hf face while
// the max keeps the divisor away from zero.
func faceVelocity(q, hf float64) float64 {
	indicator := 0.0
	if hf > 0 {
		indicator = 1.0
	}
	return q / math.Max(hf, faceVelocityEps) * indicator
}

// updateDepth implements the depth solver (spec section 4.5): the
// continuity update, the negative-depth clamp and fixed-level BC
// enforcement (each accumulated cell-locally so no atomics are
// needed under row-parallelism), and the derived velocity, direction,
// and Froude fields.
func updateDepth(g *Grid, cfg Config, dt float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			qe := g.Qe.At(r, c)
			qw := g.Qe.At(r, c-1)
			qn := g.Qs.At(r-1, c)
			qs := g.Qs.At(r, c)

			div := (qw-qe)/g.Dx + (qn-qs)/g.Dy
			hStar := g.H.At(r, c) + (g.Ext.At(r, c)+div)*dt

			if hStar < 0 {
				g.Herr.Add(r, c, -hStar)
				hStar = 0
			}
			if g.Bct.At(r, c) == 4 {
				bcv := g.Bcv.At(r, c)
				g.Hfix.Add(r, c, bcv-hStar)
				hStar = bcv
			}

			if hStar > g.Hmax.At(r, c) {
				g.Hmax.Set(r, c, hStar)
			}
			g.H.Set(r, c, hStar)

			ve := faceVelocity(qe, g.Hfe.At(r, c))
			vw := faceVelocity(qw, g.Hfe.At(r, c-1))
			vn := faceVelocity(qn, g.Hfs.At(r-1, c))
			vs := faceVelocity(qs, g.Hfs.At(r, c))

			vx := 0.5 * (ve + vw)
			vy := 0.5 * (vs + vn)
			v := math.Hypot(vx, vy)

			vdir := math.Atan2(-vy, vx) * 180 / math.Pi
			if vdir < 0 {
				vdir += 360
			}

			g.V.Set(r, c, v)
			g.Vdir.Set(r, c, vdir)
			if v > g.Vmax.At(r, c) {
				g.Vmax.Set(r, c, v)
			}

			// Froude is undefined at h == 0; a dry cell gets 0, not NaN,
			// so it does not poison downstream sums and maxima.
			fr := 0.0
			if hStar > 0 {
				fr = v / math.Sqrt(cfg.G*hStar)
			}
			g.Fr.Set(r, c, fr)
		}
	})
}
