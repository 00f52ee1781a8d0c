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

// classifyDirection implements the three-candidate slope rule of spec
// section 4.3:
//
//	max_dz > 0 and max_dz == dz0  -> 0  (route toward positive index)
//	max_dz > 0 and max_dz == dz1  -> 1  (route toward negative index)
//	max_dz > 0, matches neither   -> -1 (ambiguous; no routing)
//	max_dz <= 0                   -> -1
//
// When max_dz > 0 equals both dz0 and dz1 (a flat saddle), this
// returns 0: dz0 is checked first and the equality tie is not broken
// any further. The spec leaves this case an open question; see
// DESIGN.md for why the as-written behavior is kept rather than
// special-cased.
func classifyDirection(maxDz, dz0, dz1 float64) float64 {
	if maxDz <= 0 {
		return -1
	}
	switch {
	case maxDz == dz0:
		return 0
	case maxDz == dz1:
		return 1
	default:
		return -1
	}
}

// classifyFlowDirections computes the per-face routing label used by
// the thin-film rain-routing rule in section 4.4. The slope candidates
// are derived from bed elevation alone: dz0 is the drop toward the
// positive-index neighbor across the face, dz1 the drop toward the
// negative-index neighbor on the same axis, and max_dz the larger of
// the two (so a cell that is a local low point on both sides yields
// max_dz <= 0 and is correctly left unrouted).
//
// Labels are recomputed for every face that the face-flow solver will
// actually consult; per the edge rule in section 4.4, the east face of
// the last interior column and the south face of the last interior row
// never feed a momentum or routing decision, so they are left at their
// prior value here too.
func classifyFlowDirections(g *Grid) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-2; c++ {
			dz0 := g.Z.At(r, c) - g.Z.At(r, c+1)
			dz1 := g.Z.At(r, c) - g.Z.At(r, c-1)
			maxDz := dz0
			if dz1 > maxDz {
				maxDz = dz1
			}
			g.Dire.Set(r, c, classifyDirection(maxDz, dz0, dz1))
		}
	})
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r >= g.Rows-2 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			dz0 := g.Z.At(r, c) - g.Z.At(r+1, c)
			dz1 := g.Z.At(r, c) - g.Z.At(r-1, c)
			maxDz := dz0
			if dz1 > maxDz {
				maxDz = dz1
			}
			g.Dirs.Set(r, c, classifyDirection(maxDz, dz0, dz1))
		}
	})
}
