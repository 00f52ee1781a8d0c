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

// Infiltration computes the infiltration rate field for the whole
// grid (spec section 4.2). Both recognized variants cap the rate at
// h/dt so a single step never removes more water than is present.
// The interchangeable-variant shape mirrors the teacher's Mechanism
// interface: a small method set, two sibling implementations, chosen
// once and driven by the outer loop (here, Driver, on the dtinf
// cadence rather than every step).
type Infiltration interface {
	// Rate updates g.Inf in place for every interior cell, given the
	// sub-step dt used for the cap h/dt and for any internal state
	// accumulation (e.g. Green-Ampt's cumulative depth).
	Rate(g *Grid, dt float64)
}

// FixedInfiltration implements the user-fixed variant: inf_out =
// min(h/dt, inf_in), where inf_in is read from the same g.Inf field
// it writes (the caller pre-loads the nominal rate via SetField
// before the first call).
type FixedInfiltration struct{}

// GreenAmptInfiltration implements the Green-Ampt variant (spec
// section 4.2), reading and updating the soil-state fields on Grid.
type GreenAmptInfiltration struct{}

var (
	_ Infiltration = FixedInfiltration{}
	_ Infiltration = GreenAmptInfiltration{}
)
