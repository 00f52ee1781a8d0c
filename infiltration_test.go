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

import (
	"math"
	"testing"
)

func TestFixedInfiltrationCapsAtHOverDt(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	g.H.Set(1, 1, 0.01)
	g.Inf.Set(1, 1, 10) // nominal rate far exceeds what h/dt allows
	dt := 1.0

	FixedInfiltration{}.Rate(g, dt)

	want := 0.01 // h/dt
	if got := g.Inf.At(1, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Inf = %v, want %v (capped at h/dt)", got, want)
	}
}

func TestFixedInfiltrationPassesThroughBelowCap(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	g.H.Set(1, 1, 10)
	g.Inf.Set(1, 1, 1e-6)
	dt := 1.0

	FixedInfiltration{}.Rate(g, dt)

	if got := g.Inf.At(1, 1); math.Abs(got-1e-6) > 1e-15 {
		t.Errorf("Inf = %v, want nominal rate 1e-6 unchanged", got)
	}
}

// TestGreenAmptMonotonicity exercises scenario S5 (spec section 8):
// constant soil, constant ponded depth; inf_amount strictly increases,
// inf_out strictly decreases, and is always within [0, h/dt].
func TestGreenAmptMonotonicity(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	g.H.Fill(0.5)
	g.EffPor.Fill(0.4)
	g.WaterSoilContent.Fill(0.1)
	g.Conduct.Fill(1e-6)
	g.Pressure.Fill(0.1)

	dt := 10.0
	prevF := g.InfAmount.At(1, 1)
	prevRate := math.Inf(1)

	for step := 0; step < 20; step++ {
		GreenAmptInfiltration{}.Rate(g, dt)

		f := g.InfAmount.At(1, 1)
		rate := g.Inf.At(1, 1)

		if f <= prevF {
			t.Fatalf("step %d: inf_amount did not strictly increase (%v -> %v)", step, prevF, f)
		}
		if rate < 0 {
			t.Fatalf("step %d: inf_out went negative: %v", step, rate)
		}
		if rate > g.H.At(1, 1)/dt+1e-15 {
			t.Fatalf("step %d: inf_out %v exceeds h/dt %v", step, rate, g.H.At(1, 1)/dt)
		}
		if step > 0 && rate >= prevRate {
			t.Fatalf("step %d: inf_out did not strictly decrease (%v -> %v)", step, prevRate, rate)
		}
		prevF = f
		prevRate = rate
	}
}

func TestGreenAmptRequiresPositiveSeed(t *testing.T) {
	g := NewGrid(3, 3, 1, 1)
	if g.InfAmount.At(1, 1) <= 0 {
		t.Fatal("NewGrid must seed InfAmount strictly positive")
	}
}
