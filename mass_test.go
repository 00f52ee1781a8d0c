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

func TestTotalVolume(t *testing.T) {
	g := NewGrid(3, 3, 2, 5)
	g.H.Set(1, 1, 4)
	if got, want := totalVolume(g), 4.0*2*5; math.Abs(got-want) > 1e-12 {
		t.Errorf("totalVolume = %v, want %v", got, want)
	}
}

func TestMassBalanceRelativeErrorExact(t *testing.T) {
	mb := massBalance{VolumeBefore: 10, VolumeAfter: 11, Source: 1, Hfix: 0, Herr: 0}
	if got := mb.RelativeError(); math.Abs(got) > 1e-12 {
		t.Errorf("exact mass balance should report ~0 relative error, got %v", got)
	}
}

func TestMassBalanceRelativeErrorDetectsDiscrepancy(t *testing.T) {
	mb := massBalance{VolumeBefore: 10, VolumeAfter: 11, Source: 0.5, Hfix: 0, Herr: 0}
	// observed change is 1, expected is 0.5: a real discrepancy.
	if got := mb.RelativeError(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("RelativeError = %v, want 1.0 (|1 - 0.5| / 0.5)", got)
	}
}

func TestMassBalanceRelativeErrorZeroSourceFallsBackToAbsolute(t *testing.T) {
	mb := massBalance{VolumeBefore: 10, VolumeAfter: 10.2, Source: 0, Hfix: 0, Herr: 0}
	if got := mb.RelativeError(); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("zero-source RelativeError = %v, want the absolute discrepancy 0.2", got)
	}
}
