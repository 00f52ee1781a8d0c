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

import "testing"

func TestClassifyDirectionPositiveIndex(t *testing.T) {
	if got := classifyDirection(1, 1, 0); got != 0 {
		t.Errorf("got %v, want 0 (routes toward positive index)", got)
	}
}

func TestClassifyDirectionNegativeIndex(t *testing.T) {
	if got := classifyDirection(1, 0, 1); got != 1 {
		t.Errorf("got %v, want 1 (routes toward negative index)", got)
	}
}

func TestClassifyDirectionAmbiguous(t *testing.T) {
	if got := classifyDirection(1, 0, 0); got != -1 {
		t.Errorf("got %v, want -1 (max_dz matches neither candidate)", got)
	}
}

func TestClassifyDirectionFlat(t *testing.T) {
	if got := classifyDirection(0, 0, 0); got != -1 {
		t.Errorf("got %v, want -1 (max_dz <= 0)", got)
	}
	if got := classifyDirection(-1, -1, -2); got != -1 {
		t.Errorf("got %v, want -1 (max_dz <= 0)", got)
	}
}

// TestClassifyDirectionFlatSaddle documents the open question from
// spec section 9: when max_dz equals both dz0 and dz1, the classifier
// returns 0, since dz0 is checked before dz1.
func TestClassifyDirectionFlatSaddle(t *testing.T) {
	if got := classifyDirection(1, 1, 1); got != 0 {
		t.Errorf("got %v, want 0 (flat-saddle tie resolves to dz0)", got)
	}
}

func TestClassifyFlowDirectionsSlopesDownEast(t *testing.T) {
	g := NewGrid(3, 4, 1, 1)
	// Cell (1,1) is a local high point along the row: it slopes down
	// equally steeply to both neighbors. Four columns keep column 1 off
	// the last interior column, so its east face is actually classified.
	g.Z.Set(1, 0, 0)
	g.Z.Set(1, 1, 2)
	g.Z.Set(1, 2, 0)
	classifyFlowDirections(g)
	if got := g.Dire.At(1, 1); got != 0 {
		t.Errorf("Dire = %v, want 0 (equal drop both ways -> dz0 wins the tie)", got)
	}
}

func TestClassifyFlowDirectionsLeavesEdgeFacesUntouched(t *testing.T) {
	g := NewGrid(4, 4, 1, 1)
	g.Dire.Fill(7)
	g.Dirs.Fill(7)
	classifyFlowDirections(g)
	if got := g.Dire.At(1, g.Cols-2); got != 7 {
		t.Errorf("Dire at the last interior column should be left untouched, got %v", got)
	}
	if got := g.Dirs.At(g.Rows-2, 1); got != 7 {
		t.Errorf("Dirs at the last interior row should be left untouched, got %v", got)
	}
}
