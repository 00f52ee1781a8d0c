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
	"sync/atomic"
	"testing"
)

func TestForEachRowVisitsEveryRowExactlyOnce(t *testing.T) {
	const rows = 37
	var counts [rows]int32
	forEachRow(rows, func(r int) {
		atomic.AddInt32(&counts[r], 1)
	})
	for r, c := range counts {
		if c != 1 {
			t.Errorf("row %d visited %d times, want 1", r, c)
		}
	}
}

func TestForEachRowZeroRows(t *testing.T) {
	forEachRow(0, func(r int) {
		t.Errorf("fn should not be called for zero rows, got r=%d", r)
	})
}
