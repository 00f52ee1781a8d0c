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
	"runtime"
	"sync"
)

// forEachRow runs fn(r) for every row in [0,rows) concurrently, with
// each of GOMAXPROCS goroutines taking a disjoint, strided subset of
// rows. This is the row-parallel bulk-synchronous scheduling model of
// spec section 5: kernels are data-parallel over rows, run to
// completion, and do not observe partial results from one another.
// Grounded on the teacher's Calculations DomainManipulator, which
// fans a set of per-cell calculators out over GOMAXPROCS goroutines
// striding over the flat cell slice.
func forEachRow(rows int, fn func(r int)) {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > rows {
		nprocs = rows
	}
	if nprocs <= 1 {
		for r := 0; r < rows; r++ {
			fn(r)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for r := p; r < rows; r += nprocs {
				fn(r)
			}
		}(p)
	}
	wg.Wait()
}
