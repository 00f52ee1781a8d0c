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

import "gonum.org/v1/gonum/floats"

// fieldMean is the spatial mean of a field over every cell, interior
// and halo alike (the driver's record accumulators are diagnostic
// summaries, not part of the mass-balance check in mass.go, so
// including the halo here is harmless even though the halo is
// externally owned).
func fieldMean(f *Field) float64 {
	return floats.Sum(f.arr.Elements) / float64(len(f.arr.Elements))
}

// boundaryFlux sums the unit-width discharges crossing into or out of
// the domain through the four domain edges: the west/east faces
// adjacent to the column halo and the north/south faces adjacent to
// the row halo. Positive values indicate net flow toward increasing
// index (spec section 3's face-discharge sign convention), so the
// west and north contributions are negated to express them as flow
// out of the domain on the same sign convention as east/south.
func boundaryFlux(g *Grid) float64 {
	var flux float64
	for r := 1; r < g.Rows-1; r++ {
		flux += -g.Qe.At(r, 0)
		flux += g.Qe.At(r, g.Cols-2)
	}
	for c := 1; c < g.Cols-1; c++ {
		flux += -g.Qs.At(0, c)
		flux += g.Qs.At(g.Rows-2, c)
	}
	return flux
}

// recordAccumulators collects the per-sub-step diagnostics that the
// driver publishes at each record boundary (spec section 4.7, step 9):
// spatial means of rain, user inflow, infiltration, losses, and
// boundary/drainage flow, plus the running totals of the cell-local
// clamp and BC-fix accumulators. herr and hfix are carried as totals,
// not means, since they are themselves already cumulative volumes
// (section 3) rather than instantaneous rates.
type recordAccumulators struct {
	sumRain, sumInflow, sumInf, sumLosses float64
	sumBoundaryFlow, sumDrainageFlow      float64
	steps                                 int
}

// add folds in one sub-step's contribution. inflow and drainage are
// the driver's externally supplied per-step scalars (spec section
// 4.7, step 3: "user inflow and external drainage coupling"); the
// core has no array representation for them, so they are tracked here
// as scalars rather than fields.
func (a *recordAccumulators) add(g *Grid, inflow, drainage float64) {
	a.sumRain += fieldMean(&g.Rain)
	a.sumInf += fieldMean(&g.Inf)
	a.sumLosses += fieldMean(&g.LossesCapped)
	a.sumInflow += inflow
	a.sumDrainageFlow += drainage
	a.sumBoundaryFlow += boundaryFlux(g)
	a.steps++
}

// RecordReport is the published form of recordAccumulators: means
// over the elapsed sub-steps, plus the accumulated clamp/fix totals
// taken directly from the grid (and reset there by resetClampTotals).
type RecordReport struct {
	MeanRain         float64
	MeanInflow       float64
	MeanInfiltration float64
	MeanLosses       float64
	MeanBoundaryFlow float64
	MeanDrainageFlow float64
	Herr             float64
	Hfix             float64
}

// report renders the current accumulators into a RecordReport, reading
// herr/hfix totals from the grid.
func (a *recordAccumulators) report(g *Grid) RecordReport {
	n := float64(a.steps)
	if n == 0 {
		n = 1
	}
	return RecordReport{
		MeanRain:         a.sumRain / n,
		MeanInflow:       a.sumInflow / n,
		MeanInfiltration: a.sumInf / n,
		MeanLosses:       a.sumLosses / n,
		MeanBoundaryFlow: a.sumBoundaryFlow / n,
		MeanDrainageFlow: a.sumDrainageFlow / n,
		Herr:             g.Herr.Sum(),
		Hfix:             g.Hfix.Sum(),
	}
}

// reset zeroes the sub-step accumulators (called after a record is
// emitted). The grid's herr/hfix accumulators are intentionally left
// alone here: whether they reset at record boundaries or keep
// accruing for the whole run is a driver policy, applied explicitly
// by the caller via resetClampTotals.
func (a *recordAccumulators) reset() {
	*a = recordAccumulators{}
}

// resetClampTotals zeroes the grid's cumulative clamp/fix accumulators,
// for drivers configured to report them per-record rather than
// run-cumulative.
func resetClampTotals(g *Grid) {
	g.Herr.Fill(0)
	g.Hfix.Fill(0)
}
