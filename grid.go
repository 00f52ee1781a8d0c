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

// Package flood implements the numerical core of a two-dimensional
// inertial surface-water flow model: a regular-grid finite-volume
// discretization of the local-inertia shallow-water equations coupled
// with a hydrologic source term and thin-film rain-routing.
package flood

import "github.com/ctessum/sparse"

// Field is a co-registered 2D array over the model grid, indexed
// (row, col) with row 0 and row R-1 / col 0 and col C-1 forming the
// one-cell halo described in spec section 3. It wraps a
// sparse.DenseArray for shape bookkeeping and interop with the gridio
// NetCDF adapter, but reads and writes go straight through the
// backing Elements slice: sparse.DenseArray.Set silently skips
// writing a zero value over a previously nonzero one (it is built to
// behave like a sparse map), which would violate the "negative depth
// clamps to exactly zero" invariant in section 3. Direct slice access
// avoids that and the per-call bounds-check overhead in the innermost
// cell loops (section 9).
type Field struct {
	arr  *sparse.DenseArray
	rows int
	cols int
}

// NewField allocates a Field of the given shape, zero-initialized.
func NewField(rows, cols int) *Field {
	return &Field{arr: sparse.ZerosDense(rows, cols), rows: rows, cols: cols}
}

// FieldFromDense wraps an existing sparse.DenseArray, as produced by
// the gridio NetCDF reader. It panics if the array is not 2D.
func FieldFromDense(a *sparse.DenseArray) *Field {
	shape := a.GetShape()
	if len(shape) != 2 {
		panic("flood: field must be 2-dimensional")
	}
	return &Field{arr: a, rows: shape[0], cols: shape[1]}
}

// Shape returns (rows, cols).
func (f *Field) Shape() (int, int) { return f.rows, f.cols }

func (f *Field) idx(r, c int) int { return r*f.cols + c }

// At returns the value at (r,c).
func (f *Field) At(r, c int) float64 { return f.arr.Elements[f.idx(r, c)] }

// Set stores val at (r,c).
func (f *Field) Set(r, c int, val float64) { f.arr.Elements[f.idx(r, c)] = val }

// Add increments the value at (r,c) by val.
func (f *Field) Add(r, c int, val float64) { f.arr.Elements[f.idx(r, c)] += val }

// Fill sets every element to val.
func (f *Field) Fill(val float64) {
	for i := range f.arr.Elements {
		f.arr.Elements[i] = val
	}
}

// Raw returns the backing sparse.DenseArray, for gridio interop.
func (f *Field) Raw() *sparse.DenseArray { return f.arr }

// Sum returns the sum of all elements.
func (f *Field) Sum() float64 { return f.arr.Sum() }

// Grid holds every co-registered array described in spec section 3,
// allocated once and reused across steps (section 3, "Lifecycle").
// The caller owns the halo (row 0, row R-1, col 0, col C-1): the core
// never writes new values there except where a kernel is explicitly
// documented to (section 9).
type Grid struct {
	Rows, Cols int
	Dx, Dy     float64

	Z Field // bed elevation [m]
	N Field // Manning friction [s*m^(-1/3)]

	H    Field // water depth [m]
	Hmax Field // running max of H [m]

	Qe, Qs         Field // unit discharge at time t on east/south faces [m^2/s]
	QeNew, QsNew   Field // unit discharge at t+dt [m^2/s]
	Hfe, Hfs       Field // flow depth at east/south faces [m]
	Dire, Dirs     Field // routing direction label in {-1,0,1} (stored as float64)

	Rain         Field // rainfall rate [m/s]
	Inf          Field // infiltration rate [m/s]
	LossesCapped Field // capped user losses [m/s]
	EffPrecip    Field // effective precipitation after losses [m/s]
	Ext          Field // total external source [m/s]

	Bct Field // boundary type code (integer-valued float64)
	Bcv Field // boundary value [m or m^2/s]

	Hfix Field // accumulated BC-fixed volume [m]
	Herr Field // accumulated clamp-correction volume [m]

	V    Field // cell-centered velocity magnitude [m/s]
	Vdir Field // velocity direction [deg], 0=east, CCW
	Vmax Field // running max of V [m/s]
	Fr   Field // Froude number [-]

	// Green-Ampt infiltration state (section 3).
	EffPor           Field // effective porosity [-]
	Pressure         Field // wetting-front capillary pressure head [m]
	Conduct          Field // saturated hydraulic conductivity [m/s]
	InfAmount        Field // cumulative infiltration depth F [m]
	WaterSoilContent Field // cumulative soil water content [-]
}

// NewGrid allocates a Grid of shape (rows, cols) with the given cell
// spacing. All arrays are zero except InfAmount, which the Green-Ampt
// kernel requires to start strictly positive to avoid the F=0
// singularity (spec section 4.2); it is seeded with a small positive
// depth here so a caller that never touches Green-Ampt-specific
// fields still gets a safe default.
func NewGrid(rows, cols int, dx, dy float64) *Grid {
	g := &Grid{Rows: rows, Cols: cols, Dx: dx, Dy: dy}
	fields := []*Field{
		&g.Z, &g.N, &g.H, &g.Hmax,
		&g.Qe, &g.Qs, &g.QeNew, &g.QsNew, &g.Hfe, &g.Hfs, &g.Dire, &g.Dirs,
		&g.Rain, &g.Inf, &g.LossesCapped, &g.EffPrecip, &g.Ext,
		&g.Bct, &g.Bcv, &g.Hfix, &g.Herr,
		&g.V, &g.Vdir, &g.Vmax, &g.Fr,
		&g.EffPor, &g.Pressure, &g.Conduct, &g.InfAmount, &g.WaterSoilContent,
	}
	for _, f := range fields {
		*f = *NewField(rows, cols)
	}
	const seedInfAmount = 1e-6 // m; avoids F=0 singularity on first Green-Ampt call
	g.InfAmount.Fill(seedInfAmount)
	return g
}

// SwapDischarge makes the newly solved face flows (QeNew/QsNew)
// current, per the double-buffering rule in spec section 3. The
// backing arrays are exchanged rather than copied.
func (g *Grid) SwapDischarge() {
	g.Qe, g.QeNew = g.QeNew, g.Qe
	g.Qs, g.QsNew = g.QsNew, g.Qs
}
