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

// fieldTable maps a recognized field name (spec section 6) to the
// Field it addresses on a Grid.
func (g *Grid) fieldTable() map[string]*Field {
	return map[string]*Field{
		"z":                  &g.Z,
		"n":                  &g.N,
		"h":                  &g.H,
		"hmax":               &g.Hmax,
		"qe":                 &g.Qe,
		"qs":                 &g.Qs,
		"hfe":                &g.Hfe,
		"hfs":                &g.Hfs,
		"dire":               &g.Dire,
		"dirs":               &g.Dirs,
		"rain":               &g.Rain,
		"inf":                &g.Inf,
		"losses_capped":      &g.LossesCapped,
		"eff_precip":         &g.EffPrecip,
		"ext":                &g.Ext,
		"bct":                &g.Bct,
		"bcv":                &g.Bcv,
		"hfix":               &g.Hfix,
		"herr":               &g.Herr,
		"v":                  &g.V,
		"vdir":               &g.Vdir,
		"vmax":               &g.Vmax,
		"fr":                 &g.Fr,
		"eff_por":            &g.EffPor,
		"pressure":           &g.Pressure,
		"conduct":            &g.Conduct,
		"inf_amount":         &g.InfAmount,
		"water_soil_content": &g.WaterSoilContent,
	}
}

// GetField returns a view of the named array (spec section 6). The
// returned Field shares storage with the grid, so writes through it
// are seen by the kernels.
func (g *Grid) GetField(name string) (*Field, error) {
	f, ok := g.fieldTable()[name]
	if !ok {
		return nil, &UnknownFieldError{Name: name}
	}
	return f, nil
}

// SetField replaces the contents of the named array with vals,
// element by element, after checking that vals has the grid's shape
// (spec section 7, kind 5).
func (g *Grid) SetField(name string, vals *Field) error {
	dst, ok := g.fieldTable()[name]
	if !ok {
		return &UnknownFieldError{Name: name}
	}
	wr, wc := dst.Shape()
	hr, hc := vals.Shape()
	if wr != hr || wc != hc {
		return &ShapeError{Field: name, Want: [2]int{wr, wc}, Have: [2]int{hr, hc}}
	}
	copy(dst.arr.Elements, vals.arr.Elements)
	return nil
}
