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

import "math"

// routingDepth implements rho(h_src, wse_hi, wse_lo) from section 4.4:
// the thin-film rain-routing transport, clamped so it never exceeds
// the depth actually available in the source cell and never exceeds
// what can physically cross the face in one step (L/dt).
func routingDepth(hSrc, wseHi, wseLo, vrout, length, dt float64) float64 {
	dh := wseHi - wseLo
	if dh < 0 {
		dh = 0
	}
	if dh > hSrc {
		dh = hSrc
	}
	speed := vrout
	if cap := length / dt; cap < speed {
		speed = cap
	}
	return dh * speed
}

// faceInputs bundles everything solveFace needs for one face so the
// two call sites (east, south) can share one implementation.
type faceInputs struct {
	q0, qMinus1, qPlus1 float64 // same-axis discharges: current, and the two stencil neighbors
	qSt                 float64 // transverse stencil average of the four nearest perpendicular discharges
	h0, h1              float64
	z0, z1              float64
	n0, n1              float64
	label               float64
	length              float64 // dx for east faces, dy for south faces
}

// solveFace computes the new unit-width discharge and face flow depth
// for one face, per the dispatch table in spec section 4.4.
func solveFace(in faceInputs, dt, g, theta, hfMin, vrout float64) (qNew, hf float64) {
	wse0 := in.z0 + in.h0
	wse1 := in.z1 + in.h1
	hf = math.Max(wse0, wse1) - math.Max(in.z0, in.z1)

	switch {
	case hf <= 0:
		return 0, hf

	case hf > hfMin:
		nBar := 0.5 * (in.n0 + in.n1)
		qNorm := math.Hypot(in.q0, in.qSt)
		slope := (wse0 - wse1) / in.length
		a := theta*in.q0 + (1-theta)*0.5*(in.qMinus1+in.qPlus1)
		b := g * hf * dt * slope
		d := 1 + g*dt*nBar*nBar*qNorm/math.Pow(hf, 7.0/3.0)
		if a*b < 0 {
			a = in.q0
		}
		return (a + b) / d, hf

	default: // 0 < hf <= hfMin: thin film, rain-routing gated by label
		switch {
		case in.label == 0 && wse1 > wse0:
			return -routingDepth(in.h1, wse1, wse0, vrout, in.length, dt), hf
		case in.label == 1 && wse0 > wse1:
			return routingDepth(in.h0, wse0, wse1, vrout, in.length, dt), hf
		default:
			return 0, hf
		}
	}
}

// solveFaceFlows runs the momentum solver over every interior face,
// writing qe_new/qs_new and hfe/hfs. Per the edge rule in section 4.4,
// the east face of the last interior column and the south face of the
// last interior row are left untouched: they carry domain-boundary
// flux supplied externally by the BC preprocessor.
func solveFaceFlows(g *Grid, cfg Config, dt float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-2; c++ {
			qSt := 0.25 * (g.Qs.At(r-1, c) + g.Qs.At(r-1, c+1) + g.Qs.At(r, c) + g.Qs.At(r, c+1))
			in := faceInputs{
				q0:       g.Qe.At(r, c),
				qMinus1:  g.Qe.At(r, c-1),
				qPlus1:   g.Qe.At(r, c+1),
				qSt:      qSt,
				h0:       g.H.At(r, c),
				h1:       g.H.At(r, c+1),
				z0:       g.Z.At(r, c),
				z1:       g.Z.At(r, c+1),
				n0:       g.N.At(r, c),
				n1:       g.N.At(r, c+1),
				label:    g.Dire.At(r, c),
				length:   g.Dx,
			}
			qNew, hf := solveFace(in, dt, cfg.G, cfg.Theta, cfg.HfMin, cfg.VRouting)
			g.QeNew.Set(r, c, qNew)
			g.Hfe.Set(r, c, hf)
		}
	})
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r >= g.Rows-2 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			qSt := 0.25 * (g.Qe.At(r, c-1) + g.Qe.At(r, c) + g.Qe.At(r+1, c-1) + g.Qe.At(r+1, c))
			in := faceInputs{
				q0:       g.Qs.At(r, c),
				qMinus1:  g.Qs.At(r-1, c),
				qPlus1:   g.Qs.At(r+1, c),
				qSt:      qSt,
				h0:       g.H.At(r, c),
				h1:       g.H.At(r+1, c),
				z0:       g.Z.At(r, c),
				z1:       g.Z.At(r+1, c),
				n0:       g.N.At(r, c),
				n1:       g.N.At(r+1, c),
				label:    g.Dirs.At(r, c),
				length:   g.Dy,
			}
			qNew, hf := solveFace(in, dt, cfg.G, cfg.Theta, cfg.HfMin, cfg.VRouting)
			g.QsNew.Set(r, c, qNew)
			g.Hfs.Set(r, c, hf)
		}
	})
}
