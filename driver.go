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

	"github.com/sirupsen/logrus"
)

// StepReport is returned by Advance: a summary of the sub-steps taken
// to reach the requested record time (spec section 6).
type StepReport struct {
	Steps                   int
	MinDt, MeanDt, MaxDt    float64
	CumulativeRelativeError float64
}

// Driver orchestrates the kernels in sections 4.1-4.6 in the fixed
// order given in section 4.7. Its InitFuncs/CleanupFuncs slices mirror
// the teacher's InMAP struct (InitFuncs/RunFuncs/CleanupFuncs driven
// by Init/Run/Cleanup): callers hook allocator-adjacent setup (e.g.
// opening a gridio collaborator) and teardown without the Driver
// needing to know about them. The per-step sequence itself (§4.7) is
// not expressed as a RunFuncs slice, since it is fixed by the spec
// rather than user-assembled.
type Driver struct {
	Grid         *Grid
	Config       Config
	Infiltration Infiltration

	// RefreshInputs, UserInflow, and DrainageFlow are the hooks through
	// which the external collaborators named in section 1 ("OUT OF
	// SCOPE") feed this core: raster/GIS I/O refreshes bct/bcv/rain in
	// place via RefreshInputs, and the 1D drainage-network solver and
	// user inflow schedule are sampled as scalars once per sub-step.
	// All three are optional; a nil hook contributes nothing.
	RefreshInputs func(t float64)
	UserInflow    func(t float64) float64
	DrainageFlow  func(t float64) float64

	InitFuncs    []func(*Driver) error
	CleanupFuncs []func(*Driver) error

	t                float64
	dt               float64
	lastInfiltration float64
	infiltrated      bool
	cumAbsError      float64
	cumAbsVolumeIn   float64
	acc              recordAccumulators

	log *logrus.Entry
}

// NewDriver allocates a Driver over g, validated against cfg, using
// inf as the infiltration variant. The initial sub-step is cfg.DtMax;
// the first call to Advance will shrink it once a CFL estimate exists.
func NewDriver(g *Grid, cfg Config, inf Infiltration) (*Driver, error) {
	if err := Configure(cfg); err != nil {
		return nil, err
	}
	return &Driver{
		Grid:         g,
		Config:       cfg,
		Infiltration: inf,
		dt:           cfg.DtMax,
		log:          logrus.WithField("component", "flood.driver"),
	}, nil
}

// Configure re-validates and swaps in a new configuration (spec
// section 6/7: rejected before any kernel runs if out of range).
func (d *Driver) Configure(cfg Config) error {
	if err := Configure(cfg); err != nil {
		return err
	}
	d.Config = cfg
	return nil
}

// GetField delegates to the underlying grid (spec section 6).
func (d *Driver) GetField(name string) (*Field, error) { return d.Grid.GetField(name) }

// SetField delegates to the underlying grid (spec section 6).
func (d *Driver) SetField(name string, vals *Field) error { return d.Grid.SetField(name, vals) }

// Init runs InitFuncs in order, stopping at the first error.
func (d *Driver) Init() error {
	for _, f := range d.InitFuncs {
		if err := f(d); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup runs CleanupFuncs in order, collecting but not stopping on
// the first error, so every registered collaborator gets a chance to
// release its resources; it returns the first error encountered.
func (d *Driver) Cleanup() error {
	var first error
	for _, f := range d.CleanupFuncs {
		if err := f(d); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// combineExt folds eff_precip with the driver-level inflow and
// drainage scalars into ext (spec section 4.7, step 3). The core has
// no array representation for user inflow or drainage coupling (those
// live in the external collaborators named in section 1), so they are
// applied here as a spatially uniform rate.
func combineExt(g *Grid, inflow, drainage float64) {
	forEachRow(g.Rows, func(r int) {
		if r == 0 || r == g.Rows-1 {
			return
		}
		for c := 1; c < g.Cols-1; c++ {
			g.Ext.Set(r, c, g.EffPrecip.At(r, c)+inflow+drainage)
		}
	})
}

func (d *Driver) cumRelError() float64 {
	if d.cumAbsVolumeIn == 0 {
		return d.cumAbsError
	}
	return d.cumAbsError / d.cumAbsVolumeIn
}

// Advance runs sub-steps until the simulation clock reaches until,
// implementing steps 1-8 and 10 of the state machine of spec section
// 4.7; step 9 (emitting record accumulators) is EmitRecord. It
// returns a CFLCollapseError if the proposed step falls below
// Config.DtFloor, or a MassErrorError if the cumulative relative
// volume error exceeds Config.MaxError; both are fatal per section 7
// and the driver should not be advanced further afterward.
func (d *Driver) Advance(until float64) (StepReport, error) {
	var report StepReport
	report.MinDt = math.Inf(1)
	var sumDt float64

	buf := make([]float64, d.Grid.Rows*d.Grid.Cols)

	for d.t < until {
		dt := d.dt
		if d.t+dt > until {
			dt = until - d.t
		}

		// 1. Refresh time-varying boundary/source inputs.
		if d.RefreshInputs != nil {
			d.RefreshInputs(d.t)
		}

		// 2. Infiltration, on the dtinf cadence.
		if !d.infiltrated || d.t-d.lastInfiltration >= d.Config.DtInf {
			d.Infiltration.Rate(d.Grid, dt)
			d.lastInfiltration = d.t
			d.infiltrated = true
		}

		// 3. Hydrology source, combined with inflow/drainage into ext.
		hydrologySource(d.Grid, dt)
		var inflow, drainage float64
		if d.UserInflow != nil {
			inflow = d.UserInflow(d.t)
		}
		if d.DrainageFlow != nil {
			drainage = d.DrainageFlow(d.t)
		}
		combineExt(d.Grid, inflow, drainage)

		// 4. Classify face routing directions.
		classifyFlowDirections(d.Grid)

		// 5. Solve face flows into the new-time buffers.
		solveFaceFlows(d.Grid, d.Config, dt)

		// 6. Swap q*_new -> q*.
		d.Grid.SwapDischarge()

		// 7. Update depth and derived fields.
		volBefore := totalVolume(d.Grid)
		hfixBefore := accumulatorVolume(d.Grid, &d.Grid.Hfix)
		herrBefore := accumulatorVolume(d.Grid, &d.Grid.Herr)
		updateDepth(d.Grid, d.Config, dt)
		volAfter := totalVolume(d.Grid)

		mb := massBalance{
			VolumeBefore: volBefore,
			VolumeAfter:  volAfter,
			Source:       sourceVolume(d.Grid, dt),
			Hfix:         accumulatorVolume(d.Grid, &d.Grid.Hfix) - hfixBefore,
			Herr:         accumulatorVolume(d.Grid, &d.Grid.Herr) - herrBefore,
			Boundary:     boundaryVolume(d.Grid, dt),
		}
		absErr := (mb.VolumeAfter - mb.VolumeBefore) - (mb.Source + mb.Hfix - mb.Herr - mb.Boundary)
		if absErr < 0 {
			absErr = -absErr
		}
		d.cumAbsError += absErr
		if mb.Source < 0 {
			d.cumAbsVolumeIn += -mb.Source
		} else {
			d.cumAbsVolumeIn += mb.Source
		}

		d.acc.add(d.Grid, inflow, drainage)

		// 8. Advance the clock and select the next dt.
		d.t += dt
		report.Steps++
		sumDt += dt
		if dt < report.MinDt {
			report.MinDt = dt
		}
		if dt > report.MaxDt {
			report.MaxDt = dt
		}
		d.dt = nextTimeStep(d.Grid, d.Config, buf)
		if d.dt < d.Config.DtFloor {
			d.log.WithFields(logrus.Fields{"dt": d.dt, "floor": d.Config.DtFloor}).Error("CFL collapse")
			return report, &CFLCollapseError{Dt: d.dt, Floor: d.Config.DtFloor}
		}

		// 10. Abort on cumulative mass-error overrun.
		if rel := d.cumRelError(); rel > d.Config.MaxError {
			d.log.WithFields(logrus.Fields{"relative_error": rel, "max_error": d.Config.MaxError}).Error("mass error overrun")
			return report, &MassErrorError{RelativeError: rel, MaxError: d.Config.MaxError}
		}
	}

	if report.Steps > 0 {
		report.MeanDt = sumDt / float64(report.Steps)
	}
	report.CumulativeRelativeError = d.cumRelError()
	return report, nil
}

// EmitRecord renders and resets the per-record accumulators (spec
// section 4.7, step 9). Whether herr/hfix reset with it is the
// caller's choice, made explicit via resetGridTotals.
func (d *Driver) EmitRecord(resetGridTotals bool) RecordReport {
	rep := d.acc.report(d.Grid)
	d.acc.reset()
	if resetGridTotals {
		resetClampTotals(d.Grid)
	}
	d.log.WithFields(logrus.Fields{
		"mean_rain": rep.MeanRain,
		"herr":      rep.Herr,
		"hfix":      rep.Hfix,
	}).Info("record emitted")
	return rep
}
