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

// Config holds the tunable options recognized by Configure (spec
// section 6). Defaults match common usage in the shallow-water/flood
// modeling literature this core is derived from.
type Config struct {
	Hmin       float64 // m; below this depth a cell is treated as dry for CFL purposes
	HfMin      float64 // m; below this face depth, momentum is bypassed for rain-routing
	Slmax      float64 // m/m; reserved slope ceiling, validated but not yet consumed by a kernel
	CFL        float64 // (0,1]; Courant-Friedrichs-Lewy coefficient
	Theta      float64 // [0,1]; inertia weighting in the q-centered scheme
	VRouting   float64 // m/s; kinematic velocity for thin-film rain-routing
	DtMax      float64 // s; ceiling on the adaptive time step
	DtInf      float64 // s; cadence at which infiltration is recomputed
	MaxError   float64 // unitless; abort threshold on cumulative relative volume error
	G          float64 // m/s^2; gravitational acceleration
	DtFloor    float64 // s; CFL-collapse floor (operator-configured, spec section 7 kind 2)
}

// DefaultConfig returns reasonable defaults for all options.
func DefaultConfig() Config {
	return Config{
		Hmin:     1e-4,
		HfMin:    1e-2,
		Slmax:    1.0,
		CFL:      0.7,
		Theta:    0.9,
		VRouting: 0.1,
		DtMax:    5,
		DtInf:    60,
		MaxError: 1e-3,
		G:        9.81,
		DtFloor:  1e-6,
	}
}

// Configure validates opts and returns an error of type *ConfigError
// for the first option found out of range (spec section 7, kind 4).
// No kernel is run if Configure returns an error.
func Configure(opts Config) error {
	checks := []struct {
		name string
		val  float64
		ok   bool
		why  string
	}{
		{"hmin", opts.Hmin, opts.Hmin >= 0, "must be >= 0"},
		{"hf_min", opts.HfMin, opts.HfMin >= 0, "must be >= 0"},
		{"slmax", opts.Slmax, opts.Slmax >= 0, "must be >= 0"},
		{"cfl", opts.CFL, opts.CFL > 0 && opts.CFL <= 1, "must be in (0,1]"},
		{"theta", opts.Theta, opts.Theta >= 0 && opts.Theta <= 1, "must be in [0,1]"},
		{"vrouting", opts.VRouting, opts.VRouting >= 0, "must be >= 0"},
		{"dtmax", opts.DtMax, opts.DtMax > 0, "must be > 0"},
		{"dtinf", opts.DtInf, opts.DtInf > 0, "must be > 0"},
		{"max_error", opts.MaxError, opts.MaxError > 0, "must be > 0"},
		{"g", opts.G, opts.G > 0, "must be > 0"},
		{"dt_floor", opts.DtFloor, opts.DtFloor >= 0, "must be >= 0"},
	}
	for _, c := range checks {
		if !c.ok {
			return &ConfigError{Option: c.name, Value: c.val, Reason: c.why}
		}
	}
	return nil
}
