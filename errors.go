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

import "fmt"

// ConfigError reports that an option passed to Configure was out of
// its valid range (spec section 7, kind 4). It is rejected before any
// kernel runs.
type ConfigError struct {
	Option string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("flood: configure: option %q = %v: %s", e.Option, e.Value, e.Reason)
}

// ShapeError reports that an array passed to SetField did not match
// the grid shape (spec section 7, kind 5).
type ShapeError struct {
	Field      string
	Want, Have [2]int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("flood: set_field %q: shape mismatch: want %v, have %v", e.Field, e.Want, e.Have)
}

// UnknownFieldError reports a get_field/set_field name not in the
// recognized table (spec section 6).
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("flood: unrecognized field name %q", e.Name)
}

// CFLCollapseError is fatal: the CFL controller proposed a dt below
// the operator-configured floor (spec section 7, kind 2).
type CFLCollapseError struct {
	Dt, Floor float64
}

func (e *CFLCollapseError) Error() string {
	return fmt.Sprintf("flood: CFL collapse: proposed dt %g is below the configured floor %g", e.Dt, e.Floor)
}

// MassErrorError is fatal: cumulative relative volume error exceeded
// max_error (spec section 7, kind 3).
type MassErrorError struct {
	RelativeError, MaxError float64
}

func (e *MassErrorError) Error() string {
	return fmt.Sprintf("flood: cumulative relative volume error %g exceeds max_error %g", e.RelativeError, e.MaxError)
}
