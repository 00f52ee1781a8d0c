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

// Package gridio is the raster I/O collaborator named in spec section
// 1 ("OUT OF SCOPE... raster/GIS input-output"): it reads static and
// time-varying 2D arrays from NetCDF files into flood.Field values and
// writes them back out, so the core itself never touches a file.
package gridio

import (
	"fmt"
	"os"

	"bitbucket.org/ctessum/cdf"
	"github.com/ctessum/sparse"

	"github.com/floodmodel/flood"
)

// ReadStatic opens path and reads the named 2D variable into a new
// flood.Field, for static inputs like bed elevation or Manning
// friction. Grounded on the teacher's wrf2inmap/preproc.go readNCF:
// look up the variable's declared shape from the file header, read it
// in one call, and wrap the flat result as a dense array.
func ReadStatic(path, varName string) (*flood.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: opening %q: %w", path, err)
	}
	defer f.Close()

	ff, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("gridio: reading NetCDF header of %q: %w", path, err)
	}
	return readVariable(ff, varName)
}

func readVariable(ff *cdf.File, varName string) (*flood.Field, error) {
	dims := ff.Header.Lengths(varName)
	if len(dims) == 0 {
		return nil, fmt.Errorf("gridio: variable %q not present in file", varName)
	}
	nread := 1
	for _, d := range dims {
		nread *= d
	}
	start := make([]int, len(dims))
	end := make([]int, len(dims))
	copy(end, dims)

	r := ff.Reader(varName, start, end)
	buf := r.Zero(nread)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("gridio: reading variable %q: %w", varName, err)
	}

	dense := sparse.ZerosDense(dims...)
	switch vals := buf.(type) {
	case []float64:
		copy(dense.Elements, vals)
	case []float32:
		for i, v := range vals {
			dense.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("gridio: variable %q has an unsupported NetCDF element type %T", varName, buf)
	}
	return flood.FieldFromDense(dense), nil
}

// TimeSeriesReader sequentially retrieves a time-varying 2D variable
// from a series of per-record NetCDF files, grounded on the teacher's
// nextDataNCF: a one-file-per-record-step convention rather than a
// single file with an unlimited time dimension, which keeps a long
// run's inputs from requiring one file handle held open for its
// entire duration.
type TimeSeriesReader struct {
	paths   []string
	varName string
	i       int
}

// NewTimeSeriesReader builds a reader over paths, read in order, one
// record per call to Next.
func NewTimeSeriesReader(varName string, paths []string) *TimeSeriesReader {
	return &TimeSeriesReader{paths: paths, varName: varName}
}

// Next returns the next record's field, or (nil, io.EOF)-equivalent
// behavior via a false second return once paths are exhausted.
func (r *TimeSeriesReader) Next() (*flood.Field, bool, error) {
	if r.i >= len(r.paths) {
		return nil, false, nil
	}
	f, err := ReadStatic(r.paths[r.i], r.varName)
	r.i++
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}
