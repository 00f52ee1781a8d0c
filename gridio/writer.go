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

package gridio

import (
	"context"
	"fmt"

	"bitbucket.org/ctessum/cdf"
	"github.com/cenkalti/backoff"
	"golang.org/x/time/rate"

	"github.com/floodmodel/flood"
)

// RecordWriter appends one record's worth of grid fields to an
// already-created NetCDF file at each record boundary (spec section
// 4.7, step 9). Writes are retried with backoff, since the output
// file commonly lives on the same network filesystem the time-varying
// inputs are read from and is subject to the same transient
// failures; the limiter caps how often this writer will hammer that
// filesystem across a long run's many record boundaries.
type RecordWriter struct {
	file    *cdf.File
	limiter *rate.Limiter
}

// NewRecordWriter wraps an already-opened cdf.File. writesPerSecond
// bounds the rate of write attempts, first tries and retries alike;
// a value of zero or less disables throttling.
func NewRecordWriter(f *cdf.File, writesPerSecond float64) *RecordWriter {
	var limiter *rate.Limiter
	if writesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(writesPerSecond), 1)
	}
	return &RecordWriter{file: f, limiter: limiter}
}

// WriteRecord writes field's values into varName at the given record
// index along the file's leading (time) dimension, retrying on error
// with an exponential backoff grounded on the teacher's use of
// github.com/cenkalti/backoff for retried remote I/O (sr/sr.go).
func (w *RecordWriter) WriteRecord(ctx context.Context, varName string, record int, field *flood.Field) error {
	rows, cols := field.Shape()
	start := []int{record, 0, 0}
	end := []int{record + 1, rows, cols}

	op := func() error {
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}
		writer := w.file.Writer(varName, start, end)
		if _, err := writer.Write(field.Raw().Elements); err != nil {
			return fmt.Errorf("gridio: writing record %d of %q: %w", record, varName, err)
		}
		return nil
	}

	b := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	return backoff.Retry(op, b)
}
