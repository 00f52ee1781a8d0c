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

package floodutil

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/floodmodel/flood"
)

// recordReportParameters returns the record report's fields as a
// govaluate parameter set, keyed by the same names used in the
// scenario's DerivedFields expressions (rain, inflow, infiltration,
// losses, boundary_flow, drainage_flow, herr, hfix).
func recordReportParameters(rep flood.RecordReport) map[string]interface{} {
	return map[string]interface{}{
		"rain":          rep.MeanRain,
		"inflow":        rep.MeanInflow,
		"infiltration":  rep.MeanInfiltration,
		"losses":        rep.MeanLosses,
		"boundary_flow": rep.MeanBoundaryFlow,
		"drainage_flow": rep.MeanDrainageFlow,
		"herr":          rep.Herr,
		"hfix":          rep.Hfix,
	}
}

// evaluateDerivedFields compiles and evaluates each of the scenario's
// derived-field expressions against one record report, grounded on
// the teacher's io.go use of
// govaluate.NewEvaluableExpressionWithFunctions to let operators
// define output columns as expressions over the recognized field
// names rather than requiring a code change per derived metric.
func evaluateDerivedFields(exprs map[string]string, rep flood.RecordReport) (map[string]float64, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	params := recordReportParameters(rep)
	out := make(map[string]float64, len(exprs))
	for name, src := range exprs {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, derivedFieldFunctions)
		if err != nil {
			return nil, fmt.Errorf("floodutil: derived field %q: parsing %q: %w", name, src, err)
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("floodutil: derived field %q: evaluating %q: %w", name, src, err)
		}
		val, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("floodutil: derived field %q: expression %q did not evaluate to a number", name, src)
		}
		out[name] = val
	}
	return out, nil
}

// derivedFieldFunctions are the extra functions available inside a
// derived-field expression, beyond govaluate's built-in operators.
var derivedFieldFunctions = map[string]govaluate.ExpressionFunction{
	"abs": func(args ...interface{}) (interface{}, error) {
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("abs: argument must be numeric")
		}
		if v < 0 {
			v = -v
		}
		return v, nil
	},
}
