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

// Package floodutil holds the command-line and scenario-configuration
// layer around the flood core: the pieces spec section 1 places out
// of the core's scope (configuration parsing, CLI, the temporal
// scheduling of records).
package floodutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/floodmodel/flood"
)

// FieldFile names a static input raster and the grid field it should
// populate, e.g. {Field: "z", Path: "dem.nc"}.
type FieldFile struct {
	Field string
	Path  string
}

// Scenario is the on-disk description of one simulation run, decoded
// from a TOML file. It plays the role the InMAP command tree's
// per-option viper keys play for that model: a flat, validated
// configuration record handed to the driver at startup.
type Scenario struct {
	Rows, Cols int
	Dx, Dy     float64

	Config flood.Config

	Infiltration string // "fixed" or "green-ampt"

	StaticFields []FieldFile

	UntilSeconds          float64
	RecordIntervalSeconds float64

	OutputFile string
	LogFile    string

	// DerivedFields maps an output column name to a govaluate
	// expression evaluated against the record report's means (see
	// derived.go).
	DerivedFields map[string]string
}

// LoadScenario reads and decodes a scenario file. Environment
// variables are expanded in the output and log file paths, matching
// the teacher's convention of expanding env vars in file-path options
// rather than leaving that to the shell.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("floodutil: reading scenario %q: %w", path, err)
	}
	s.OutputFile = os.ExpandEnv(s.OutputFile)
	s.LogFile = os.ExpandEnv(s.LogFile)
	return &s, nil
}

// checkOutputFile makes sure the output file is specified and its
// directory exists, expanding any environment variables (grounded on
// InMAP's inmaputil.checkOutputFile; the cloud-bucket branch there has
// no equivalent here since gridio has no cloud-storage collaborator).
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`floodutil: you need to specify an output file (for example: OutputFile="result.nc")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("floodutil: the output file directory doesn't exist: %w", err)
	}
	return f, nil
}

// checkLogFile fills in a default log file path derived from the
// output file if one wasn't specified.
func checkLogFile(logFile, outputFile string) string {
	if logFile == "" {
		logFile = strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + ".log"
	}
	return logFile
}

// checkInfiltration validates the scenario's infiltration selector and
// returns the corresponding flood.Infiltration.
func checkInfiltration(name string) (flood.Infiltration, error) {
	switch name {
	case "", "fixed":
		return flood.FixedInfiltration{}, nil
	case "green-ampt":
		return flood.GreenAmptInfiltration{}, nil
	default:
		return nil, fmt.Errorf("floodutil: unrecognized Infiltration variant %q (want \"fixed\" or \"green-ampt\")", name)
	}
}
