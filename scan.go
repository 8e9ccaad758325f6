/*
 * scan.go, part of oercorr.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package corr

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const (
	defscanmin   = 200.0
	defscanmax   = 400.0
	defscansteps = 21
)

//ScanOptions defines the temperature grid for a scan. The grid
//goes from Min to Max (both included, in K) in Steps evenly spaced points.
type ScanOptions struct {
	Min   float64
	Max   float64
	Steps int
}

//SetDefaults sets the default grid, 200 to 400 K in 21 steps.
func (O *ScanOptions) SetDefaults() {
	O.Min = defscanmin
	O.Max = defscanmax
	O.Steps = defscansteps
}

//Check replaces the invalid values in O with defaults, logging a warning
//for each replacement. If only one point is requested, Max is ignored.
func (O *ScanOptions) Check() {
	if CheckTemperature(O.Min) != nil {
		log.Warn().Float64("min", O.Min).Float64("default", defscanmin).Msg("Invalid minimum temperature for scan. Will use the default")
		O.Min = defscanmin
	}
	if O.Steps <= 0 {
		log.Warn().Int("steps", O.Steps).Int("default", defscansteps).Msg("Invalid number of steps for scan. Will use the default")
		O.Steps = defscansteps
	}
	if O.Steps == 1 {
		O.Max = O.Min
		return
	}
	if CheckTemperature(O.Max) != nil || O.Max <= O.Min {
		newmax := defscanmax
		if newmax <= O.Min {
			newmax = O.Min + (defscanmax - defscanmin)
		}
		log.Warn().Float64("max", O.Max).Float64("min", O.Min).Float64("default", newmax).Msg("Invalid maximum temperature for scan. Will use the default")
		O.Max = newmax
	}
}

//Scan contains the corrections for one adsorbate at several temperatures.
type Scan struct {
	Name    string
	Results []*Result //in increasing temperature order
}

//TemperatureScan returns the corrections for the adsorbate name, with frequencies freqs (cm-1)
//over the temperature grid given by options (the defaults from ScanOptions.SetDefaults are
//used if no options are given). Invalid options are replaced by their defaults.
//The first error obtained aborts the scan.
func TemperatureScan(name string, freqs []float64, options ...*ScanOptions) (*Scan, error) {
	o := new(ScanOptions)
	if len(options) == 0 || options[0] == nil {
		o.SetDefaults()
	} else {
		*o = *options[0]
		o.Check()
	}
	temps := make([]float64, o.Steps)
	if o.Steps == 1 {
		temps[0] = o.Min
	} else {
		floats.Span(temps, o.Min, o.Max)
	}
	S := &Scan{Name: name, Results: make([]*Result, 0, len(temps))}
	for _, T := range temps {
		r, err := Compute(name, freqs, T)
		if err != nil {
			return nil, errDecorate(err, "TemperatureScan")
		}
		S.Results = append(S.Results, r)
	}
	return S, nil
}

//Temperatures returns the temperatures (K) of the scan.
func (S *Scan) Temperatures() []float64 {
	ret := make([]float64, len(S.Results))
	for i, v := range S.Results {
		ret[i] = v.Temperature
	}
	return ret
}

//Totals returns the total corrections (eV) along the scan.
func (S *Scan) Totals() []float64 {
	ret := make([]float64, len(S.Results))
	for i, v := range S.Results {
		ret[i] = v.Total
	}
	return ret
}

//Len returns the number of points in the scan.
func (S *Scan) Len() int {
	return len(S.Results)
}

//XY returns the temperature and total correction of the ith point.
//Together with Len, it allows a *Scan to be plotted directly.
func (S *Scan) XY(i int) (float64, float64) {
	return S.Results[i].Temperature, S.Results[i].Total
}
