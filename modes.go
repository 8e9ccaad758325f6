/*
 * modes.go, part of oercorr.
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
	"gonum.org/v1/gonum/floats"
)

//Mode contains the contribution of one vibrational mode
//to each correction.
type Mode struct {
	Frequency float64 //cm-1
	ZPE       float64 //eV
	SVib      float64 //eV/K
	DeltaU    float64 //eV
}

//Modes returns the contribution of each frequency in freqs (cm-1) to the
//corrections at temperature T (K), in the same order as freqs.
//The input is validated as in Compute, with an empty name allowed.
func Modes(freqs []float64, T float64) ([]Mode, error) {
	if err := CheckFrequencies(freqs); err != nil {
		return nil, errDecorate(err, "Modes")
	}
	if err := CheckTemperature(T); err != nil {
		return nil, errDecorate(err, "Modes")
	}
	ret := make([]Mode, 0, len(freqs))
	for _, v := range freqs {
		x := hnuOverkT(v, T)
		ret = append(ret, Mode{
			Frequency: v,
			ZPE:       0.5 * hnu(v),
			SVib:      float64(gR * svibTerm(v, x, T)),
			DeltaU:    float64(gR * deltaUTerm(v, x)),
		})
	}
	return ret, nil
}

//LowModes returns the indexes of the frequencies in freqs that are lower
//than thres (cm-1). The entropy of such modes is unreliable in the harmonic
//approximation, and it diverges as the frequency goes to zero.
//It returns nil if there are no such modes.
func LowModes(freqs []float64, thres float64) []int {
	if len(freqs) == 0 || floats.Min(freqs) >= thres {
		return nil
	}
	var ret []int
	for i, v := range freqs {
		if v < thres {
			ret = append(ret, i)
		}
	}
	return ret
}
