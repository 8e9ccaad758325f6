/*
 * corrections.go, part of oercorr.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package corr

import (
	"math"
)

//Request holds the data needed to obtain the corrections for one adsorbate.
type Request struct {
	Name        string
	Frequencies []float64 //cm-1
	Temperature float64   //K
}

//Validate checks that R can be used to obtain corrections. The checks
//go in this order: name, frequencies (emptiness, then each element), temperature.
//The first problem found is returned.
func (R Request) Validate() error {
	if err := CheckName(R.Name); err != nil {
		return errDecorate(err, "Request.Validate")
	}
	if err := CheckFrequencies(R.Frequencies); err != nil {
		return errDecorate(err, "Request.Validate")
	}
	if err := CheckTemperature(R.Temperature); err != nil {
		return errDecorate(err, "Request.Validate")
	}
	return nil
}

//Compute validates R and returns the corresponding corrections.
func (R Request) Compute() (*Result, error) {
	return Compute(R.Name, R.Frequencies, R.Temperature)
}

//CheckName returns an error if name can't be used to identify an adsorbate.
func CheckName(name string) error {
	if len(name) == 0 {
		return NewError(ErrInvalidArgumentValue, MsgNameEmpty)
	}
	return nil
}

//CheckFrequencies returns an error if freqs is empty or if any of its
//elements is not a real number (NaN or infinite). The first offending element
//is reported.
//Note that the sign of the frequencies is not checked.
func CheckFrequencies(freqs []float64) error {
	if len(freqs) == 0 {
		return NewError(ErrInvalidArgumentValue, MsgFreqsEmpty)
	}
	for _, v := range freqs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewError(ErrInvalidArgumentType, MsgFreqElementType, v)
		}
	}
	return nil
}

//CheckTemperature returns an error if T is not a real number, or if it is not positive.
func CheckTemperature(T float64) error {
	if math.IsNaN(T) || math.IsInf(T, 0) {
		return NewError(ErrInvalidArgumentType, MsgTempType)
	}
	if T <= 0 {
		return NewError(ErrInvalidArgumentValue, MsgTempValue)
	}
	return nil
}

//Result contains the corrections for one adsorbate at one temperature.
//It should be obtained with Compute, and not modified afterwards.
type Result struct {
	Name        string
	Temperature float64 //K
	ZPE         float64 //eV
	SVib        float64 //eV/K
	DeltaU      float64 //eV, from 0 K to Temperature
	Total       float64 //eV, ZPE - T*S_vib + deltaU
}

//TS returns the entropic term, T*S_vib, in eV.
func (R *Result) TS() float64 {
	return float64(R.Temperature * R.SVib)
}

//Compute returns the zero-point energy, vibrational entropy and internal energy
//variation for the adsorbate called name, with vibrational frequencies freqs (in cm-1),
//at temperature T (in K), plus the total free energy correction.
//It returns an error, and no result, if the input is not valid.
func Compute(name string, freqs []float64, T float64) (*Result, error) {
	err := Request{Name: name, Frequencies: freqs, Temperature: T}.Validate()
	if err != nil {
		return nil, errDecorate(err, "Compute")
	}
	R := &Result{
		Name:        name,
		Temperature: T,
		ZPE:         ZPE(freqs),
		SVib:        SVib(freqs, T),
		DeltaU:      DeltaU(freqs, T),
	}
	//TS rounds T*S_vib on its own (no fused multiply-add), so
	//Total is exactly ZPE - T*S_vib + DeltaU.
	R.Total = R.ZPE - R.TS() + R.DeltaU
	return R, nil
}

//ZPE returns the zero-point energy, in eV, for the vibrational frequencies
//freqs, given in cm-1.
func ZPE(freqs []float64) float64 {
	sum := 0.0
	for _, v := range freqs {
		sum += float64(h * c * v)
	}
	return 0.5 * sum
}

//hnu returns the energy, in eV, of the mode with
//wavenumber nu (in cm-1).
func hnu(nu float64) float64 {
	return float64(h * c * nu)
}

//hnuOverkT returns the dimensionless ratio h*c*nu/kB*T
func hnuOverkT(nu, T float64) float64 {
	return float64(h*c*nu) / float64(kB*T)
}

//SVib returns the vibrational entropy, in eV/K, for the frequencies freqs
//(in cm-1) at temperature T (in K). Very small frequencies make
//this diverge, nothing is done about it.
func SVib(freqs []float64, T float64) float64 {
	sum := 0.0
	for _, v := range freqs {
		x := hnuOverkT(v, T)
		sum += svibTerm(v, x, T)
	}
	return float64(gR * sum)
}

func svibTerm(nu, x, T float64) float64 {
	return hnu(nu)/float64(float64(kB*T)*(math.Exp(x)-1)) - math.Log(1-math.Exp(-x))
}

//DeltaU returns the vibrational internal energy variation from 0 K to
//T (in K), in eV, for the frequencies freqs (in cm-1).
func DeltaU(freqs []float64, T float64) float64 {
	sum := 0.0
	for _, v := range freqs {
		x := hnuOverkT(v, T)
		sum += deltaUTerm(v, x)
	}
	return float64(gR * sum)
}

//The kB in the denominator cancels with the gas constant that multiplies
//the sum, leaving eV.
func deltaUTerm(nu, x float64) float64 {
	return hnu(nu) / float64(kB*(math.Exp(x)-1))
}
