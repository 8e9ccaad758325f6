/*
 * vibspectrum.go, part of oercorr.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package qm reads the vibrational frequencies produced by QM programs,
//so they can be used to obtain thermochemical corrections without copying
//them by hand. Currently it supports the vibspectrum files written by
//Turbomole (aoforce, NumForce) and xtb (--hess, --ohess).
package qm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//Mode is one normal mode, as read from a vibspectrum file.
type Mode struct {
	Number     int
	Symmetry   string  //might be empty
	Wavenumber float64 //cm-1. Imaginary modes are given as negative numbers.
	IR         float64 //IR intensity, km/mol
	Active     bool    //false for translations and rotations
}

//VibSpectrumFile reads the vibspectrum file name. See ReadVibSpectrum.
func VibSpectrumFile(name string) ([]Mode, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("oercorr/qm: VibSpectrumFile: %w", err)
	}
	defer f.Close()
	modes, err := ReadVibSpectrum(f)
	if err != nil {
		return nil, fmt.Errorf("oercorr/qm: VibSpectrumFile: %s: %w", name, err)
	}
	return modes, nil
}

//ReadVibSpectrum reads the modes in a Turbomole/xtb vibspectrum file from r. The
//format is
//	$vibrational spectrum
//	#  mode     symmetry     wave number   IR intensity    selection rules
//	#                         cm**(-1)        km/mol         IR     RAMAN
//	     1                        0.00         0.00000      -       -
//	     7        a             512.31        12.34560     YES     YES
//	$end
//where the symmetry column can be empty. Modes with no IR or Raman
//selection rule ("-" for both) are the translations and rotations.
func ReadVibSpectrum(r io.Reader) ([]Mode, error) {
	var modes []Mode
	s := bufio.NewScanner(r)
	started := false
	for lineno := 1; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(line, "$vibrational spectrum"):
			started = true
			continue
		case strings.HasPrefix(line, "$end"):
			if !started {
				return nil, fmt.Errorf("$end found before $vibrational spectrum, line %d", lineno)
			}
			return checkModes(modes)
		case !started, line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "$"):
			//some other data group. Shouldn't be here, but we can stop.
			return checkModes(modes)
		}
		m, err := parseModeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		modes = append(modes, m)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !started {
		return nil, fmt.Errorf("no $vibrational spectrum data group found")
	}
	return checkModes(modes)
}

func checkModes(modes []Mode) ([]Mode, error) {
	if len(modes) == 0 {
		return nil, fmt.Errorf("no modes in vibrational spectrum")
	}
	return modes, nil
}

func parseModeLine(line string) (Mode, error) {
	var m Mode
	f := strings.Fields(line)
	var err error
	switch len(f) {
	case 6:
		m.Symmetry = f[1]
		f = append(f[:1], f[2:]...)
	case 5:
	default:
		return m, fmt.Errorf("can't parse mode line %q", line)
	}
	m.Number, err = strconv.Atoi(f[0])
	if err != nil {
		return m, fmt.Errorf("bad mode number in %q: %w", line, err)
	}
	m.Wavenumber, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return m, fmt.Errorf("bad wave number in %q: %w", line, err)
	}
	m.IR, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return m, fmt.Errorf("bad IR intensity in %q: %w", line, err)
	}
	m.Active = f[3] != "-" || f[4] != "-"
	return m, nil
}

//Frequencies returns the wavenumbers (cm-1) of the active modes in modes,
//in the same order.
func Frequencies(modes []Mode) []float64 {
	ret := make([]float64, 0, len(modes))
	for _, v := range modes {
		if v.Active {
			ret = append(ret, v.Wavenumber)
		}
	}
	return ret
}

//LargestImaginary returns the absolute value of the largest imaginary (negative)
//wavenumber among the active modes, or 0 if there are no imaginary modes.
//A structure with a large imaginary mode is not a minimum, and its corrections
//are meaningless.
func LargestImaginary(modes []Mode) float64 {
	img := 0.0
	for _, v := range modes {
		if v.Active && v.Wavenumber < 0 && -v.Wavenumber > img {
			img = -v.Wavenumber
		}
	}
	return img
}
