/*
 * conversion.go, part of oercorr.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package corr

//Physical constants. CODATA 2018 values, the same ones used to
//build the OER free energy diagrams we compare against.
const (
	Boltzmann    = 8.617333262e-05 // [eV K-1]
	Planck       = 4.135667696e-15 // [eV s] (eV Hz-1)
	SpeedOfLight = 2.99792458e10   // [cm s-1] Not m/s! frequencies come in cm-1.

	//GasConstant is R/N_A. All our energies and entropies are per molecule,
	//so this is numerically the Boltzmann constant.
	GasConstant = Boltzmann // [eV K-1]
)

//Typed copies of the constants. Go would otherwise fold h*c*nu
//with arbitrary precision at compile time and we want every product
//rounded to float64, as it is for the frequencies the user gives.
var (
	kB = float64(Boltzmann)
	h  = float64(Planck)
	c  = float64(SpeedOfLight)
	gR = float64(GasConstant)
)

//Others
const (
	DefaultTemperature  = 298.15 //K
	DefaultLowModeThres = 50.0   //cm-1, below this S_vib is not to be trusted
)
