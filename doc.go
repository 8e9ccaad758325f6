/*
 * doc.go, part of oercorr.
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

/*Package corr obtains the vibrational thermochemistry corrections needed to turn
electronic energies of adsorbed species into free energies, as done when building
free energy diagrams for the oxygen evolution reaction (OER) and similar
electrocatalytic processes.

For each adsorbate, given its vibrational frequencies (in cm-1) and a temperature
(in K) it obtains, in the harmonic approximation:

    The zero-point energy, ZPE = 1/2 Σ hcν_i, in eV.

    The vibrational entropy, S_vib = R Σ [x_i/(e^x_i - 1) - ln(1 - e^-x_i)],
	with x_i = hcν_i/kBT, in eV/K.

    The internal energy variation from 0 K to T,  ΔU = R Σ hcν_i/kB(e^x_i - 1), in eV.

    The total correction, ZPE - T*S_vib + ΔU, in eV.

R here is the gas constant per molecule, i.e. the Boltzmann constant, as all
quantities are per molecule.

Compute is the main entry point. It validates its input and returns a *Result,
which can print itself (Result.String, Result.Report). Several results can be
printed as a table with Table. The contribution of each individual mode is
available from Modes, and corrections over a range of temperatures
can be obtained with TemperatureScan (see the corrplot package to plot them).

Frequencies are not required to be positive. Modes with very small frequencies
give large, unreliable entropies (use LowModes to find them), and zero or negative
frequencies will give NaN. Nothing is clamped.

The config package reads the TOML files used to describe a set of adsorbates, and
the command oercorr (cmd/oercorr) puts everything together.*/
package corr
