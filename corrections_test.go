/*
 * corrections_test.go, part of oercorr.
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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//TestOxygen obtains the corrections for an O adsorbate with one
//O-surface stretching mode at room temperature.
func TestOxygen(Te *testing.T) {
	r, err := Compute("O", []float64{3657.0}, 298.15)
	require.NoError(Te, err)
	fmt.Print(r)
	assert.Equal(Te, "O", r.Name)
	assert.InEpsilon(Te, 0.2267051067844635, r.ZPE, 1e-12)
	assert.InEpsilon(Te, 3.4815678972166195e-11, r.SVib, 1e-6) //1-exp(-x) is ill-conditioned here
	assert.InEpsilon(Te, 9.823636399438138e-09, r.DeltaU, 1e-9)
	assert.InEpsilon(Te, 0.22670510622780524, r.Total, 1e-12)
	ts := float64(298.15 * r.SVib)
	assert.Equal(Te, r.ZPE-ts+r.DeltaU, r.Total)
}

func TestSeveralModes(Te *testing.T) {
	r, err := Compute("OH", []float64{3600.0, 450.0, 380.0}, 298.15)
	require.NoError(Te, err)
	fmt.Print(r)
	assert.InEpsilon(Te, 0.2746249994681907, r.ZPE, 1e-12)
	assert.InEpsilon(Te, 7.957044405647422e-05, r.SVib, 1e-10)
	assert.InEpsilon(Te, 0.016140309402153927, r.DeltaU, 1e-10)
	assert.InEpsilon(Te, 0.2670413809749068, r.Total, 1e-10)
}

//With only one mode, each sum is a single term.
func TestSingleMode(Te *testing.T) {
	hh, cc, k := Planck, SpeedOfLight, Boltzmann
	T := 300.0
	nu := 1000.0
	r, err := Compute("X", []float64{nu}, T)
	require.NoError(Te, err)
	assert.Equal(Te, 0.5*float64(hh*cc*nu), r.ZPE)
	x := float64(hh*cc*nu) / float64(k*T)
	svib := k * (x/(math.Exp(x)-1) - math.Log(1-math.Exp(-x)))
	du := hh * cc * nu / (math.Exp(x) - 1)
	assert.InEpsilon(Te, svib, r.SVib, 1e-12)
	assert.InEpsilon(Te, du, r.DeltaU, 1e-12)
	assert.InEpsilon(Te, 4.158586270127752e-06, r.SVib, 1e-9)
	assert.InEpsilon(Te, 0.0010330637492707957, r.DeltaU, 1e-9)
}

func TestPure(Te *testing.T) {
	freqs := []float64{3657.0, 820.5, 410.2, 98.3}
	r1, err := Compute("OOH", freqs, 310.0)
	require.NoError(Te, err)
	r2, err := Compute("OOH", freqs, 310.0)
	require.NoError(Te, err)
	assert.Equal(Te, *r1, *r2)
	assert.Equal(Te, []float64{3657.0, 820.5, 410.2, 98.3}, freqs, "the input must not be modified")
}

func TestZPEMonotonic(Te *testing.T) {
	base := []float64{3600.0, 450.0, 380.0}
	zpe := ZPE(base)
	for i := range base {
		mod := append([]float64(nil), base...)
		mod[i] += 0.5
		assert.Greater(Te, ZPE(mod), zpe, "increasing mode %d", i)
	}
	assert.Equal(Te, 0.0, ZPE([]float64{0}))
	assert.GreaterOrEqual(Te, ZPE([]float64{0, 12.0, 1e4}), 0.0)
}

func TestAggregation(Te *testing.T) {
	for _, T := range []float64{10, 77.3, 298.15, 500, 1200} {
		r, err := Compute("H", []float64{1890.2, 655.7, 640.1}, T)
		require.NoError(Te, err)
		assert.Equal(Te, r.ZPE-r.TS()+r.DeltaU, r.Total, "T=%f", T)
		assert.Equal(Te, float64(T*r.SVib), r.TS())
	}
}

//Low frequencies are computed, not rejected.
func TestLenient(Te *testing.T) {
	r, err := Compute("H2O", []float64{5.0}, 1000)
	require.NoError(Te, err)
	assert.Greater(Te, r.SVib, 0.0)
	r, err = Compute("H2O", []float64{-120.0, 1600}, 298.15)
	require.NoError(Te, err)
	assert.True(Te, math.IsNaN(r.SVib))
}

func TestInvalid(Te *testing.T) {
	cases := []struct {
		name  string
		freqs []float64
		T     float64
		kind  error
		msg   string
	}{
		{"", []float64{100}, 298.15, ErrInvalidArgumentValue, MsgNameEmpty},
		{"O", []float64{}, 298.15, ErrInvalidArgumentValue, MsgFreqsEmpty},
		{"O", nil, 298.15, ErrInvalidArgumentValue, MsgFreqsEmpty},
		{"O", []float64{100}, 0.0, ErrInvalidArgumentValue, MsgTempValue},
		{"O", []float64{100}, -5.0, ErrInvalidArgumentValue, MsgTempValue},
		{"O", []float64{100, math.NaN()}, 298.15, ErrInvalidArgumentType, "Frequencies must be floating point values. Invalid element: NaN."},
		{"O", []float64{math.Inf(1)}, 298.15, ErrInvalidArgumentType, "Frequencies must be floating point values. Invalid element: +Inf."},
		{"O", []float64{100}, math.NaN(), ErrInvalidArgumentType, MsgTempType},
		//the order of the checks
		{"", nil, -1, ErrInvalidArgumentValue, MsgNameEmpty},
		{"O", nil, -1, ErrInvalidArgumentValue, MsgFreqsEmpty},
		{"O", []float64{math.NaN()}, -1, ErrInvalidArgumentType, "Frequencies must be floating point values. Invalid element: NaN."},
	}
	for i, v := range cases {
		r, err := Compute(v.name, v.freqs, v.T)
		assert.Nil(Te, r, "case %d", i)
		require.Error(Te, err, "case %d", i)
		assert.True(Te, errors.Is(err, v.kind), "case %d: wrong kind %v", i, err)
		assert.Equal(Te, v.msg, err.Error(), "case %d", i)
	}
}

func TestDecorate(Te *testing.T) {
	_, err := Compute("O", []float64{100}, -5)
	var e *Error
	require.True(Te, errors.As(err, &e))
	deco := e.Decorate("")
	fmt.Println("Trail:", deco)
	assert.Equal(Te, []string{"Request.Validate", "Compute"}, deco)
	assert.False(Te, errors.Is(err, ErrInvalidArgumentType))
}

func TestRequest(Te *testing.T) {
	R := Request{Name: "OH", Frequencies: []float64{3600.0, 450.0}, Temperature: 298.15}
	require.NoError(Te, R.Validate())
	r1, err := R.Compute()
	require.NoError(Te, err)
	r2, err := Compute(R.Name, R.Frequencies, R.Temperature)
	require.NoError(Te, err)
	assert.Equal(Te, r2, r1)
	R.Temperature = 0
	assert.ErrorIs(Te, R.Validate(), ErrInvalidArgumentValue)
}
