/*
 * scan_test.go, part of oercorr.
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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDefaults(Te *testing.T) {
	S, err := TemperatureScan("OOH", []float64{3500.1, 1300.7, 850.2, 400.0})
	require.NoError(Te, err)
	require.Equal(Te, defscansteps, S.Len())
	temps := S.Temperatures()
	assert.InDelta(Te, defscanmin, temps[0], 1e-9)
	assert.InDelta(Te, defscanmax, temps[len(temps)-1], 1e-9)
	totals := S.Totals()
	for i, v := range S.Results {
		assert.Equal(Te, v.Total, totals[i])
		x, y := S.XY(i)
		assert.Equal(Te, v.Temperature, x)
		assert.Equal(Te, v.Total, y)
		if i > 0 {
			assert.Greater(Te, temps[i], temps[i-1])
		}
	}
	//each point is just a Compute at that temperature
	r, err := Compute("OOH", []float64{3500.1, 1300.7, 850.2, 400.0}, temps[5])
	require.NoError(Te, err)
	assert.Equal(Te, r, S.Results[5])
}

func TestScanOptions(Te *testing.T) {
	o := &ScanOptions{Min: 100, Max: 200, Steps: 11}
	S, err := TemperatureScan("O", []float64{3657.0}, o)
	require.NoError(Te, err)
	assert.Equal(Te, 11, S.Len())
	assert.InDelta(Te, 110.0, S.Results[1].Temperature, 1e-9)

	o = &ScanOptions{Min: -5, Max: 0, Steps: 0}
	o.Check()
	assert.Equal(Te, ScanOptions{Min: defscanmin, Max: defscanmax, Steps: defscansteps}, *o)

	o = &ScanOptions{Min: 500, Max: 300, Steps: 3}
	o.Check()
	assert.Equal(Te, 500.0, o.Min)
	assert.Greater(Te, o.Max, o.Min)

	o = &ScanOptions{Min: 350, Max: 100, Steps: 1}
	S, err = TemperatureScan("O", []float64{3657.0}, o)
	require.NoError(Te, err)
	require.Equal(Te, 1, S.Len())
	assert.Equal(Te, 350.0, S.Results[0].Temperature)
	//the options given are not modified
	assert.Equal(Te, 100.0, o.Max)
}

func TestScanInvalid(Te *testing.T) {
	_, err := TemperatureScan("", []float64{3657.0})
	assert.True(Te, errors.Is(err, ErrInvalidArgumentValue))
	_, err = TemperatureScan("O", nil)
	assert.True(Te, errors.Is(err, ErrInvalidArgumentValue))
}

func TestScanTable(Te *testing.T) {
	S, err := TemperatureScan("O", []float64{3657.0}, &ScanOptions{Min: 250, Max: 350, Steps: 3})
	require.NoError(Te, err)
	var b bytes.Buffer
	require.NoError(Te, ScanTable(&b, S))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(Te, lines, 4)
	assert.True(Te, strings.HasPrefix(lines[1], "250"))
	assert.True(Te, strings.HasPrefix(lines[3], "350"))
}
