/*
 * toml.go, part of oercorr.
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

//Package config reads the TOML files that describe a set of adsorbates
//and the temperature at which their corrections are wanted:
//
//	temperature = 298.15
//
//	[[specimen]]
//	name = "O"
//	frequencies = [3657.0]
//
//	[[specimen]]
//	name = "OH"
//	vibspectrum = "OH/vibspectrum"
//
//Instead of a list of frequencies, a specimen can give the path to a Turbomole or
//xtb vibspectrum file, relative to the configuration file.
//Files with the .zst extension are decompressed with zstd before being read.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"

	corr "github.com/rmera/oercorr"
	"github.com/rmera/oercorr/qm"
)

//DefaultFile is the name of the configuration file used if no other is given.
const DefaultFile = "data.toml"

//ErrNoSpecimen is returned by Input.Requests if the configuration lists no adsorbates.
var ErrNoSpecimen = errors.New("config: no specimen in configuration")

//Specimen is one adsorbate, as found in the file. The types are not checked
//when the file is read, but when the requests are built.
type Specimen struct {
	Name        any    `toml:"name"`
	Frequencies any    `toml:"frequencies"`
	Vibspectrum string `toml:"vibspectrum"`
}

//Input is the content of a configuration file.
type Input struct {
	Temperature any        `toml:"temperature"`
	Specimen    []Specimen `toml:"specimen"`

	dir string //vibspectrum paths are relative to this.
}

//SetTemperature replaces the temperature read from the file.
func (I *Input) SetTemperature(T float64) {
	I.Temperature = T
}

//Load reads the configuration file in path. If path ends in ".zst", the file is first
//decompressed. A missing file gives an error that wraps fs.ErrNotExist.
func Load(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: the .toml configuration file %s was not found: %w", path, err)
		}
		return nil, fmt.Errorf("config: failed to open %s: %w", path, err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("config: failed to decompress %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}
	in, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	in.dir = filepath.Dir(path)
	return in, nil
}

//Decode reads a configuration from r.
func Decode(r io.Reader) (*Input, error) {
	in := new(Input)
	if _, err := toml.NewDecoder(r).Decode(in); err != nil {
		return nil, err
	}
	return in, nil
}

//Parse reads a configuration from data.
func Parse(data []byte) (*Input, error) {
	return Decode(bytes.NewReader(data))
}

//Requests returns one request per adsorbate in I, in the order they appear in the file.
//The first invalid adsorbate aborts the process. The checks for each adsorbate are done in
//this order: type of the name, its length, type of the frequency list, its length,
//type of each frequency, type of the temperature and its value.
//Integers are accepted wherever a real number is expected.
func (I *Input) Requests() ([]corr.Request, error) {
	if len(I.Specimen) == 0 {
		return nil, ErrNoSpecimen
	}
	ret := make([]corr.Request, 0, len(I.Specimen))
	for i := range I.Specimen {
		r, err := I.Request(i)
		if err != nil {
			return nil, err
		}
		ret = append(ret, r)
	}
	return ret, nil
}

//Request returns the request for the ith adsorbate in I. If the adsorbate has no
//frequencies, but a vibspectrum file, the frequencies of the active modes are read from
//the file (translations and rotations are left out).
func (I *Input) Request(i int) (corr.Request, error) {
	v := I.Specimen[i]
	freqs := v.Frequencies
	if freqs == nil && v.Vibspectrum != "" {
		path := v.Vibspectrum
		if !filepath.IsAbs(path) {
			path = filepath.Join(I.dir, path)
		}
		modes, err := qm.VibSpectrumFile(path)
		if err != nil {
			return corr.Request{}, fmt.Errorf("config: specimen %v: %w", v.Name, err)
		}
		freqs = qm.Frequencies(modes)
	}
	return NewRequest(v.Name, freqs, I.Temperature)
}

//NewRequest builds a request from untyped values, such as those obtained
//from a TOML or JSON decoder. It returns errors of the same kinds as corr.Compute.
func NewRequest(name, frequencies, temperature any) (corr.Request, error) {
	var zero corr.Request
	n, ok := name.(string)
	if !ok {
		return zero, corr.NewError(corr.ErrInvalidArgumentType, corr.MsgNameType)
	}
	if err := corr.CheckName(n); err != nil {
		return zero, err
	}
	var list []any
	switch l := frequencies.(type) {
	case []any:
		list = l
	case []float64:
		list = make([]any, len(l))
		for i, v := range l {
			list[i] = v
		}
	default:
		return zero, corr.NewError(corr.ErrInvalidArgumentType, corr.MsgFreqsType)
	}
	if len(list) == 0 {
		return zero, corr.NewError(corr.ErrInvalidArgumentValue, corr.MsgFreqsEmpty)
	}
	freqs := make([]float64, 0, len(list))
	for _, v := range list {
		f, ok := asReal(v)
		if !ok {
			return zero, corr.NewError(corr.ErrInvalidArgumentType, corr.MsgFreqElementType, v)
		}
		freqs = append(freqs, f)
	}
	if err := corr.CheckFrequencies(freqs); err != nil {
		return zero, err
	}
	T, ok := asReal(temperature)
	if !ok {
		return zero, corr.NewError(corr.ErrInvalidArgumentType, corr.MsgTempType)
	}
	if err := corr.CheckTemperature(T); err != nil {
		return zero, err
	}
	return corr.Request{Name: n, Frequencies: freqs, Temperature: T}, nil
}

//asReal returns v as a float64, if v is a real number.
func asReal(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
