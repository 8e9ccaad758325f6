/*
 * main.go, part of oercorr.
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

//Command oercorr prints the ZPE, vibrational entropy and internal energy corrections
//for the adsorbates listed in a TOML file (data.toml by default).
//
//All flags can also be given as environment variables with the OERCORR_ prefix,
//for instance OERCORR_TEMPERATURE=310 or OERCORR_KEEP_GOING=true.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	corr "github.com/rmera/oercorr"
	"github.com/rmera/oercorr/config"
	"github.com/rmera/oercorr/corrplot"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCmd(newViper()).Execute(); err != nil {
		log.Error().Err(err).Msg("oercorr failed")
		os.Exit(1)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("OERCORR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "oercorr",
		Short:         "ZPE, S_vib and deltaU corrections for adsorbates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if v.GetBool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCorrections(cmd.OutOrStdout(), v)
		},
	}
	pf := root.PersistentFlags()
	pf.StringP("config", "c", config.DefaultFile, "TOML file with the temperature and the adsorbates")
	pf.Float64P("temperature", "t", 0, "temperature in K, replaces the one in the configuration file")
	pf.Bool("verbose", false, "print debug information")
	pf.Bool("keep-going", false, "report invalid adsorbates and continue with the rest")

	f := root.Flags()
	f.Bool("modes", false, "also print the contribution of each vibrational mode")
	f.Bool("table", false, "print all the adsorbates in one table instead of one report each")
	f.Float64("low-mode", corr.DefaultLowModeThres, "warn about modes below this wavenumber (cm-1)")

	root.AddCommand(newScanCmd(v))
	return root
}

func newScanCmd(v *viper.Viper) *cobra.Command {
	scan := &cobra.Command{
		Use:   "scan",
		Short: "Corrections over a range of temperatures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.OutOrStdout(), v)
		},
	}
	o := new(corr.ScanOptions)
	o.SetDefaults()
	f := scan.Flags()
	f.Float64("min", o.Min, "lowest temperature of the scan (K)")
	f.Float64("max", o.Max, "highest temperature of the scan (K)")
	f.Int("steps", o.Steps, "number of temperatures in the scan")
	f.String("plot", "", "save a plot of the total corrections to this file (png, svg, pdf)")
	return scan
}

//specimen is an adsorbate that passed the checks, or the error that it produced.
type specimen struct {
	name string //as given in the file, for error reporting
	req  corr.Request
	err  error
}

//loadSpecimens reads the configuration file. It returns an error for problems
//with the file itself. Problems with the adsorbates are returned in the specimens.
func loadSpecimens(v *viper.Viper) ([]specimen, error) {
	path := v.GetString("config")
	in, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if T := v.GetFloat64("temperature"); T != 0 {
		in.SetTemperature(T)
	}
	log.Debug().Str("file", path).Interface("temperature", in.Temperature).Int("specimens", len(in.Specimen)).Msg("Configuration read")
	if len(in.Specimen) == 0 {
		return nil, config.ErrNoSpecimen
	}
	ret := make([]specimen, 0, len(in.Specimen))
	for i, s := range in.Specimen {
		r, err := in.Request(i)
		ret = append(ret, specimen{name: fmt.Sprint(s.Name), req: r, err: err})
	}
	return ret, nil
}

//handle returns err if the run should stop, or logs it and returns nil
//if we were asked to keep going.
func handle(v *viper.Viper, i int, name string, err error) error {
	if !v.GetBool("keep-going") {
		return fmt.Errorf("specimen %d (%s): %w", i, name, err)
	}
	log.Error().Err(err).Int("specimen", i).Str("name", name).Msg("Skipping invalid specimen")
	return nil
}

func runCorrections(out io.Writer, v *viper.Viper) error {
	specs, err := loadSpecimens(v)
	if err != nil {
		return err
	}
	var results []*corr.Result
	for i, s := range specs {
		if s.err != nil {
			if err := handle(v, i, s.name, s.err); err != nil {
				return err
			}
			continue
		}
		warnLowModes(s.req, v.GetFloat64("low-mode"))
		r, err := s.req.Compute()
		if err != nil {
			if err := handle(v, i, s.name, err); err != nil {
				return err
			}
			continue
		}
		if v.GetBool("table") {
			results = append(results, r)
			continue
		}
		if err := r.Report(out); err != nil {
			return err
		}
		if v.GetBool("modes") {
			modes, err := corr.Modes(s.req.Frequencies, s.req.Temperature)
			if err != nil {
				return err
			}
			if err := corr.ModesTable(out, modes); err != nil {
				return err
			}
		}
	}
	if len(results) > 0 {
		return corr.Table(out, results)
	}
	return nil
}

func warnLowModes(r corr.Request, thres float64) {
	for _, i := range corr.LowModes(r.Frequencies, thres) {
		log.Warn().Str("name", r.Name).Int("mode", i).Float64("wavenumber", r.Frequencies[i]).Float64("threshold", thres).Msg("Low frequency mode, its entropy is not reliable")
	}
}

func runScan(out io.Writer, v *viper.Viper) error {
	o := &corr.ScanOptions{Min: v.GetFloat64("min"), Max: v.GetFloat64("max"), Steps: v.GetInt("steps")}
	o.Check()
	//The temperature in the file is irrelevant for a scan, but the
	//adsorbates are checked with it.
	v.Set("temperature", o.Min)
	specs, err := loadSpecimens(v)
	if err != nil {
		return err
	}
	var scans []*corr.Scan
	for i, s := range specs {
		if s.err != nil {
			if err := handle(v, i, s.name, s.err); err != nil {
				return err
			}
			continue
		}
		S, err := corr.TemperatureScan(s.req.Name, s.req.Frequencies, o)
		if err != nil {
			if err := handle(v, i, s.name, err); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "Specimen: %s\n", S.Name)
		if err := corr.ScanTable(out, S); err != nil {
			return err
		}
		scans = append(scans, S)
	}
	if plotfile := v.GetString("plot"); plotfile != "" && len(scans) > 0 {
		if err := corrplot.ScanPlot(scans, "Free energy corrections", plotfile); err != nil {
			return err
		}
		log.Info().Str("file", plotfile).Msg("Plot saved")
	}
	return nil
}
