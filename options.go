/*
 * options.go, part of gochem.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package xtal

import (
	"log/slog"

	"github.com/pslacerda1/pymol-open-source/fft3"
)

//Options contains the settings for the structure factors-to-map pipeline.
type Options struct {
	normalize   bool    //z-score the output map
	nyquist     float64 //sampling rate relative to the highest resolution
	maxGridDim  int     //largest allowed grid axis, 0 means no limit
	transformer Transformer
	logger      *slog.Logger
}

//DefaultOptions returns the settings PyMOL uses for CCP4-like maps:
//normalized output, a Nyquist factor of 2 and no bound on the grid dimensions.
//The transform is a new fft3.Transform.
func DefaultOptions() *Options {
	r := new(Options)
	r.normalize = true
	r.nyquist = 2.0
	r.maxGridDim = 0
	r.transformer = fft3.New()
	r.logger = slog.Default()
	return r
}

//Normalize returns whether the output map will be normalized to zero mean and
//unit standard deviation, and sets it to a new value, if given.
func (O *Options) Normalize(n ...bool) bool {
	if len(n) > 0 {
		O.normalize = n[0]
	}
	return O.normalize
}

//NyquistRate returns the grid sampling rate relative to the highest resolution
//of the data, and sets it to a new value, if a positive one is given.
func (O *Options) NyquistRate(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.nyquist = r[0]
	}
	if O.nyquist <= 0 {
		O.nyquist = 2.0
	}
	return O.nyquist
}

//MaxGridDim returns the largest number of points allowed along any grid axis,
//and sets it to a new value, if given. 0 (or a negative value) means no limit.
func (O *Options) MaxGridDim(n ...int) int {
	if len(n) > 0 {
		O.maxGridDim = n[0]
		if O.maxGridDim < 0 {
			O.maxGridDim = 0
		}
	}
	return O.maxGridDim
}

//Transformer returns the Fourier-transform implementation to be used, and
//sets it to a new one, if a non-nil one is given.
func (O *Options) Transformer(t ...Transformer) Transformer {
	if len(t) > 0 && t[0] != nil {
		O.transformer = t[0]
	}
	if O.transformer == nil {
		O.transformer = fft3.New()
	}
	return O.transformer
}

//Logger returns the logger for the pipeline's diagnostics, and sets it
//to a new one, if a non-nil one is given.
func (O *Options) Logger(l ...*slog.Logger) *slog.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	if O.logger == nil {
		O.logger = slog.Default()
	}
	return O.logger
}
