/*
 * request.go, part of gochem.
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

package mapjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	xtal "github.com/pslacerda1/pymol-open-source"
)

//Request contains the data and options passed from the calling program
//to compute a map. The reflections go in columns, as in the _refln loop
//of a CIF file.
type Request struct {
	Cell      [6]float64
	Ops       []string
	H, K, L   []int
	Amplitude []float64
	Phase     []float64 //degrees
	FOM       []float64 //if empty, all the figures of merit are taken as 1.
	//Options. Zero values mean the defaults.
	Normalize   *bool
	NyquistRate float64
	MaxGridDim  int
}

//DecodeRequest Decodes or unmarshals a one-line JSON request
func DecodeRequest(stdin *bufio.Reader) (*Request, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("request", "DecodeRequest", err)
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("request", "DecodeRequest", err)
	}
	return ret, nil
}

//Reflections returns the reflection table of the request.
func (R *Request) Reflections() *xtal.ReflnColumns {
	fom := R.FOM
	if len(fom) == 0 {
		fom = make([]float64, len(R.H))
		for i := range fom {
			fom[i] = 1
		}
	}
	return &xtal.ReflnColumns{H: R.H, K: R.K, L: R.L, Amplitude: R.Amplitude, Phase: R.Phase, FOM: fom}
}

//Options returns the options of the request, on top of the given
//ones, or of xtal.DefaultOptions() if O is nil.
func (R *Request) Options(O *xtal.Options) *xtal.Options {
	if O == nil {
		O = xtal.DefaultOptions()
	}
	if R.Normalize != nil {
		O.Normalize(*R.Normalize)
	}
	O.NyquistRate(R.NyquistRate)
	if R.MaxGridDim > 0 {
		O.MaxGridDim(R.MaxGridDim)
	}
	return O
}

//Reconstruct computes the map described by the request.
func (R *Request) Reconstruct(O *xtal.Options) (*xtal.MapState, *Error) {
	cell, ops, jerr := decodeCell(R.Cell, R.Ops, "Request.Reconstruct")
	if jerr != nil {
		return nil, jerr
	}
	ms, err := xtal.Reconstruct(cell, ops, R.Reflections(), R.Options(O))
	if err != nil {
		return nil, NewError("process", "Request.Reconstruct", err)
	}
	return ms, nil
}

//Serve reads a request from in, computes the map and sends it to out.
//If anything fails, the error is sent instead, and also returned.
func Serve(in io.Reader, out io.Writer, O *xtal.Options) *Error {
	R, jerr := DecodeRequest(bufio.NewReader(in))
	if jerr == nil {
		var ms *xtal.MapState
		ms, jerr = R.Reconstruct(O)
		if jerr == nil {
			jerr = SendMap(ms, out)
		}
	}
	if jerr != nil {
		jerr.Decorate("Serve")
		fmt.Fprintf(out, "%s\n", jerr.Marshal())
	}
	return jerr
}
