/*
 * json.go, part of gochem.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mapjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	xtal "github.com/pslacerda1/pymol-open-source"
	v3 "github.com/pslacerda1/pymol-open-source/v3"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool //If error, was it in parsing the request?
	InProcess     bool //Was it computing the map?
	InPostProcess bool //was it in preparing the output?
	Critical      bool
	Section       int    //Which section of the map, if any.
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors...
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.Critical = true
	jerr.Section = -1
	switch where {
	case "request":
		jerr.InRequest = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	if c, ok := err.(interface{ Critical() bool }); ok {
		jerr.Critical = c.Critical()
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Info describes a map, and it is the first thing sent when transmitting one.
//It is followed by Grid[0] Sections.
type Info struct {
	Cell       [6]float64 //a, b, c, alpha, beta, gamma
	Grid       [3]int
	Normalized bool
	Ops        []string //symmetry operators, in the x,y,z notation
	FracToCart [9]float64
	ExtentMin  [3]float64
	ExtentMax  [3]float64
	Corners    [][3]float64
	Min, Max   float64
	Mean, SD   float64
}

//Section contains the densities of the plane of the map with first index Index,
//with the last axis varying fastest.
type Section struct {
	Index  int
	Values []float64
}

//SendMap encodes the map in ms and writes it to out: first an Info, then one Section
//per point along the first axis, each in one line.
func SendMap(ms *xtal.MapState, out io.Writer) *Error {
	const funcname = "SendMap"
	if ms == nil || ms.Map == nil {
		return NewError("postprocess", funcname, fmt.Errorf("nil map given"))
	}
	enc := json.NewEncoder(out)
	info := NewInfo(ms)
	if err := enc.Encode(info); err != nil {
		return NewError("postprocess", funcname+"(info)", err)
	}
	shape := ms.Map.Shape()
	plane := shape[1] * shape[2]
	sec := new(Section)
	for i := 0; i < shape[0]; i++ {
		sec.Index = i
		sec.Values = ms.Map.Data[i*plane : (i+1)*plane]
		if err := enc.Encode(sec); err != nil {
			jerr := NewError("postprocess", funcname+"(section)", err)
			jerr.Section = i
			return jerr
		}
	}
	return nil
}

//NewInfo returns the Info describing ms.
func NewInfo(ms *xtal.MapState) *Info {
	c := ms.Cell()
	info := &Info{
		Cell:       [6]float64{c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma},
		Grid:       ms.Map.Shape(),
		Normalized: ms.Normalized,
		ExtentMin:  ms.ExtentMin,
		ExtentMax:  ms.ExtentMax,
	}
	for _, op := range ms.Ops {
		info.Ops = append(info.Ops, op.String())
	}
	M := ms.FracToCart()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			info.FracToCart[3*i+j] = M.At(i, j)
		}
	}
	for i := 0; i < ms.Corners.NVecs(); i++ {
		info.Corners = append(info.Corners, ms.Corners.Vec(i))
	}
	st := xtal.MapStatistics(ms.Map, nil)
	info.Min, info.Max, info.Mean, info.SD = st.Min, st.Max, st.Mean, st.SD
	return info
}

//DecodeMap decodes a map sent by SendMap.
func DecodeMap(stream *bufio.Reader) (*xtal.MapState, *Error) {
	const funcname = "DecodeMap"
	line, err := stream.ReadBytes('\n')
	if err != nil {
		return nil, NewError("request", funcname, err)
	}
	info := new(Info)
	if err := json.Unmarshal(line, info); err != nil {
		return nil, NewError("request", funcname, err)
	}
	cell, ops, jerr := decodeCell(info.Cell, info.Ops, funcname)
	if jerr != nil {
		return nil, jerr
	}
	for _, v := range info.Grid {
		if v <= 0 {
			return nil, NewError("request", funcname, fmt.Errorf("invalid grid %v", info.Grid))
		}
	}
	if _, err := xtal.GridPoints(info.Grid); err != nil {
		return nil, NewError("request", funcname, err)
	}
	M := xtal.NewDensityMap(info.Grid)
	plane := info.Grid[1] * info.Grid[2]
	for i := 0; i < info.Grid[0]; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil {
			jerr := NewError("request", funcname, fmt.Errorf("Error reading section %d: %s", i, err.Error()))
			jerr.Section = i
			return nil, jerr
		}
		sec := new(Section)
		if err := json.Unmarshal(line, sec); err != nil {
			jerr := NewError("request", funcname, err)
			jerr.Section = i
			return nil, jerr
		}
		if sec.Index != i || len(sec.Values) != plane {
			jerr := NewError("request", funcname, fmt.Errorf("section %d has index %d and %d values, %d expected", i, sec.Index, len(sec.Values), plane))
			jerr.Section = i
			return nil, jerr
		}
		copy(M.Data[i*plane:], sec.Values)
	}
	ms := xtal.NewMapState(M, cell, ops)
	ms.Normalized = info.Normalized
	return ms, nil
}

func decodeCell(c [6]float64, sops []string, funcname string) (xtal.UnitCell, []xtal.SymOp, *Error) {
	cell := xtal.UnitCell{A: c[0], B: c[1], C: c[2], Alpha: c[3], Beta: c[4], Gamma: c[5]}
	if err := cell.Validate(); err != nil {
		return cell, nil, NewError("request", funcname, err)
	}
	ops, err := xtal.ParseSymOps(sops)
	if err != nil {
		return cell, nil, NewError("request", funcname, err)
	}
	return cell, ops, nil
}

//CornerMatrix returns the corners in info as a v3.Matrix.
func (info *Info) CornerMatrix() (*v3.Matrix, error) {
	raw := make([]float64, 0, 3*len(info.Corners))
	for _, c := range info.Corners {
		raw = append(raw, c[:]...)
	}
	return v3.NewMatrix(raw)
}
