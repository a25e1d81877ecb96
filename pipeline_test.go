/*
 * pipeline_test.go, part of gochem.
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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"strings"
	"testing"
)

//a P2_1 cell with a handful of reflections.
func p21Data() (UnitCell, []SymOp, Reflections) {
	cell := UnitCell{12, 9, 14, 90, 104, 90}
	ops, _ := ParseSymOps([]string{"x,y,z", "-x,y+1/2,-z"})
	refl := Reflections{
		{HKL: [3]int{0, 0, 0}, Amplitude: 40, Phase: 0, FOM: 1},
		{HKL: [3]int{1, 0, 0}, Amplitude: 12, Phase: 180, FOM: 0.9},
		{HKL: [3]int{1, 1, 0}, Amplitude: 7, Phase: 63, FOM: 0.8},
		{HKL: [3]int{0, 2, 1}, Amplitude: 9, Phase: 211, FOM: 0.95},
		{HKL: [3]int{-1, 1, 2}, Amplitude: 5, Phase: 300, FOM: 0.7},
		{HKL: [3]int{2, 1, -1}, Amplitude: 3, Phase: 15, FOM: 0.6},
		{HKL: [3]int{0, 3, 0}, Amplitude: 0, Phase: 0, FOM: 1},
	}
	return cell, ops, refl
}

func TestExampleScenario(Te *testing.T) {
	cell := UnitCell{10, 10, 10, 90, 90, 90}
	refl := oneReflection(1, 0, 0)
	O := DefaultOptions()
	O.Normalize(false)
	M, err := StructureFactorsToMap(cell, []SymOp{Identity()}, refl, O)
	if err != nil {
		Te.Fatal(err)
	}
	if M.Shape() != [3]int{2, 2, 2} {
		Te.Fatalf("Expected a 2x2x2 map, got %v", M.Shape())
	}
	for flat, v := range M.Data {
		idx := (&ReciprocalGrid{shape: M.Shape()}).Index(flat)
		expected := math.Pow(-1, float64(idx[0])) / 1000
		if !near(v, expected, 1e-12) {
			Te.Errorf("Density at %v should be %g, got %g", idx, expected, v)
		}
	}
	ms, err := Reconstruct(cell, []SymOp{Identity()}, refl, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !ms.Normalized {
		Te.Error("The map should be normalized by default")
	}
	for i, v := range ms.Map.Data {
		if !near(math.Abs(v), 1, 1e-9) {
			Te.Errorf("Normalized density at %d should be +-1, got %g", i, v)
		}
	}
}

//the map must equal the direct sum (1/V)·Σ F(hkl)·exp(2πi(hx+ky+lz)) over the completed grid.
func TestAgainstDirectSum(Te *testing.T) {
	cell, ops, refl := p21Data()
	O := DefaultOptions()
	O.Normalize(false)
	M, err := StructureFactorsToMap(cell, ops, refl, O)
	if err != nil {
		Te.Fatal(err)
	}
	shape, _ := GridSize(refl, Reciprocal(cell), O)
	G := NewReciprocalGrid(shape)
	ExpandSymmetry(G, refl, ops)
	CompleteFriedel(G)
	V := cell.Volume()
	for flat := 0; flat < M.Len(); flat += 7 {
		x := G.Index(flat)
		var sum complex128
		for k, F := range G.Data {
			if F == 0 {
				continue
			}
			h := G.Index(k)
			arg := 2 * math.Pi * (float64(h[0]*x[0])/float64(shape[0]) + float64(h[1]*x[1])/float64(shape[1]) + float64(h[2]*x[2])/float64(shape[2]))
			sum += F * cmplx.Exp(complex(0, arg))
		}
		if !near(M.Data[flat], real(sum)/V, 1e-9) {
			Te.Errorf("Density at %v: %g, direct sum gives %g", x, M.Data[flat], real(sum)/V)
		}
		if math.Abs(imag(sum)) > 1e-9 {
			Te.Errorf("The direct sum at %v should be real, got %v", x, sum)
		}
	}
}

func TestAmplitudeScaling(Te *testing.T) {
	cell, ops, refl := p21Data()
	O := DefaultOptions()
	O.Normalize(false)
	M1, err := StructureFactorsToMap(cell, ops, refl, O)
	if err != nil {
		Te.Fatal(err)
	}
	scaled := make(Reflections, len(refl))
	for i, r := range refl {
		r.Amplitude *= 3
		scaled[i] = r
	}
	M3, err := StructureFactorsToMap(cell, ops, scaled, O)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range M1.Data {
		if !near(M3.Data[i], 3*M1.Data[i], 1e-9) {
			Te.Errorf("Point %d: %g is not 3 times %g", i, M3.Data[i], M1.Data[i])
		}
	}
}

func TestNormalizedMapIsFinite(Te *testing.T) {
	cell, ops, refl := p21Data()
	ms, err := Reconstruct(cell, ops, refl, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range ms.Map.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Te.Fatalf("Point %d is not finite: %g", i, v)
		}
	}
	st := MapStatistics(ms.Map, refl)
	if !near(st.Mean, 0, 1e-9) || !near(st.SD, 1, 1e-9) {
		Te.Errorf("Expected mean 0 and sd 1, got %s", st)
	}
	if ms.Div != ms.Map.Shape() || len(ms.Ops) != 2 {
		Te.Errorf("Unexpected map state %s", ms)
	}
}

func TestPipelineErrors(Te *testing.T) {
	cell, ops, refl := p21Data()
	cases := []struct {
		cell   UnitCell
		ops    []SymOp
		refl   ReflectionSource
		target error
	}{
		{UnitCell{10, 10, 10, 120, 120, 120}, ops, refl, ErrDegenerateCell},
		{UnitCell{10, 0, 10, 90, 90, 90}, ops, refl, ErrDegenerateCell},
		{cell, nil, refl, ErrNoSymmetry},
		{cell, []SymOp{}, refl, ErrNoSymmetry},
		{cell, ops, Reflections{}, ErrNoReflections},
		{cell, ops, nil, ErrNoReflections},
		{cell, ops, oneReflection(0, 0, 0), ErrNoReflections},
		{UnitCell{10, 10, 10, 90, 90, 90}, []SymOp{Identity()}, oneReflection(100000, 0, 0), ErrGridTooLarge},
	}
	for i, c := range cases {
		ms, err := Reconstruct(c.cell, c.ops, c.refl, nil)
		if !errors.Is(err, c.target) {
			Te.Errorf("Case %d: expected %v, got %v", i, c.target, err)
		}
		if ms != nil {
			Te.Errorf("Case %d: no map should be returned on error", i)
		}
		if e, ok := err.(Error); !ok || !e.Critical() {
			Te.Errorf("Case %d: expected a critical Error, got %#v", i, err)
		}
	}
	O := DefaultOptions()
	O.MaxGridDim(4)
	if _, err := StructureFactorsToMap(cell, ops, refl, O); !errors.Is(err, ErrGridTooLarge) {
		Te.Errorf("Expected ErrGridTooLarge, got %v", err)
	}
}

type failingTransform struct{}

func (failingTransform) GoodSize(n int) int { return n }
func (failingTransform) Inverse(data []complex128, shape, strides [3]int) error {
	return fmt.Errorf("out of luck")
}

func TestTransformFailure(Te *testing.T) {
	cell, ops, refl := p21Data()
	O := DefaultOptions()
	O.Transformer(failingTransform{})
	M, err := StructureFactorsToMap(cell, ops, refl, O)
	if !errors.Is(err, ErrTransformFail) || M != nil {
		Te.Errorf("Expected ErrTransformFail and no map, got %v", err)
	}
}

func TestPipelineLogging(Te *testing.T) {
	cell, ops, refl := p21Data()
	var buf bytes.Buffer
	O := DefaultOptions()
	O.Logger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, err := Reconstruct(cell, ops, refl, O); err != nil {
		Te.Fatal(err)
	}
	for _, msg := range []string{"reciprocal grid", "grid filled", "density map"} {
		if !strings.Contains(buf.String(), msg) {
			Te.Errorf("The log should contain %q:\n%s", msg, buf.String())
		}
	}
	if strings.Contains(buf.String(), "level=WARN") {
		Te.Errorf("The transformed grid should be real:\n%s", buf.String())
	}
}

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	if !O.Normalize() || O.NyquistRate() != 2 || O.MaxGridDim() != 0 || O.Transformer() == nil || O.Logger() == nil {
		Te.Errorf("Unexpected defaults %+v", O)
	}
	O.NyquistRate(-1)
	O.MaxGridDim(-5)
	O.Transformer(nil)
	if O.NyquistRate() != 2 || O.MaxGridDim() != 0 || O.Transformer() == nil {
		Te.Errorf("Invalid values should be ignored, got %+v", O)
	}
	var empty Options
	if empty.NyquistRate() != 2 || empty.Transformer() == nil || empty.Logger() == nil {
		Te.Error("A zero Options should fall back to the defaults")
	}
}
