/*
 * symop_test.go, part of gochem.
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
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseSymOp(Te *testing.T) {
	cases := []struct {
		op    string
		rot   [3][3]float64
		trans [3]float64
	}{
		{"x,y,z", [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}},
		{"'-y,x-y,z+1/3'", [3][3]float64{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}, [3]float64{0, 0, 1.0 / 3}},
		{"1/2+X, 1/2-Y, -Z", [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, [3]float64{0.5, 0.5, 0}},
		{"-x+0.25,2*y,z-1/6", [3][3]float64{{-1, 0, 0}, {0, 2, 0}, {0, 0, 1}}, [3]float64{0.25, 0, -1.0 / 6}},
	}
	for _, c := range cases {
		s, err := ParseSymOp(c.op)
		if err != nil {
			Te.Errorf("%q: %v", c.op, err)
			continue
		}
		if s.Rot != c.rot {
			Te.Errorf("%q: rotation %v, expected %v", c.op, s.Rot, c.rot)
		}
		for i := range c.trans {
			if !near(s.Trans[i], c.trans[i], 1e-12) {
				Te.Errorf("%q: translation %v, expected %v", c.op, s.Trans, c.trans)
				break
			}
		}
	}
	for _, bad := range []string{"", "x,y", "x,y,z,x", "x,y,q", "x,y,z+1/0", "x,y+,z", "x,,z"} {
		if _, err := ParseSymOp(bad); !errors.Is(err, ErrBadSymOp) {
			Te.Errorf("%q should fail with ErrBadSymOp, got %v", bad, err)
		}
	}
	if _, err := ParseSymOps([]string{"x,y,z", "-x,y+1/2,-z", "x,y"}); !errors.Is(err, ErrBadSymOp) {
		Te.Errorf("ParseSymOps should fail on the third operator, got %v", err)
	}
	ops, err := ParseSymOps([]string{"x,y,z", "-x,y+1/2,-z"})
	if err != nil || len(ops) != 2 {
		Te.Errorf("Expected 2 operators, got %v, %v", ops, err)
	}
}

func TestSymOpString(Te *testing.T) {
	for _, op := range []string{"x,y,z", "-y,x-y,z+1/3", "-x,y+1/2,-z", "x+1/2,-y+1/4,z+3/4", "y,x,-z+1"} {
		s, err := ParseSymOp(op)
		if err != nil {
			Te.Fatal(err)
		}
		if s.String() != op {
			Te.Errorf("Expected %q, got %q", op, s.String())
		}
		again, err := ParseSymOp(s.String())
		if err != nil || again != s {
			Te.Errorf("%q does not survive a round trip: %v %v", op, again, err)
		}
	}
}

func TestSymOpStringInexact(Te *testing.T) {
	//a third, as stored in single precision
	third := float64(float32(1.0 / 3))
	s := SymOp{Rot: Identity().Rot, Trans: [3]float64{0, 0, third}}
	if str := s.String(); strings.Contains(str, "1/3") {
		Te.Errorf("%g should not be written as 1/3, got %q", third, str)
	}
	again, err := ParseSymOp(s.String())
	if err != nil || again != s {
		Te.Errorf("%q does not survive a round trip: %v %v", s.String(), again, err)
	}
}

func TestSymOpApply(Te *testing.T) {
	screw, _ := ParseSymOp("-x,y+1/2,-z")
	mate, shift := screw.Apply([3]int{1, 3, 2})
	if mate != [3]int{-1, 3, -2} {
		Te.Errorf("Expected (-1,3,-2), got %v", mate)
	}
	if !near(shift, 3*math.Pi, 1e-12) {
		Te.Errorf("Expected a phase shift of 3π, got %g", shift)
	}
	mate, shift = Identity().Apply([3]int{4, -5, 6})
	if mate != [3]int{4, -5, 6} || shift != 0 {
		Te.Errorf("The identity should leave the index alone, got %v %g", mate, shift)
	}
}

func TestSymOpFromFloats(Te *testing.T) {
	s12, err := SymOpFromFloats([]float64{0, -1, 0, 1, -1, 0, 0, 0, 1, 0, 0, 1.0 / 3})
	if err != nil {
		Te.Fatal(err)
	}
	s16, err := SymOpFromFloats([]float64{0, -1, 0, 0, 1, -1, 0, 0, 0, 0, 1, 1.0 / 3, 0, 0, 0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	p, _ := ParseSymOp("-y,x-y,z+1/3")
	if s12 != p || s16 != p {
		Te.Errorf("Expected %v, got %v and %v", p, s12, s16)
	}
	if _, err := SymOpFromFloats(make([]float64, 9)); !errors.Is(err, ErrBadSymOp) {
		Te.Errorf("9 floats should not make an operator, got %v", err)
	}
}
