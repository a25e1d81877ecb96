/*
 * symop.go, part of gochem.
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
	"fmt"
	"math"
	"strconv"
	"strings"
)

//SymOp is a space-group symmetry operator: a rotation (row-major, entries
//usually in {-1,0,1}) and a translation in fractional coordinates.
type SymOp struct {
	Rot   [3][3]float64
	Trans [3]float64
}

//Identity returns the x,y,z operator.
func Identity() SymOp {
	return SymOp{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

//NewSymOp builds an operator from a row-major rotation and a translation.
func NewSymOp(rot [9]float64, trans [3]float64) SymOp {
	var s SymOp
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.Rot[i][j] = rot[3*i+j]
		}
	}
	s.Trans = trans
	return s
}

//SymOpFromFloats builds an operator from 12 floats, either the 9 rotation
//elements followed by the 3 translations, or, if 16 floats are given, a
//row-major 4x4 matrix whose 4th column is the translation.
func SymOpFromFloats(f []float64) (SymOp, error) {
	switch len(f) {
	case 12:
		var r [9]float64
		copy(r[:], f[:9])
		return NewSymOp(r, [3]float64{f[9], f[10], f[11]}), nil
	case 16:
		var s SymOp
		for i := 0; i < 3; i++ {
			s.Rot[i] = [3]float64{f[4*i], f[4*i+1], f[4*i+2]}
			s.Trans[i] = f[4*i+3]
		}
		return s, nil
	}
	return SymOp{}, newError(BadSymOp, "SymOpFromFloats", fmt.Sprintf("%d values given, 12 or 16 expected", len(f)))
}

//Apply returns the symmetry-equivalent index round(R·hkl) and the phase shift,
//in radians, 2π·hkl·t. The rounding assumes R maps integers to near-integers.
func (S SymOp) Apply(hkl [3]int) ([3]int, float64) {
	var ret [3]int
	h := [3]float64{float64(hkl[0]), float64(hkl[1]), float64(hkl[2])}
	for i := 0; i < 3; i++ {
		ret[i] = int(math.Round(S.Rot[i][0]*h[0] + S.Rot[i][1]*h[1] + S.Rot[i][2]*h[2]))
	}
	shift := 2 * math.Pi * (h[0]*S.Trans[0] + h[1]*S.Trans[1] + h[2]*S.Trans[2])
	return ret, shift
}

//String returns the operator in the x,y,z notation.
func (S SymOp) String() string {
	vars := "xyz"
	rows := make([]string, 3)
	for i := 0; i < 3; i++ {
		var b strings.Builder
		for j := 0; j < 3; j++ {
			c := S.Rot[i][j]
			if c == 0 {
				continue
			}
			switch {
			case c == -1:
				b.WriteString("-")
			case c == 1:
				if b.Len() > 0 {
					b.WriteString("+")
				}
			default:
				if c > 0 && b.Len() > 0 {
					b.WriteString("+")
				}
				b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
			}
			b.WriteByte(vars[j])
		}
		if t := S.Trans[i]; t != 0 {
			if t > 0 && b.Len() > 0 {
				b.WriteString("+")
			}
			b.WriteString(fraction(t))
		}
		if b.Len() == 0 {
			b.WriteString("0")
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, ",")
}

//fraction writes t as n/d for the common crystallographic denominators, when
//n/d is t up to rounding. Other values are written in full, so they parse back unchanged.
func fraction(t float64) string {
	if t == math.Trunc(t) {
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	for _, d := range []int{2, 3, 4, 6, 8, 12} {
		n := math.Round(t * float64(d))
		if math.Abs(t-n/float64(d)) < 1e-12 {
			return fmt.Sprintf("%d/%d", int(n), d)
		}
	}
	return strconv.FormatFloat(t, 'g', -1, 64)
}

//ParseSymOps parses a list of operators in the x,y,z notation, such as the
//_symmetry_equiv.pos_as_xyz or _space_group_symop.operation_xyz loops of a CIF file.
//It fails on the first malformed operator.
func ParseSymOps(ops []string) ([]SymOp, error) {
	ret := make([]SymOp, 0, len(ops))
	for i, v := range ops {
		s, err := ParseSymOp(v)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ParseSymOps: operator %d", i))
		}
		ret = append(ret, s)
	}
	return ret, nil
}

//ParseSymOp parses an operator in the x,y,z notation, for instance "-y,x-y,z+1/3"
//or "1/2+X, 1/2-Y, -Z". Quotes and spaces are ignored. Coefficients and translations
//can be integers, decimals or fractions.
func ParseSymOp(op string) (SymOp, error) {
	var s SymOp
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\'', '"':
			return -1
		}
		return r
	}, strings.ToLower(op))
	rows := strings.Split(clean, ",")
	if len(rows) != 3 {
		return s, newError(BadSymOp, "ParseSymOp", fmt.Sprintf("%q has %d components", op, len(rows)))
	}
	for i, row := range rows {
		rot, trans, err := parseRow(row)
		if err != nil {
			return s, newError(BadSymOp, "ParseSymOp", fmt.Sprintf("%q: %s", op, err.Error()))
		}
		s.Rot[i] = rot
		s.Trans[i] = trans
	}
	return s, nil
}

//parseRow parses one component of an operator, as a sum of signed terms.
//Each term is a number (the translation), a variable, or a number times a variable.
func parseRow(row string) ([3]float64, float64, error) {
	var rot [3]float64
	var trans float64
	if row == "" {
		return rot, 0, fmt.Errorf("empty component")
	}
	terms := splitTerms(row)
	for _, t := range terms {
		sign := 1.0
		switch t[0] {
		case '-':
			sign = -1
			t = t[1:]
		case '+':
			t = t[1:]
		}
		if t == "" {
			return rot, 0, fmt.Errorf("dangling sign in %q", row)
		}
		last := t[len(t)-1]
		axis := strings.IndexByte("xyz", last)
		if axis < 0 {
			f, err := parseNumber(t)
			if err != nil {
				return rot, 0, err
			}
			trans += sign * f
			continue
		}
		coef := 1.0
		if c := strings.TrimSuffix(t[:len(t)-1], "*"); c != "" {
			f, err := parseNumber(c)
			if err != nil {
				return rot, 0, err
			}
			coef = f
		}
		rot[axis] += sign * coef
	}
	return rot, trans, nil
}

//splitTerms splits s before each + or - sign, keeping the sign.
func splitTerms(s string) []string {
	var ret []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			ret = append(ret, s[start:i])
			start = i
		}
	}
	return append(ret, s[start:])
}

//parseNumber parses integers, decimals and fractions like 1/2.
func parseNumber(s string) (float64, error) {
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("bad numerator in %q", s)
		}
		den, err := strconv.ParseFloat(d, 64)
		if err != nil || den == 0 {
			return 0, fmt.Errorf("bad denominator in %q", s)
		}
		return num / den, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad term %q", s)
	}
	return f, nil
}
