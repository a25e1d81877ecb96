/*
 * gridsize.go, part of gochem.
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
)

//ResolutionLimit returns the largest d* (in 1/A) among the reflections of
//refl that can be resolved, and the number of those reflections. Rows that
//fail to resolve are skipped. It gives a critical error if no reflection
//can be used, or if the limit is not a positive, finite number.
func ResolutionLimit(refl ReflectionSource, rs *ReciprocalSpace) (float64, int, error) {
	var maxsq float64
	used := 0
	for i := 0; i < refl.Len(); i++ {
		r, err := refl.Reflection(i)
		if err != nil {
			continue
		}
		d := rs.DistanceSquared(r.HKL)
		if !isFinite(d) {
			continue
		}
		used++
		maxsq = math.Max(maxsq, d)
	}
	if used == 0 {
		return 0, 0, newError(NoReflections, "ResolutionLimit", fmt.Sprintf("none of %d rows could be resolved", refl.Len()))
	}
	dstar := math.Sqrt(maxsq)
	if !finitePositive(dstar) {
		return 0, used, newError(NoReflections, "ResolutionLimit", fmt.Sprintf("highest d* is %g", dstar))
	}
	return dstar, used, nil
}

//GridSize returns grid dimensions that sample the resolution of refl at the
//Nyquist rate in O: N_i = ceil(rate·d*max/a*_i), each rounded up to a length
//the transformer handles efficiently.
func GridSize(refl ReflectionSource, rs *ReciprocalSpace, O *Options) ([3]int, error) {
	if O == nil {
		O = DefaultOptions()
	}
	dstar, _, err := ResolutionLimit(refl, rs)
	if err != nil {
		return [3]int{}, errDecorate(err, "GridSize")
	}
	return GridSizeForLimit(dstar, rs, O)
}

//GridSizeForLimit is as GridSize, but takes the resolution limit, d*max, directly.
func GridSizeForLimit(dstar float64, rs *ReciprocalSpace, O *Options) ([3]int, error) {
	var shape [3]int
	if !finitePositive(dstar) {
		return shape, newError(NoReflections, "GridSizeForLimit", fmt.Sprintf("d* is %g", dstar))
	}
	rate := O.NyquistRate()
	tr := O.Transformer()
	for i := 0; i < 3; i++ {
		//ratios within appzero of an integer are not rounded up to the next one.
		cells := math.Max(1, math.Ceil(rate*dstar/rs.Lengths[i]-appzero))
		if !isFinite(cells) || cells > math.MaxInt32 {
			return shape, newError(GridTooLarge, "GridSizeForLimit", fmt.Sprintf("axis %d would need %g points", i, cells))
		}
		shape[i] = tr.GoodSize(int(cells))
		if m := O.MaxGridDim(); m > 0 && shape[i] > m {
			return shape, newError(GridTooLarge, "GridSizeForLimit", fmt.Sprintf("axis %d needs %d points, maximum is %d", i, shape[i], m))
		}
	}
	if _, err := GridPoints(shape); err != nil {
		return shape, errDecorate(err, "GridSizeForLimit")
	}
	return shape, nil
}
