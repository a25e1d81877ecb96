/*
 * fft3.go, part of gochem.
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
 */

//Package fft3 performs in-place, unnormalized, complex-to-complex 3D Fourier
//transforms over flat arrays with arbitrary strides, one axis at a time, using
//the 1D transforms of gonum.org/v1/gonum/dsp/fourier. It also exposes the
//"good size" rule: the lengths for which the transform is efficient.
package fft3

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

//Transform holds the 1D plans for each axis length it has seen.
//A gonum plan carries its own work buffers, so a Transform serializes
//its calls. Use one Transform per goroutine to run transforms in parallel.
type Transform struct {
	mu    sync.Mutex
	plans map[int]*fourier.CmplxFFT
	buf   []complex128
}

//New returns a ready-to-use Transform.
func New() *Transform {
	return &Transform{plans: make(map[int]*fourier.CmplxFFT)}
}

//GoodSize returns the smallest length >= n for which the transform is efficient.
func (T *Transform) GoodSize(n int) int {
	return GoodSize(n)
}

//Inverse performs, in place, the backward (exp(+i)) transform of data over the 3 axes.
//shape contains the length of each axis and strides the distance, in elements,
//between 2 consecutive values along each axis. No 1/N scaling is applied.
func (T *Transform) Inverse(data []complex128, shape, strides [3]int) error {
	return T.transform(data, shape, strides, false)
}

//Forward performs, in place, the forward (exp(-i)) transform of data over the 3 axes.
//As Inverse, it is unnormalized, so Inverse(Forward(x)) = N·x, with N the product of shape.
func (T *Transform) Forward(data []complex128, shape, strides [3]int) error {
	return T.transform(data, shape, strides, true)
}

func (T *Transform) transform(data []complex128, shape, strides [3]int, forward bool) error {
	if err := checkLayout(len(data), shape, strides); err != nil {
		return err
	}
	T.mu.Lock()
	defer T.mu.Unlock()
	//The last axis goes first, as it is usually the contiguous one.
	for _, axis := range [3]int{2, 1, 0} {
		n := shape[axis]
		if n == 1 {
			continue
		}
		plan := T.plan(n)
		if cap(T.buf) < n {
			T.buf = make([]complex128, n)
		}
		line := T.buf[:n]
		b, c := others(axis)
		for ib := 0; ib < shape[b]; ib++ {
			for ic := 0; ic < shape[c]; ic++ {
				base := ib*strides[b] + ic*strides[c]
				stride := strides[axis]
				for i := range line {
					line[i] = data[base+i*stride]
				}
				if forward {
					plan.Coefficients(line, line)
				} else {
					plan.Sequence(line, line)
				}
				for i, v := range line {
					data[base+i*stride] = v
				}
			}
		}
	}
	return nil
}

//plan returns the cached plan for length n, creating it if needed.
func (T *Transform) plan(n int) *fourier.CmplxFFT {
	if T.plans == nil {
		T.plans = make(map[int]*fourier.CmplxFFT)
	}
	p, ok := T.plans[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		T.plans[n] = p
	}
	return p
}

//others returns the 2 axes that are not axis.
func others(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

//checkLayout makes sure that every index reached through shape and strides
//falls inside an array of length l.
func checkLayout(l int, shape, strides [3]int) error {
	last := 0
	for i := 0; i < 3; i++ {
		if shape[i] <= 0 {
			return fmt.Errorf("goChem/fft3: axis %d has non-positive length %d", i, shape[i])
		}
		if strides[i] <= 0 {
			return fmt.Errorf("goChem/fft3: axis %d has non-positive stride %d", i, strides[i])
		}
		last += (shape[i] - 1) * strides[i]
	}
	if last >= l {
		return fmt.Errorf("goChem/fft3: shape %v with strides %v needs %d elements, data has %d", shape, strides, last+1, l)
	}
	return nil
}

//RowMajor returns the strides of a contiguous row-major array of the
//given shape, i.e. one where the last axis is contiguous.
func RowMajor(shape [3]int) [3]int {
	return [3]int{shape[1] * shape[2], shape[2], 1}
}
