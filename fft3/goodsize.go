/*
 * goodsize.go, part of gochem.
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

package fft3

import "sync"

//sizeCache memoizes GoodSize results. Keys are requested lengths.
type sizeCache struct {
	mu    sync.RWMutex
	sizes map[int]int
}

func newSizeCache() *sizeCache {
	return &sizeCache{sizes: make(map[int]int)}
}

func (C *sizeCache) get(n int) int {
	C.mu.RLock()
	r, ok := C.sizes[n]
	C.mu.RUnlock()
	if ok {
		return r
	}
	r = goodSize(n)
	C.mu.Lock()
	C.sizes[n] = r
	C.mu.Unlock()
	return r
}

//Process-wide, it only ever holds pure results of goodSize.
var sizes = newSizeCache()

//GoodSize returns the smallest integer >= n whose only prime factors are 2, 3 and 5.
//Lengths up to 6 are returned unchanged and n < 1 gives 1.
func GoodSize(n int) int {
	if n < 1 {
		return 1
	}
	if n <= 6 {
		return n
	}
	return sizes.get(n)
}

func goodSize(n int) int {
	best := 2 * n
	for f2 := 1; f2 < best; f2 *= 2 {
		for f23 := f2; f23 < best; f23 *= 3 {
			for f235 := f23; f235 < best; f235 *= 5 {
				if f235 >= n {
					best = f235
				}
			}
		}
	}
	return best
}
