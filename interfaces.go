/*
 * interfaces.go, part of gochem.
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

//ReflectionSource is the interface for reflection tables. Implementations
//are usually thin wrappers around the columns of a CIF/mmCIF _refln loop.
type ReflectionSource interface {

	//Len returns the number of rows in the table.
	Len() int

	//Reflection returns the ith row. A row that can't be resolved
	//(i.e. some field is missing) produces an error and is skipped.
	Reflection(i int) (Reflection, error)
}

//Transformer is the Fourier-transform capability used by the pipeline.
//fft3.Transform implements it.
type Transformer interface {

	//GoodSize returns the smallest length >= n that the transformer can
	//handle efficiently.
	GoodSize(n int) int

	//Inverse performs, in place, the unnormalized complex-to-complex backward
	//transform of data over its 3 axes, given their lengths and strides.
	Inverse(data []complex128, shape, strides [3]int) error
}
