/*
 * matrix.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space. Each row is a vector,
//i.e. the coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//data is used as backing storage, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vectors (rows) in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes
//in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of the matrix to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

//SubVec subtracts the vector vec from each vector of A, and puts
//the result in the receiver, which can be A itself.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar := A.NVecs()
	if F.NVecs() != ar || vec.NVecs() != 1 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < cols; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//Transform applies the 3x3 matrix T to each vector v of A, as T·v,
//and puts the results in the receiver. This is the same as A·Tᵀ.
func (F *Matrix) Transform(T, A *Matrix) {
	if T.NVecs() != 3 || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	if F == A {
		tmp := Zeros(A.NVecs())
		tmp.Dense.Mul(A.Dense, T.Dense.T())
		F.Dense.Copy(tmp.Dense)
		return
	}
	F.Dense.Mul(A.Dense, T.Dense.T())
}

//Inverse puts the inverse of the 3x3 matrix A in the receiver.
//It returns an error if A is singular.
func (F *Matrix) Inverse(A *Matrix) error {
	if A.NVecs() != 3 || F.NVecs() != 3 {
		panic(ErrShape)
	}
	if err := F.Dense.Inverse(A.Dense); err != nil {
		return Error{fmt.Sprintf("%s: %s", ErrSingular, err.Error()), []string{"Inverse"}, true}
	}
	return nil
}

//String returns a -hopefully- readable representation of the matrix.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense, mat.Squeeze()))
}
