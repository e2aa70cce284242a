/*
 * gocoords.go, part of godock.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
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
 * goDock is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//gocoords.go contains the vector-wise operations on Matrix that do not need
//to touch the gonum types directly.

package v3

import (
	"fmt"
	"math"
	"strings"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//SwapVecs swaps the ith and jth vectors of F, in place.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		fi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, fi)
	}
}

//AddVec adds the vector vec to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		j := f
		if A.Dense != F.Dense {
			j = A.VecView(i)
		}
		f.Dense.Add(j.Dense, vec.Dense)
	}
}

//SubVec subtracts the vector vec from each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched. It will not
//work if A and vec reference the same Matrix.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vec.Dense.Scale(-1, vec.Dense)
	F.AddVec(A, vec)
	vec.Dense.Scale(-1, vec.Dense)
}

//SetVecs sets the vectors of the receiver with index n = each value on clist
//to the corresponding vector of A.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr < len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < ac; j++ {
			F.Set(val, j, A.At(key, j))
		}
	}
}

//SomeVecs puts in the receiver the ith vectors of matrix A,
//where i are the numbers in clist, in the same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < ac; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//Cross puts the cross product of the first vecs of a and b in the first vec
//of F. Panics on badly shaped inputs.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	//Only the At methods are needed, so this works even on views.
	c0 := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	c1 := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	c2 := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, c0)
	F.Set(0, 1, c1)
	F.Set(0, 2, c2)
}

//Unit puts in the receiver the unit vector in the direction of A.
//If A has (numerically) zero norm, the receiver is left as a copy of A,
//as normalization is not defined. Callers needing to distinguish that case
//should check the norm themselves.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A)
	}
	norm := F.Norm(2)
	if norm <= appzero {
		return
	}
	F.Dense.Scale(1.0/norm, F.Dense)
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//KronekerDelta is a naive implementation of the kroneker delta function.
func KronekerDelta(a, b, epsilon float64) float64 {
	if epsilon < 0 {
		epsilon = appzero
	}
	if math.Abs(a-b) <= epsilon {
		return 1
	}
	return 0
}
