/*
 * gonum.go, part of godock.
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

//gonum.go contains the Matrix container itself and everything that touches
//the gonum/mat types directly. Within the package it is understood that a
//"vector" is a row of the matrix, i.e. the cartesian coordinates of one point
//in 3D space. The names of several functions in the library reflect this.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a gonum Dense.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense in a Matrix. The Dense must have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("goDock/v3: Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Mul wraps mat.Mul to take care of the case when one of the
//arguments is also the receiver. The gonum function cannot know
//that internally F.Dense==A, hence the need for this wrapper.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//Norm returns the Frobenius norm of F, which for a 1x3 vector is the
//Euclidean norm. The argument is kept for compatibility and ignored;
//only norm 2 is supported.
func (F *Matrix) Norm(_ float64) float64 {
	return mat.Norm(F.Dense, 2)
}

//Dot returns the sum of the element-wise products of F and B. For 1x3
//vectors this is the usual dot product. Panics on dimension mismatch.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		panic(ErrShape)
	}
	var ret float64
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			ret += F.At(i, j) * B.At(i, j)
		}
	}
	return ret
}

//Errors

//Error is the error type for the v3 package. It implements the
//dock.Error interface without importing dock (which would be circular).
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It does satisfy the error interface,
//but for returned errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goDock/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("goDock/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("goDock/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goDock/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("goDock/v3: Index out of range")
)
