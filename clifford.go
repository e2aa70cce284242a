/*
 * clifford.go, part of godock.
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

package dock

import (
	"math"

	v3 "github.com/rmera/godock/v3"
	matrix "github.com/skelterjohn/go.matrix"
)

//An independent path to 3D rotations, through Clifford algebra rotors
//rather than quaternions. Transform synthesis never uses this; it exists
//so rotations built elsewhere in the library can be validated against a
//formulation with completely different arithmetic.

//paravector is a real scalar, an imaginary scalar and a real and an
//imaginary 3D vector. Only the components that survive when rotating real
//3D vectors are kept track of.
type paravector struct {
	Real  float64
	Imag  float64
	Vreal *matrix.DenseMatrix
	Vimag *matrix.DenseMatrix
}

func makeParavector() *paravector {
	R := new(paravector)
	R.Vreal = matrix.Zeros(1, 3)
	R.Vimag = matrix.Zeros(1, 3)
	return R
}

//paravectorFromVector embeds a 1x3 row vector as a pure real-vector
//paravector. The row is copied.
func paravectorFromVector(x, y, z float64) *paravector {
	R := makeParavector()
	R.Vreal.Set(0, 0, x)
	R.Vreal.Set(0, 1, y)
	R.Vreal.Set(0, 2, z)
	return R
}

//reverse flips the sign of every imaginary component.
func (P *paravector) reverse() *paravector {
	R := new(paravector)
	R.Real = P.Real
	R.Imag = -1 * P.Imag
	R.Vreal = P.Vreal.Copy()
	R.Vimag = P.Vimag.Copy()
	R.Vimag.Scale(-1)
	return R
}

func (P *paravector) normalize() *paravector {
	R := makeParavector()
	norm := math.Pow(P.Real, 2) + math.Pow(P.Imag, 2)
	for i := 0; i < 3; i++ {
		norm += math.Pow(P.Vreal.Get(0, i), 2) + math.Pow(P.Vimag.Get(0, i), 2)
	}
	norm = math.Sqrt(norm)
	R.Real = P.Real / norm
	R.Imag = P.Imag / norm
	for i := 0; i < 3; i++ {
		R.Vreal.Set(0, i, P.Vreal.Get(0, i)/norm)
		R.Vimag.Set(0, i, P.Vimag.Get(0, i)/norm)
	}
	return R
}

//cliProduct is the Clifford product of two paravectors, with the
//imaginary vector part of the result dropped: it always cancels when the
//sandwich product rotates a real 3D vector.
func cliProduct(A, B *paravector) *paravector {
	R := makeParavector()
	R.Real = A.Real*B.Real - A.Imag*B.Imag
	for i := 0; i < 3; i++ {
		R.Real += A.Vreal.Get(0, i)*B.Vreal.Get(0, i) - A.Vimag.Get(0, i)*B.Vimag.Get(0, i)
	}
	R.Imag = A.Real*B.Imag + A.Imag*B.Real
	for i := 0; i < 3; i++ {
		R.Imag += A.Vreal.Get(0, i)*B.Vimag.Get(0, i) + A.Vimag.Get(0, i)*B.Vreal.Get(0, i)
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3
		R.Vreal.Set(0, i, A.Real*B.Vreal.Get(0, i)+B.Real*A.Vreal.Get(0, i)-
			A.Imag*B.Vimag.Get(0, i)-B.Imag*A.Vimag.Get(0, i)+
			A.Vimag.Get(0, k)*B.Vreal.Get(0, j)-A.Vimag.Get(0, j)*B.Vreal.Get(0, k)+
			A.Vreal.Get(0, k)*B.Vimag.Get(0, j)-A.Vreal.Get(0, j)*B.Vimag.Get(0, k))
	}
	return R
}

//cliRotation rotates the paravector A by angle radians around axis, which
//must be normalized, through the sandwich product R~ A R.
func cliRotation(A, axis *paravector, angle float64) *paravector {
	R := makeParavector()
	R.Real = math.Cos(angle / 2.0)
	for i := 0; i < 3; i++ {
		R.Vimag.Set(0, i, math.Sin(angle/2.0)*axis.Vreal.Get(0, i))
	}
	tmp := cliProduct(R.reverse(), A)
	return cliProduct(tmp, R)
}

//CliRotate rotates each row of coords by angle radians around the axis
//(a 1x3 vector through the origin, any nonzero length) and returns the
//result as a new matrix.
func CliRotate(coords, axis *v3.Matrix, angle float64) *v3.Matrix {
	paxis := paravectorFromVector(axis.At(0, 0), axis.At(0, 1), axis.At(0, 2))
	paxis = paxis.normalize()
	R := v3.Zeros(coords.NVecs())
	for i := 0; i < coords.NVecs(); i++ {
		p := paravectorFromVector(coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		rot := cliRotation(p, paxis, angle)
		for k := 0; k < 3; k++ {
			R.Set(i, k, rot.Vreal.Get(0, k))
		}
	}
	return R
}
