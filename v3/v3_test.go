/*
 * v3_test.go, part of godock.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice of length 4")
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		Te.Error("x cross y should be z, got", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("x dot y should be 0")
	}
	if x.Dot(x) != 1 {
		Te.Error("x dot x should be 1")
	}
}

func TestUnitNorm(Te *testing.T) {
	a, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(a.Norm(2)-5) > appzero {
		Te.Error("Norm of (3,4,0) should be 5, got", a.Norm(2))
	}
	u := Zeros(1)
	u.Unit(a)
	if math.Abs(u.Norm(2)-1) > appzero {
		Te.Error("Unit vector norm should be 1, got", u.Norm(2))
	}
	//A zero vector can't be normalized, and is left untouched.
	zero := Zeros(1)
	u.Unit(zero)
	if u.Norm(2) > appzero {
		Te.Error("Unit of the zero vector should stay zero")
	}
}

func TestVecViewAndSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v := A.VecView(1)
	if v.At(0, 0) != 4 {
		Te.Error("VecView(1) should start with 4")
	}
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("Views should share data with the viewed matrix")
	}
	B := Zeros(2)
	B.SomeVecs(A, []int{0, 2})
	if B.At(1, 2) != 9 || B.At(0, 1) != 2 {
		Te.Error("SomeVecs returned the wrong vectors", B)
	}
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	d, _ := NewMatrix([]float64{1, 0, -1})
	R := Zeros(2)
	R.AddVec(A, d)
	if R.At(0, 0) != 2 || R.At(1, 2) != 1 {
		Te.Error("AddVec failed", R)
	}
	R.SubVec(R, d)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if R.At(i, j) != A.At(i, j) {
				Te.Error("SubVec should undo AddVec", R, A)
			}
		}
	}
	//d must be restored by SubVec
	if d.At(0, 0) != 1 || d.At(0, 2) != -1 {
		Te.Error("SubVec altered its vector argument", d)
	}
}
