/*
 * transform.go, part of godock.
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
	"log"
	"math"

	v3 "github.com/rmera/godock/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

//Transform is a 4x4 homogeneous rigid transformation (rotation plus
//translation, no scaling or shear), applied to column vectors.
type Transform struct {
	m *mat.Dense
}

//NewTransform wraps a 4x4 matrix in a Transform. Panics if the matrix is
//not 4x4: building one from anything else is a bug in the caller.
func NewTransform(m *mat.Dense) *Transform {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		panic(ErrNotHomogeneous4x4)
	}
	return &Transform{m: m}
}

//IdentityTransform returns the identity transformation.
func IdentityTransform() *Transform {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return &Transform{m: m}
}

//Translation returns the transform that adds the vector v to every point.
func Translation(v *v3.Matrix) *Transform {
	T := IdentityTransform()
	for k := 0; k < 3; k++ {
		T.m.Set(k, 3, v.At(0, k))
	}
	return T
}

//Mul puts the composition a·b (b applied first) in the receiver.
func (T *Transform) Mul(a, b *Transform) {
	T.m.Mul(a.m, b.m)
}

//At returns the i,j element of the underlying 4x4 matrix.
func (T *Transform) At(i, j int) float64 { return T.m.At(i, j) }

//Dense returns a copy of the underlying 4x4 matrix.
func (T *Transform) Dense() *mat.Dense {
	return mat.DenseCopyOf(T.m)
}

//Apply applies the transform to each vector of src, putting the result in
//dst. dst and src may be the same matrix. Row vectors of the Matrix are
//treated as the column vectors the 4x4 convention expects.
func (T *Transform) Apply(dst, src *v3.Matrix) {
	if dst.NVecs() != src.NVecs() {
		panic(v3.ErrShape)
	}
	for i := 0; i < src.NVecs(); i++ {
		x := src.At(i, 0)
		y := src.At(i, 1)
		z := src.At(i, 2)
		dst.Set(i, 0, T.m.At(0, 0)*x+T.m.At(0, 1)*y+T.m.At(0, 2)*z+T.m.At(0, 3))
		dst.Set(i, 1, T.m.At(1, 0)*x+T.m.At(1, 1)*y+T.m.At(1, 2)*z+T.m.At(1, 3))
		dst.Set(i, 2, T.m.At(2, 0)*x+T.m.At(2, 1)*y+T.m.At(2, 2)*z+T.m.At(2, 3))
	}
}

//RotateOnly applies only the rotation part of the transform, which is what
//normals get. dst and src may be the same matrix.
func (T *Transform) RotateOnly(dst, src *v3.Matrix) {
	if dst.NVecs() != src.NVecs() {
		panic(v3.ErrShape)
	}
	for i := 0; i < src.NVecs(); i++ {
		x := src.At(i, 0)
		y := src.At(i, 1)
		z := src.At(i, 2)
		dst.Set(i, 0, T.m.At(0, 0)*x+T.m.At(0, 1)*y+T.m.At(0, 2)*z)
		dst.Set(i, 1, T.m.At(1, 0)*x+T.m.At(1, 1)*y+T.m.At(1, 2)*z)
		dst.Set(i, 2, T.m.At(2, 0)*x+T.m.At(2, 1)*y+T.m.At(2, 2)*z)
	}
}

//quat2Transform returns the rotation-only transform equivalent to the
//unit quaternion q.
func quat2Transform(q quat.Number) *Transform {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	T := IdentityTransform()
	T.m.Set(0, 0, 1-2*(y*y+z*z))
	T.m.Set(0, 1, 2*(x*y-w*z))
	T.m.Set(0, 2, 2*(x*z+w*y))
	T.m.Set(1, 0, 2*(x*y+w*z))
	T.m.Set(1, 1, 1-2*(x*x+z*z))
	T.m.Set(1, 2, 2*(y*z-w*x))
	T.m.Set(2, 0, 2*(x*z-w*y))
	T.m.Set(2, 1, 2*(y*z+w*x))
	T.m.Set(2, 2, 1-2*(x*x+y*y))
	return T
}

//perpendicularTo returns a unit vector perpendicular to n, for the cases
//where the rotation axis is underdetermined. Any vector not colinear with
//n works as the auxiliary, so we try Y and fall back to X.
func perpendicularTo(n *v3.Matrix) *v3.Matrix {
	aux := v3.Zeros(1)
	aux.Set(0, 1, 1)
	perp := v3.Zeros(1)
	perp.Cross(n, aux)
	if perp.Norm(2) <= appzero {
		aux.Set(0, 1, 0)
		aux.Set(0, 0, 1)
		perp.Cross(n, aux)
	}
	perp.Unit(perp)
	return perp
}

//RotationToOppose returns the rotation that takes the unit vector from so
//that, after rotating, it points opposite to the unit vector to: docking
//surfaces face each other, they do not point the same way. The rotation
//angle is acos(from·to)+π about the axis from×to, built as a quaternion
//from the half angle. Degenerate inputs are resolved explicitly: vectors
//already anti-parallel need no rotation at all, and parallel vectors are
//rotated by π about an arbitrary perpendicular axis. The axis is
//normalized before building the quaternion, so the resulting matrix is a
//proper rotation (the length of the raw cross product must not leak into
//the quaternion).
func RotationToOppose(from, to *v3.Matrix) *Transform {
	f := v3.Zeros(1)
	f.Unit(from)
	t := v3.Zeros(1)
	t.Unit(to)
	d := f.Dot(t)
	//floating point can push the dot product just out of acos' domain
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	axis := v3.Zeros(1)
	axis.Cross(f, t)
	if axis.Norm(2) <= appzero {
		if d < 0 {
			//already facing each other
			return IdentityTransform()
		}
		//parallel: rotate by π, any perpendicular axis does
		axis = perpendicularTo(f)
	} else {
		axis.Unit(axis)
	}
	half := (math.Acos(d) + math.Pi) / 2.0
	sin := math.Sin(half)
	q := quat.Number{Real: math.Cos(half), Imag: axis.At(0, 0) * sin, Jmag: axis.At(0, 1) * sin, Kmag: axis.At(0, 2) * sin}
	if a := quat.Abs(q); math.Abs(a-1) > appzero {
		q = quat.Scale(1/a, q)
	}
	return quat2Transform(q)
}

//TransformationsFromMatchingGroups builds, for each matching group, the
//rigid transformation that superimposes the ligand side of the group onto
//the target side: merge each side's patches into a cloud (4.4), take
//centroids and average normals, rotate the ligand normal to oppose the
//target normal, and compose translate-rotate-translate so the ligand
//centroid lands exactly on the target centroid and the rotation happens
//about it. Returns one Transform per group, in group order.
//If either side of a group has exactly cancelling normals, that group
//gets a pure translation (identity rotation).
func (D *Docker) TransformationsFromMatchingGroups(groups MatchingGroups, target *Graph, descTarget *SurfaceDescriptors, ligand *Graph, descLigand *SurfaceDescriptors) ([]*Transform, error) {
	if descTarget.Len() == 0 || descLigand.Len() == 0 {
		return nil, &CError{"goDock: transforms requested over empty surface descriptors", []string{"TransformationsFromMatchingGroups"}, true}
	}
	ret := make([]*Transform, 0, len(groups))
	for _, MG := range groups {
		tgroup := MG.TargetPatches()
		lgroup := MG.LigandPatches()
		tcloud, tnormal, err := BuildCloud(tgroup, descTarget, target)
		if err != nil && err.(Error).Critical() {
			return nil, errDecorate(err, "TransformationsFromMatchingGroups")
		}
		lcloud, lnormal, err2 := BuildCloud(lgroup, descLigand, ligand)
		if err2 != nil && err2.(Error).Critical() {
			return nil, errDecorate(err2, "TransformationsFromMatchingGroups")
		}
		tcentroid, err := CloudCentroid(tcloud)
		if err != nil {
			return nil, errDecorate(err, "TransformationsFromMatchingGroups")
		}
		lcentroid, err := CloudCentroid(lcloud)
		if err != nil {
			return nil, errDecorate(err, "TransformationsFromMatchingGroups")
		}
		var rot *Transform
		if tnormal.Norm(2) <= appzero || lnormal.Norm(2) <= appzero {
			log.Printf("goDock: group %v has no average normal, using a pure translation", MG)
			rot = IdentityTransform()
		} else {
			rot = RotationToOppose(lnormal, tnormal)
		}
		//send the ligand group to the origin, rotate, bring it to the
		//target centroid
		minusl := v3.Zeros(1)
		minusl.Scale(-1, lcentroid)
		final := IdentityTransform()
		final.Mul(Translation(tcentroid), rot)
		final.Mul(final, Translation(minusl))
		ret = append(ret, final)
	}
	return ret, nil
}
