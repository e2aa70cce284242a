/*
 * distance_test.go, part of godock.
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
	"testing"
)

//squareMesh is a unit square split in two triangles, with the patches
//sitting on opposite corners.
func squareMesh(Te *testing.T) (*Graph, *SurfaceDescriptors) {
	g := buildMesh(Te,
		[]float64{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			1, 1, 0,
		},
		[]float64{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		})
	g.MeshNode(0).PushTriangularFace(1, 2)
	g.MeshNode(1).PushTriangularFace(0, 2)
	g.MeshNode(2).PushTriangularFace(0, 1)
	g.MeshNode(1).PushTriangularFace(2, 3)
	g.MeshNode(2).PushTriangularFace(1, 3)
	g.MeshNode(3).PushTriangularFace(1, 2)
	desc := buildDescs([]testPatch{
		{pos: [3]float64{0, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{0}},
		{pos: [3]float64{1, 1, 0}, norm: [3]float64{0, 0, 1}, conv: Concave, curv: 1, nodes: []int{3}},
	})
	return g, desc
}

func TestEuclideanMetric(Te *testing.T) {
	_, desc := squareMesh(Te)
	var m Euclidean
	d, err := m.PatchDist(desc, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-math.Sqrt2) > 1e-9 {
		Te.Errorf("wanted sqrt(2), got %f", d)
	}
	rev, err := m.PatchDist(desc, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if d != rev {
		Te.Errorf("the metric is not symmetric: %f vs %f", d, rev)
	}
	if _, err := m.PatchDist(desc, 0, 5); err == nil {
		Te.Error("an out-of-range patch index should fail")
	}
}

//Opposite corners of the square: straight through the diagonal is sqrt(2),
//but over the edges the shortest route is 2.
func TestGeodesicMetric(Te *testing.T) {
	g, desc := squareMesh(Te)
	m := NewGeodesic(g)
	d, err := m.PatchDist(desc, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-2) > 1e-9 {
		Te.Errorf("wanted a geodesic of 2, got %f", d)
	}
	var e Euclidean
	de, err := e.PatchDist(desc, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if d < de {
		Te.Errorf("the geodesic (%f) can't undercut the straight line (%f)", d, de)
	}
	rev, err := m.PatchDist(desc, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-rev) > 1e-9 {
		Te.Errorf("the metric is not symmetric: %f vs %f", d, rev)
	}
}

//Disconnected patches are infinitely apart, which just keeps them out of
//each other's groups.
func TestGeodesicDisconnected(Te *testing.T) {
	g := buildMesh(Te,
		[]float64{0, 0, 0, 1, 0, 0},
		[]float64{0, 0, 1, 0, 0, 1})
	desc := buildDescs([]testPatch{
		{pos: [3]float64{0, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{0}},
		{pos: [3]float64{1, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Concave, curv: 1, nodes: []int{1}},
	})
	m := NewGeodesic(g)
	d, err := m.PatchDist(desc, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsInf(d, 1) {
		Te.Errorf("wanted +Inf between disconnected patches, got %f", d)
	}
}
