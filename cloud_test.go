/*
 * cloud_test.go, part of godock.
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

//Two patches sharing a mesh node: the shared node must appear once in the
//merged cloud.
func TestCloudDedup(Te *testing.T) {
	g := buildMesh(Te,
		[]float64{0, 0, 0, 1, 0, 0, 2, 0, 0},
		[]float64{0, 0, 1, 0, 0, 1, 0, 0, 1})
	desc := buildDescs([]testPatch{
		{pos: [3]float64{0.5, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{0, 1}},
		{pos: [3]float64{1.5, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{1, 2}},
	})
	cloud, normal, err := BuildCloud([]int{0, 1}, desc, g)
	if err != nil {
		Te.Fatal(err)
	}
	if cloud.NVecs() != 3 {
		Te.Fatalf("wanted 3 unique points, got %d: %v", cloud.NVecs(), cloud)
	}
	if math.Abs(normal.Norm(2)-1) > 1e-9 {
		Te.Errorf("average normal not unit length: %v", normal)
	}
	cent, err := CloudCentroid(cloud)
	if err != nil {
		Te.Fatal(err)
	}
	close3(Te, cent, 1, 0, 0, "cloud centroid")
}

//The cloud is sorted, so the patch order within the group must not matter.
func TestCloudOrderIndependence(Te *testing.T) {
	g := buildMesh(Te,
		[]float64{3, 0, 0, 1, 5, 0, 2, 0, -1},
		[]float64{0, 0, 1, 0, 0, 1, 0, 0, 1})
	desc := buildDescs([]testPatch{
		{pos: [3]float64{3, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{0}},
		{pos: [3]float64{1, 5, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{1}},
		{pos: [3]float64{2, 0, -1}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{2}},
	})
	a, _, err := BuildCloud([]int{0, 1, 2}, desc, g)
	if err != nil {
		Te.Fatal(err)
	}
	b, _, err := BuildCloud([]int{2, 0, 1}, desc, g)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < a.NVecs(); i++ {
		for k := 0; k < 3; k++ {
			if a.At(i, k) != b.At(i, k) {
				Te.Fatalf("clouds differ with patch order:\n%v\n%v", a, b)
			}
		}
	}
}

//Exactly cancelling patch normals: zero vector back, and a warning, not a
//failure.
func TestCloudCancellingNormals(Te *testing.T) {
	g := buildMesh(Te,
		[]float64{0, 0, 0, 1, 0, 0},
		[]float64{0, 0, 1, 0, 0, -1})
	desc := buildDescs([]testPatch{
		{pos: [3]float64{0, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{0}},
		{pos: [3]float64{1, 0, 0}, norm: [3]float64{0, 0, -1}, conv: Convex, curv: 1, nodes: []int{1}},
	})
	_, normal, err := BuildCloud([]int{0, 1}, desc, g)
	if err == nil {
		Te.Fatal("cancelling normals should be reported")
	}
	if err.(Error).Critical() {
		Te.Fatalf("cancelling normals should not be a critical error: %v", err)
	}
	if normal.Norm(2) > appzero {
		Te.Errorf("wanted the zero vector, got %v", normal)
	}
}

func TestCloudBadInput(Te *testing.T) {
	g := buildMesh(Te, []float64{0, 0, 0}, []float64{0, 0, 1})
	desc := buildDescs([]testPatch{
		{pos: [3]float64{0, 0, 0}, norm: [3]float64{0, 0, 1}, conv: Convex, curv: 1, nodes: []int{7}},
	})
	if _, _, err := BuildCloud(nil, desc, g); err == nil || !err.(Error).Critical() {
		Te.Error("an empty group should be a critical error")
	}
	if _, _, err := BuildCloud([]int{0}, desc, g); err == nil || !err.(Error).Critical() {
		Te.Error("a patch referencing a node outside the mesh should be a critical error")
	}
	if _, _, err := BuildCloud([]int{3}, desc, g); err == nil || !err.(Error).Critical() {
		Te.Error("a patch index outside the surface should be a critical error")
	}
}
