/*
 * cloud.go, part of godock.
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
	"fmt"

	v3 "github.com/rmera/godock/v3"
	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/floats"
)

//pointCmp is the total order used to deduplicate cloud points: strict
//lexicographic comparison of the three components. Equality is bitwise,
//not epsilon-tolerant: two points merge only if upstream produced the
//exact same coordinates, which is what happens when two patches share
//mesh nodes.
func pointCmp(a, b [3]float64) int {
	for k := 0; k < 3; k++ {
		if a[k] < b[k] {
			return -1
		}
		if a[k] > b[k] {
			return 1
		}
	}
	return 0
}

func pointLess(a, b [3]float64) bool { return pointCmp(a, b) < 0 }

//BuildCloud merges the positions of every mesh node referenced by every
//patch in group (a set of patch indices, all from the surface described by
//desc, over the mesh g) into a single point cloud without repeated points,
//and computes the average of the patches' unit normals, renormalized to
//unit length. Merging and averaging are done in one pass on purpose: the
//transform stage always needs both.
//
//The returned cloud is sorted by pointCmp, so equal inputs give equal
//outputs regardless of patch order. If the patch normals cancel exactly,
//the returned normal is the zero vector and a non-critical error is
//returned with it; callers can then treat the group as having no preferred
//orientation.
func BuildCloud(group []int, desc *SurfaceDescriptors, g *Graph) (*v3.Matrix, *v3.Matrix, error) {
	if len(group) == 0 {
		return nil, nil, &CError{"goDock: can't build a cloud from an empty group", []string{"BuildCloud"}, true}
	}
	avg := v3.Zeros(1)
	cloud := btree.NewBTreeG[[3]float64](pointLess)
	for _, pi := range group {
		if err := desc.Check(pi); err != nil {
			return nil, nil, errDecorate(err, "BuildCloud")
		}
		patch := desc.Patch(pi)
		avg.Dense.Add(avg.Dense, patch.Normal.Dense)
		for _, ni := range patch.Nodes {
			if ni < 0 || ni >= g.Len() {
				return nil, nil, &CError{fmt.Sprintf("goDock: patch %d references node %d of a mesh with %d nodes", pi, ni, g.Len()), []string{"BuildCloud"}, true}
			}
			pos := g.MeshNode(ni).Pos()
			cloud.Set([3]float64{pos.At(0, 0), pos.At(0, 1), pos.At(0, 2)})
		}
	}
	points := v3.Zeros(cloud.Len())
	i := 0
	cloud.Scan(func(p [3]float64) bool {
		points.Set(i, 0, p[0])
		points.Set(i, 1, p[1])
		points.Set(i, 2, p[2])
		i++
		return true
	})
	avg.Dense.Scale(1.0/float64(len(group)), avg.Dense)
	if avg.Norm(2) <= appzero {
		//The normals cancelled. There is nothing sensible to normalize, so
		//we hand back the zero vector and tell the caller about it.
		return points, avg, &CError{"goDock: patch normals cancel, group has no average normal", []string{"BuildCloud"}, false}
	}
	avg.Unit(avg)
	return points, avg, nil
}

//CloudCentroid returns the arithmetic mean position of a point cloud.
func CloudCentroid(cloud *v3.Matrix) (*v3.Matrix, error) {
	if cloud == nil || cloud.NVecs() == 0 {
		return nil, &CError{"goDock: can't take the centroid of an empty cloud", []string{"CloudCentroid"}, true}
	}
	n := cloud.NVecs()
	acc := make([]float64, 3)
	for i := 0; i < n; i++ {
		floats.Add(acc, cloud.RawRowView(i))
	}
	floats.Scale(1.0/float64(n), acc)
	ret, _ := v3.NewMatrix(acc) //acc is hardcoded to length 3, no error possible
	return ret, nil
}
