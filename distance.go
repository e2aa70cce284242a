/*
 * distance.go, part of godock.
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
	"gonum.org/v1/gonum/graph/path"
)

//Metric is a symmetric distance between two patches of one surface.
//It is a strategy so the proxy metric can be swapped for the real
//geodesic one without touching any caller.
type Metric interface {
	PatchDist(desc *SurfaceDescriptors, i, j int) (float64, error)
}

//Euclidean measures the distance between two patches as the Euclidean
//distance between their representative positions. It is a proxy for the
//geodesic distance over the mesh, and the reference behavior of the
//grouping stage.
type Euclidean struct{}

func (Euclidean) PatchDist(desc *SurfaceDescriptors, i, j int) (float64, error) {
	if err := desc.Check(i); err != nil {
		return 0, errDecorate(err, "Euclidean.PatchDist")
	}
	if err := desc.Check(j); err != nil {
		return 0, errDecorate(err, "Euclidean.PatchDist")
	}
	return dist(desc.Patch(i).Pos, desc.Patch(j).Pos), nil
}

//Geodesic measures the distance between two patches as the length of the
//shortest path over the mesh edges between the patches' seed nodes (the
//node of each patch closest to the patch centroid). Unlike Euclidean, it
//cannot cut through the body of the molecule.
//Shortest-path trees are cached per seed, so a Geodesic must not be shared
//between goroutines, nor reused after its mesh changes.
type Geodesic struct {
	G     *Graph
	trees map[int]path.Shortest
	seeds map[*Patch]int
}

//NewGeodesic returns a Geodesic metric over the given mesh.
func NewGeodesic(g *Graph) *Geodesic {
	return &Geodesic{G: g, trees: make(map[int]path.Shortest), seeds: make(map[*Patch]int)}
}

//seed returns the index of the node of p closest to the patch centroid.
func (M *Geodesic) seed(p *Patch) int {
	if s, ok := M.seeds[p]; ok {
		return s
	}
	best := p.Nodes[0]
	bestd := dist(M.G.MeshNode(best).Pos(), p.Pos)
	for _, v := range p.Nodes[1:] {
		d := dist(M.G.MeshNode(v).Pos(), p.Pos)
		if d < bestd {
			best = v
			bestd = d
		}
	}
	M.seeds[p] = best
	return best
}

//PatchDist returns the geodesic distance between the ith and jth patches.
//If the patches lie on disconnected parts of the mesh the distance is +Inf,
//which simply makes the grouping predicate reject the pair.
func (M *Geodesic) PatchDist(desc *SurfaceDescriptors, i, j int) (float64, error) {
	if err := desc.Check(i); err != nil {
		return 0, errDecorate(err, "Geodesic.PatchDist")
	}
	if err := desc.Check(j); err != nil {
		return 0, errDecorate(err, "Geodesic.PatchDist")
	}
	if len(desc.Patch(i).Nodes) == 0 || len(desc.Patch(j).Nodes) == 0 {
		return 0, &CError{"goDock: geodesic distance needs patches with at least one node", []string{"Geodesic.PatchDist"}, true}
	}
	si := M.seed(desc.Patch(i))
	sj := M.seed(desc.Patch(j))
	tree, ok := M.trees[si]
	if !ok {
		tree = path.DijkstraFrom(M.G.MeshNode(si), M.G)
		M.trees[si] = tree
	}
	return tree.WeightTo(int64(sj)), nil
}
