/*
 * analysis.go, part of godock.
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
	"sort"

	v3 "github.com/rmera/godock/v3"
	"gonum.org/v1/gonum/mat"
)

//Surface analysis turns a bare mesh into the SurfaceDescriptors the
//docking core consumes: a curvature and a convexity class per node, then
//patches of connected nodes sharing a convexity class.

//AnalysisOptions configures the surface-analysis stage.
type AnalysisOptions struct {
	//Topological radius of the neighborhood used for the per-node PCA,
	//in mesh edges. 1 means the direct neighbors.
	Depth int
	//Mean tangent-plane offsets within this absolute value classify the
	//node as flat (mesh coordinate units).
	FlatTol float64
}

//DefaultAnalysisOptions returns reasonable analysis options for protein
//surface meshes with coordinates in Å.
func DefaultAnalysisOptions() *AnalysisOptions {
	r := new(AnalysisOptions)
	r.Depth = 2
	r.FlatTol = 0.05
	return r
}

//neighborhood returns the indices of the nodes at most depth edges away
//from node i, i included, in ascending order.
func neighborhood(g *Graph, i, depth int) []int {
	seen := map[int]bool{i: true}
	frontier := []int{i}
	for d := 0; d < depth; d++ {
		var next []int
		for _, v := range frontier {
			for _, w := range g.MeshNode(v).Neighbours() {
				if !seen[w] {
					seen[w] = true
					next = append(next, w)
				}
			}
		}
		frontier = next
	}
	ret := make([]int, 0, len(seen))
	for v := range seen {
		ret = append(ret, v)
	}
	sort.Ints(ret)
	return ret
}

//EstimateShape computes, for every node of g, a PCA shape estimate over
//its topological neighborhood: the curvature is the smallest eigenvalue
//of the neighborhood covariance over the eigenvalue sum (0 for a plane,
//up to 1/3 for an isotropic blob), and the convexity class is decided by
//the mean offset of the neighbors along the node's outward normal, with
//offsets within o.FlatTol counting as flat. Nodes with fewer than 3
//neighborhood members get curvature 0 and stay flat. A nil o means
//DefaultAnalysisOptions().
func EstimateShape(g *Graph, o *AnalysisOptions) error {
	if g == nil {
		return &CError{"goDock: nil mesh", []string{"EstimateShape"}, true}
	}
	if o == nil {
		o = DefaultAnalysisOptions()
	}
	if o.Depth <= 0 {
		return &CError{"goDock: the analysis neighborhood depth must be positive", []string{"EstimateShape"}, true}
	}
	for i := 0; i < g.Len(); i++ {
		node := g.MeshNode(i)
		hood := neighborhood(g, i, o.Depth)
		if len(hood) < 3 {
			node.SetCurvature(0)
			node.SetConvexity(Flat)
			continue
		}
		//neighborhood centroid
		var cx, cy, cz float64
		for _, v := range hood {
			p := g.MeshNode(v).Pos()
			cx += p.At(0, 0)
			cy += p.At(0, 1)
			cz += p.At(0, 2)
		}
		n := float64(len(hood))
		cx /= n
		cy /= n
		cz /= n
		var cov [6]float64 //upper triangle, row major
		for _, v := range hood {
			p := g.MeshNode(v).Pos()
			dx := p.At(0, 0) - cx
			dy := p.At(0, 1) - cy
			dz := p.At(0, 2) - cz
			cov[0] += dx * dx
			cov[1] += dx * dy
			cov[2] += dx * dz
			cov[3] += dy * dy
			cov[4] += dy * dz
			cov[5] += dz * dz
		}
		covmat := mat.NewSymDense(3, []float64{
			cov[0] / n, cov[1] / n, cov[2] / n,
			cov[1] / n, cov[3] / n, cov[4] / n,
			cov[2] / n, cov[4] / n, cov[5] / n,
		})
		var eig mat.EigenSym
		if ok := eig.Factorize(covmat, false); !ok {
			return &CError{"goDock: the covariance eigendecomposition failed", []string{"EstimateShape"}, true}
		}
		vals := eig.Values(nil) //ascending
		sum := vals[0] + vals[1] + vals[2]
		if sum <= appzero {
			node.SetCurvature(0)
		} else {
			node.SetCurvature(vals[0] / sum)
		}
		//mean offset of the neighbors along the outward normal. Convex
		//regions have their neighbors under the tangent plane.
		normal := node.Normal()
		pos := node.Pos()
		var off float64
		for _, v := range hood {
			if v == i {
				continue
			}
			p := g.MeshNode(v).Pos()
			for k := 0; k < 3; k++ {
				off += (p.At(0, k) - pos.At(0, k)) * normal.At(0, k)
			}
		}
		off /= n - 1
		switch {
		case off < -o.FlatTol:
			node.SetConvexity(Convex)
		case off > o.FlatTol:
			node.SetConvexity(Concave)
		default:
			node.SetConvexity(Flat)
		}
	}
	return nil
}

//Segment partitions the nodes of g into patches of connected nodes that
//share a convexity class, and returns one descriptor per patch. Patches
//are emitted in ascending order of their lowest node index, so the same
//mesh always produces the same descriptor sequence. Each patch carries
//the centroid of its nodes, their average normal (unit length, or zero if
//the nodes' normals cancel) and, in the descriptor, the mean node
//curvature and the shared convexity class. Call EstimateShape (or set
//curvatures and convexities by hand) before segmenting: an all-flat mesh
//segments into patches no pair of which is complementary.
func Segment(g *Graph) (*SurfaceDescriptors, error) {
	if g == nil {
		return nil, &CError{"goDock: nil mesh", []string{"Segment"}, true}
	}
	ret := NewSurfaceDescriptors()
	assigned := make([]bool, g.Len())
	for i := 0; i < g.Len(); i++ {
		if assigned[i] {
			continue
		}
		conv := g.MeshNode(i).Type()
		members := []int{i}
		assigned[i] = true
		for f := 0; f < len(members); f++ { //members grows while we walk it
			for _, w := range g.MeshNode(members[f]).Neighbours() {
				if !assigned[w] && g.MeshNode(w).Type() == conv {
					assigned[w] = true
					members = append(members, w)
				}
			}
		}
		sort.Ints(members)
		patch := &Patch{Pos: v3.Zeros(1), Normal: v3.Zeros(1), Nodes: members}
		var curv float64
		for _, v := range members {
			node := g.MeshNode(v)
			patch.Pos.Dense.Add(patch.Pos.Dense, node.Pos().Dense)
			patch.Normal.Dense.Add(patch.Normal.Dense, node.Normal().Dense)
			curv += node.Curvature()
		}
		n := float64(len(members))
		patch.Pos.Dense.Scale(1/n, patch.Pos.Dense)
		patch.Normal.Dense.Scale(1/n, patch.Normal.Dense)
		if patch.Normal.Norm(2) > appzero {
			patch.Normal.Unit(patch.Normal)
		}
		ret.Append(patch, &Descriptor{Type: conv, Curv: curv / n})
	}
	return ret, nil
}

//AnalyzeSurface runs the whole analysis stage on g: shape estimation
//followed by segmentation.
func AnalyzeSurface(g *Graph, o *AnalysisOptions) (*SurfaceDescriptors, error) {
	if err := EstimateShape(g, o); err != nil {
		return nil, errDecorate(err, "AnalyzeSurface")
	}
	desc, err := Segment(g)
	if err != nil {
		return nil, errDecorate(err, "AnalyzeSurface")
	}
	return desc, nil
}
