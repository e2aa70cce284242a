/*
 * mesh.go, part of godock.
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
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

//Convexity classifies a mesh node or a surface patch by its local shape.
type Convexity int

const (
	Convex Convexity = iota
	Concave
	Flat
)

func (c Convexity) String() string {
	switch c {
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

//Complementary returns whether two convexity classes can face each other
//in a docking interface. Flat patches are not complementary to anything,
//including themselves.
func (c Convexity) Complementary(o Convexity) bool {
	return (c == Convex && o == Concave) || (c == Concave && o == Convex)
}

//FaceRef identifies one triangular face incident to a node, by the indices
//of the two neighbour nodes that complete the triangle with it.
type FaceRef struct {
	A, B int
}

//Node is one vertex of a surface mesh, with the local surface information
//attached to it by the surface-analysis stage.
type Node struct {
	index  int
	pos    *v3.Matrix //1x3
	normal *v3.Matrix //1x3, unit length
	curv   float64
	conv   Convexity
	faces  []FaceRef
}

//ID makes Node satisfy gonum's graph.Node.
func (N *Node) ID() int64 { return int64(N.index) }

//Index returns the index of the node in its Graph.
func (N *Node) Index() int { return N.index }

//Pos returns the position of the node. The returned matrix is the
//node's own storage, so the caller must not modify it.
func (N *Node) Pos() *v3.Matrix { return N.pos }

//Normal returns the unit outward normal of the node. Not a copy.
func (N *Node) Normal() *v3.Matrix { return N.normal }

//Curvature returns the curvature magnitude estimated for the node.
func (N *Node) Curvature() float64 { return N.curv }

//Type returns the convexity classification of the node.
func (N *Node) Type() Convexity { return N.conv }

//Faces returns the triangular faces incident to the node.
func (N *Node) Faces() []FaceRef { return N.faces }

//SetCurvature sets the curvature magnitude of the node.
func (N *Node) SetCurvature(c float64) { N.curv = c }

//SetConvexity sets the convexity class of the node.
func (N *Node) SetConvexity(c Convexity) { N.conv = c }

//PushTriangularFace records that the node forms a triangle with the
//nodes adj1 and adj2.
func (N *Node) PushTriangularFace(adj1, adj2 int) {
	N.faces = append(N.faces, FaceRef{A: adj1, B: adj2})
}

//Neighbours returns the indices of all nodes sharing a face with N,
//each one once, in first-seen order.
func (N *Node) Neighbours() []int {
	ret := make([]int, 0, len(N.faces)+2)
	for _, f := range N.faces {
		if !isInInt(f.A, ret) {
			ret = append(ret, f.A)
		}
		if !isInInt(f.B, ret) {
			ret = append(ret, f.B)
		}
	}
	return ret
}

//String returns a one-line representation of the node, for debugging.
func (N *Node) String() string {
	return fmt.Sprintf("node %d %s pos: %v curv: %4.2f faces: %d", N.index, N.conv, N.pos, N.curv, len(N.faces))
}

//Graph is a triangulated surface mesh. It holds Node entities addressable
//by index, and implements gonum's graph interfaces over the face-adjacency
//structure, with edge weights equal to the Euclidean edge lengths, so
//shortest surface paths can be computed directly on it.
type Graph struct {
	nodes []*Node
}

//NewGraph builds a mesh from one position and one unit normal per node.
//Faces are added afterwards with PushTriangularFace on each node.
func NewGraph(coords, normals *v3.Matrix) (*Graph, error) {
	if coords == nil || normals == nil {
		return nil, &CError{"goDock: nil coordinates or normals for mesh", []string{"NewGraph"}, true}
	}
	if coords.NVecs() != normals.NVecs() {
		return nil, &CError{fmt.Sprintf("goDock: %d coordinates but %d normals", coords.NVecs(), normals.NVecs()), []string{"NewGraph"}, true}
	}
	n := coords.NVecs()
	G := &Graph{nodes: make([]*Node, n)}
	for i := 0; i < n; i++ {
		pos := v3.Zeros(1)
		pos.Copy(coords.VecView(i))
		normal := v3.Zeros(1)
		normal.Unit(normals.VecView(i))
		G.nodes[i] = &Node{index: i, pos: pos, normal: normal, conv: Flat}
	}
	return G, nil
}

//Len returns the number of nodes in the mesh.
func (G *Graph) Len() int { return len(G.nodes) }

//MeshNode returns the ith node of the mesh. It panics if i is out of
//range; exported entry points taking untrusted indices validate them
//before getting here.
func (G *Graph) MeshNode(i int) *Node {
	if i < 0 || i >= len(G.nodes) {
		panic(ErrNodeOutOfRange)
	}
	return G.nodes[i]
}

//Coord returns a copy of the position of the ith node, or an error if
//the index is out of range.
func (G *Graph) Coord(i int) (*v3.Matrix, error) {
	if i < 0 || i >= len(G.nodes) {
		return nil, &CError{fmt.Sprintf("goDock: node %d requested from a mesh of %d nodes", i, len(G.nodes)), []string{"Coord"}, true}
	}
	r := v3.Zeros(1)
	r.Copy(G.nodes[i].pos)
	return r, nil
}

//TransformNodes applies the rigid transform T to every node of the mesh,
//moving positions and rotating normals (translation does not apply to
//normals). This is how a computed docking is actually enacted on the ligand.
func (G *Graph) TransformNodes(T *Transform) {
	for _, n := range G.nodes {
		T.Apply(n.pos, n.pos)
		T.RotateOnly(n.normal, n.normal)
	}
}

//The following methods implement gonum's graph.WeightedUndirected
//over the mesh, so graph/path algorithms run on it without an
//intermediate representation.

//Node returns the node with the given ID, or nil if it does not exist.
func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(G.nodes)) {
		return nil
	}
	return G.nodes[id]
}

//Nodes returns an iterator over all mesh nodes.
func (G *Graph) Nodes() graph.Nodes {
	ns := make([]graph.Node, len(G.nodes))
	for i, v := range G.nodes {
		ns[i] = v
	}
	return iterator.NewOrderedNodes(ns)
}

//From returns an iterator over the nodes sharing an edge with the node id.
func (G *Graph) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(len(G.nodes)) {
		return graph.Empty
	}
	neigh := G.nodes[id].Neighbours()
	ns := make([]graph.Node, 0, len(neigh))
	for _, v := range neigh {
		if v >= 0 && v < len(G.nodes) {
			ns = append(ns, G.nodes[v])
		}
	}
	return iterator.NewOrderedNodes(ns)
}

//HasEdgeBetween reports whether the nodes xid and yid share a face edge.
func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	if xid == yid || xid < 0 || xid >= int64(len(G.nodes)) {
		return false
	}
	return isInInt(int(yid), G.nodes[xid].Neighbours())
}

//Edge returns the edge between uid and vid, or nil if there is none.
func (G *Graph) Edge(uid, vid int64) graph.Edge {
	return G.WeightedEdgeBetween(uid, vid)
}

//EdgeBetween returns the edge between xid and yid, or nil if there is none.
func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.WeightedEdgeBetween(xid, yid)
}

//WeightedEdge returns the weighted edge between uid and vid, or nil.
func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	return G.WeightedEdgeBetween(uid, vid)
}

//WeightedEdgeBetween returns the weighted edge between xid and yid, or nil.
func (G *Graph) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	if !G.HasEdgeBetween(xid, yid) {
		return nil
	}
	f := G.nodes[xid]
	t := G.nodes[yid]
	return &meshEdge{f: f, t: t, w: dist(f.pos, t.pos)}
}

//Weight returns the Euclidean length of the edge between xid and yid.
func (G *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e := G.WeightedEdgeBetween(xid, yid)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

//meshEdge is an edge of the face-adjacency graph. The mesh is undirected,
//so the reversed edge just swaps the ends.
type meshEdge struct {
	f, t *Node
	w    float64
}

func (E *meshEdge) From() graph.Node { return E.f }
func (E *meshEdge) To() graph.Node   { return E.t }
func (E *meshEdge) ReversedEdge() graph.Edge {
	return &meshEdge{f: E.t, t: E.f, w: E.w}
}
func (E *meshEdge) Weight() float64 { return E.w }

//dist returns the Euclidean distance between two 1x3 vectors.
func dist(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return d.Norm(2)
}

//isInInt returns true if test is in container, false otherwise.
func isInInt(test int, container []int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
