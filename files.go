/*
 * files.go, part of godock.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/godock/v3"
)

//Surface meshes are read and written in the Object File Format, both its
//plain flavor (OFF, positions only, normals recovered from the faces) and
//the vertex-normal flavor (NOFF, a normal after each position).

//offLine returns the next line of r that is not blank or a comment.
func offLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func offInts(fields []string) ([]int, error) {
	ret := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func offFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

//ReadOFF reads a triangulated surface mesh in OFF or NOFF format from r
//and returns it as a Graph, face adjacency included. Plain-OFF vertices
//carry no normals, so those are built by accumulating the (area-weighted)
//normals of the incident faces; NewGraph then brings them to unit length.
//Faces with more than three vertices are rejected.
func ReadOFF(r io.Reader) (*Graph, error) {
	buf := bufio.NewReader(r)
	line, err := offLine(buf)
	if err != nil {
		return nil, &CError{"goDock: failed to read the OFF header: " + err.Error(), []string{"ReadOFF"}, true}
	}
	var hasNormals bool
	switch line {
	case "OFF":
		hasNormals = false
	case "NOFF":
		hasNormals = true
	default:
		return nil, &CError{fmt.Sprintf("goDock: %q is not an OFF header", line), []string{"ReadOFF"}, true}
	}
	line, err = offLine(buf)
	if err != nil {
		return nil, &CError{"goDock: failed to read the OFF counts: " + err.Error(), []string{"ReadOFF"}, true}
	}
	counts, err := offInts(strings.Fields(line))
	if err != nil || len(counts) < 2 {
		return nil, &CError{fmt.Sprintf("goDock: malformed OFF counts line %q", line), []string{"ReadOFF"}, true}
	}
	nv, nf := counts[0], counts[1]
	if nv <= 0 {
		return nil, &CError{"goDock: OFF file declares no vertices", []string{"ReadOFF"}, true}
	}
	coords := v3.Zeros(nv)
	normals := v3.Zeros(nv) //stays zero for plain OFF until the face pass
	want := 3
	if hasNormals {
		want = 6
	}
	for i := 0; i < nv; i++ {
		line, err = offLine(buf)
		if err != nil {
			return nil, &CError{fmt.Sprintf("goDock: OFF file ends at vertex %d of %d", i, nv), []string{"ReadOFF"}, true}
		}
		vals, err2 := offFloats(strings.Fields(line))
		if err2 != nil || len(vals) < want {
			return nil, &CError{fmt.Sprintf("goDock: malformed OFF vertex line %q", line), []string{"ReadOFF"}, true}
		}
		coords.Set(i, 0, vals[0])
		coords.Set(i, 1, vals[1])
		coords.Set(i, 2, vals[2])
		if hasNormals {
			normals.Set(i, 0, vals[3])
			normals.Set(i, 1, vals[4])
			normals.Set(i, 2, vals[5])
		}
	}
	type face struct{ a, b, c int }
	faces := make([]face, 0, nf)
	for i := 0; i < nf; i++ {
		line, err = offLine(buf)
		if err != nil {
			return nil, &CError{fmt.Sprintf("goDock: OFF file ends at face %d of %d", i, nf), []string{"ReadOFF"}, true}
		}
		vals, err2 := offInts(strings.Fields(line))
		if err2 != nil || len(vals) < 1 || len(vals) < 1+vals[0] {
			return nil, &CError{fmt.Sprintf("goDock: malformed OFF face line %q", line), []string{"ReadOFF"}, true}
		}
		if vals[0] != 3 {
			return nil, &CError{fmt.Sprintf("goDock: only triangulated meshes are supported, got a %d-gon", vals[0]), []string{"ReadOFF"}, true}
		}
		a, b, c := vals[1], vals[2], vals[3]
		for _, v := range []int{a, b, c} {
			if v < 0 || v >= nv {
				return nil, &CError{fmt.Sprintf("goDock: face %d references vertex %d of a mesh with %d vertices", i, v, nv), []string{"ReadOFF"}, true}
			}
		}
		faces = append(faces, face{a, b, c})
		if !hasNormals {
			//cross of two edges, accumulated on the three corners
			e1 := make([]float64, 3)
			e2 := make([]float64, 3)
			for k := 0; k < 3; k++ {
				e1[k] = coords.At(b, k) - coords.At(a, k)
				e2[k] = coords.At(c, k) - coords.At(a, k)
			}
			fn := []float64{
				e1[1]*e2[2] - e1[2]*e2[1],
				e1[2]*e2[0] - e1[0]*e2[2],
				e1[0]*e2[1] - e1[1]*e2[0],
			}
			for _, v := range []int{a, b, c} {
				for k := 0; k < 3; k++ {
					normals.Set(v, k, normals.At(v, k)+fn[k])
				}
			}
		}
	}
	g, err := NewGraph(coords, normals)
	if err != nil {
		return nil, errDecorate(err, "ReadOFF")
	}
	for _, f := range faces {
		g.MeshNode(f.a).PushTriangularFace(f.b, f.c)
		g.MeshNode(f.b).PushTriangularFace(f.a, f.c)
		g.MeshNode(f.c).PushTriangularFace(f.a, f.b)
	}
	return g, nil
}

//OFFFileRead reads the OFF or NOFF file name into a Graph.
func OFFFileRead(name string) (*Graph, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &CError{"goDock: failed to open " + name + ": " + err.Error(), []string{"OFFFileRead"}, true}
	}
	defer f.Close()
	g, err := ReadOFF(f)
	if err != nil {
		return nil, errDecorate(err, "OFFFileRead "+name)
	}
	return g, nil
}

//graphFaces recovers the unique triangles of g from the per-node face
//references. Each triangle is emitted once, from its lowest-index corner.
func graphFaces(g *Graph) [][3]int {
	var ret [][3]int
	for i := 0; i < g.Len(); i++ {
		for _, f := range g.MeshNode(i).Faces() {
			if f.A > i && f.B > i {
				ret = append(ret, [3]int{i, f.A, f.B})
			}
		}
	}
	return ret
}

//WriteOFF writes g to w in NOFF format (normals are always written, since
//every Graph has them).
func WriteOFF(w io.Writer, g *Graph) error {
	if g == nil || g.Len() == 0 {
		return &CError{"goDock: can't write an empty mesh", []string{"WriteOFF"}, true}
	}
	buf := bufio.NewWriter(w)
	faces := graphFaces(g)
	fmt.Fprintln(buf, "NOFF")
	fmt.Fprintf(buf, "%d %d 0\n", g.Len(), len(faces))
	for i := 0; i < g.Len(); i++ {
		node := g.MeshNode(i)
		p := node.Pos()
		n := node.Normal()
		fmt.Fprintf(buf, "%.6f %.6f %.6f %.6f %.6f %.6f\n", p.At(0, 0), p.At(0, 1), p.At(0, 2), n.At(0, 0), n.At(0, 1), n.At(0, 2))
	}
	for _, f := range faces {
		fmt.Fprintf(buf, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	if err := buf.Flush(); err != nil {
		return &CError{"goDock: failed to write the mesh: " + err.Error(), []string{"WriteOFF"}, true}
	}
	return nil
}

//OFFFileWrite writes g to the file name in NOFF format.
func OFFFileWrite(name string, g *Graph) error {
	f, err := os.Create(name)
	if err != nil {
		return &CError{"goDock: failed to create " + name + ": " + err.Error(), []string{"OFFFileWrite"}, true}
	}
	defer f.Close()
	if err := WriteOFF(f, g); err != nil {
		return errDecorate(err, "OFFFileWrite "+name)
	}
	return nil
}
