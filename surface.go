/*
 * surface.go, part of godock.
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
)

//Patch is a connected region of a surface mesh. It is produced by the
//surface-analysis stage and is not modified by the docking core.
type Patch struct {
	Pos    *v3.Matrix //representative position (centroid of the patch nodes), 1x3
	Normal *v3.Matrix //average outward normal, unit length, 1x3
	Nodes  []int      //indices of the mesh nodes belonging to the patch
}

//Descriptor classifies a Patch by its shape.
type Descriptor struct {
	Type Convexity
	Curv float64 //curvature magnitude, >= 0
}

func (D *Descriptor) String() string {
	return fmt.Sprintf("%s curv: %5.3f", D.Type, D.Curv)
}

//SurfaceDescriptors is the ordered sequence of (Patch, Descriptor) pairs of
//one molecule. The position in the sequence is the patch identifier used
//everywhere else in the library.
type SurfaceDescriptors struct {
	patches []*Patch
	descs   []*Descriptor
}

//NewSurfaceDescriptors returns an empty SurfaceDescriptors.
func NewSurfaceDescriptors() *SurfaceDescriptors {
	return &SurfaceDescriptors{}
}

//Append adds one (Patch, Descriptor) pair at the end of the sequence.
func (S *SurfaceDescriptors) Append(p *Patch, d *Descriptor) {
	S.patches = append(S.patches, p)
	S.descs = append(S.descs, d)
}

//Len returns the number of patches described.
func (S *SurfaceDescriptors) Len() int { return len(S.patches) }

//Patch returns the ith patch. Panics if out of range; entry points taking
//untrusted indices call Check first.
func (S *SurfaceDescriptors) Patch(i int) *Patch {
	if i < 0 || i >= len(S.patches) {
		panic(ErrPatchOutOfRange)
	}
	return S.patches[i]
}

//Descriptor returns the descriptor of the ith patch. Panics if out of range.
func (S *SurfaceDescriptors) Descriptor(i int) *Descriptor {
	if i < 0 || i >= len(S.descs) {
		panic(ErrPatchOutOfRange)
	}
	return S.descs[i]
}

//Check returns a descriptive error if i is not a valid patch index.
func (S *SurfaceDescriptors) Check(i int) error {
	if i < 0 || i >= len(S.patches) {
		return &CError{fmt.Sprintf("goDock: patch %d requested from a surface with %d patches", i, len(S.patches)), []string{"Check"}, true}
	}
	return nil
}
