/*
 * doc.go, part of godock.
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

/*
Package dock implements the geometric core of a rigid protein-protein
docking scheme based on surface complementarity.

Each molecular surface is a triangulated mesh (Graph) whose nodes carry a
position, an outward normal, a curvature and a convexity class. The mesh is
segmented into patches and each patch is reduced to a shape descriptor
(SurfaceDescriptors). The docking itself then works only on descriptors:
a Docker ranks complementary target/ligand patch pairs by curvature
similarity, clusters the best pairs into spatially coherent matching
groups, and synthesizes, for each group, the 4x4 rigid transformation that
places the ligand group on the target group with the surfaces facing each
other.

The whole pipeline is deterministic: the same meshes and the same Options
always produce the same groups and the same transformations.

The v3 sub-package provides the Nx3 coordinate matrices used throughout,
on top of gonum.
*/
package dock
