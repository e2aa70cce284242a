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

/*Package v3 implements a Matrix type representing a row-major set of points
in 3D space (i.e. a Nx3 matrix). In goDock, v3.Matrix holds the cartesian
coordinates of surface-mesh nodes, point clouds, and normal vectors (a normal
being a 1x3 Matrix). It is based on gonum's Dense type, with restrictions
coming from the fixed number of columns, plus the vector-wise operations
needed for surface docking.
*/
package v3
