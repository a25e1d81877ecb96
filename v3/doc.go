/*
 * doc.go, part of gochem.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

/*Package v3 implements a Matrix type representing a row-major set of 3D vectors (i.e. a Nx3 matrix).
In this module the v3.Matrix holds fractional and cartesian coordinates of grid points, the 8 corners
of a map's enclosing parallelepiped and the 3x3 cell transforms. It is based on gonum's
(gonum.org/v1/gonum/mat) Dense type, with the additional restriction of a fixed number of columns.

Each row of a Matrix is one point in space. Prefer the Vec* methods to the Row* ones when
manipulating a Matrix.*/
package v3
