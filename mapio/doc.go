/*
 * doc.go, part of gochem.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

//Package mapio reads and writes density maps in a simple, compressed, text format.
//The format (xtalmap) aims to be very easy to read and write from other programs and
//languages, while keeping files reasonably small thanks to the compression.

/******************** Format Specification   ***************************************************

An xtalmap file may only contain ASCII symbols. It may be compressed with z-standard (zstd),
gzip or deflate. The compression is given by the extension of the file: ".zst" for zstd,
".gz" for gzip and ".z" or ".flate" for deflate. Any other extension means no compression.

The file has a "header" starting in the first line, and ending with a line that starts with the
characters "**" followed by one or more spaces, and the number of points in the map.

Each line of the header is a pair key=value. The header must contain the keys:

cell=a b c alpha beta gamma

with the cell lengths in A and angles in degrees, and

grid=n0 n1 n2

with the number of points along each cell axis. The key "normalized" (true or false) tells whether
the map has zero mean and unit standard deviation. Each symmetry operator of the crystal goes in
a line with the key "op", in the x,y,z notation (for instance op=-x,y+1/2,-z). Readers should
ignore keys they don't know.

After the header, the file has one line per grid point, with the density at that point and
nothing more. The points are ordered with the last axis varying fastest, so the value for the
point (i,j,k) is in the line number i*n1*n2 + j*n2 + k after the header (counting from 0).

The "**" sequence may only be used as a header termination.

***************************************************************************************************/

package mapio
