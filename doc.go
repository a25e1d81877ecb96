/*
 * doc.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package xtal computes electron density maps from crystallographic structure factors,
as PyMOL does when it opens a structure-factor CIF file that contains phases.


	**Capabilities**


    Computes the reciprocal lattice of a unit cell of any symmetry.

    Parses symmetry operators in the x,y,z notation, or as 3x4/4x4 matrices.

    Chooses a grid that samples the data at the Nyquist rate, with
	axis lengths that the Fourier transform handles efficiently.

    Expands the observed reflections with the crystal symmetry, and completes
	the grid with Friedel mates, so the resulting density is real.

    Transforms the grid (package fft3) and scales the density by the cell volume,
	optionally normalizing it to zero mean and unit standard deviation.

    Places the map in the cell: grid-to-Cartesian mapping, extents and corners.

    Map statistics and histograms.

Maps can be saved in compressed files (package mapio), sent as JSON to other
programs, such as PyMOL plugins (package mapjson), and plotted (package mapplot).
The settings can be read from YAML files (package config).

The package uses its own matrix type for sets of 3D points, v3.Matrix, based on gonum's mat.Dense.
Each row of a v3.Matrix represents one point in space.*/
package xtal
