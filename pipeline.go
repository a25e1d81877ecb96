/*
 * pipeline.go, part of gochem.
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

package xtal

import (
	"context"
	"fmt"
	"log/slog"
)

//checkInputs returns the reciprocal space of cell, or the error that keeps
//a map from being computed from the given data.
func checkInputs(cell UnitCell, ops []SymOp, refl ReflectionSource) (*ReciprocalSpace, error) {
	if err := cell.Validate(); err != nil {
		return nil, err
	}
	rs := Reciprocal(cell)
	if err := rs.Check(); err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, newError(NoSymmetry, "checkInputs", "at least the identity is needed")
	}
	if refl == nil || refl.Len() == 0 {
		return nil, newError(NoReflections, "checkInputs", "the reflection table is empty")
	}
	return rs, nil
}

//StructureFactorsToMap computes the electron density map in the cell from the
//reflections in refl and the symmetry operators ops. The structure factors are
//expanded by symmetry into a grid that samples them at the Nyquist rate,
//completed with their Friedel mates, and Fourier-transformed. The density is
//divided by the cell volume and, if O says so, normalized.
//If O is nil, DefaultOptions() is used. On error, no map is returned.
func StructureFactorsToMap(cell UnitCell, ops []SymOp, refl ReflectionSource, O *Options) (*DensityMap, error) {
	if O == nil {
		O = DefaultOptions()
	}
	log := O.Logger()
	rs, err := checkInputs(cell, ops, refl)
	if err != nil {
		return nil, errDecorate(err, "StructureFactorsToMap")
	}
	shape, err := GridSize(refl, rs, O)
	if err != nil {
		return nil, errDecorate(err, "StructureFactorsToMap")
	}
	log.Debug("reciprocal grid", "cell", cell.String(), "shape", shape, "reflections", refl.Len(), "operators", len(ops))
	G := NewReciprocalGrid(shape)
	est := ExpandSymmetry(G, refl, ops)
	fst := CompleteFriedel(G)
	log.Debug("grid filled", "used", est.Used, "unresolved", est.Unresolved, "zero", est.SkippedZero,
		"written", est.Written, "outside", est.OutOfBounds, "occupied", est.Occupied,
		"friedel", fst.Added, "clipped", fst.Clipped)
	if err := O.Transformer().Inverse(G.Data, shape, G.Strides()); err != nil {
		return nil, newError(TransformFail, "StructureFactorsToMap", err.Error())
	}
	if gst := GridStatistics(G); gst.Significant {
		log.Warn("significant imaginary components in the transformed grid", "maxImag", gst.MaxAbsImag, "meanReal", gst.MeanAbsReal)
	}
	M := NormalizeMap(G, rs.Volume, O.Normalize())
	if log.Enabled(context.Background(), slog.LevelDebug) {
		mst := MapStatistics(M, refl)
		log.Debug("density map", "normalized", O.Normalize(), "min", mst.Min, "max", mst.Max,
			"mean", mst.Mean, "sd", mst.SD, "peak", mst.PeakIndex, "strongest", fmt.Sprint(mst.Strongest.HKL))
	}
	return M, nil
}

//Reconstruct is as StructureFactorsToMap, but returns the map placed in the cell,
//ready to be displayed.
func Reconstruct(cell UnitCell, ops []SymOp, refl ReflectionSource, O *Options) (*MapState, error) {
	if O == nil {
		O = DefaultOptions()
	}
	M, err := StructureFactorsToMap(cell, ops, refl, O)
	if err != nil {
		return nil, errDecorate(err, "Reconstruct")
	}
	ms := NewMapState(M, cell, ops)
	ms.Normalized = O.Normalize()
	return ms, nil
}
