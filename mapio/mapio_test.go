/*
 * mapio_test.go, part of gochem.
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

package mapio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xtal "github.com/pslacerda1/pymol-open-source"
)

func sampleMap(t *testing.T) *xtal.MapState {
	t.Helper()
	cell := xtal.UnitCell{A: 12, B: 9, C: 14, Alpha: 90, Beta: 104, Gamma: 90}
	ops, err := xtal.ParseSymOps([]string{"x,y,z", "-x,y+1/2,-z"})
	require.NoError(t, err)
	refl := xtal.Reflections{
		{HKL: [3]int{0, 0, 0}, Amplitude: 40, Phase: 0, FOM: 1},
		{HKL: [3]int{1, 1, 0}, Amplitude: 7, Phase: 63, FOM: 0.8},
		{HKL: [3]int{0, 2, 1}, Amplitude: 9, Phase: 211, FOM: 0.95},
	}
	ms, err := xtal.Reconstruct(cell, ops, refl, nil)
	require.NoError(t, err)
	return ms
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, Zstd, CompressionFor("map.xtalmap.zst"))
	assert.Equal(t, Gzip, CompressionFor("MAP.GZ"))
	assert.Equal(t, Flate, CompressionFor("map.z"))
	assert.Equal(t, Flate, CompressionFor("map.flate"))
	assert.Equal(t, None, CompressionFor("map.xtalmap"))
}

func TestRoundTrip(t *testing.T) {
	ms := sampleMap(t)
	dir := t.TempDir()
	for _, name := range []string{"map.xtalmap", "map.xtalmap.zst", "map.xtalmap.gz", "map.xtalmap.z"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Write(path, ms), name)
		back, err := Read(path)
		require.NoError(t, err, name)
		assert.Equal(t, ms.Cell(), back.Cell(), name)
		assert.Equal(t, ms.Div, back.Div, name)
		assert.Equal(t, ms.Normalized, back.Normalized, name)
		assert.Equal(t, ms.Ops, back.Ops, name)
		assert.Equal(t, ms.Map.Data, back.Map.Data, name)
		assert.Equal(t, ms.ExtentMax, back.ExtentMax, name)
	}
}

func TestCompressionLevel(t *testing.T) {
	ms := sampleMap(t)
	dir := t.TempDir()
	fast := filepath.Join(dir, "fast.gz")
	require.NoError(t, Write(fast, ms, 1))
	back, err := Read(fast)
	require.NoError(t, err)
	assert.Equal(t, ms.Map.Data, back.Map.Data)
	plain := filepath.Join(dir, "plain")
	require.NoError(t, Write(plain, ms))
	pi, err := os.Stat(plain)
	require.NoError(t, err)
	fi, err := os.Stat(fast)
	require.NoError(t, err)
	assert.Less(t, fi.Size(), pi.Size())
}

func TestEncodeHeader(t *testing.T) {
	ms := sampleMap(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ms))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "cell=12 9 14 90 104 90", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "grid="))
	assert.Equal(t, "normalized=true", lines[2])
	assert.Equal(t, "op=x,y,z", lines[3])
	assert.Equal(t, "op=-x,y+1/2,-z", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "** "))
	assert.Error(t, Encode(&buf, nil))
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"no terminator":  "cell=10 10 10 90 90 90\ngrid=1 1 2\n",
		"no grid":        "cell=10 10 10 90 90 90\n** 2\n1\n2\n",
		"bad cell":       "cell=10 10 90 90 90\ngrid=1 1 2\n** 2\n1\n2\n",
		"flat cell":      "cell=10 10 10 120 120 120\ngrid=1 1 2\n** 2\n1\n2\n",
		"wrong count":    "cell=10 10 10 90 90 90\ngrid=1 1 2\n** 3\n1\n2\n3\n",
		"short data":     "cell=10 10 10 90 90 90\ngrid=1 1 2\n** 2\n1\n",
		"bad value":      "cell=10 10 10 90 90 90\ngrid=1 1 2\n** 2\n1\nx\n",
		"bad operator":   "cell=10 10 10 90 90 90\ngrid=1 1 2\nop=x,y\n** 2\n1\n2\n",
		"malformed line": "cell=10 10 10 90 90 90\ngrid\n** 2\n1\n2\n",
	}
	for name, data := range cases {
		_, err := Decode(strings.NewReader(data))
		assert.Error(t, err, name)
	}
	for _, grid := range []string{"100000 100000 100000", "4000000000 4000000000 4000000000"} {
		_, err := Decode(strings.NewReader("cell=10 10 10 90 90 90\ngrid=" + grid + "\n** 1000000000000000\n1\n"))
		require.Error(t, err, grid)
		assert.Contains(t, err.Error(), xtal.GridTooLarge, grid)
	}
	ms, err := Decode(strings.NewReader("cell=10 10 10 90 90 90\ngrid=1 1 2\nunknown=1\n** 2\n1\n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, ms.Map.Data)
	assert.False(t, ms.Normalized)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nothere.zst"))
	require.Error(t, err)
	e, ok := err.(Error)
	require.True(t, ok)
	assert.True(t, e.Critical())
	assert.Contains(t, e.FileName(), "nothere.zst")
}
