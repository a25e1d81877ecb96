/*
 * mapio.go, part of gochem.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	xtal "github.com/pslacerda1/pymol-open-source"
)

//Compression is the kind of compression used for a file.
type Compression int

const (
	None Compression = iota
	Zstd
	Gzip
	Flate
)

//CompressionFor returns the compression that corresponds to the extension of name.
func CompressionFor(name string) Compression {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".zst"):
		return Zstd
	case strings.HasSuffix(l, ".gz"):
		return Gzip
	case strings.HasSuffix(l, ".z"), strings.HasSuffix(l, ".flate"):
		return Flate
	}
	return None
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

//Also, why couldn't *zstd.Decoder implement io.ReadCloser?
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newWriter(w io.Writer, c Compression, level int) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		zl := zstd.SpeedBestCompression
		if level >= 0 {
			zl = zstd.EncoderLevelFromZstd(level)
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zl))
	case Gzip:
		if level < 0 {
			level = gzip.BestCompression
		}
		return gzip.NewWriterLevel(w, level)
	case Flate:
		if level < 0 {
			level = flate.BestCompression
		}
		return flate.NewWriter(w, level)
	}
	return nopCloser{w}, nil
}

func newReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case Gzip:
		return gzip.NewReader(r)
	case Flate:
		return flate.NewReader(r), nil
	}
	return io.NopCloser(r), nil
}

//Write saves the map in ms to the file name, compressed according to
//the file's extension. The compression level, if given, is passed to the compressor.
func Write(name string, ms *xtal.MapState, compressionLevel ...int) (err error) {
	level := -1
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = Error{cerr.Error(), name, []string{"Write"}, true}
		}
	}()
	h, err := newWriter(f, CompressionFor(name), level)
	if err != nil {
		return Error{"Can't create compressor " + err.Error(), name, []string{"Write"}, true}
	}
	if err := Encode(h, ms); err != nil {
		h.Close()
		return errDecorate(err, name, "Write")
	}
	if err := h.Close(); err != nil {
		return Error{"Can't finish compression " + err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//Read loads a map from the file name, decompressing it according to the file's extension.
func Read(name string) (*xtal.MapState, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	h, err := newReader(bufio.NewReader(f), CompressionFor(name))
	if err != nil {
		return nil, Error{"Can't read header " + err.Error(), name, []string{"Read"}, true}
	}
	defer h.Close()
	ms, err := Decode(h)
	if err != nil {
		return nil, errDecorate(err, name, "Read")
	}
	return ms, nil
}

func formatFloats(f ...float64) string {
	s := make([]string, len(f))
	for i, v := range f {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}

//Encode writes ms to w, uncompressed.
func Encode(w io.Writer, ms *xtal.MapState) error {
	if ms == nil || ms.Map == nil {
		return Error{NilMap, "", []string{"Encode"}, true}
	}
	b := bufio.NewWriter(w)
	c := ms.Cell()
	shape := ms.Map.Shape()
	fmt.Fprintf(b, "cell=%s\n", formatFloats(c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma))
	fmt.Fprintf(b, "grid=%d %d %d\n", shape[0], shape[1], shape[2])
	fmt.Fprintf(b, "normalized=%t\n", ms.Normalized)
	for _, op := range ms.Ops {
		fmt.Fprintf(b, "op=%s\n", op.String())
	}
	fmt.Fprintf(b, "** %d\n", ms.Map.Len())
	for _, v := range ms.Map.Data {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('\n')
	}
	if err := b.Flush(); err != nil {
		return Error{err.Error(), "", []string{"Encode"}, true}
	}
	return nil
}

type header struct {
	cell       xtal.UnitCell
	shape      [3]int
	normalized bool
	ops        []xtal.SymOp
	npoints    int
	hasCell    bool
	hasGrid    bool
}

func readHeader(h *bufio.Reader) (*header, error) {
	H := new(header)
	for {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, Error{"Can't read header " + err.Error(), "", []string{"readHeader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			f := strings.Fields(str)
			if len(f) < 2 {
				return nil, Error{fmt.Sprintf("Can't read the number of points from '%s'", str), "", []string{"readHeader"}, true}
			}
			if H.npoints, err = strconv.Atoi(f[1]); err != nil {
				return nil, Error{fmt.Sprintf("Can't read the number of points from '%s': %s", str, err.Error()), "", []string{"readHeader"}, true}
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			return nil, Error{fmt.Sprintf("Malformed header line '%s'", str), "", []string{"readHeader"}, true}
		}
		switch k {
		case "cell":
			f, err := parseFloats(v, 6)
			if err != nil {
				return nil, Error{"Can't read cell: " + err.Error(), "", []string{"readHeader"}, true}
			}
			H.cell = xtal.UnitCell{A: f[0], B: f[1], C: f[2], Alpha: f[3], Beta: f[4], Gamma: f[5]}
			H.hasCell = true
		case "grid":
			f := strings.Fields(v)
			if len(f) != 3 {
				return nil, Error{fmt.Sprintf("Can't read grid from '%s'", v), "", []string{"readHeader"}, true}
			}
			for i, s := range f {
				if H.shape[i], err = strconv.Atoi(s); err != nil || H.shape[i] <= 0 {
					return nil, Error{fmt.Sprintf("Can't read grid from '%s'", v), "", []string{"readHeader"}, true}
				}
			}
			H.hasGrid = true
		case "normalized":
			if H.normalized, err = strconv.ParseBool(v); err != nil {
				return nil, Error{"Can't read normalized: " + err.Error(), "", []string{"readHeader"}, true}
			}
		case "op":
			op, err := xtal.ParseSymOp(v)
			if err != nil {
				return nil, Error{err.Error(), "", []string{"readHeader"}, true}
			}
			H.ops = append(H.ops, op)
		}
	}
	if !H.hasCell || !H.hasGrid {
		return nil, Error{MissingHeader, "", []string{"readHeader"}, true}
	}
	n, err := xtal.GridPoints(H.shape)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"readHeader"}, true}
	}
	if n != H.npoints {
		return nil, Error{fmt.Sprintf("The grid has %d points, but %d are declared", n, H.npoints), "", []string{"readHeader"}, true}
	}
	return H, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	f := strings.Fields(s)
	if len(f) != n {
		return nil, fmt.Errorf("%d values expected, got %d", n, len(f))
	}
	ret := make([]float64, n)
	for i, v := range f {
		var err error
		if ret[i], err = strconv.ParseFloat(v, 64); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//Decode reads an uncompressed map from r.
func Decode(r io.Reader) (*xtal.MapState, error) {
	h := bufio.NewReader(r)
	H, err := readHeader(h)
	if err != nil {
		return nil, errDecorate(err, "", "Decode")
	}
	if err := H.cell.Validate(); err != nil {
		return nil, Error{err.Error(), "", []string{"Decode"}, true}
	}
	M := xtal.NewDensityMap(H.shape)
	for i := range M.Data {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, Error{fmt.Sprintf("Can't read point %d of %d: %s", i, M.Len(), err.Error()), "", []string{"Decode"}, true}
		}
		if M.Data[i], err = strconv.ParseFloat(strings.TrimSpace(str), 64); err != nil {
			return nil, Error{fmt.Sprintf("Can't read point %d: %s", i, err.Error()), "", []string{"Decode"}, true}
		}
	}
	ms := xtal.NewMapState(M, H.cell, H.ops)
	ms.Normalized = H.normalized
	return ms, nil
}

//Errors

//Error is the error type for this package. It carries the name of the file, if any.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("xtalmap error: %s", err.message)
	}
	return fmt.Sprintf("xtalmap file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//errDecorate sets the filename of err, if it is an Error without one,
//and decorates it with the caller's name.
func errDecorate(err error, filename, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	if e.filename == "" {
		e.filename = filename
	}
	e.Decorate(caller)
	return e
}

const (
	NilMap        = "Given nil map"
	MissingHeader = "The header must contain the cell and the grid"
)
