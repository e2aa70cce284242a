/*
 * results.go, part of godock.
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

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Docking results (matching groups plus their transformations) are stored
//in gdr files: a line-oriented text format compressed with z-standard.
//A gdr file is a magic line, any number of "key value" header lines, a
//"**" separator and then one record per group: a "group" line with the
//number of pairs, the pairs themselves, and the 4 rows of the 4x4
//transformation.

const gdrMagic = "gdr 1"

//GdrW writes docking results to a gdr file. Records are compressed as
//they are written, so the file is only valid after Close.
type GdrW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	groups    int
}

//NewGdrW creates the gdr file name and writes the header to it. The
//header map can be nil.
func NewGdrW(name string, header map[string]string) (*GdrW, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, &CError{"goDock: failed to create " + name + ": " + err.Error(), []string{"NewGdrW"}, true}
	}
	h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, &CError{"goDock: failed to set up compression for " + name + ": " + err.Error(), []string{"NewGdrW"}, true}
	}
	W := &GdrW{f: f, h: h, filename: name, writeable: true}
	fmt.Fprintln(W.h, gdrMagic)
	for k, v := range header {
		if strings.ContainsAny(k+v, "\n") || strings.Contains(k, " ") || k == "**" {
			W.Close()
			return nil, &CError{fmt.Sprintf("goDock: malformed header entry %q: %q", k, v), []string{"NewGdrW"}, true}
		}
		fmt.Fprintf(W.h, "%s %s\n", k, v)
	}
	fmt.Fprintln(W.h, "**")
	return W, nil
}

//WNext appends one record: a matching group and its transformation.
func (W *GdrW) WNext(group MatchingGroup, T *Transform) error {
	if !W.writeable {
		return &CError{"goDock: " + W.filename + " is not open for writing", []string{"WNext"}, true}
	}
	if len(group) == 0 || T == nil {
		return &CError{"goDock: a gdr record needs a non-empty group and a transformation", []string{"WNext"}, true}
	}
	fmt.Fprintf(W.h, "group %d %d\n", W.groups, len(group))
	for _, p := range group {
		fmt.Fprintf(W.h, "%d %d\n", p.Target, p.Ligand)
	}
	for i := 0; i < 4; i++ {
		fmt.Fprintf(W.h, "%.17g %.17g %.17g %.17g\n", T.At(i, 0), T.At(i, 1), T.At(i, 2), T.At(i, 3))
	}
	W.groups++
	return nil
}

//Close flushes the compressor and closes the file. Safe on a nil or
//already closed writer.
func (W *GdrW) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

//GdrR reads docking results from a gdr file, one record at a time.
type GdrR struct {
	f        *os.File
	h        io.ReadCloser
	buf      *bufio.Reader
	filename string
	open     bool
}

//NewGdrR opens the gdr file name, reads its header and leaves the reader
//at the first record.
func NewGdrR(name string) (*GdrR, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, &CError{"goDock: failed to open " + name + ": " + err.Error(), []string{"NewGdrR"}, true}
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, &CError{"goDock: failed to set up decompression for " + name + ": " + err.Error(), []string{"NewGdrR"}, true}
	}
	R := &GdrR{f: f, h: dec.IOReadCloser(), filename: name, open: true}
	R.buf = bufio.NewReader(R.h)
	line, err := R.line()
	if err != nil || line != gdrMagic {
		R.Close()
		return nil, nil, &CError{name + " is not a gdr file", []string{"NewGdrR"}, true}
	}
	header := make(map[string]string)
	for {
		line, err = R.line()
		if err != nil {
			R.Close()
			return nil, nil, &CError{"goDock: " + name + " ends inside its header", []string{"NewGdrR"}, true}
		}
		if line == "**" {
			break
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			R.Close()
			return nil, nil, &CError{fmt.Sprintf("goDock: malformed header line %q in %s", line, name), []string{"NewGdrR"}, true}
		}
		header[fields[0]] = fields[1]
	}
	return R, header, nil
}

func (R *GdrR) line() (string, error) {
	line, err := R.buf.ReadString('\n')
	line = strings.TrimRight(line, "\n")
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return line, nil
}

//Next returns the next record. When the file is exhausted the error is
//io.EOF, with a nil group and transformation.
func (R *GdrR) Next() (MatchingGroup, *Transform, error) {
	if !R.open {
		return nil, nil, &CError{"goDock: " + R.filename + " is not open for reading", []string{"Next"}, true}
	}
	line, err := R.line()
	if err == io.EOF {
		return nil, nil, io.EOF
	}
	if err != nil {
		return nil, nil, &CError{"goDock: failed to read from " + R.filename + ": " + err.Error(), []string{"Next"}, true}
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "group" {
		return nil, nil, &CError{fmt.Sprintf("goDock: malformed group line %q in %s", line, R.filename), []string{"Next"}, true}
	}
	npairs, err := strconv.Atoi(fields[2])
	if err != nil || npairs <= 0 {
		return nil, nil, &CError{fmt.Sprintf("goDock: malformed pair count in %q in %s", line, R.filename), []string{"Next"}, true}
	}
	group := make(MatchingGroup, 0, npairs)
	for i := 0; i < npairs; i++ {
		line, err = R.line()
		if err != nil {
			return nil, nil, &CError{"goDock: " + R.filename + " ends inside a group", []string{"Next"}, true}
		}
		fields = strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, &CError{fmt.Sprintf("goDock: malformed pair line %q in %s", line, R.filename), []string{"Next"}, true}
		}
		t, err1 := strconv.Atoi(fields[0])
		l, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, nil, &CError{fmt.Sprintf("goDock: malformed pair line %q in %s", line, R.filename), []string{"Next"}, true}
		}
		group = append(group, Match{Target: t, Ligand: l})
	}
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		line, err = R.line()
		if err != nil {
			return nil, nil, &CError{"goDock: " + R.filename + " ends inside a transformation", []string{"Next"}, true}
		}
		fields = strings.Fields(line)
		if len(fields) != 4 {
			return nil, nil, &CError{fmt.Sprintf("goDock: malformed transformation row %q in %s", line, R.filename), []string{"Next"}, true}
		}
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, nil, &CError{fmt.Sprintf("goDock: malformed transformation row %q in %s", line, R.filename), []string{"Next"}, true}
			}
			m.Set(i, j, v)
		}
	}
	return group, NewTransform(m), nil
}

//Close releases the decompressor and the file. Safe on a nil or already
//closed reader.
func (R *GdrR) Close() {
	if R == nil || !R.open {
		return
	}
	R.h.Close()
	R.f.Close()
	R.open = false
}

//WriteResults writes all the given groups and their transformations, in
//order, to the gdr file name. It is a convenience over NewGdrW/WNext.
func WriteResults(name string, groups MatchingGroups, transforms []*Transform, header map[string]string) error {
	if len(groups) != len(transforms) {
		return &CError{fmt.Sprintf("goDock: %d groups but %d transformations", len(groups), len(transforms)), []string{"WriteResults"}, true}
	}
	W, err := NewGdrW(name, header)
	if err != nil {
		return errDecorate(err, "WriteResults")
	}
	defer W.Close()
	for i, g := range groups {
		if err := W.WNext(g, transforms[i]); err != nil {
			return errDecorate(err, "WriteResults")
		}
	}
	return nil
}

//ReadResults reads a whole gdr file back.
func ReadResults(name string) (MatchingGroups, []*Transform, map[string]string, error) {
	R, header, err := NewGdrR(name)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "ReadResults")
	}
	defer R.Close()
	var groups MatchingGroups
	var transforms []*Transform
	for {
		g, T, err := R.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, errDecorate(err, "ReadResults")
		}
		groups = append(groups, g)
		transforms = append(transforms, T)
	}
	return groups, transforms, header, nil
}
