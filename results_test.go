/*
 * results_test.go, part of godock.
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
	"io"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGdrRoundTrip(Te *testing.T) {
	groups := MatchingGroups{
		{{Target: 0, Ligand: 2}, {Target: 1, Ligand: 3}},
		{{Target: 4, Ligand: 0}},
	}
	rot := RotationToOppose(vec(1, 2, 3), vec(-1, 0, 2))
	shift := Translation(vec(0.25, -3, 1e-8))
	composed := IdentityTransform()
	composed.Mul(shift, rot)
	transforms := []*Transform{composed, Translation(vec(math.Pi, 0, -1))}
	header := map[string]string{"target": "barnase.off", "ligand": "barstar.off"}
	name := filepath.Join(Te.TempDir(), "run.gdr")
	if err := WriteResults(name, groups, transforms, header); err != nil {
		Te.Fatal(err)
	}
	gback, tback, hback, err := ReadResults(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(gback, groups) {
		Te.Errorf("groups changed in the round trip: %v vs %v", gback, groups)
	}
	if !reflect.DeepEqual(hback, header) {
		Te.Errorf("header changed in the round trip: %v vs %v", hback, header)
	}
	if len(tback) != len(transforms) {
		Te.Fatalf("wanted %d transformations back, got %d", len(transforms), len(tback))
	}
	//%.17g round-trips float64 exactly
	for n, T := range transforms {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				if T.At(i, j) != tback[n].At(i, j) {
					Te.Errorf("transformation %d element (%d,%d) changed: %g vs %g", n, i, j, T.At(i, j), tback[n].At(i, j))
				}
			}
		}
	}
}

func TestGdrStreaming(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "stream.gdr")
	W, err := NewGdrW(name, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(MatchingGroup{{Target: 1, Ligand: 1}}, IdentityTransform()); err != nil {
		Te.Fatal(err)
	}
	if err := W.WNext(nil, IdentityTransform()); err == nil {
		Te.Error("an empty group should be rejected")
	}
	W.Close()
	if err := W.WNext(MatchingGroup{{Target: 0, Ligand: 0}}, IdentityTransform()); err == nil {
		Te.Error("writing after Close should fail")
	}
	R, header, err := NewGdrR(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer R.Close()
	if len(header) != 0 {
		Te.Errorf("wanted an empty header, got %v", header)
	}
	g, T, err := R.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if len(g) != 1 || g[0].Target != 1 || T.At(3, 3) != 1 {
		Te.Errorf("first record came back wrong: %v %v", g, T)
	}
	if _, _, err := R.Next(); err != io.EOF {
		Te.Errorf("wanted io.EOF after the last record, got %v", err)
	}
}

func TestGdrRejectsGarbage(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "mesh.off")
	g, err := ReadOFF(strings.NewReader(noffSample))
	if err != nil {
		Te.Fatal(err)
	}
	if err := OFFFileWrite(name, g); err != nil {
		Te.Fatal(err)
	}
	if _, _, err := NewGdrR(name); err == nil {
		Te.Error("an OFF file is not a gdr file")
	}
}
