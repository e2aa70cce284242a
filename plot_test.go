/*
 * plot_test.go, part of godock.
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
	"os"
	"path/filepath"
	"testing"
)

func TestScoreHistogram(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "scores.svg")
	scores := []float64{0, 0.1, 0.1, 0.2, 0.5, 0.5, 0.9, 1.0}
	if err := ScoreHistogram(scores, 5, name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Errorf("no plot written to %s", name)
	}
	if err := ScoreHistogram(nil, 5, name); err == nil {
		Te.Error("an empty score list should be rejected")
	}
}

func TestGroupSizeChart(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "sizes.svg")
	groups := MatchingGroups{
		{{Target: 0, Ligand: 0}},
		{{Target: 0, Ligand: 0}, {Target: 1, Ligand: 1}, {Target: 2, Ligand: 0}},
	}
	if err := GroupSizeChart(groups, name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Errorf("no plot written to %s", name)
	}
}
