/*
 * plot.go, part of godock.
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
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Diagnostic plots for a docking run. The pictures say quickly whether the
//thresholds make sense for a given pair of surfaces: a score histogram
//piled against 0 with tiny groups means GroupThresh is too strict, a
//single huge group means it is too loose.

//ScoreHistogram plots the distribution of the given dissimilarity scores
//(as returned by Docker.PairScores) as a histogram with n bins, saved to
//filename. The format is taken from the extension (png, pdf, svg...).
func ScoreHistogram(scores []float64, n int, filename string) error {
	if len(scores) == 0 {
		return &CError{"goDock: no scores to plot", []string{"ScoreHistogram"}, true}
	}
	p := plot.New()
	p.Title.Text = "Pair dissimilarity"
	mean := stat.Mean(scores, nil)
	p.X.Label.Text = fmt.Sprintf("score (mean %4.2f, stdev %4.2f)", mean, stat.StdDev(scores, nil))
	p.Y.Label.Text = "pairs"
	h, err := plotter.NewHist(plotter.Values(scores), n)
	if err != nil {
		return &CError{"goDock: failed to build the histogram: " + err.Error(), []string{"ScoreHistogram"}, true}
	}
	p.Add(h)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return &CError{"goDock: failed to save " + filename + ": " + err.Error(), []string{"ScoreHistogram"}, true}
	}
	return nil
}

//GroupSizeChart plots the size of each matching group, in group order, as
//a bar chart saved to filename.
func GroupSizeChart(groups MatchingGroups, filename string) error {
	if len(groups) == 0 {
		return &CError{"goDock: no groups to plot", []string{"GroupSizeChart"}, true}
	}
	sizes := make(plotter.Values, len(groups))
	for i, g := range groups {
		sizes[i] = float64(len(g))
	}
	p := plot.New()
	p.Title.Text = "Matching group sizes"
	p.X.Label.Text = "group"
	p.Y.Label.Text = "pairs"
	bars, err := plotter.NewBarChart(sizes, vg.Points(10))
	if err != nil {
		return &CError{"goDock: failed to build the bar chart: " + err.Error(), []string{"GroupSizeChart"}, true}
	}
	p.Add(bars)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return &CError{"goDock: failed to save " + filename + ": " + err.Error(), []string{"GroupSizeChart"}, true}
	}
	return nil
}
