/*
 * docker.go, part of godock.
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
	"sort"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Match pairs one target patch with one ligand patch, by index into the
//respective SurfaceDescriptors.
type Match struct {
	Target int
	Ligand int
}

//MatchingGroup is an ordered set of matches that are spatially coherent:
//every pair in the group passed the grouping predicate against every pair
//already in the group when it was inserted.
type MatchingGroup []Match

//MatchingGroups is the full ordered output of the grouping stage.
type MatchingGroups []MatchingGroup

//Options collects the configuration of a Docker.
type Options struct {
	//How many of the most similar ligand patches are kept per target patch.
	NBestPairs int
	//Pairs join a group only if both their patches are within this
	//distance of every patch already in the group (same length units as
	//the mesh coordinates).
	GroupThresh float64
	//Inter-patch metrics, one per molecule (a Geodesic metric is bound to
	//one mesh, hence two fields). Nil means the Euclidean proxy.
	MetricTarget Metric
	MetricLigand Metric
}

//DefaultOptions returns reasonable options for protein surface meshes with
//coordinates in Å.
func DefaultOptions() *Options {
	r := new(Options)
	r.NBestPairs = 5
	r.GroupThresh = 10.0
	r.MetricTarget = Euclidean{}
	r.MetricLigand = Euclidean{}
	return r
}

//Docker computes rigid dockings between two molecular surfaces. It holds
//only read-only configuration, so the same Docker can be reused over many
//surface pairs; all per-call state lives in the call.
//There used to be a rationale for making this a process-wide singleton.
//There isn't one anymore: build as many as you want.
type Docker struct {
	o *Options
}

//NewDocker validates the options and returns a ready Docker. A nil o means
//DefaultOptions().
func NewDocker(o *Options) (*Docker, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if o.NBestPairs <= 0 {
		return nil, &CError{fmt.Sprintf("goDock: NBestPairs must be positive, got %d", o.NBestPairs), []string{"NewDocker"}, true}
	}
	if o.GroupThresh <= 0 {
		return nil, &CError{fmt.Sprintf("goDock: GroupThresh must be positive, got %f", o.GroupThresh), []string{"NewDocker"}, true}
	}
	if o.MetricTarget == nil {
		o.MetricTarget = Euclidean{}
	}
	if o.MetricLigand == nil {
		o.MetricLigand = Euclidean{}
	}
	return &Docker{o: o}, nil
}

//scoredCandidate is a ligand patch with its dissimilarity to the target
//patch being treated.
type scoredCandidate struct {
	score  float64
	ligand int
}

//dissimilarity is the relative curvature mismatch of two descriptors:
//|curv(a)-curv(b)| / max(curv(a), curv(b)). Two exactly flat patches
//(both curvatures 0) match perfectly, so the score is 0 rather than 0/0.
func dissimilarity(a, b *Descriptor) float64 {
	max := a.Curv
	if b.Curv > max {
		max = b.Curv
	}
	if max <= 0 {
		return 0
	}
	d := a.Curv - b.Curv
	if d < 0 {
		d = -d
	}
	return d / max
}

//similarityList returns the candidate ligand patches for target patch t,
//most similar first, clamped to the NBestPairs best. Only patches of
//complementary convexity are candidates. The sort is stable, so ties keep
//ascending ligand-index order and the output is fully deterministic.
func (D *Docker) similarityList(t int, descTarget, descLigand *SurfaceDescriptors) []scoredCandidate {
	td := descTarget.Descriptor(t)
	list := make([]scoredCandidate, 0, descLigand.Len())
	for l := 0; l < descLigand.Len(); l++ {
		ld := descLigand.Descriptor(l)
		if !td.Type.Complementary(ld.Type) {
			continue
		}
		list = append(list, scoredCandidate{score: dissimilarity(td, ld), ligand: l})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score < list[j].score })
	if len(list) > D.o.NBestPairs {
		list = list[:D.o.NBestPairs]
	}
	return list
}

//PairScores returns the dissimilarity scores of every retained candidate
//pair, in the order BuildMatchingGroups consumes them. Meant for
//diagnostics (see ScoreHistogram).
func (D *Docker) PairScores(descTarget, descLigand *SurfaceDescriptors) []float64 {
	var ret []float64
	for t := 0; t < descTarget.Len(); t++ {
		for _, c := range D.similarityList(t, descTarget, descLigand) {
			ret = append(ret, c.score)
		}
	}
	return ret
}

//BuildMatchingGroups clusters complementary (target, ligand) patch pairs
//into spatially coherent matching groups. Target patches are processed in
//index order and, within each, candidates in ascending dissimilarity; a
//candidate pair joins *every* existing group in which both its patches are
//within GroupThresh of every pair already there, and starts a new group if
//none accepts it. The clustering is greedy and order-dependent on purpose,
//so identical inputs always give identical output. Note that a pair can
//end up in more than one group: groups overlap, they are not a partition.
func (D *Docker) BuildMatchingGroups(descTarget, descLigand *SurfaceDescriptors) (MatchingGroups, error) {
	if descTarget == nil || descLigand == nil {
		return nil, &CError{"goDock: nil surface descriptors", []string{"BuildMatchingGroups"}, true}
	}
	groups := make(MatchingGroups, 0, descTarget.Len())
	for t := 0; t < descTarget.Len(); t++ {
		candidates := D.similarityList(t, descTarget, descLigand)
		for _, lig := range candidates {
			cur := Match{Target: t, Ligand: lig.ligand}
			added := false
			for gi := range groups {
				ok, err := D.groupAccepts(groups[gi], cur, descTarget, descLigand)
				if err != nil {
					return nil, errDecorate(err, "BuildMatchingGroups")
				}
				if ok {
					groups[gi] = append(groups[gi], cur)
					added = true
				}
			}
			if !added {
				groups = append(groups, MatchingGroup{cur})
			}
		}
	}
	return groups, nil
}

//groupAccepts evaluates the grouping predicate: cur is compatible with the
//group iff, for every member, both the target-side and the ligand-side
//distances are within GroupThresh. Every member is inspected even after a
//failure, mirroring the reference behavior exactly.
func (D *Docker) groupAccepts(grp MatchingGroup, cur Match, descTarget, descLigand *SurfaceDescriptors) (bool, error) {
	crit := true
	for _, pair := range grp {
		dt, err := D.o.MetricTarget.PatchDist(descTarget, cur.Target, pair.Target)
		if err != nil {
			return false, errDecorate(err, "groupAccepts")
		}
		if dt > D.o.GroupThresh {
			crit = false
		}
		dl, err := D.o.MetricLigand.PatchDist(descLigand, cur.Ligand, pair.Ligand)
		if err != nil {
			return false, errDecorate(err, "groupAccepts")
		}
		if dl > D.o.GroupThresh {
			crit = false
		}
	}
	return crit, nil
}

//TargetPatches returns the target-side patch indices of the group, in
//group order, repetitions included.
func (M MatchingGroup) TargetPatches() []int {
	ret := make([]int, 0, len(M))
	for _, p := range M {
		ret = append(ret, p.Target)
	}
	return ret
}

//LigandPatches returns the ligand-side patch indices of the group, in
//group order, repetitions included.
func (M MatchingGroup) LigandPatches() []int {
	ret := make([]int, 0, len(M))
	for _, p := range M {
		ret = append(ret, p.Ligand)
	}
	return ret
}
