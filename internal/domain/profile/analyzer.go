// Package profile computes per-position skill averages over the current
// player population. The output is the normalization baseline consumed by
// the finance, development and generator packages.
package profile

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/pitchside/careersim/internal/domain/model"
)

// Profile maps each registered position to the mean of every skill across
// players registered to it. Positions with no players are absent from the
// map; callers fall back to their own norm constant.
type Profile map[model.Position]map[model.SkillName]float64

// Mean returns the population mean for a skill at a position.
// The second return is false when the position or skill was never observed.
func (p Profile) Mean(pos model.Position, skill model.SkillName) (float64, bool) {
	row, ok := p[pos]
	if !ok {
		return 0, false
	}
	v, ok := row[skill]
	return v, ok
}

// Row returns the skill means for a position, or nil when absent.
func (p Profile) Row(pos model.Position) map[model.SkillName]float64 {
	return p[pos]
}

// MaxMean returns the highest graded-skill mean in a position's row.
// The second return is false when the row is absent or empty.
func (p Profile) MaxMean(pos model.Position) (float64, bool) {
	row, ok := p[pos]
	if !ok || len(row) == 0 {
		return 0, false
	}
	var best float64
	found := false
	for _, name := range model.GradedSkills() {
		if v, ok := row[name]; ok && (!found || v > best) {
			best = v
			found = true
		}
	}
	return best, found
}

// Compute builds a Profile from a population snapshot. Free agents are
// excluded. Absent skill values are skipped, never treated as zero. Pure
// function over the snapshot; staleness is the caller's concern (see Cache).
func Compute(_ context.Context, players []*model.PlayerRecord) Profile {
	samples := make(map[model.Position]map[model.SkillName][]float64)

	for _, p := range players {
		if p == nil || p.IsFreeAgent() {
			continue
		}
		row, ok := samples[p.Position]
		if !ok {
			row = make(map[model.SkillName][]float64)
			samples[p.Position] = row
		}
		for _, name := range model.AllSkills() {
			if v, present := p.Skills.Get(name); present {
				row[name] = append(row[name], v)
			}
		}
	}

	out := make(Profile, len(samples))
	for pos, row := range samples {
		means := make(map[model.SkillName]float64, len(row))
		for name, values := range row {
			if len(values) == 0 {
				continue
			}
			means[name] = stat.Mean(values, nil)
		}
		if len(means) > 0 {
			out[pos] = means
		}
	}
	return out
}
