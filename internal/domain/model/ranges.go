package model

// ColumnRange is the observed min/max of one numeric column across the
// live population.
type ColumnRange struct {
	Min float64
	Max float64
}

// ColumnRanges maps skill columns to their observed ranges. Used by
// replacement generation to clamp inherited skills against what the
// population actually exhibits instead of the theoretical [1, 99].
type ColumnRanges map[SkillName]ColumnRange

// Clamp bounds v to the observed range for the column, falling back to
// the playable [1, 99] range when the column was never observed.
func (r ColumnRanges) Clamp(name SkillName, v float64) float64 {
	if r != nil {
		if cr, ok := r[name]; ok && cr.Max >= cr.Min {
			if v < cr.Min {
				return cr.Min
			}
			if v > cr.Max {
				return cr.Max
			}
			return v
		}
	}
	return ClampSkill(v)
}
