package development

import (
	"fmt"
	"math"
	"math/rand"
)

// CareerProfile is the decoded form of a development key: either a single
// archetype with an explicit multiplier, or a weighted mix of archetypes.
// Business logic works on this union; only the codec touches bits.
type CareerProfile interface {
	// AgeMultiplier returns the development multiplier at the given age.
	AgeMultiplier(age int) float64

	// BaseMultiplier returns the profile-level scale factor.
	BaseMultiplier() float64
}

// SingleProfile is one archetype with a multiplier in [0.7, 1.5].
type SingleProfile struct {
	Archetype  Archetype
	Multiplier float64
}

// AgeMultiplier returns the archetype's curve value at the given age.
func (s SingleProfile) AgeMultiplier(age int) float64 { return s.Archetype.AgeMultiplier(age) }

// BaseMultiplier returns the explicit profile multiplier.
func (s SingleProfile) BaseMultiplier() float64 { return s.Multiplier }

// MixEntry is one weighted archetype pick of a mixed profile.
type MixEntry struct {
	Archetype Archetype
	Weight    float64
}

// MixedProfile is a weighted set of 2-3 archetypes. Weights are
// non-negative and sum to 1.0 within floating tolerance.
type MixedProfile struct {
	Entries []MixEntry
}

// AgeMultiplier returns the weighted sum of each component archetype's
// curve value at the given age.
func (m MixedProfile) AgeMultiplier(age int) float64 {
	var sum float64
	for _, e := range m.Entries {
		sum += e.Weight * e.Archetype.AgeMultiplier(age)
	}
	return sum
}

// BaseMultiplier is always 1.0 for a mixed profile.
func (m MixedProfile) BaseMultiplier() float64 { return 1.0 }

// Persisted key layout (32-bit, version 1).
//
// Mixed profile (bit 31 set):
//
//	bit  31     mixed flag
//	bits 28-30  archetype count (2 or 3)
//	bits 16-27  archetype indexes, 4 bits each (entry i at 16+4i)
//	bits 0-15   weight percentages of entries 0 and 1, 8 bits each;
//	            the last entry's weight is 100 minus the stored ones
//
// Single profile (bit 31 clear):
//
//	bits 0-13   archetypeIndex*1000 + round(multiplier*100)
//
// Weights round-trip as integer percentages summing exactly to 100.
const (
	mixedFlagBit   = 31
	countShift     = 28
	countMask      = 0x7
	indexShift     = 16
	indexWidth     = 4
	indexMask      = 0xF
	weightWidth    = 8
	weightMask     = 0xFF
	singleMask     = 0x3FFF
	singleIdxDiv   = 1000
	pctScale       = 100
	minMixEntries  = 2
	maxMixEntries  = 3
)

// EncodeKey packs a career profile into its persisted integer form.
func EncodeKey(p CareerProfile) (int, error) {
	switch v := p.(type) {
	case SingleProfile:
		return encodeSingle(v)
	case *SingleProfile:
		return encodeSingle(*v)
	case MixedProfile:
		return encodeMixed(v)
	case *MixedProfile:
		return encodeMixed(*v)
	default:
		return 0, fmt.Errorf("%w: unsupported profile %T", ErrInvalidKey, p)
	}
}

func encodeSingle(s SingleProfile) (int, error) {
	if !s.Archetype.Valid() {
		return 0, fmt.Errorf("%w: archetype %d", ErrInvalidKey, s.Archetype)
	}
	if s.Multiplier < singleMultLo || s.Multiplier > singleMultHi {
		return 0, fmt.Errorf("%w: single multiplier %.2f out of [0.7, 1.5]", ErrInvalidKey, s.Multiplier)
	}
	return int(s.Archetype)*singleIdxDiv + int(math.Round(s.Multiplier*pctScale)), nil
}

func encodeMixed(m MixedProfile) (int, error) {
	n := len(m.Entries)
	if n < minMixEntries || n > maxMixEntries {
		return 0, fmt.Errorf("%w: %d entries, want 2-3", ErrInvalidKey, n)
	}

	// Round to integer percentages, forcing the last entry to absorb the
	// rounding remainder so stored weights always sum to 100.
	pcts := make([]int, n)
	sum := 0
	for i, e := range m.Entries {
		if !e.Archetype.Valid() {
			return 0, fmt.Errorf("%w: archetype %d", ErrInvalidKey, e.Archetype)
		}
		if e.Weight < 0 {
			return 0, fmt.Errorf("%w: negative weight %.3f", ErrInvalidKey, e.Weight)
		}
		pcts[i] = int(math.Round(e.Weight * pctScale))
		sum += pcts[i]
	}
	pcts[n-1] += pctScale - sum
	if pcts[n-1] < 0 {
		return 0, fmt.Errorf("%w: weights sum above 1.0", ErrInvalidKey)
	}

	key := 1 << mixedFlagBit
	key |= (n & countMask) << countShift
	for i, e := range m.Entries {
		key |= (int(e.Archetype) & indexMask) << (indexShift + i*indexWidth)
	}
	for i := 0; i < n-1 && i < 2; i++ {
		key |= (pcts[i] & weightMask) << (i * weightWidth)
	}
	if n == minMixEntries {
		// Both weights stored explicitly for the two-entry case.
		key |= (pcts[1] & weightMask) << weightWidth
	}
	return key, nil
}

// DecodeKey unpacks a persisted development key. Decoded mixed weights
// always renormalize to sum exactly 1.0.
func DecodeKey(key int) (CareerProfile, error) {
	if key < 0 {
		return nil, fmt.Errorf("%w: negative key %d", ErrInvalidKey, key)
	}
	if key&(1<<mixedFlagBit) == 0 {
		v := key & singleMask
		idx := Archetype(v / singleIdxDiv)
		mult := float64(v%singleIdxDiv) / pctScale
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: single archetype index %d", ErrInvalidKey, idx)
		}
		// Catches never-initialized keys too: key 0 carries multiplier
		// 0.0, which would silently zero all development.
		if mult < singleMultLo || mult > singleMultHi {
			return nil, fmt.Errorf("%w: single multiplier %.2f out of [0.7, 1.5]", ErrInvalidKey, mult)
		}
		return SingleProfile{Archetype: idx, Multiplier: mult}, nil
	}

	n := (key >> countShift) & countMask
	if n < minMixEntries || n > maxMixEntries {
		return nil, fmt.Errorf("%w: mixed count %d", ErrInvalidKey, n)
	}

	entries := make([]MixEntry, n)
	sum := 0
	for i := 0; i < n; i++ {
		idx := Archetype((key >> (indexShift + i*indexWidth)) & indexMask)
		if !idx.Valid() {
			return nil, fmt.Errorf("%w: mixed archetype index %d", ErrInvalidKey, idx)
		}
		entries[i].Archetype = idx
		if i < n-1 || n == minMixEntries {
			pct := (key >> (i * weightWidth)) & weightMask
			entries[i].Weight = float64(pct) / pctScale
			sum += pct
		}
	}
	if n == maxMixEntries {
		last := pctScale - sum
		if last < 0 {
			return nil, fmt.Errorf("%w: stored weights sum above 100", ErrInvalidKey)
		}
		entries[n-1].Weight = float64(last) / pctScale
	}

	// Renormalize so decoded weights sum to exactly 1.0.
	var total float64
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: zero total weight", ErrInvalidKey)
	}
	for i := range entries {
		entries[i].Weight /= total
	}
	return MixedProfile{Entries: entries}, nil
}

// DecodeTrait validates and converts a persisted trait key.
func DecodeTrait(key int) (Trait, error) {
	t := Trait(key)
	if !t.Valid() {
		return TraitRegular, fmt.Errorf("%w: trait key %d", ErrInvalidTrait, key)
	}
	return t, nil
}

// Key generation tuning constants. The single-multiplier bounds double
// as the codec's validity range.
const (
	mixedChance      = 0.95
	threeEntryChance = 0.40
	minMixWeight     = 0.10
	singleMultLo     = 0.70
	singleMultHi     = 1.50
)

// NewCareerProfile draws a fresh career profile: 95% a mixed profile of
// 2-3 rarity-weighted distinct archetypes, 5% a single archetype with a
// multiplier in [0.7, 1.5].
func NewCareerProfile(rng *rand.Rand) CareerProfile {
	if rng.Float64() >= mixedChance {
		return SingleProfile{
			Archetype:  drawArchetype(rng, nil),
			Multiplier: singleMultLo + rng.Float64()*(singleMultHi-singleMultLo),
		}
	}

	n := minMixEntries
	if rng.Float64() < threeEntryChance {
		n = maxMixEntries
	}

	taken := make(map[Archetype]struct{}, n)
	entries := make([]MixEntry, n)
	remaining := 1.0
	for i := 0; i < n; i++ {
		a := drawArchetype(rng, taken)
		taken[a] = struct{}{}
		var w float64
		if i == n-1 {
			w = remaining
		} else {
			// Reserve at least the minimum weight for every later pick.
			reserve := minMixWeight * float64(n-1-i)
			w = minMixWeight + rng.Float64()*(remaining-reserve-minMixWeight)
			remaining -= w
		}
		entries[i] = MixEntry{Archetype: a, Weight: w}
	}

	// Normalize defensively; drift only comes from float arithmetic.
	var total float64
	for _, e := range entries {
		total += e.Weight
	}
	for i := range entries {
		entries[i].Weight /= total
	}
	return MixedProfile{Entries: entries}
}

// NewTrait draws a rarity-weighted trait.
func NewTrait(rng *rand.Rand) Trait {
	r := rng.Float64()
	var cum float64
	for t := TraitRegular; t < traitCount; t++ {
		cum += traitRarity[t]
		if r < cum {
			return t
		}
	}
	return TraitRegular
}

// NewKeys draws and encodes a fresh development/trait key pair.
func NewKeys(rng *rand.Rand) (devKey, traitKey int) {
	key, err := EncodeKey(NewCareerProfile(rng))
	if err != nil {
		// Generated profiles always encode; fall back to a plain regular
		// career if that invariant is ever broken.
		key, _ = EncodeKey(SingleProfile{Archetype: Regular, Multiplier: 1.0})
	}
	return key, int(NewTrait(rng))
}

func drawArchetype(rng *rand.Rand, taken map[Archetype]struct{}) Archetype {
	var total float64
	for a := Archetype(0); a < archetypeCount; a++ {
		if _, ok := taken[a]; ok {
			continue
		}
		total += archetypeRarity[a]
	}
	r := rng.Float64() * total
	var cum float64
	for a := Archetype(0); a < archetypeCount; a++ {
		if _, ok := taken[a]; ok {
			continue
		}
		cum += archetypeRarity[a]
		if r < cum {
			return a
		}
	}
	return Regular
}
