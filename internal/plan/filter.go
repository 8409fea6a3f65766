package plan

import "slices"

// recommendedIntensities returns the intensity tiers suitable for the user's
// age and activity before health restrictions apply.
func recommendedIntensities(age int, activity ActivityTier) []ActivityTier {
	if age >= 15 && age <= 34 {
		switch activity {
		case TierLow:
			return []ActivityTier{TierLow}
		case TierModerate:
			return []ActivityTier{TierLow, TierModerate}
		default:
			return []ActivityTier{TierLow, TierModerate, TierHigh}
		}
	}
	// From 35 on, high tier access requires a high activity baseline and even
	// then tops out at moderate.
	if activity == TierHigh {
		return []ActivityTier{TierLow, TierModerate}
	}
	return []ActivityTier{TierLow}
}

// recommendIntensity picks the single working intensity for the run: the
// user's explicit preference when set, otherwise the strongest recommended tier.
func recommendIntensity(p *UserProfile) ActivityTier {
	if p.PreferredIntensity != "" {
		return p.PreferredIntensity
	}
	tiers := recommendedIntensities(p.Age, p.ActivityTier)
	if slices.Contains(tiers, TierHigh) {
		return TierHigh
	}
	if slices.Contains(tiers, TierModerate) {
		return TierModerate
	}
	return TierLow
}

// recommendedDifficulties returns the difficulty ratings suitable for the
// user's age and activity.
func recommendedDifficulties(age int, activity ActivityTier) []Difficulty {
	if age >= 15 && age <= 34 {
		return []Difficulty{DifficultyBeginner, DifficultyIntermediate}
	}
	if age >= 35 && age <= 49 {
		if activity == TierModerate || activity == TierHigh {
			return []Difficulty{DifficultyBeginner, DifficultyIntermediate}
		}
		return []Difficulty{DifficultyBeginner}
	}
	return []Difficulty{DifficultyBeginner}
}

// conditionLimits returns the intensity tiers and difficulties permitted under
// the reported conditions, applied cumulatively.
func conditionLimits(conds []HealthCondition) ([]ActivityTier, []Difficulty) {
	tiers := []ActivityTier{TierLow, TierModerate, TierHigh}
	diffs := []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
	intersectTiers := func(allowed ...ActivityTier) {
		tiers = slices.DeleteFunc(tiers, func(t ActivityTier) bool {
			return !slices.Contains(allowed, t)
		})
	}
	intersectDiffs := func(allowed ...Difficulty) {
		diffs = slices.DeleteFunc(diffs, func(d Difficulty) bool {
			return !slices.Contains(allowed, d)
		})
	}
	for _, cond := range conds {
		switch cond {
		case ConditionDiabetes:
			intersectTiers(TierLow, TierModerate)
			intersectDiffs(DifficultyBeginner, DifficultyIntermediate)
		case ConditionHypertension:
			intersectTiers(TierLow, TierModerate)
			intersectDiffs(DifficultyBeginner)
		case ConditionMenopause:
			intersectTiers(TierLow, TierModerate)
			intersectDiffs(DifficultyBeginner, DifficultyIntermediate)
		}
	}
	return tiers, diffs
}

// filterByTiers keeps exercises whose MET falls in any permitted tier band and
// whose difficulty is permitted.
func filterByTiers(pool []Exercise, tiers []ActivityTier, diffs []Difficulty) []Exercise {
	out := make([]Exercise, 0, len(pool))
	for _, e := range pool {
		if !slices.Contains(diffs, e.Difficulty) {
			continue
		}
		for _, tier := range tiers {
			band, ok := metRanges[tier]
			if ok && e.MET >= band.Min && e.MET <= band.Max {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// filterByConditions removes exercises contraindicated for the reported
// conditions.
func filterByConditions(pool []Exercise, conds []HealthCondition) []Exercise {
	if len(conds) == 0 {
		return pool
	}
	out := make([]Exercise, 0, len(pool))
	for _, e := range pool {
		keep := true
		for _, cond := range conds {
			switch cond {
			case ConditionDiabetes:
				if e.MET > 6 {
					keep = false
				}
			case ConditionHypertension:
				if e.Caution == "Isometric Hold" || e.MET > 5.5 {
					keep = false
				}
			case ConditionMenopause:
				if e.Caution == "Plyometric HIIT" || e.MET > 6 {
					keep = false
				}
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}

// buildWorkingPool applies the full filter chain to the catalog: recommended
// intensity and difficulty, health limits, then per-exercise contraindications.
func buildWorkingPool(catalog []Exercise, p *UserProfile) []Exercise {
	tiers := []ActivityTier{recommendIntensity(p)}
	diffs := recommendedDifficulties(p.Age, p.ActivityTier)
	if len(p.HealthConditions) > 0 {
		condTiers, condDiffs := conditionLimits(p.HealthConditions)
		tiers = intersect(tiers, condTiers)
		diffs = intersect(diffs, condDiffs)
	}
	filtered := filterByTiers(catalog, tiers, diffs)
	return filterByConditions(filtered, p.HealthConditions)
}

// intersect keeps the elements of a that also appear in b, preserving order.
func intersect[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		if slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}
