package plan

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
)

// lowestMETPoolCap limits the pool size on days flagged for minimal intensity.
const lowestMETPoolCap = 10

// activeRestExerciseCount is how many gentle exercises an active rest day gets.
const activeRestExerciseCount = 7

// dayParams is the per-day workload configuration derived from the profile.
type dayParams struct {
	Exercises   int
	Sets        int
	Reps        int
	RepTimeSec  int
	RestTimeSec int
}

// paramsFor derives the daily workload parameters from the profile tables.
func paramsFor(p *UserProfile) dayParams {
	cfg := workoutConfig[p.AgeGroup][p.ActivityTier][p.Goal]
	return dayParams{
		Exercises:   cfg.Exercises,
		Sets:        cfg.Sets,
		Reps:        goalReps[p.Goal],
		RepTimeSec:  repTimeSeconds[p.AgeGroup][p.ActivityTier],
		RestTimeSec: restTimeSeconds[p.AgeGroup][p.ActivityTier],
	}
}

// assigner hands out exercises day by day, rotating through each focus pool so
// consecutive days with the same focus do not repeat the same exercises.
type assigner struct {
	working []Exercise
	profile *UserProfile
	params  dayParams
	cursors map[string]int
	rng     *rand.Rand
}

func newAssigner(working []Exercise, p *UserProfile, rng *rand.Rand) *assigner {
	return &assigner{
		working: working,
		profile: p,
		params:  paramsFor(p),
		cursors: map[string]int{},
		rng:     rng,
	}
}

// filterFocus keeps pool exercises matching the focus definition and the
// working intensity band, optionally ordering the user's focus muscles first.
func (a *assigner) filterFocus(focus string, prioritizeUserFocus bool) []Exercise {
	def, ok := focusDefinitions[focus]
	if !ok {
		return nil
	}
	band := metRanges[recommendIntensity(a.profile)]
	out := make([]Exercise, 0, len(a.working))
	for _, e := range a.working {
		if len(def.TargetMuscles) > 0 && !slices.Contains(def.TargetMuscles, e.TargetMuscle) {
			continue
		}
		if len(def.Types) > 0 && !e.HasType(def.Types...) {
			continue
		}
		if len(def.Cautions) > 0 && !slices.Contains(def.Cautions, e.Caution) {
			continue
		}
		// Light endurance days stay gentle regardless of the working band.
		if focus == "Light Endurance" && (e.MET > 6 || e.Difficulty == DifficultyAdvanced) {
			continue
		}
		if e.MET < band.Min || e.MET > band.Max {
			continue
		}
		out = append(out, e)
	}
	if prioritizeUserFocus {
		a.sortByUserFocus(out)
	} else {
		sortByMET(out)
	}
	return out
}

// sortByUserFocus orders exercises hitting the user's chosen muscles first,
// gentler exercises first within each group.
func (a *assigner) sortByUserFocus(pool []Exercise) {
	muscles := map[string]bool{}
	areas := a.profile.FocusAreas
	if slices.Contains(areas, "Full Body") {
		for _, list := range userFocusToMuscles {
			for _, m := range list {
				muscles[m] = true
			}
		}
	} else {
		for _, area := range areas {
			for _, m := range userFocusToMuscles[area] {
				muscles[m] = true
			}
		}
	}
	if len(muscles) == 0 {
		sortByMET(pool)
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		mi, mj := muscles[pool[i].TargetMuscle], muscles[pool[j].TargetMuscle]
		if mi != mj {
			return mi
		}
		return pool[i].MET < pool[j].MET
	})
}

func sortByMET(pool []Exercise) {
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].MET < pool[j].MET })
}

// poolForFocus builds the day's candidate pool: the focus itself, then its
// substitute foci, then progressively gentler catalog-wide fallbacks.
func (a *assigner) poolForFocus(focus string, preferLowestMET bool) []Exercise {
	primary := a.filterFocus(focus, true)
	if len(primary) > 0 {
		if preferLowestMET && len(primary) > lowestMETPoolCap {
			primary = primary[:lowestMETPoolCap]
		}
		return primary
	}
	for _, alt := range fallbackFoci[focus] {
		if pool := a.filterFocus(alt, false); len(pool) > 0 {
			return pool
		}
	}
	if recommendIntensity(a.profile) == TierLow {
		relaxed := make([]Exercise, 0, len(a.working))
		for _, e := range a.working {
			if e.MET <= 6 && e.Difficulty != DifficultyAdvanced {
				relaxed = append(relaxed, e)
			}
		}
		if len(relaxed) > 0 {
			sortByMET(relaxed)
			return relaxed
		}
	}
	gentle := make([]Exercise, 0, len(a.working))
	for _, e := range a.working {
		if e.HasType("Mobility", "Stretching") && e.Difficulty == DifficultyBeginner {
			gentle = append(gentle, e)
		}
	}
	sortByMET(gentle)
	return gentle
}

// nextWindow takes the next run of n exercises from the pool for a focus,
// wrapping to the start when the pool runs out.
func (a *assigner) nextWindow(focus string, pool []Exercise, n int) []Exercise {
	if len(pool) == 0 {
		return nil
	}
	start := a.cursors[focus]
	end := start + n
	var selected []Exercise
	if start < len(pool) {
		selected = append(selected, pool[start:min(end, len(pool))]...)
	}
	if len(selected) < n {
		selected = append(selected, pool[:min(n-len(selected), len(pool))]...)
	}
	a.cursors[focus] = end % len(pool)
	return selected
}

// adjustedWorkload applies condition-specific set and rest adjustments.
func (a *assigner) adjustedWorkload() (sets, restSec int) {
	sets = a.params.Sets
	restSec = a.params.RestTimeSec
	if a.profile.HasCondition(ConditionHypertension) {
		sets = min(sets, 3)
		restSec = int(float64(restSec) * 1.2)
	}
	if a.profile.HasCondition(ConditionDiabetes) {
		restSec += 10
	}
	return sets, restSec
}

// caloriesBurned estimates energy expenditure from MET, time and body weight.
func caloriesBurned(met, minutes, weightKg float64) float64 {
	return met * 3.5 * weightKg / 200 * minutes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// assignDay fills one scheduled day with exercises and totals.
func (a *assigner) assignDay(day scheduledDay) DayPlan {
	out := DayPlan{
		DayIndex:   day.DayIndex,
		Weekday:    day.Date.Weekday().String(),
		Date:       day.Date.Format(startDateLayout),
		Focus:      day.Focus,
		CyclePhase: day.Phase,
		CycleDay:   day.CycleDay,
		Exercises:  []AssignedExercise{},
	}
	switch {
	case day.Focus == focusActiveRest:
		a.assignActiveRest(&out)
	case isRestDay(day.Focus):
		// Complete rest gets no exercises.
	default:
		a.assignWorkout(&out, day)
	}
	return out
}

// assignActiveRest samples gentle recovery exercises, with replacement so a
// small catalog still fills the day.
func (a *assigner) assignActiveRest(out *DayPlan) {
	gentle := make([]Exercise, 0, len(a.working))
	for _, e := range a.working {
		if e.HasType("Mobility", "Stretching") {
			gentle = append(gentle, e)
		}
	}
	if len(gentle) == 0 {
		return
	}
	var totalDuration, totalCalories float64
	for i := 0; i < activeRestExerciseCount; i++ {
		e := gentle[a.rng.IntN(len(gentle))]
		met := e.MET
		if met == 0 {
			met = 2.5
		}
		const durationMin = 1.5
		calories := caloriesBurned(met, durationMin, a.profile.WeightKg)
		out.Exercises = append(out.Exercises, AssignedExercise{
			Exercise:    e,
			Sets:        1,
			Reps:        "90 sec hold",
			RestSeconds: a.params.RestTimeSec,
			DurationMin: durationMin,
			Calories:    round2(calories),
		})
		totalDuration += durationMin
		totalCalories += calories
	}
	out.TotalDurationMin = round2(totalDuration)
	out.TotalCalories = round2(totalCalories)
}

// assignWorkout fills a training day from the focus pool.
func (a *assigner) assignWorkout(out *DayPlan, day scheduledDay) {
	pool := a.poolForFocus(day.Focus, day.preferLowestMET)
	selected := a.nextWindow(day.Focus, pool, a.params.Exercises)
	adjSets, adjRest := a.adjustedWorkload()

	var totalDuration, totalCalories float64
	for _, e := range selected {
		met := e.MET
		if met == 0 {
			met = 3
		}
		var assigned AssignedExercise
		assigned.Exercise = e
		switch {
		case day.Focus == focusPainRelief:
			assigned.Sets = 1
			assigned.Reps = "90 sec hold"
			assigned.RestSeconds = a.params.RestTimeSec
			assigned.DurationMin = 1.5
		case e.Caution == "Isometric Hold":
			assigned.Sets = 1
			assigned.Reps = "30 sec hold"
			assigned.RestSeconds = a.params.RestTimeSec
			assigned.DurationMin = 0.5
		default:
			totalSeconds := adjSets*a.params.Reps*a.params.RepTimeSec + (adjSets-1)*adjRest
			assigned.Sets = adjSets
			assigned.Reps = strconv.Itoa(a.params.Reps)
			assigned.RestSeconds = adjRest
			assigned.DurationMin = round2(float64(totalSeconds) / 60)
		}
		calories := caloriesBurned(met, assigned.DurationMin, a.profile.WeightKg)
		assigned.Calories = round2(calories)
		totalDuration += assigned.DurationMin
		totalCalories += calories
		out.Exercises = append(out.Exercises, assigned)
	}
	out.TotalDurationMin = round2(totalDuration)
	out.TotalCalories = round2(totalCalories)
}
