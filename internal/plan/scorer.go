package plan

import "slices"

// Rule score normalization bounds. The raw score is a sum of the alignment
// scores, bonuses and penalties below; these are the extremes the weights
// can reach.
const (
	ruleScoreMin = -87
	ruleScoreMax = 110
)

// baseThreshold is the normalized score a template must reach to be labeled
// successful before user-specific adjustments.
const baseThreshold = 62

// cardioFoci are the foci that count toward cardio coverage bonuses.
var cardioFoci = []string{"Cardio", "Full Body HIIT"}

// scoreTemplate computes the rule-based success score for one template,
// normalized to [0, 100], along with its label.
func scoreTemplate(p *UserProfile, tmpl Template) (float64, Label) {
	priorities := goalPriorities[p.Goal]
	var score float64

	// Goal alignment: reward foci the goal prioritizes, penalize the rest.
	for _, focus := range tmpl.FocusDays {
		if slices.Contains(priorities, focus) {
			score += 8
		} else {
			score -= 8
		}
	}

	// Early-day bonus: top-two priority foci in the first three days score
	// higher the earlier they appear.
	top := priorities
	if len(top) > 2 {
		top = top[:2]
	}
	for i, focus := range tmpl.FocusDays {
		if i >= 3 {
			break
		}
		if slices.Contains(top, focus) {
			score += float64(5 - i)
		}
	}

	// Focus area alignment, split evenly across the user's chosen areas.
	if n := len(p.FocusAreas); n > 0 {
		for _, area := range p.FocusAreas {
			if templateServesArea(tmpl, area) {
				score += 30 / float64(n)
			} else {
				score -= 15 / float64(n)
			}
		}
	}

	// Repetition penalty for any focus appearing more than twice.
	counts := map[string]int{}
	for _, focus := range tmpl.FocusDays {
		counts[focus]++
	}
	for _, count := range counts {
		if count > 2 {
			score -= 5 * float64(count-2)
		}
	}

	// High intensity days are penalized for cardio-risk conditions.
	if p.hasCardioRiskCondition() {
		for _, focus := range tmpl.FocusDays {
			if highMETFoci[focus] {
				score -= 10
			}
		}
	}

	cardioDays := 0
	for _, focus := range tmpl.FocusDays {
		if slices.Contains(cardioFoci, focus) {
			cardioDays++
		}
	}

	// Heavier users losing weight need sustained cardio coverage.
	if p.WeightKg > 80 && p.Goal == GoalWeightLoss {
		if cardioDays >= 3 {
			score += 15
		} else {
			score -= 8
		}
	}

	activity := activityNumeric(p.ActivityTier)
	if activity >= 70 {
		score += 10
	} else if activity < 30 {
		score -= 8
	}

	if p.BMI() > 30 && (p.Goal == GoalWeightLoss || p.Goal == GoalStayFit) {
		if cardioDays > 0 {
			score += 10
		} else {
			score -= 8
		}
	}

	if p.Age > 50 {
		if slices.Contains(tmpl.FocusDays, "Light Endurance") {
			score += 10
		} else {
			score -= 8
		}
	}

	normalized := (score - ruleScoreMin) / (ruleScoreMax - ruleScoreMin) * 100
	normalized = min(max(normalized, 0), 100)

	label := LabelFail
	if normalized >= successThreshold(p) {
		label = LabelSuccessful
	}
	return normalized, label
}

// templateServesArea reports whether any focus day of the template serves the
// given user focus area.
func templateServesArea(tmpl Template, area string) bool {
	serving := focusAreaMapping[area]
	for _, focus := range tmpl.FocusDays {
		if slices.Contains(serving, focus) {
			return true
		}
	}
	return false
}

// successThreshold is the label cutoff, raised for users the rules are less
// confident about.
func successThreshold(p *UserProfile) float64 {
	threshold := float64(baseThreshold)
	if activityNumeric(p.ActivityTier) < 50 {
		threshold += 6
	}
	if p.Goal == GoalBuildMuscle || p.Goal == GoalGainWeight {
		threshold += 4
	}
	if p.hasCardioRiskCondition() {
		threshold += 3
	}
	return threshold
}
