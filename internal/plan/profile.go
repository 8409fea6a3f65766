package plan

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/lunafit/lunafit/internal/classifier"
)

const (
	defaultCycleLength = 28
	minCycleLength     = 21
	maxCycleLength     = 35
)

// startDateLayout is the ISO date accepted for plan_start_date.
const startDateLayout = "2006-01-02"

// conditionSetKey builds an order-insensitive key for a condition set.
func conditionSetKey(conds ...HealthCondition) string {
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = string(c)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// bucketActivity converts the 0-100 activity slider to a tier. Out-of-range
// values are ambiguous input and fail closed to moderate.
func bucketActivity(slider int) ActivityTier {
	switch {
	case slider < 0 || slider > 100:
		return TierModerate
	case slider < 35:
		return TierLow
	case slider < 70:
		return TierModerate
	default:
		return TierHigh
	}
}

// bucketAge maps an age to its age group.
func bucketAge(age int) AgeGroup {
	switch {
	case age < 40:
		return AgeGroupAdult
	case age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupOlderAdult
	}
}

// activityNumeric maps a tier back to the representative slider value the
// scorer and the success model were trained on.
func activityNumeric(tier ActivityTier) float64 {
	switch tier {
	case TierHigh:
		return 70
	case TierModerate:
		return 50
	default:
		return 30
	}
}

// canonicalFocusAreas filters and title-cases focus areas, keeping the
// client's order. Unknown areas are dropped; an empty result means Full Body,
// and Full Body among the values collapses the whole list to it.
func canonicalFocusAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		canonical := titleCase(a)
		if slices.Contains(validFocusAreas, canonical) && !slices.Contains(out, canonical) {
			out = append(out, canonical)
		}
	}
	if len(out) == 0 || slices.Contains(out, "Full Body") {
		return []string{"Full Body"}
	}
	return out
}

// titleCase uppercases the first letter of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// prioritizeFocusArea reduces a focus area list to the single area fed to the
// success model. Full Body wins when present, then goal-based priority.
func prioritizeFocusArea(areas []string, goal Goal) string {
	if slices.Contains(areas, "Full Body") {
		return "Full Body"
	}
	priority, ok := focusAreaGoalPriority[goal]
	if !ok {
		priority = []string{"Full Body", "Arms", "Legs", "Stomach", "Hips"}
	}
	for _, area := range priority {
		if slices.Contains(areas, area) {
			return area
		}
	}
	return areas[0]
}

// collapseConditions reduces a reported condition set to the single condition
// the success model encodes. Empty when no conditions are reported.
func collapseConditions(conds []HealthCondition) HealthCondition {
	switch len(conds) {
	case 0:
		return ""
	case 1:
		return conds[0]
	}
	if collapsed, ok := conditionPrecedence[conditionSetKey(conds...)]; ok {
		return collapsed
	}
	return conds[0]
}

// canonicalConditions validates and normalizes the reported condition names.
func canonicalConditions(names []string) ([]HealthCondition, error) {
	known := map[string]HealthCondition{
		strings.ToLower(string(ConditionDiabetes)):     ConditionDiabetes,
		"diabetes":                                     ConditionDiabetes,
		strings.ToLower(string(ConditionHypertension)): ConditionHypertension,
		strings.ToLower(string(ConditionMenopause)):    ConditionMenopause,
	}
	out := make([]HealthCondition, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		cond, ok := known[strings.ToLower(trimmed)]
		if !ok {
			return nil, profileErrorf("health_conditions", "unknown condition %q", trimmed)
		}
		if !slices.Contains(out, cond) {
			out = append(out, cond)
		}
	}
	return out, nil
}

// newUserProfile validates a request and builds the immutable profile a
// generation run works on. now supplies the default start date.
func newUserProfile(req Request, restDays []string, now time.Time) (*UserProfile, error) {
	if req.Age <= 0 {
		return nil, profileErrorf("age", "must be positive, got %d", req.Age)
	}
	if req.WeightKg <= 0 {
		return nil, profileErrorf("weight_kg", "must be positive, got %g", req.WeightKg)
	}
	if req.HeightCm <= 0 {
		return nil, profileErrorf("height_cm", "must be positive, got %g", req.HeightCm)
	}
	if req.ProgramDurationDays <= 0 {
		return nil, profileErrorf("program_duration_days", "must be positive, got %d", req.ProgramDurationDays)
	}

	goal := Goal(strings.ToLower(strings.TrimSpace(req.Goal)))
	switch goal {
	case GoalWeightLoss, GoalStayFit, GoalBuildMuscle, GoalGainWeight:
	default:
		return nil, profileErrorf("goal", "unknown goal %q", req.Goal)
	}

	restName := titleCase(req.PreferredRestWeekday)
	if !slices.Contains(restDays, restName) {
		return nil, profileErrorf("preferred_rest_weekday", "unknown weekday %q", req.PreferredRestWeekday)
	}
	restWeekday, err := parseWeekday(restName)
	if err != nil {
		return nil, profileErrorf("preferred_rest_weekday", "unknown weekday %q", req.PreferredRestWeekday)
	}

	conditions, err := canonicalConditions(req.HealthConditions)
	if err != nil {
		return nil, err
	}

	var preferred ActivityTier
	if req.PreferredIntensity != "" {
		preferred = ActivityTier(strings.ToLower(strings.TrimSpace(req.PreferredIntensity)))
		switch preferred {
		case TierLow, TierModerate, TierHigh:
		default:
			// An unrecognized preference falls back to the rule-based
			// recommendation rather than failing the request.
			preferred = ""
		}
	}

	startDate := now
	if req.PlanStartDate != "" {
		parsed, err := time.Parse(startDateLayout, req.PlanStartDate)
		if err != nil {
			return nil, profileErrorf("plan_start_date", "expected %s format, got %q", startDateLayout, req.PlanStartDate)
		}
		startDate = parsed
	}

	cycleLength := 0
	if req.CycleLength != 0 || len(req.CyclePhaseTimeline) > 0 {
		cycleLength = req.CycleLength
		if cycleLength < minCycleLength || cycleLength > maxCycleLength {
			cycleLength = defaultCycleLength
		}
	}

	focusAreas := canonicalFocusAreas(req.FocusAreas)
	profile := &UserProfile{
		Age:                 req.Age,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivitySlider:      req.ActivitySlider,
		ActivityTier:        bucketActivity(req.ActivitySlider),
		AgeGroup:            bucketAge(req.Age),
		Goal:                goal,
		HealthConditions:    conditions,
		FocusAreas:          focusAreas,
		ClassifierFocusArea: prioritizeFocusArea(focusAreas, goal),
		ClassifierCondition: collapseConditions(conditions),
		RestWeekday:         restWeekday,
		RestWeekdayName:     restName,
		PreferredIntensity:  preferred,
		ProgramDays:         req.ProgramDurationDays,
		StartDate:           startDate,
		CycleLength:         cycleLength,
		CycleTimeline:       req.CyclePhaseTimeline,
	}
	return profile, nil
}

// parseWeekday converts an English weekday name to time.Weekday.
func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, errUnknownWeekday
}

var errUnknownWeekday = &ProfileError{Field: "preferred_rest_weekday", Message: "not a weekday name"}

// classifierFeatures assembles the model feature vector for one template
// scoring run. The encoders reject values the model was not trained on.
func classifierFeatures(p *UserProfile, model *classifier.Model) (classifier.Features, error) {
	goalCode, err := model.Encode(classifier.FieldGoal, string(p.Goal))
	if err != nil {
		return classifier.Features{}, err
	}
	healthCode, err := model.Encode(classifier.FieldHealthCondition, string(p.ClassifierCondition))
	if err != nil {
		return classifier.Features{}, err
	}
	focusCode, err := model.Encode(classifier.FieldFocusArea, p.ClassifierFocusArea)
	if err != nil {
		return classifier.Features{}, err
	}
	restCode, err := model.Encode(classifier.FieldRestDay, p.RestWeekdayName)
	if err != nil {
		return classifier.Features{}, err
	}
	activity := activityNumeric(p.ActivityTier)
	bmi := p.BMI()
	return classifier.Features{
		ActivityLevel:          activity,
		WeightKg:               p.WeightKg,
		HeightCm:               p.HeightCm,
		Age:                    float64(p.Age),
		BMI:                    bmi,
		Goal:                   goalCode,
		HealthCondition:        healthCode,
		FocusArea:              focusCode,
		RestDay:                restCode,
		ActivityBMIInteraction: activity * bmi,
		AgeHealthInteraction:   float64(p.Age) * float64(healthCode),
	}, nil
}
