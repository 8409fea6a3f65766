// Package plan generates personalized multi-day workout schedules from a user
// profile, the exercise catalog, and the template catalog.
package plan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Goal is the user's fitness goal.
type Goal string

// Supported fitness goals.
const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalStayFit     Goal = "stay_fit"
	GoalBuildMuscle Goal = "build_muscle"
	GoalGainWeight  Goal = "gain_weight"
)

// ActivityTier buckets the 0-100 activity slider, and doubles as the
// metabolic intensity tier used for exercise filtering.
type ActivityTier string

// Activity and intensity tiers.
const (
	TierLow      ActivityTier = "low"
	TierModerate ActivityTier = "moderate"
	TierHigh     ActivityTier = "high"
)

// AgeGroup buckets the user's age.
type AgeGroup string

// Age groups: adult below 40, middle-aged in [40, 60), older adult from 60.
const (
	AgeGroupAdult      AgeGroup = "adult"
	AgeGroupMiddleAged AgeGroup = "middle_aged"
	AgeGroupOlderAdult AgeGroup = "older_adult"
)

// Difficulty is an exercise difficulty rating.
type Difficulty string

// Exercise difficulty levels.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// HealthCondition is a canonical health condition name.
type HealthCondition string

// Health conditions with workout restrictions.
const (
	ConditionDiabetes     HealthCondition = "Diabetes Type 2"
	ConditionHypertension HealthCondition = "Hypertension"
	ConditionMenopause    HealthCondition = "Menopause"
)

// CyclePhase is a menstrual cycle phase name.
type CyclePhase string

// Cycle phases. PhaseNeutral is used for days without phase data.
const (
	PhaseMenstruation CyclePhase = "menstruation"
	PhaseFollicular   CyclePhase = "follicular"
	PhaseOvulation    CyclePhase = "ovulation"
	PhaseLuteal       CyclePhase = "luteal"
	PhaseNeutral      CyclePhase = "neutral"
)

// Focus labels inserted by the scheduler rather than taken from a template.
const (
	focusCompleteRest = "Complete Rest Day"
	focusActiveRest   = "Active Rest Day"
	focusPainRelief   = "Pain Relief Stretches"
)

// Label classifies a scored template as a likely success or failure.
type Label string

// Scoring labels.
const (
	LabelSuccessful Label = "successful"
	LabelFail       Label = "fail"
)

// Exercise is a read-only row of the exercise catalog.
type Exercise struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	MET                 float64    `json:"met_value"`
	Difficulty          Difficulty `json:"difficulty"`
	TargetMuscle        string     `json:"target_muscle"`
	Types               []string   `json:"types"`
	Caution             string     `json:"caution,omitempty"`
	DescriptionMarkdown string     `json:"description_markdown,omitempty"`
}

// HasType reports whether the exercise carries any of the given type tags.
func (e Exercise) HasType(tags ...string) bool {
	for _, tag := range tags {
		for _, t := range e.Types {
			if t == tag {
				return true
			}
		}
	}
	return false
}

// Template is a read-only row of the template catalog: a named weekly pattern
// of training focus labels tied to a goal.
type Template struct {
	ID        string   `json:"template_id"`
	Goal      Goal     `json:"goal"`
	FocusDays []string `json:"focus_days"`
}

// ScoredTemplate holds the per-candidate scoring outcome during selection.
type ScoredTemplate struct {
	TemplateID       string
	RuleScore        float64
	RuleLabel        Label
	ModelProbability *float64
	ModelLabel       Label
}

// CycleDay is one entry of the cycle phase timeline, aligned to plan day index.
type CycleDay struct {
	CycleDay int        `json:"cycle_day"`
	Phase    CyclePhase `json:"phase"`
}

// UserProfile is the canonical, immutable profile a generation run works on.
// Construct it with newUserProfile; engine code never reads ambient state.
type UserProfile struct {
	Age            int
	WeightKg       float64
	HeightCm       float64
	ActivitySlider int
	ActivityTier   ActivityTier
	AgeGroup       AgeGroup
	Goal           Goal
	// HealthConditions are all reported conditions; filters apply them cumulatively.
	HealthConditions []HealthCondition
	// FocusAreas is the canonical ordered list, e.g. ["Arms", "Legs"].
	FocusAreas []string
	// ClassifierFocusArea is the single prioritized area for the model lookup.
	ClassifierFocusArea string
	// ClassifierCondition is the single representative condition for the model
	// lookup, chosen by the fixed precedence table. Empty when healthy.
	ClassifierCondition HealthCondition
	RestWeekday         time.Weekday
	RestWeekdayName     string
	// PreferredIntensity overrides the recommended intensity tier when set.
	PreferredIntensity ActivityTier
	ProgramDays        int
	StartDate          time.Time
	// CycleLength in days, within [21, 35]. Zero when not tracking a cycle.
	CycleLength   int
	CycleTimeline []CycleDay
}

// BMI computes the body mass index from the profile's weight and height.
func (p *UserProfile) BMI() float64 {
	if p.HeightCm <= 0 {
		return 0
	}
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}

// HasCondition reports whether the profile carries the given condition.
func (p *UserProfile) HasCondition(cond HealthCondition) bool {
	for _, c := range p.HealthConditions {
		if c == cond {
			return true
		}
	}
	return false
}

// hasCardioRiskCondition reports a condition that restricts high-MET work.
func (p *UserProfile) hasCardioRiskCondition() bool {
	return p.HasCondition(ConditionHypertension) || p.HasCondition(ConditionDiabetes)
}

// AssignedExercise is a catalog exercise with its per-day workload.
type AssignedExercise struct {
	Exercise
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	RestSeconds int     `json:"rest_seconds"`
	DurationMin float64 `json:"duration_minutes"`
	Calories    float64 `json:"calories_burned"`
}

// DayPlan is one emitted day of the generated schedule.
type DayPlan struct {
	DayIndex         int                `json:"day_index"`
	Weekday          string             `json:"weekday"`
	Date             string             `json:"date"`
	Focus            string             `json:"focus"`
	CyclePhase       CyclePhase         `json:"cycle_phase"`
	CycleDay         *int               `json:"cycle_day,omitempty"`
	Exercises        []AssignedExercise `json:"exercises"`
	TotalDurationMin float64            `json:"total_duration_minutes"`
	TotalCalories    float64            `json:"total_calories_burned"`
}

// Plan is the full generation result.
type Plan struct {
	ID          uuid.UUID    `json:"id"`
	TemplateID  string       `json:"template_id"`
	Intensity   ActivityTier `json:"intensity"`
	GeneratedAt time.Time    `json:"generated_at"`
	Days        []DayPlan    `json:"days"`
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string. The mobile client historically sent both shapes.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string or list of strings expected: %w", err)
	}
	parts := strings.Split(single, ",")
	list = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	*l = list
	return nil
}

// Request is the input contract for plan generation.
type Request struct {
	Age                  int        `json:"age"`
	WeightKg             float64    `json:"weight_kg"`
	HeightCm             float64    `json:"height_cm"`
	ActivitySlider       int        `json:"activity_slider"`
	Goal                 string     `json:"goal"`
	HealthConditions     StringList `json:"health_conditions"`
	FocusAreas           StringList `json:"focus_areas"`
	PreferredRestWeekday string     `json:"preferred_rest_weekday"`
	PreferredIntensity   string     `json:"preferred_intensity,omitempty"`
	ProgramDurationDays  int        `json:"program_duration_days"`
	// PlanStartDate in ISO format (2006-01-02). Empty means today.
	PlanStartDate      string     `json:"plan_start_date,omitempty"`
	CycleLength        int        `json:"cycle_length,omitempty"`
	CyclePhaseTimeline []CycleDay `json:"cycle_phase_timeline,omitempty"`
}
