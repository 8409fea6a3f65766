package plan

// metRange is an inclusive MET interval.
type metRange struct {
	Min, Max float64
}

// metRanges maps an intensity tier to its MET band.
var metRanges = map[ActivityTier]metRange{
	TierLow:      {Min: 1.5, Max: 3.9},
	TierModerate: {Min: 4.0, Max: 6.9},
	TierHigh:     {Min: 7.0, Max: 12.3},
}

// goalPriorities orders training foci from most to least aligned per goal.
// Scoring rewards templates whose early days match the top entries.
var goalPriorities = map[Goal][]string{
	GoalStayFit:     {"Light Endurance", "Mobility", "Core + Abs", "Lower Body Strength", "Upper Body Strength"},
	GoalWeightLoss:  {"Cardio", "Full Body HIIT", "Abs + Upper Body", "Core + Lower Body"},
	GoalGainWeight:  {"Full Body Strength", "Core + Chest", "Upper Body Strength", "Chest + Arms", "Lower Body Strength"},
	GoalBuildMuscle: {"Upper Body Strength", "Lower Body Strength", "Chest + Arms"},
}

// highMETFoci are training foci considered high intensity for risk scoring.
var highMETFoci = map[string]bool{
	"HIIT Intervals":   true,
	"Endurance Sprint": true,
	"Full Body HIIT":   true,
	"Upper HIIT":       true,
	"Circuit Training": true,
}

// focusAreaMapping maps a user body focus area to the training foci that
// serve it. Used when scoring template/focus alignment.
var focusAreaMapping = map[string][]string{
	"Full Body": {"Full Body Strength", "Full Body HIIT"},
	"Legs":      {"Lower Body Strength", "Glutes & Hamstrings", "Core + Lower Body"},
	"Hips":      {"Lower Body Strength", "Legs + Core"},
	"Arms":      {"Upper Body Strength", "Abs + Upper Body"},
	"Stomach":   {"Core + Abs", "Abs + Upper Body", "Core + Chest"},
}

// focusFilter describes which catalog rows serve a training focus.
// Empty slices mean the dimension is unconstrained.
type focusFilter struct {
	TargetMuscles []string
	Types         []string
	Cautions      []string
}

// focusDefinitions maps each training focus to its catalog filter.
var focusDefinitions = map[string]focusFilter{
	"Upper Body Strength": {
		TargetMuscles: []string{"Forearms", "Shoulders", "Biceps", "Triceps", "Chest"},
		Types:         []string{"Strength"},
	},
	"Lower Body Strength": {
		TargetMuscles: []string{"Hamstrings", "Glutes", "Quadriceps", "Calves", "Abductors", "Adductors"},
		Types:         []string{"Strength"},
	},
	"Core + Abs": {
		TargetMuscles: []string{"Abdominals"},
		Types:         []string{"Strength", "Core"},
	},
	"Core + Chest": {
		TargetMuscles: []string{"Abdominals", "Chest"},
		Types:         []string{"Strength", "Core"},
	},
	"Light Endurance": {
		TargetMuscles: []string{"Quadriceps", "Calves", "Glutes", "Hamstrings"},
		Types:         []string{"Cardio", "Mobility"},
	},
	"Full Body Strength": {
		TargetMuscles: []string{"Full Body", "Biceps", "Triceps", "Shoulders", "Glutes", "Hamstrings"},
		Types:         []string{"Strength"},
	},
	"Full Body HIIT": {
		Cautions: []string{"HIIT", "Plyometric HIIT", "Isometric HIIT"},
	},
	"Core + Lower Body": {
		TargetMuscles: []string{"Abdominals", "Hamstrings", "Glutes", "Quadriceps", "Calves", "Abductors", "Adductors"},
		Types:         []string{"Strength", "Core"},
	},
	"Abs + Upper Body": {
		TargetMuscles: []string{"Abdominals", "Shoulders", "Biceps", "Triceps", "Middle Back", "Lower Back"},
		Types:         []string{"Strength"},
	},
	"Cardio": {
		Types: []string{"Cardio"},
	},
	focusActiveRest: {
		Types: []string{"Mobility", "Stretching"},
	},
	focusPainRelief: {
		TargetMuscles: []string{"Quadriceps", "Calves", "Hamstrings", "Abdominals"},
		Types:         []string{"Mobility", "Stretching"},
	},
}

// fallbackFoci maps a training focus to substitute foci tried in order when
// the primary focus yields no exercises.
var fallbackFoci = map[string][]string{
	"Core + Lower Body": {"Lower Body Strength", "Core + Abs", "Lower Body Strength"},
	"Full Body HIIT":    {"Light Endurance", "Cardio"},
	"Core + Chest":      {"Core + Abs", "Upper Body Strength"},
	"Abs + Upper Body":  {"Core + Abs", "Upper Body Strength"},
}

// userFocusToMuscles maps a user body focus area to the muscles it covers.
// Used to bias exercise ordering toward the user's chosen areas.
var userFocusToMuscles = map[string][]string{
	"Arms":      {"Biceps", "Triceps", "Forearms", "Shoulders"},
	"Hips":      {"Glutes", "Abductors", "Adductors"},
	"Legs":      {"Quadriceps", "Hamstrings", "Calves"},
	"Stomach":   {"Abdominals"},
	"Full Body": {"Full Body"},
}

// validFocusAreas is the canonical order of accepted body focus areas.
var validFocusAreas = []string{"Arms", "Legs", "Hips", "Stomach", "Full Body"}

// focusAreaGoalPriority orders body focus areas per goal when picking the one
// prioritized area for the classifier features.
var focusAreaGoalPriority = map[Goal][]string{
	GoalWeightLoss:  {"Stomach", "Hips", "Legs", "Arms", "Full Body"},
	GoalBuildMuscle: {"Full Body", "Arms", "Legs", "Hips", "Stomach"},
	GoalGainWeight:  {"Full Body", "Legs", "Arms", "Hips", "Stomach"},
	GoalStayFit:     {"Full Body", "Arms", "Legs", "Stomach", "Hips"},
}

// workoutParams is the daily workload shape for one age/activity/goal cell.
type workoutParams struct {
	Exercises           int
	Sets                int
	DurationPerExercise int
}

// workoutConfig sizes the daily workout by age group, activity tier and goal.
var workoutConfig = map[AgeGroup]map[ActivityTier]map[Goal]workoutParams{
	AgeGroupAdult: {
		TierLow: {
			GoalWeightLoss:  {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalStayFit:     {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalBuildMuscle: {Exercises: 6, Sets: 3, DurationPerExercise: 5},
			GoalGainWeight:  {Exercises: 6, Sets: 3, DurationPerExercise: 5},
		},
		TierModerate: {
			GoalWeightLoss:  {Exercises: 6, Sets: 3, DurationPerExercise: 5},
			GoalStayFit:     {Exercises: 6, Sets: 3, DurationPerExercise: 5},
			GoalBuildMuscle: {Exercises: 7, Sets: 4, DurationPerExercise: 6},
			GoalGainWeight:  {Exercises: 7, Sets: 4, DurationPerExercise: 6},
		},
		TierHigh: {
			GoalWeightLoss:  {Exercises: 7, Sets: 3, DurationPerExercise: 6},
			GoalStayFit:     {Exercises: 7, Sets: 3, DurationPerExercise: 6},
			GoalBuildMuscle: {Exercises: 8, Sets: 4, DurationPerExercise: 7},
			GoalGainWeight:  {Exercises: 8, Sets: 4, DurationPerExercise: 7},
		},
	},
	AgeGroupMiddleAged: {
		TierLow: {
			GoalWeightLoss:  {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalStayFit:     {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalBuildMuscle: {Exercises: 5, Sets: 3, DurationPerExercise: 5},
			GoalGainWeight:  {Exercises: 5, Sets: 3, DurationPerExercise: 5},
		},
		TierModerate: {
			GoalWeightLoss:  {Exercises: 6, Sets: 2, DurationPerExercise: 5},
			GoalStayFit:     {Exercises: 6, Sets: 2, DurationPerExercise: 5},
			GoalBuildMuscle: {Exercises: 6, Sets: 3, DurationPerExercise: 6},
			GoalGainWeight:  {Exercises: 6, Sets: 3, DurationPerExercise: 6},
		},
		TierHigh: {
			GoalWeightLoss:  {Exercises: 7, Sets: 3, DurationPerExercise: 5},
			GoalStayFit:     {Exercises: 7, Sets: 3, DurationPerExercise: 5},
			GoalBuildMuscle: {Exercises: 7, Sets: 3, DurationPerExercise: 6},
			GoalGainWeight:  {Exercises: 7, Sets: 3, DurationPerExercise: 6},
		},
	},
	AgeGroupOlderAdult: {
		TierLow: {
			GoalWeightLoss:  {Exercises: 4, Sets: 2, DurationPerExercise: 3},
			GoalStayFit:     {Exercises: 4, Sets: 2, DurationPerExercise: 3},
			GoalBuildMuscle: {Exercises: 4, Sets: 2, DurationPerExercise: 4},
			GoalGainWeight:  {Exercises: 4, Sets: 2, DurationPerExercise: 4},
		},
		TierModerate: {
			GoalWeightLoss:  {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalStayFit:     {Exercises: 5, Sets: 2, DurationPerExercise: 4},
			GoalBuildMuscle: {Exercises: 5, Sets: 2, DurationPerExercise: 5},
			GoalGainWeight:  {Exercises: 5, Sets: 2, DurationPerExercise: 5},
		},
		TierHigh: {
			GoalWeightLoss:  {Exercises: 6, Sets: 2, DurationPerExercise: 4},
			GoalStayFit:     {Exercises: 6, Sets: 2, DurationPerExercise: 4},
			GoalBuildMuscle: {Exercises: 6, Sets: 3, DurationPerExercise: 5},
			GoalGainWeight:  {Exercises: 6, Sets: 3, DurationPerExercise: 5},
		},
	},
}

// goalReps is the per-set repetition count per goal.
var goalReps = map[Goal]int{
	GoalWeightLoss:  15,
	GoalStayFit:     15,
	GoalBuildMuscle: 10,
	GoalGainWeight:  8,
}

// repTimeSeconds is the seconds one repetition takes, by age and activity.
var repTimeSeconds = map[AgeGroup]map[ActivityTier]int{
	AgeGroupAdult:      {TierLow: 4, TierModerate: 4, TierHigh: 3},
	AgeGroupMiddleAged: {TierLow: 5, TierModerate: 5, TierHigh: 4},
	AgeGroupOlderAdult: {TierLow: 6, TierModerate: 6, TierHigh: 5},
}

// restTimeSeconds is the rest between sets in seconds, by age and activity.
var restTimeSeconds = map[AgeGroup]map[ActivityTier]int{
	AgeGroupAdult:      {TierLow: 45, TierModerate: 30, TierHigh: 20},
	AgeGroupMiddleAged: {TierLow: 60, TierModerate: 45, TierHigh: 30},
	AgeGroupOlderAdult: {TierLow: 75, TierModerate: 60, TierHigh: 45},
}

// conditionPrecedence collapses a reported condition set to the one condition
// fed to the success model.
var conditionPrecedence = map[string]HealthCondition{
	conditionSetKey(ConditionMenopause, ConditionDiabetes):                        ConditionMenopause,
	conditionSetKey(ConditionMenopause, ConditionHypertension):                    ConditionMenopause,
	conditionSetKey(ConditionDiabetes, ConditionHypertension):                     ConditionDiabetes,
	conditionSetKey(ConditionMenopause, ConditionDiabetes, ConditionHypertension): ConditionMenopause,
}
