package plan

import "testing"

func baseProfile() *UserProfile {
	return &UserProfile{
		Age:            28,
		WeightKg:       65,
		HeightCm:       170,
		ActivitySlider: 55,
		ActivityTier:   TierModerate,
		AgeGroup:       AgeGroupAdult,
		Goal:           GoalWeightLoss,
		FocusAreas:     []string{"Stomach"},
	}
}

func TestScoreTemplate(t *testing.T) {
	aligned := Template{
		ID:        "wl_aligned",
		Goal:      GoalWeightLoss,
		FocusDays: []string{"Cardio", "Full Body HIIT", "Abs + Upper Body", "Core + Lower Body"},
	}
	misaligned := Template{
		ID:        "wl_misaligned",
		Goal:      GoalWeightLoss,
		FocusDays: []string{"Chest + Arms", "Chest + Arms", "Chest + Arms", "Chest + Arms"},
	}

	t.Run("score stays within bounds", func(t *testing.T) {
		for _, tmpl := range []Template{aligned, misaligned} {
			score, _ := scoreTemplate(baseProfile(), tmpl)
			if score < 0 || score > 100 {
				t.Errorf("score for %s = %v, want within [0, 100]", tmpl.ID, score)
			}
		}
	})

	t.Run("aligned template scores higher", func(t *testing.T) {
		alignedScore, _ := scoreTemplate(baseProfile(), aligned)
		misalignedScore, _ := scoreTemplate(baseProfile(), misaligned)
		if alignedScore <= misalignedScore {
			t.Errorf("aligned score %v not above misaligned score %v", alignedScore, misalignedScore)
		}
	})

	t.Run("aligned template labeled successful", func(t *testing.T) {
		_, label := scoreTemplate(baseProfile(), aligned)
		if label != LabelSuccessful {
			t.Errorf("label = %v, want successful", label)
		}
	})

	t.Run("cardio risk penalizes high intensity foci", func(t *testing.T) {
		hiit := Template{
			ID:        "wl_hiit",
			Goal:      GoalWeightLoss,
			FocusDays: []string{"Full Body HIIT", "Full Body HIIT", "Cardio"},
		}
		healthyScore, _ := scoreTemplate(baseProfile(), hiit)
		risky := baseProfile()
		risky.HealthConditions = []HealthCondition{ConditionHypertension}
		riskyScore, _ := scoreTemplate(risky, hiit)
		if riskyScore >= healthyScore {
			t.Errorf("cardio risk score %v not below healthy score %v", riskyScore, healthyScore)
		}
	})

	t.Run("heavy weight loss user rewarded for cardio coverage", func(t *testing.T) {
		cardioHeavy := Template{
			ID:        "wl_cardio",
			Goal:      GoalWeightLoss,
			FocusDays: []string{"Cardio", "Full Body HIIT", "Cardio", "Core + Lower Body"},
		}
		heavy := baseProfile()
		heavy.WeightKg = 90
		heavyScore, _ := scoreTemplate(heavy, cardioHeavy)
		lightScore, _ := scoreTemplate(baseProfile(), cardioHeavy)
		// Three cardio days earn the heavy user a bonus the light user misses.
		if heavyScore <= lightScore {
			t.Errorf("heavy user score %v not above light user score %v", heavyScore, lightScore)
		}
	})

	t.Run("older user rewarded for light endurance", func(t *testing.T) {
		endurance := Template{
			ID:        "sf_endurance",
			Goal:      GoalStayFit,
			FocusDays: []string{"Light Endurance", "Mobility", "Core + Abs"},
		}
		older := baseProfile()
		older.Age = 55
		older.Goal = GoalStayFit
		younger := baseProfile()
		younger.Goal = GoalStayFit
		olderScore, _ := scoreTemplate(older, endurance)
		youngerScore, _ := scoreTemplate(younger, endurance)
		if olderScore <= youngerScore {
			t.Errorf("older score %v not above younger score %v", olderScore, youngerScore)
		}
	})
}

func TestScoreTemplateDeterministic(t *testing.T) {
	tmpl := Template{
		ID:        "wl_repeat",
		Goal:      GoalWeightLoss,
		FocusDays: []string{"Cardio", "Abs + Upper Body", "Core + Lower Body"},
	}
	p := baseProfile()
	firstScore, firstLabel := scoreTemplate(p, tmpl)
	secondScore, secondLabel := scoreTemplate(p, tmpl)
	if firstScore != secondScore || firstLabel != secondLabel {
		t.Errorf("repeated scoring gave (%v, %v) then (%v, %v)",
			firstScore, firstLabel, secondScore, secondLabel)
	}
}

func TestSuccessThreshold(t *testing.T) {
	base := baseProfile()
	if got := successThreshold(base); got != 62 {
		t.Errorf("base threshold = %v, want 62", got)
	}

	lowActivity := baseProfile()
	lowActivity.ActivityTier = TierLow
	if got := successThreshold(lowActivity); got != 68 {
		t.Errorf("low activity threshold = %v, want 68", got)
	}

	muscle := baseProfile()
	muscle.Goal = GoalBuildMuscle
	if got := successThreshold(muscle); got != 66 {
		t.Errorf("build muscle threshold = %v, want 66", got)
	}

	everything := baseProfile()
	everything.ActivityTier = TierLow
	everything.Goal = GoalGainWeight
	everything.HealthConditions = []HealthCondition{ConditionDiabetes}
	if got := successThreshold(everything); got != 75 {
		t.Errorf("stacked threshold = %v, want 75", got)
	}
}
