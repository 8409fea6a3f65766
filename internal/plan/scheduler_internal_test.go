package plan

import (
	"testing"
	"time"
)

// scheduleProfile starts Monday 2025-03-03 and rests on Sundays.
func scheduleProfile(days int) *UserProfile {
	p := baseProfile()
	p.ProgramDays = days
	p.StartDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	p.RestWeekday = time.Sunday
	p.RestWeekdayName = "Sunday"
	return p
}

var scheduleTemplate = Template{
	ID:        "wl_1",
	Goal:      GoalWeightLoss,
	FocusDays: []string{"Cardio", "Full Body HIIT", "Core + Lower Body"},
}

func TestScheduleDays(t *testing.T) {
	t.Run("rest weekday becomes complete rest", func(t *testing.T) {
		days := scheduleDays(scheduleProfile(14), scheduleTemplate)
		for _, day := range days {
			if day.Date.Weekday() == time.Sunday && day.Focus != focusCompleteRest {
				t.Errorf("day %d on Sunday has focus %q, want complete rest", day.DayIndex, day.Focus)
			}
			if day.Date.Weekday() != time.Sunday && day.Focus == focusCompleteRest {
				t.Errorf("day %d (%v) marked complete rest off the preferred weekday", day.DayIndex, day.Date.Weekday())
			}
		}
	})

	t.Run("no more than three consecutive workouts", func(t *testing.T) {
		days := scheduleDays(scheduleProfile(30), scheduleTemplate)
		streak := 0
		for _, day := range days {
			if isRestDay(day.Focus) {
				streak = 0
				continue
			}
			streak++
			if streak > 3 {
				t.Fatalf("day %d is the %dth consecutive workout", day.DayIndex, streak)
			}
		}
	})

	t.Run("fourth consecutive day is active rest", func(t *testing.T) {
		days := scheduleDays(scheduleProfile(7), scheduleTemplate)
		// Monday through Wednesday train, Thursday must be active rest.
		if days[3].Focus != focusActiveRest {
			t.Errorf("day 3 focus = %q, want active rest", days[3].Focus)
		}
	})

	t.Run("template foci cycle in order", func(t *testing.T) {
		days := scheduleDays(scheduleProfile(7), scheduleTemplate)
		want := []string{"Cardio", "Full Body HIIT", "Core + Lower Body"}
		for i := 0; i < 3; i++ {
			if days[i].Focus != want[i] {
				t.Errorf("day %d focus = %q, want %q", i, days[i].Focus, want[i])
			}
		}
		// After active rest on day 3, the rotation resumes where it left off.
		if days[4].Focus != "Cardio" {
			t.Errorf("day 4 focus = %q, want Cardio", days[4].Focus)
		}
	})

	t.Run("menstruation first days override any focus", func(t *testing.T) {
		p := scheduleProfile(7)
		p.CycleLength = 28
		p.CycleTimeline = []CycleDay{
			{CycleDay: 1, Phase: PhaseMenstruation},
			{CycleDay: 2, Phase: PhaseMenstruation},
			{CycleDay: 3, Phase: PhaseMenstruation},
		}
		days := scheduleDays(p, scheduleTemplate)
		if days[0].Focus != focusPainRelief || days[1].Focus != focusPainRelief {
			t.Errorf("menstruation days 1-2 got foci %q, %q, want pain relief", days[0].Focus, days[1].Focus)
		}
		if days[2].Focus == focusPainRelief {
			t.Error("menstruation day 3 should keep its scheduled focus")
		}
	})

	t.Run("late luteal days prefer lowest intensity", func(t *testing.T) {
		p := scheduleProfile(3)
		p.CycleLength = 28
		p.CycleTimeline = []CycleDay{
			{CycleDay: 25, Phase: PhaseLuteal},
			{CycleDay: 26, Phase: PhaseLuteal},
			{CycleDay: 27, Phase: PhaseLuteal},
		}
		days := scheduleDays(p, scheduleTemplate)
		if days[0].preferLowestMET {
			t.Error("cycle day 25 flagged for lowest intensity too early")
		}
		if !days[1].preferLowestMET || !days[2].preferLowestMET {
			t.Error("late luteal days not flagged for lowest intensity")
		}
	})

	t.Run("days without timeline entries stay neutral", func(t *testing.T) {
		p := scheduleProfile(5)
		p.CycleTimeline = []CycleDay{{CycleDay: 1, Phase: PhaseFollicular}}
		days := scheduleDays(p, scheduleTemplate)
		if days[0].Phase != PhaseFollicular {
			t.Errorf("day 0 phase = %q, want follicular", days[0].Phase)
		}
		for _, day := range days[1:] {
			if day.Phase != PhaseNeutral {
				t.Errorf("day %d phase = %q, want neutral", day.DayIndex, day.Phase)
			}
			if day.CycleDay != nil {
				t.Errorf("day %d has cycle day set without timeline data", day.DayIndex)
			}
		}
	})
}
