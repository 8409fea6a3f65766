package plan

import (
	"strings"
	"time"
)

// scheduledDay is one day of the plan blueprint before exercises are assigned.
type scheduledDay struct {
	DayIndex int
	Date     time.Time
	Focus    string
	// preferLowestMET caps the day's pool to the gentlest exercises.
	preferLowestMET bool
	Phase           CyclePhase
	CycleDay        *int
}

// isRestDay reports whether a focus is a scheduler-inserted rest day.
func isRestDay(focus string) bool {
	return strings.Contains(focus, "Rest")
}

// scheduleDays lays out the program: the template's focus days cycle across
// the calendar, interrupted by the preferred weekly rest day and by an active
// rest day after every third consecutive workout. Cycle phase overrides apply
// last so menstruation relief replaces whatever the day would have been.
func scheduleDays(p *UserProfile, tmpl Template) []scheduledDay {
	days := make([]scheduledDay, 0, p.ProgramDays)
	focusCursor := 0
	streak := 0
	for i := 0; i < p.ProgramDays; i++ {
		date := p.StartDate.AddDate(0, 0, i)
		var focus string
		switch {
		case date.Weekday() == p.RestWeekday:
			focus = focusCompleteRest
			streak = 0
		case streak >= 3:
			focus = focusActiveRest
			streak = 0
		default:
			focus = tmpl.FocusDays[focusCursor%len(tmpl.FocusDays)]
			focusCursor++
			streak++
		}
		day := scheduledDay{
			DayIndex: i,
			Date:     date,
			Focus:    focus,
			Phase:    PhaseNeutral,
		}
		applyCycleOverride(&day, p, i)
		days = append(days, day)
	}
	return days
}

// applyCycleOverride annotates the day with its cycle phase and adjusts the
// focus or intensity for the phases that need it.
func applyCycleOverride(day *scheduledDay, p *UserProfile, idx int) {
	if idx >= len(p.CycleTimeline) {
		return
	}
	entry := p.CycleTimeline[idx]
	phase := entry.Phase
	if phase == "" {
		phase = PhaseNeutral
	}
	day.Phase = CyclePhase(strings.ToLower(string(phase)))
	cycleDay := entry.CycleDay
	day.CycleDay = &cycleDay

	cycleLength := p.CycleLength
	if cycleLength == 0 {
		cycleLength = defaultCycleLength
	}
	switch {
	case day.Phase == PhaseMenstruation && (cycleDay == 1 || cycleDay == 2):
		day.Focus = focusPainRelief
	case day.Phase == PhaseLuteal && cycleDay >= cycleLength-2:
		day.preferLowestMET = true
	}
}
