package plan

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/errors"
)

// generate runs the full pipeline for one profile: score and select a
// template, lay out the days, and assign exercises from the filtered catalog.
func generate(p *UserProfile, templates []Template, catalog []Exercise, model *classifier.Model, rng *rand.Rand, now time.Time) (Plan, error) {
	candidates, err := scoreCandidates(p, templates, model)
	if err != nil {
		return Plan{}, errors.Wrap(err, "score templates")
	}
	selected, err := selectTemplate(candidates, rng)
	if err != nil {
		return Plan{}, errors.Wrap(err, "select template")
	}
	var tmpl Template
	found := false
	for _, t := range templates {
		if t.ID == selected.TemplateID {
			tmpl = t
			found = true
			break
		}
	}
	if !found {
		return Plan{}, errors.New("selected template missing from catalog")
	}

	working := buildWorkingPool(catalog, p)
	days := scheduleDays(p, tmpl)
	asgn := newAssigner(working, p, rng)

	plan := Plan{
		ID:          uuid.New(),
		TemplateID:  tmpl.ID,
		Intensity:   planIntensity(p),
		GeneratedAt: now,
		Days:        make([]DayPlan, 0, len(days)),
	}
	for _, day := range days {
		plan.Days = append(plan.Days, asgn.assignDay(day))
	}
	return plan, nil
}

// planIntensity is the intensity reported on the plan: the user's explicit
// preference when given, otherwise their activity tier.
func planIntensity(p *UserProfile) ActivityTier {
	if p.PreferredIntensity != "" {
		return p.PreferredIntensity
	}
	return p.ActivityTier
}
