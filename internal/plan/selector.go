package plan

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/errors"
)

// modelProbThreshold is the success probability cutoff for the model label.
const modelProbThreshold = 0.65

// scoreCandidates scores every goal-aligned template with the rules and, when
// a model is available, with the success classifier.
func scoreCandidates(p *UserProfile, templates []Template, model *classifier.Model) ([]ScoredTemplate, error) {
	candidates := make([]ScoredTemplate, 0, len(templates))
	var features classifier.Features
	if model != nil {
		var err error
		features, err = classifierFeatures(p, model)
		if err != nil {
			return nil, errors.Wrap(err, "assemble classifier features")
		}
	}
	for _, tmpl := range templates {
		if tmpl.Goal != p.Goal {
			continue
		}
		score, ruleLabel := scoreTemplate(p, tmpl)
		scored := ScoredTemplate{
			TemplateID: tmpl.ID,
			RuleScore:  score,
			RuleLabel:  ruleLabel,
			ModelLabel: LabelFail,
		}
		if model != nil {
			prob, err := model.Probability(features)
			if err != nil {
				return nil, errors.Wrap(err, "score template with classifier", slog.String("template_id", tmpl.ID))
			}
			scored.ModelProbability = &prob
			if prob >= modelProbThreshold {
				scored.ModelLabel = LabelSuccessful
			}
		}
		candidates = append(candidates, scored)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidateTemplates
	}
	return candidates, nil
}

// selectTemplate picks the winning template. Rule-successful candidates win,
// then model-successful ones, then everything, each tier resolved by keeping
// candidates within 95% of the tier's best score and picking one at random.
func selectTemplate(candidates []ScoredTemplate, rng *rand.Rand) (ScoredTemplate, error) {
	tiers := [][]ScoredTemplate{
		filterScored(candidates, func(c ScoredTemplate) bool { return c.RuleLabel == LabelSuccessful }),
		filterScored(candidates, func(c ScoredTemplate) bool { return c.ModelLabel == LabelSuccessful }),
		candidates,
	}
	for _, tier := range tiers {
		if len(tier) == 0 {
			continue
		}
		top := topByScore(tier)
		return top[rng.IntN(len(top))], nil
	}
	return ScoredTemplate{}, ErrNoScorableTemplates
}

func filterScored(candidates []ScoredTemplate, keep func(ScoredTemplate) bool) []ScoredTemplate {
	out := make([]ScoredTemplate, 0, len(candidates))
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// topByScore keeps the candidates scoring at least 95% of the best score.
func topByScore(candidates []ScoredTemplate) []ScoredTemplate {
	best := candidates[0].RuleScore
	for _, c := range candidates[1:] {
		if c.RuleScore > best {
			best = c.RuleScore
		}
	}
	cutoff := best * 0.95
	out := make([]ScoredTemplate, 0, len(candidates))
	for _, c := range candidates {
		if c.RuleScore >= cutoff {
			out = append(out, c)
		}
	}
	return out
}
