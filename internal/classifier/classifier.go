// Package classifier scores user/template pairings with a pre-trained
// logistic-regression model. The model weights, the feature scaler, and the
// categorical label encoders are fitted offline and exported as a JSON
// artifact; this package only evaluates them and never trains anything.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	_ "embed"
)

// Field names the categorical inputs the model's label encoders were fitted on.
type Field string

// Categorical fields of the model artifact.
const (
	FieldGoal            Field = "goal"
	FieldHealthCondition Field = "health_condition"
	FieldFocusArea       Field = "preferred_focus_area"
	FieldRestDay         Field = "preferred_rest_day"
)

// Features is the model input. The continuous fields are scaled internally
// with the artifact's fitted scaler; the categorical fields must be codes
// produced by [Model.Encode].
type Features struct {
	ActivityLevel          float64
	WeightKg               float64
	HeightCm               float64
	Age                    float64
	BMI                    float64
	Goal                   int
	HealthCondition        int
	FocusArea              int
	RestDay                int
	ActivityBMIInteraction float64
	AgeHealthInteraction   float64
}

// UnknownValueError reports a categorical value the model was not fitted on.
// Such values must surface to the caller; coercing them would silently score
// against the wrong category.
type UnknownValueError struct {
	Field Field
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("classifier: unknown %s value %q", e.Field, e.Value)
}

// artifact is the on-disk representation of the exported model.
type artifact struct {
	FeatureOrder       []string           `json:"feature_order"`
	ContinuousFeatures []string           `json:"continuous_features"`
	Scaler             scalerArtifact     `json:"scaler"`
	Encoders           map[string][]string `json:"encoders"`
	Coefficients       []float64          `json:"coefficients"`
	Intercept          float64            `json:"intercept"`
}

type scalerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Model evaluates the exported classifier artifact.
type Model struct {
	art artifact
	// encoder value → code index per field, built once at load time.
	codes map[Field]map[string]int
	// position of each continuous feature in the feature order.
	continuousAt map[string]int
}

//go:embed model.json
var defaultArtifact []byte

// Load reads a model artifact from the given path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	model, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	return model, nil
}

// Default returns the model built from the embedded artifact.
func Default() (*Model, error) {
	model, err := parse(defaultArtifact)
	if err != nil {
		return nil, fmt.Errorf("parse embedded model artifact: %w", err)
	}
	return model, nil
}

func parse(raw []byte) (*Model, error) {
	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := validate(art); err != nil {
		return nil, err
	}

	codes := make(map[Field]map[string]int, len(art.Encoders))
	for field, classes := range art.Encoders {
		index := make(map[string]int, len(classes))
		for i, class := range classes {
			index[class] = i
		}
		codes[Field(field)] = index
	}

	continuousAt := make(map[string]int, len(art.ContinuousFeatures))
	for i, name := range art.ContinuousFeatures {
		continuousAt[name] = i
	}

	return &Model{art: art, codes: codes, continuousAt: continuousAt}, nil
}

func validate(art artifact) error {
	if len(art.FeatureOrder) == 0 {
		return fmt.Errorf("artifact has no feature order")
	}
	if len(art.Coefficients) != len(art.FeatureOrder) {
		return fmt.Errorf("artifact has %d coefficients for %d features",
			len(art.Coefficients), len(art.FeatureOrder))
	}
	if len(art.Scaler.Mean) != len(art.ContinuousFeatures) ||
		len(art.Scaler.Scale) != len(art.ContinuousFeatures) {
		return fmt.Errorf("scaler dimensions do not match %d continuous features",
			len(art.ContinuousFeatures))
	}
	for _, field := range []Field{FieldGoal, FieldHealthCondition, FieldFocusArea, FieldRestDay} {
		if len(art.Encoders[string(field)]) == 0 {
			return fmt.Errorf("artifact missing encoder for %s", field)
		}
	}
	return nil
}

// Encode maps a categorical value through the field's fitted label encoder.
func (m *Model) Encode(field Field, value string) (int, error) {
	index, ok := m.codes[field]
	if !ok {
		return 0, fmt.Errorf("classifier: no encoder for field %q", field)
	}
	code, ok := index[value]
	if !ok {
		return 0, &UnknownValueError{Field: field, Value: value}
	}
	return code, nil
}

// Classes returns the values the given field's encoder was fitted on.
func (m *Model) Classes(field Field) []string {
	return m.art.Encoders[string(field)]
}

// Probability returns the success probability for the given features.
func (m *Model) Probability(f Features) (float64, error) {
	byName := map[string]float64{
		"activity_level":           f.ActivityLevel,
		"weight":                   f.WeightKg,
		"height":                   f.HeightCm,
		"age":                      f.Age,
		"bmi":                      f.BMI,
		"goal":                     float64(f.Goal),
		"health_condition":         float64(f.HealthCondition),
		"preferred_focus_area":     float64(f.FocusArea),
		"preferred_rest_day":       float64(f.RestDay),
		"activity_bmi_interaction": f.ActivityBMIInteraction,
		"age_health_interaction":   f.AgeHealthInteraction,
	}

	z := m.art.Intercept
	for i, name := range m.art.FeatureOrder {
		value, ok := byName[name]
		if !ok {
			return 0, fmt.Errorf("classifier: artifact feature %q not provided", name)
		}
		if pos, continuous := m.continuousAt[name]; continuous {
			scale := m.art.Scaler.Scale[pos]
			if scale == 0 {
				scale = 1
			}
			value = (value - m.art.Scaler.Mean[pos]) / scale
		}
		z += m.art.Coefficients[i] * value
	}

	return 1 / (1 + math.Exp(-z)), nil
}
