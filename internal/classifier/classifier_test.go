package classifier_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunafit/lunafit/internal/classifier"
)

func baselineFeatures(m *classifier.Model) classifier.Features {
	return classifier.Features{
		ActivityLevel:          50,
		WeightKg:               70,
		HeightCm:               165,
		Age:                    30,
		BMI:                    25.7,
		Goal:                   mustEncode(m, classifier.FieldGoal, "weight_loss"),
		HealthCondition:        mustEncode(m, classifier.FieldHealthCondition, ""),
		FocusArea:              mustEncode(m, classifier.FieldFocusArea, "Full Body"),
		RestDay:                mustEncode(m, classifier.FieldRestDay, "Sunday"),
		ActivityBMIInteraction: 50 * 25.7,
		AgeHealthInteraction:   0,
	}
}

func mustEncode(m *classifier.Model, field classifier.Field, value string) int {
	code, err := m.Encode(field, value)
	if err != nil {
		panic(err)
	}
	return code
}

func TestDefault(t *testing.T) {
	m, err := classifier.Default()
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestEncode(t *testing.T) {
	m, err := classifier.Default()
	require.NoError(t, err)

	t.Run("known values", func(t *testing.T) {
		for _, goal := range []string{"weight_loss", "stay_fit", "build_muscle", "gain_weight"} {
			_, err := m.Encode(classifier.FieldGoal, goal)
			assert.NoError(t, err, "goal %q", goal)
		}
		code, err := m.Encode(classifier.FieldHealthCondition, "")
		require.NoError(t, err)
		assert.Equal(t, 0, code, "empty health condition is the first class")
	})

	t.Run("unknown value is a hard error", func(t *testing.T) {
		_, err := m.Encode(classifier.FieldGoal, "get_swole")
		require.Error(t, err)
		var unknownErr *classifier.UnknownValueError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, classifier.FieldGoal, unknownErr.Field)
		assert.Equal(t, "get_swole", unknownErr.Value)
	})

	t.Run("encoding is stable", func(t *testing.T) {
		first, err := m.Encode(classifier.FieldRestDay, "Sunday")
		require.NoError(t, err)
		second, err := m.Encode(classifier.FieldRestDay, "Sunday")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestProbability(t *testing.T) {
	m, err := classifier.Default()
	require.NoError(t, err)

	t.Run("within unit interval", func(t *testing.T) {
		p, err := m.Probability(baselineFeatures(m))
		require.NoError(t, err)
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	})

	t.Run("deterministic", func(t *testing.T) {
		f := baselineFeatures(m)
		p1, err := m.Probability(f)
		require.NoError(t, err)
		p2, err := m.Probability(f)
		require.NoError(t, err)
		assert.Equal(t, p1, p2)
	})

	t.Run("monotonic in activity level", func(t *testing.T) {
		// The activity coefficient of the artifact is positive, so a more
		// active user must never score lower, all else equal.
		low := baselineFeatures(m)
		low.ActivityLevel = 30
		high := baselineFeatures(m)
		high.ActivityLevel = 70

		pLow, err := m.Probability(low)
		require.NoError(t, err)
		pHigh, err := m.Probability(high)
		require.NoError(t, err)
		assert.Greater(t, pHigh, pLow)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := classifier.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
