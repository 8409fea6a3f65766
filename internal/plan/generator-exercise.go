package plan

import (
	"context"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/lunafit/lunafit/internal/errors"
)

// exerciseContentGenerator produces coaching descriptions for catalog
// exercises with the OpenAI API.
type exerciseContentGenerator struct {
	client openai.Client
	logger *slog.Logger
}

func newExerciseContentGenerator(apiKey string, logger *slog.Logger) *exerciseContentGenerator {
	return &exerciseContentGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

const exerciseDescriptionPrompt = `You are a certified personal trainer writing for a fitness app.
Write a concise exercise guide in Markdown with these sections:
## Form
Step-by-step execution cues.
## Breathing
When to inhale and exhale.
## Common Mistakes
The two or three most frequent errors and how to avoid them.
Keep the whole guide under 200 words. Do not repeat the exercise name as a heading.`

// generateDescription asks the model for a Markdown guide for one exercise.
func (g *exerciseContentGenerator) generateDescription(ctx context.Context, exercise Exercise) (string, error) {
	userPrompt := strings.Join([]string{
		"Exercise: " + exercise.Name,
		"Target muscle: " + exercise.TargetMuscle,
		"Difficulty: " + string(exercise.Difficulty),
		"Type: " + strings.Join(exercise.Types, ", "),
	}, "\n")

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(exerciseDescriptionPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion", slog.String("exercise", exercise.Name))
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("chat completion returned empty content")
	}
	return content, nil
}

// GenerateMissingDescriptions fills in descriptions for exercises that have
// none. Failures on individual exercises are logged and skipped so one bad
// completion does not abort the batch. Returns the number updated.
func (s *Service) GenerateMissingDescriptions(ctx context.Context) (int, error) {
	if s.openaiAPIKey == "" {
		return 0, errors.New("openai api key not configured")
	}
	missing, err := s.repo.exercises.ListWithoutDescription(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list exercises without description")
	}
	generator := newExerciseContentGenerator(s.openaiAPIKey, s.logger)
	updated := 0
	for _, exercise := range missing {
		description, err := generator.generateDescription(ctx, exercise)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "skipping exercise description",
				slog.String("exercise", exercise.Name), errors.SlogError(err))
			continue
		}
		if err := s.repo.exercises.SetDescription(ctx, exercise.ID, description); err != nil {
			return updated, errors.Wrap(err, "save description", slog.String("exercise", exercise.Name))
		}
		updated++
	}
	return updated, nil
}
