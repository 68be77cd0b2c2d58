package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prepdeck/interview-api/internal/jsonx"
	"github.com/prepdeck/interview-api/pkg/model"
	"go.uber.org/zap"
)

// ExpectedQuestionTypes is the canonical set of question types, in the
// order the prompt asks for them.
var ExpectedQuestionTypes = []string{"Aptitude", "CodeCompletion", "TrickyCoding", "TechCodeCompletion", "Technical", "HR"}

const minQuestions = 6

// Token budgets tried in order until one attempt yields a valid result.
var generateTokenLadder = []int{2500, 3000, 2000, 1800}

// GenerateQuestions asks the model for six typed interview questions for
// the given role. Each ladder attempt runs invocation, JSON recovery and
// validation; the first attempt that survives all three wins.
func (c *Client) GenerateQuestions(ctx context.Context, role string) ([]model.InterviewQuestion, error) {
	messages := []Message{
		{Role: "system", Content: generateSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(generatePromptTemplate, role)},
	}

	for _, maxTokens := range generateTokenLadder {
		c.logger.Info("attempting question generation",
			zap.String("role", role),
			zap.Int("max_tokens", maxTokens),
		)

		raw, err := c.Chat(ctx, messages, maxTokens, 0.1)
		if err != nil {
			c.logger.Warn("generation attempt failed",
				zap.Int("max_tokens", maxTokens),
				zap.Error(err),
			)
			continue
		}

		jsonText, ok := jsonx.Recover(raw)
		if !ok {
			c.logger.Warn("no recoverable JSON in model response",
				zap.Int("max_tokens", maxTokens),
				zap.Int("response_len", len(raw)),
			)
			continue
		}

		var questions []model.InterviewQuestion
		if err := json.Unmarshal([]byte(jsonText), &questions); err != nil {
			c.logger.Warn("recovered JSON is not a question array",
				zap.Int("max_tokens", maxTokens),
				zap.Error(err),
			)
			continue
		}

		if err := c.validateQuestions(questions); err != nil {
			c.logger.Warn("generated questions failed validation",
				zap.Int("max_tokens", maxTokens),
				zap.Error(err),
			)
			continue
		}

		c.logger.Info("questions generated",
			zap.String("role", role),
			zap.Int("count", len(questions)),
			zap.Int("max_tokens", maxTokens),
		)
		return questions, nil
	}

	return nil, errors.New("failed to generate valid questions after multiple attempts")
}

// validateQuestions applies the structural checks that gate an attempt:
// at least six elements, each with both type and question. Type coverage
// is checked too, but a mismatch only logs; the model sometimes uses
// near-equivalent labels.
func (c *Client) validateQuestions(questions []model.InterviewQuestion) error {
	if len(questions) < minQuestions {
		return fmt.Errorf("expected %d questions, got %d", minQuestions, len(questions))
	}

	foundTypes := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.Type == "" || q.Question == "" {
			return fmt.Errorf("question %d missing required fields", i+1)
		}
		foundTypes[q.Type] = true
	}

	for _, want := range ExpectedQuestionTypes {
		if !foundTypes[want] {
			types := make([]string, 0, len(foundTypes))
			for t := range foundTypes {
				types = append(types, t)
			}
			c.logger.Warn("question types do not cover expected set",
				zap.Strings("found", types),
				zap.Strings("expected", ExpectedQuestionTypes),
			)
			break
		}
	}

	return nil
}
