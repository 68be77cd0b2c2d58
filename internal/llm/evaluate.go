package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/prepdeck/interview-api/internal/jsonx"
	"github.com/prepdeck/interview-api/pkg/model"
	"go.uber.org/zap"
)

const (
	maxQuestionLen   = 1000
	maxAnswerLen     = 2000
	maxFeedbackWords = 100
	fallbackScore    = 5
)

var evaluateTokenLadder = []int{600, 800, 400, 1000}

var fallbackEvaluation = model.Evaluation{
	Feedback: "Unable to generate detailed feedback due to technical issues. Please review the response manually.",
	Score:    fallbackScore,
}

// EvaluateAnswer grades one answer against its question. It never fails:
// if every ladder attempt produces nothing parsable, the caller gets a
// fixed manual-review evaluation, and whatever the model did return is
// normalized so the score lands in [0,10] and the feedback stays bounded.
func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string) model.Evaluation {
	question = truncateInput(question, maxQuestionLen)
	answer = truncateInput(answer, maxAnswerLen)

	messages := []Message{
		{Role: "system", Content: evaluateSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(evaluatePromptTemplate, question, answer)},
	}

	var parsed map[string]interface{}
	for _, maxTokens := range evaluateTokenLadder {
		c.logger.Info("attempting evaluation", zap.Int("max_tokens", maxTokens))

		raw, err := c.Chat(ctx, messages, maxTokens, 0.1)
		if err != nil {
			c.logger.Warn("evaluation attempt failed",
				zap.Int("max_tokens", maxTokens),
				zap.Error(err),
			)
			continue
		}
		if strings.TrimSpace(raw) == "" {
			c.logger.Warn("empty evaluation response", zap.Int("max_tokens", maxTokens))
			continue
		}

		jsonText, ok := jsonx.Recover(raw)
		if !ok {
			c.logger.Warn("no recoverable JSON in evaluation response",
				zap.Int("max_tokens", maxTokens),
				zap.Int("response_len", len(raw)),
			)
			continue
		}

		var m map[string]interface{}
		if err := json.Unmarshal([]byte(jsonText), &m); err != nil {
			c.logger.Warn("recovered evaluation JSON is not an object",
				zap.Int("max_tokens", maxTokens),
				zap.Error(err),
			)
			continue
		}

		parsed = m
		break
	}

	if parsed == nil {
		c.logger.Warn("all evaluation attempts failed, using fallback")
		return fallbackEvaluation
	}

	ev := normalizeEvaluation(parsed)
	c.logger.Info("evaluation completed", zap.Int("score", ev.Score))
	return ev
}

// normalizeEvaluation coerces whatever shape the model produced into a
// usable Evaluation: feedback forced to a bounded string, score forced to
// an integer in [0,10] with 5 as the stand-in for anything non-numeric.
func normalizeEvaluation(m map[string]interface{}) model.Evaluation {
	ev := model.Evaluation{Score: fallbackScore}

	switch fb := m["feedback"].(type) {
	case string:
		ev.Feedback = fb
	case nil:
		ev.Feedback = "Feedback not available due to technical issues."
	default:
		ev.Feedback = "Feedback format error - please try again."
	}

	words := strings.Fields(ev.Feedback)
	if len(words) > maxFeedbackWords {
		ev.Feedback = strings.Join(words[:maxFeedbackWords], " ") + "..."
	}

	switch s := m["score"].(type) {
	case float64:
		ev.Score = clampScore(int(s))
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			ev.Score = clampScore(n)
		}
	}

	return ev
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func truncateInput(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
