package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NoQuizMarker is the literal the quiz prompt instructs the model to emit
// when the user did not ask for a quiz.
const NoQuizMarker = "None"

const (
	expectedQuestions = 5
	expectedOptions   = 4
)

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type quizPayload struct {
	Quiz []Question `json:"quiz"`
}

// Result is the typed outcome of parsing a quiz reply.
type Result struct {
	HasQuiz   bool
	Questions []Question
}

// Parse validates the raw quiz reply from the model. Markdown code fences
// are stripped first since the model wraps JSON in them more often than not.
func Parse(raw string) (*Result, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == NoQuizMarker || strings.Trim(trimmed, `"`) == NoQuizMarker {
		return &Result{HasQuiz: false}, nil
	}

	cleaned := []byte(trimmed)
	cleaned = bytes.TrimPrefix(cleaned, []byte("```json"))
	cleaned = bytes.TrimPrefix(cleaned, []byte("```"))
	cleaned = bytes.TrimSuffix(cleaned, []byte("```"))
	cleaned = bytes.TrimSpace(cleaned)

	var payload quizPayload
	if err := json.Unmarshal(cleaned, &payload); err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, string(cleaned))
	}

	if len(payload.Quiz) != expectedQuestions {
		return nil, fmt.Errorf("expected %d questions, got %d", expectedQuestions, len(payload.Quiz))
	}
	for i, q := range payload.Quiz {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d is empty", i)
		}
		if len(q.Options) != expectedOptions {
			return nil, fmt.Errorf("question %d has %d options, expected %d", i, len(q.Options), expectedOptions)
		}
		if q.CorrectAnswer == "" {
			return nil, fmt.Errorf("question %d has no correct answer", i)
		}
	}

	return &Result{HasQuiz: true, Questions: payload.Quiz}, nil
}
