package service

import (
	"encoding/json"
	"fmt"

	"learnz-tutor-be/internal/constant"
)

// composePrimaryPrompt builds the single system-prompt string for the
// answer call: persona, the literal video context, and the serialized
// history, all interpolated as unstructured text. The history already
// includes the user message persisted at the start of the turn.
func composePrimaryPrompt(videoContext string, history []HistoryEntry) string {
	serialized, err := json.Marshal(history)
	if err != nil {
		// []HistoryEntry cannot fail to marshal; keep the prompt usable anyway.
		serialized = []byte("[]")
	}
	return fmt.Sprintf(
		"[your role]: [%s] [current video context]: [ %s ] with [conversation history]: [%s]",
		constant.TutorPersonaPromptV1,
		videoContext,
		string(serialized),
	)
}

func composeQuizPrompt(message, videoContext string) string {
	return fmt.Sprintf(constant.QuizPromptTemplateV1, message, videoContext)
}
