package dto

import (
	"time"

	"github.com/google/uuid"
)

// AskTutorRequest is the inbound body for both ask variants. Text and
// videoContext default to empty strings; VideoId is only read by the
// classroom variant.
type AskTutorRequest struct {
	Text         string `json:"text"`
	VideoContext string `json:"videoContext"`
	VideoId      string `json:"videoId"`
}

// AskTutorResponse is the response contract the frontend player consumes.
// AiReasoning is reserved and always null. AiQuiz carries the raw quiz
// reply text, either the literal "None" or the quiz JSON.
type AskTutorResponse struct {
	AiText      string  `json:"ai_text"`
	AiAudio     *string `json:"ai_audio"`
	AiReasoning *string `json:"ai_reasoning"`
	AiQuiz      string  `json:"ai_quiz"`
}

type TutorHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishTutorTurnMessage is the payload published per completed turn and
// consumed by the usage log writer.
type PublishTutorTurnMessage struct {
	Scope           string     `json:"scope"`
	UserId          *uuid.UUID `json:"user_id"`
	ClassroomItemId *uuid.UUID `json:"classroom_item_id"`
	QuizGenerated   bool       `json:"quiz_generated"`
	AudioGenerated  bool       `json:"audio_generated"`
	ReplyChars      int        `json:"reply_chars"`
}
