package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog records one completed tutor turn for the usage dashboard.
// Written asynchronously by the consumer, never on the request path.
type UsageLog struct {
	Id              uuid.UUID
	Scope           string
	UserId          *uuid.UUID
	ClassroomItemId *uuid.UUID
	QuizGenerated   bool
	AudioGenerated  bool
	ReplyChars      int
	CreatedAt       time.Time
}
