package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassroomItem is a video/lesson unit. This service only reads items to
// scope conversation history; creation lives elsewhere.
type ClassroomItem struct {
	Id          uuid.UUID
	Title       string
	Description string
	VideoURL    string
	CreatedAt   time.Time
}
