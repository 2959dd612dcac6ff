package model

import (
	"time"

	"github.com/google/uuid"
)

type UsageLog struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Scope           string     `gorm:"type:varchar(50);not null"`
	UserId          *uuid.UUID `gorm:"type:uuid;index"`
	ClassroomItemId *uuid.UUID `gorm:"type:uuid;index"`
	QuizGenerated   bool       `gorm:"not null;default:false"`
	AudioGenerated  bool       `gorm:"not null;default:false"`
	ReplyChars      int        `gorm:"not null;default:0"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}

func (UsageLog) TableName() string {
	return "usage_logs"
}
