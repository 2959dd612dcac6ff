package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByClassroomItemID scopes messages to a classroom item. A nil item matches
// the rows written when the item lookup missed.
type ByClassroomItemID struct {
	ClassroomItemID *uuid.UUID
}

func (s ByClassroomItemID) Apply(db *gorm.DB) *gorm.DB {
	if s.ClassroomItemID == nil {
		return db.Where("classroom_item_id IS NULL")
	}
	return db.Where("classroom_item_id = ?", *s.ClassroomItemID)
}
