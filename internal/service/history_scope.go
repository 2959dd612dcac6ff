package service

import (
	"context"
	"time"

	"learnz-tutor-be/internal/constant"
	"learnz-tutor-be/internal/entity"
	"learnz-tutor-be/internal/repository/specification"
	"learnz-tutor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// HistoryEntry is one prior turn as it appears inside the composed prompt.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryScope selects which conversation a turn belongs to. The open
// endpoint uses one global conversation; the classroom endpoint scopes by
// user and classroom item. Both ask variants run the exact same flow and
// differ only in the scope handed to it.
type HistoryScope interface {
	Name() string
	// Load returns prior messages oldest-first. A limit of 0 means the
	// whole history.
	Load(ctx context.Context, uow unitofwork.UnitOfWork, limit int) ([]HistoryEntry, error)
	Append(ctx context.Context, uow unitofwork.UnitOfWork, role, content string, at time.Time) error
}

type globalScope struct{}

func NewGlobalScope() HistoryScope {
	return globalScope{}
}

func (globalScope) Name() string {
	return constant.HistoryScopeGlobal
}

func (globalScope) Load(ctx context.Context, uow unitofwork.UnitOfWork, limit int) ([]HistoryEntry, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit})
	}

	messages, err := uow.TutorMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	// Fetched newest-first so the limit keeps the most recent turns;
	// reversed back to oldest-first for the prompt.
	entries := make([]HistoryEntry, len(messages))
	for i, msg := range messages {
		entries[len(messages)-1-i] = HistoryEntry{Role: msg.Role, Content: msg.Content}
	}
	return entries, nil
}

func (globalScope) Append(ctx context.Context, uow unitofwork.UnitOfWork, role, content string, at time.Time) error {
	return uow.TutorMessageRepository().Create(ctx, &entity.TutorMessage{
		Id:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: at,
	})
}

type classroomScope struct {
	userId uuid.UUID
	itemId *uuid.UUID
}

// NewClassroomScope scopes history to an authenticated user and a classroom
// item. A nil itemId is valid: it groups the turns whose item lookup missed.
func NewClassroomScope(userId uuid.UUID, itemId *uuid.UUID) HistoryScope {
	return classroomScope{userId: userId, itemId: itemId}
}

func (classroomScope) Name() string {
	return constant.HistoryScopeClassroom
}

func (s classroomScope) Load(ctx context.Context, uow unitofwork.UnitOfWork, limit int) ([]HistoryEntry, error) {
	specs := []specification.Specification{
		specification.ByUserID{UserID: s.userId},
		specification.ByClassroomItemID{ClassroomItemID: s.itemId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit})
	}

	messages, err := uow.ClassroomTutorMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(messages))
	for i, msg := range messages {
		entries[len(messages)-1-i] = HistoryEntry{Role: msg.Role, Content: msg.Content}
	}
	return entries, nil
}

func (s classroomScope) Append(ctx context.Context, uow unitofwork.UnitOfWork, role, content string, at time.Time) error {
	return uow.ClassroomTutorMessageRepository().Create(ctx, &entity.ClassroomTutorMessage{
		Id:              uuid.New(),
		Role:            role,
		Content:         content,
		UserId:          s.userId,
		ClassroomItemId: s.itemId,
		CreatedAt:       at,
	})
}
