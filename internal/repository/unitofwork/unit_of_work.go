package unitofwork

import (
	"context"

	"learnz-tutor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TutorMessageRepository() contract.TutorMessageRepository
	ClassroomTutorMessageRepository() contract.ClassroomTutorMessageRepository
	ClassroomItemRepository() contract.ClassroomItemRepository
	UsageLogRepository() contract.UsageLogRepository
}
